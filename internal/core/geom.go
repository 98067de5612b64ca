// Package core provides fundamental types and utilities for the game shell.
// It contains no external dependencies (no windowing or terminal libraries) to
// keep screen and entity logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector of float64 components. It is used both for points
// (positions) and for displacements (velocities).
type Vec2 struct {
	X, Y float64
}

// V constructs a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s on both axes.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rotate rotates v around the origin by theta radians.
func (v Vec2) Rotate(theta float64) Vec2 {
	if theta == 0 {
		return v
	}
	sin, cos := math.Sincos(theta)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// ClampVec restricts each component of v to [-bound, bound] of the matching
// component of bound. bound components are expected to be non-negative.
func ClampVec(v, bound Vec2) Vec2 {
	return Vec2{
		X: ClampF(v.X, -bound.X, bound.X),
		Y: ClampF(v.Y, -bound.Y, bound.Y),
	}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// PointInPolygon reports whether p lies inside the polygon described by pts
// (even-odd rule). Used to rasterise filled shapes onto a CellBuffer.
func PointInPolygon(p Vec2, pts []Vec2) bool {
	inside := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
