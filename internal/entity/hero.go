// Package entity contains the in-screen objects that receive input, advance
// with the simulation and draw themselves.
package entity

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/cargobug/internal/action"
	"github.com/vovakirdan/cargobug/internal/core"
)

// Entity is an object owned by a screen.
type Entity interface {
	// Input handles one raw key event.
	Input(ev core.KeyEvent)

	// Update advances the entity by dt seconds.
	Update(dt float64)

	// Render draws the entity. It must not mutate the entity.
	Render(frame core.Frame, c core.Canvas)
}

// HeroAction is a semantic movement intent for the Hero.
type HeroAction int

const (
	MoveUp HeroAction = iota + 1
	MoveDown
	MoveLeft
	MoveRight
)

// String returns the configuration name of the action.
func (a HeroAction) String() string {
	switch a {
	case MoveUp:
		return "move_up"
	case MoveDown:
		return "move_down"
	case MoveLeft:
		return "move_left"
	case MoveRight:
		return "move_right"
	default:
		return fmt.Sprintf("HeroAction(%d)", int(a))
	}
}

// ParseHeroAction resolves a configuration name such as "move_up".
func ParseHeroAction(name string) (HeroAction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "move_up":
		return MoveUp, nil
	case "move_down":
		return MoveDown, nil
	case "move_left":
		return MoveLeft, nil
	case "move_right":
		return MoveRight, nil
	}
	return 0, fmt.Errorf("entity: unknown hero action %q", name)
}

// DefaultHeroBindings returns arrow keys and WASD bound to the four moves.
func DefaultHeroBindings() *action.Builder[HeroAction] {
	return action.NewBuilder[HeroAction]().
		MapAll(MoveUp, core.KeyUp, core.KeyW).
		MapAll(MoveDown, core.KeyDown, core.KeyS).
		MapAll(MoveLeft, core.KeyLeft, core.KeyA).
		MapAll(MoveRight, core.KeyRight, core.KeyD)
}

// Hero defaults.
const (
	VelocityIncrement = 500.0 // Added per press event, in units per second
	DefaultHeroSize   = 50.0
)

// DefaultMaxVelocity bounds the per-tick displacement on each axis.
var DefaultMaxVelocity = core.Vec2{X: 5.0, Y: 5.0}

// HeroConfig holds the tunables for a Hero.
type HeroConfig struct {
	Start             core.Vec2
	Size              float64
	Rotation          float64 // Radians
	Color             core.Color
	VelocityIncrement float64
	MaxVelocity       core.Vec2
}

// DefaultHeroConfig returns the stock hero: a red 50px square at the origin.
func DefaultHeroConfig() HeroConfig {
	return HeroConfig{
		Size:              DefaultHeroSize,
		Color:             core.ColorRed,
		VelocityIncrement: VelocityIncrement,
		MaxVelocity:       DefaultMaxVelocity,
	}
}

// Hero is a controllable square. Velocity changes on key edges; the position
// integrates velocity each update with the per-tick displacement clamped to
// MaxVelocity.
type Hero struct {
	TopLeft     core.Vec2
	Velocity    core.Vec2
	MaxVelocity core.Vec2
	Size        float64
	Rotation    float64
	Color       core.Color

	increment float64
	input     *action.Translator[HeroAction]
}

var _ Entity = (*Hero)(nil)

// NewHero creates a hero at rest. A nil translator uses DefaultHeroBindings.
func NewHero(cfg HeroConfig, input *action.Translator[HeroAction]) *Hero {
	if input == nil {
		input = DefaultHeroBindings().Build()
	}
	return &Hero{
		TopLeft:     cfg.Start,
		MaxVelocity: cfg.MaxVelocity,
		Size:        cfg.Size,
		Rotation:    cfg.Rotation,
		Color:       cfg.Color,
		increment:   cfg.VelocityIncrement,
		input:       input,
	}
}

// Input adjusts velocity from a key edge.
// A press adds the increment on the action's axis (up and left subtract).
// Any release stops the hero on both axes, not only the released one.
func (h *Hero) Input(ev core.KeyEvent) {
	t := h.input.Translate(ev)
	switch t.Kind {
	case action.Press:
		switch t.Action {
		case MoveUp:
			h.Velocity.Y -= h.increment
		case MoveDown:
			h.Velocity.Y += h.increment
		case MoveLeft:
			h.Velocity.X -= h.increment
		case MoveRight:
			h.Velocity.X += h.increment
		}
	case action.Release:
		h.Velocity = core.Vec2{}
	}
}

// Displacement returns the movement Update would apply for dt.
func (h *Hero) Displacement(dt float64) core.Vec2 {
	return core.ClampVec(h.Velocity.Scale(dt), h.MaxVelocity)
}

// Update moves the hero by its clamped displacement. The position itself is
// unbounded and may leave the visible window.
func (h *Hero) Update(dt float64) {
	h.TopLeft = h.TopLeft.Add(h.Displacement(dt))
}

// Corners returns the square's corners in viewport coordinates, clockwise
// from the top-left. The square at TopLeft is shifted so its centre sits on
// the viewport centre, then rotated about that centre.
func (h *Hero) Corners(frame core.Frame) []core.Vec2 {
	half := h.Size / 2
	local := []core.Vec2{
		{X: h.TopLeft.X - half, Y: h.TopLeft.Y - half},
		{X: h.TopLeft.X + half, Y: h.TopLeft.Y - half},
		{X: h.TopLeft.X + half, Y: h.TopLeft.Y + half},
		{X: h.TopLeft.X - half, Y: h.TopLeft.Y + half},
	}

	center := frame.Center()
	out := make([]core.Vec2, len(local))
	for i, p := range local {
		out[i] = p.Rotate(h.Rotation).Add(center)
	}
	return out
}

// Render fills the hero's square.
func (h *Hero) Render(frame core.Frame, c core.Canvas) {
	c.FillPolygon(h.Corners(frame), h.Color)
}
