package core

// Frame carries the per-render viewport metadata handed to screens.
type Frame struct {
	Width  float64 // Viewport width in pixels
	Height float64 // Viewport height in pixels
	Ticks  uint64  // Number of frames rendered before this one
}

// Center returns the centre point of the viewport.
func (f Frame) Center() Vec2 {
	return Vec2{X: f.Width / 2, Y: f.Height / 2}
}

// WindowInfo is a read-only snapshot of the window passed into update calls
// and screen constructors. Screens never hold a reference to the window itself.
type WindowInfo struct {
	Width  int
	Height int
}

// Canvas is the render surface a frontend hands to screens for one frame.
// Implementations exist for the ebiten window, the terminal cell buffer and
// tests; screens only draw through this interface.
type Canvas interface {
	// Clear fills the whole surface with c.
	Clear(c Color)

	// FillPolygon fills the convex or concave polygon pts with c.
	// Fewer than three points draws nothing.
	FillPolygon(pts []Vec2, c Color)

	// DrawText draws a single line of text with its top-left corner at pos.
	DrawText(pos Vec2, text string, style TextStyle)

	// MeasureText returns the width and height DrawText would cover.
	MeasureText(text string, style TextStyle) Vec2
}

// Font is a TrueType/OpenType font loaded by a screen. Canvases that cannot
// render outline fonts ignore it.
type Font struct {
	Name string
	Data []byte
}

// TextStyle selects how DrawText renders.
type TextStyle struct {
	Color Color
	Size  float64 // Pixel size; 0 lets the canvas choose
	Font  *Font   // nil selects the canvas's built-in face
}
