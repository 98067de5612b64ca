package core

import "fmt"

// Event is one item pulled by the game loop from its event source.
// The set of implementations is closed to this package.
type Event interface {
	isEvent()
}

// RenderEvent asks the active screen to draw a frame.
type RenderEvent struct {
	Frame Frame
}

// UpdateEvent advances the simulation by DT seconds.
type UpdateEvent struct {
	DT     float64
	Window WindowInfo
}

// InputEvent carries a raw key edge.
type InputEvent struct {
	Key KeyEvent
}

// ResizeEvent reports a new window size. It is only observed through the
// screens' raw event hook; updates always carry the current size anyway.
type ResizeEvent struct {
	Window WindowInfo
}

// CloseEvent reports that the window was closed or the user asked to quit.
type CloseEvent struct{}

func (RenderEvent) isEvent() {}
func (UpdateEvent) isEvent() {}
func (InputEvent) isEvent()  {}
func (ResizeEvent) isEvent() {}
func (CloseEvent) isEvent()  {}

func (e RenderEvent) String() string {
	return fmt.Sprintf("render(%vx%v)", e.Frame.Width, e.Frame.Height)
}

func (e UpdateEvent) String() string {
	return fmt.Sprintf("update(%v)", e.DT)
}

func (e InputEvent) String() string {
	return e.Key.String()
}

func (e ResizeEvent) String() string {
	return fmt.Sprintf("resize(%dx%d)", e.Window.Width, e.Window.Height)
}

func (CloseEvent) String() string {
	return "close"
}
