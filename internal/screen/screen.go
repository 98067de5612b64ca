// Package screen defines the contract every game screen implements and the
// values exchanged when the active screen asks to be replaced.
//
// A screen is one self-contained game mode (menu, overworld). Exactly one is
// live at a time; the registry state machine owns it and discards it on
// transition. Screens never hold the window: they receive read-only
// core.WindowInfo and core.Frame snapshots instead.
package screen

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cargobug/internal/config"
	"github.com/vovakirdan/cargobug/internal/core"
)

// Key identifies a screen variant.
type Key uint8

// Screen variants.
const (
	MainMenu  Key = 0
	Overworld Key = 1
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case MainMenu:
		return "MainMenu"
	case Overworld:
		return "Overworld"
	default:
		return fmt.Sprintf("Screen(%d)", uint8(k))
	}
}

// Screen is the capability set the game loop dispatches to.
type Screen interface {
	// HandleEvent observes every raw loop event before it is categorised,
	// for UI toolkit bookkeeping.
	HandleEvent(ev core.Event)

	// Input handles one raw key event.
	Input(ev core.KeyEvent)

	// Update advances the screen by dt seconds.
	Update(dt float64, win core.WindowInfo)

	// Render draws the screen for one frame.
	Render(frame core.Frame, c core.Canvas)

	// Transition returns the pending transition request, if any. It is
	// consulted once after every Update.
	Transition() (Transition, bool)
}

// Args is a typed payload for the argument-taking constructor of one target
// screen. The set of implementations is closed: each screen package that
// accepts arguments defines exactly one Args type.
type Args interface {
	// Target is the screen the payload is meant for.
	Target() Key
}

// Transition asks the registry to replace the active screen.
type Transition struct {
	Next Key
	Args Args // nil selects the key-only constructor
}

// To builds a key-only transition.
func To(next Key) Transition {
	return Transition{Next: next}
}

// WithArgs builds a transition that constructs the target from args.
func WithArgs(next Key, args Args) Transition {
	return Transition{Next: next, Args: args}
}

// FontLoader loads fonts from the asset collaborator.
type FontLoader interface {
	LoadFont(rel string) (*core.Font, error)
}

// Env is the read-only context passed to screen constructors.
type Env struct {
	Window core.WindowInfo
	Config config.Config
	Fonts  FontLoader
	Logger *log.Logger
}

// Log returns the env logger or the charm default logger.
func (e Env) Log() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return log.Default()
}
