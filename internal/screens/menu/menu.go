// Package menu implements the main menu screen: a coloured background with
// a title and a hint. The start action moves on to the overworld.
package menu

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/cargobug/internal/action"
	"github.com/vovakirdan/cargobug/internal/core"
	"github.com/vovakirdan/cargobug/internal/registry"
	"github.com/vovakirdan/cargobug/internal/screen"
)

func init() {
	registry.Register(screen.MainMenu, registry.Factory{
		Name: "Main menu",
		New: func(env screen.Env) (screen.Screen, error) {
			return New(env)
		},
	})
}

// Action is a menu intent.
type Action int

const (
	Start Action = iota + 1
)

// String returns the configuration name of the action.
func (a Action) String() string {
	if a == Start {
		return "start"
	}
	return fmt.Sprintf("MenuAction(%d)", int(a))
}

// ParseAction resolves a configuration name.
func ParseAction(name string) (Action, error) {
	if strings.EqualFold(strings.TrimSpace(name), "start") {
		return Start, nil
	}
	return 0, fmt.Errorf("menu: unknown action %q", name)
}

// DefaultBindings maps Space and Enter to Start.
func DefaultBindings() *action.Builder[Action] {
	return action.NewBuilder[Action]().MapAll(Start, core.KeySpace, core.KeyEnter)
}

// Layout constants, as fractions of the viewport.
const (
	titleY = 0.30
	hintY  = 0.60
)

// Menu is the main menu screen.
type Menu struct {
	background core.Color
	foreground core.Color
	title      string
	hint       string
	fontSize   float64
	font       *core.Font

	input   *action.Translator[Action]
	pending *screen.Transition
	events  uint64
}

var _ screen.Screen = (*Menu)(nil)

// New builds the menu from env.Config. A configured font must resolve
// through env.Fonts; failing to load it is returned as is and reported by
// the registry as a configuration error.
func New(env screen.Env) (*Menu, error) {
	cfg := env.Config.Menu

	b := DefaultBindings()
	if len(env.Config.Bindings.Menu) > 0 {
		var err error
		b, err = action.FromNames(env.Config.Bindings.Menu, ParseAction)
		if err != nil {
			return nil, err
		}
	}
	for _, o := range b.Overrides() {
		env.Log().Warn("menu binding overridden", "key", o.Key, "was", o.Action)
	}

	m := &Menu{
		background: cfg.Background,
		foreground: cfg.Foreground,
		title:      cfg.Title,
		hint:       cfg.Hint,
		fontSize:   cfg.FontSize,
		input:      b.Build(),
	}

	if cfg.Font != "" {
		if env.Fonts == nil {
			return nil, fmt.Errorf("menu: font %q configured but no asset loader", cfg.Font)
		}
		font, err := env.Fonts.LoadFont(cfg.Font)
		if err != nil {
			return nil, fmt.Errorf("menu: load font: %w", err)
		}
		m.font = font
	}

	return m, nil
}

// Title returns the menu heading.
func (m *Menu) Title() string { return m.title }

// Hint returns the line shown under the heading.
func (m *Menu) Hint() string { return m.hint }

// Events returns how many raw loop events the menu has observed.
func (m *Menu) Events() uint64 { return m.events }

// HandleEvent counts raw events for overlay bookkeeping.
func (m *Menu) HandleEvent(core.Event) {
	m.events++
}

// Input requests the overworld on a Start press.
func (m *Menu) Input(ev core.KeyEvent) {
	t := m.input.Translate(ev)
	if t.Kind == action.Press && t.Action == Start {
		m.RequestStart()
	}
}

// RequestStart queues the transition to the overworld, as the Start action
// does. UI overlays call it from their button handlers.
func (m *Menu) RequestStart() {
	next := screen.To(screen.Overworld)
	m.pending = &next
}

// Update does nothing; the menu is static.
func (m *Menu) Update(float64, core.WindowInfo) {}

// Render clears to the background and draws the title and hint centred.
func (m *Menu) Render(frame core.Frame, c core.Canvas) {
	c.Clear(m.background)

	titleStyle := core.TextStyle{Color: m.foreground, Size: m.fontSize, Font: m.font}
	hintStyle := core.TextStyle{Color: m.foreground, Size: m.fontSize / 2, Font: m.font}

	c.DrawText(centred(frame, c, m.title, titleStyle, titleY), m.title, titleStyle)
	c.DrawText(centred(frame, c, m.hint, hintStyle, hintY), m.hint, hintStyle)
}

// Transition returns and clears the pending request.
func (m *Menu) Transition() (screen.Transition, bool) {
	if m.pending == nil {
		return screen.Transition{}, false
	}
	t := *m.pending
	m.pending = nil
	return t, true
}

// centred places text horizontally centred with its middle at yFrac of the
// frame height.
func centred(frame core.Frame, c core.Canvas, text string, style core.TextStyle, yFrac float64) core.Vec2 {
	size := c.MeasureText(text, style)
	return core.Vec2{
		X: math.Max(0, (frame.Width-size.X)/2),
		Y: math.Max(0, frame.Height*yFrac-size.Y/2),
	}
}
