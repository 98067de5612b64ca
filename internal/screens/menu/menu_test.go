package menu

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cargobug/internal/config"
	"github.com/vovakirdan/cargobug/internal/core"
	"github.com/vovakirdan/cargobug/internal/registry"
	"github.com/vovakirdan/cargobug/internal/resource"
	"github.com/vovakirdan/cargobug/internal/screen"
)

type fontStub struct {
	font *core.Font
	err  error
	asks []string
}

func (f *fontStub) LoadFont(rel string) (*core.Font, error) {
	f.asks = append(f.asks, rel)
	return f.font, f.err
}

// textCanvas records text calls and measures 10x20 pixels per rune.
type textCanvas struct {
	cleared []core.Color
	texts   []string
	styles  []core.TextStyle
	at      []core.Vec2
}

func (c *textCanvas) Clear(col core.Color)                { c.cleared = append(c.cleared, col) }
func (c *textCanvas) FillPolygon([]core.Vec2, core.Color) {}
func (c *textCanvas) DrawText(pos core.Vec2, s string, st core.TextStyle) {
	c.texts = append(c.texts, s)
	c.styles = append(c.styles, st)
	c.at = append(c.at, pos)
}
func (c *textCanvas) MeasureText(s string, _ core.TextStyle) core.Vec2 {
	return core.V(float64(len([]rune(s)))*10, 20)
}

func testEnv() screen.Env {
	return screen.Env{
		Config: config.Default(),
		Logger: log.New(io.Discard),
	}
}

func mustNew(t *testing.T, env screen.Env) *Menu {
	t.Helper()
	m, err := New(env)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return m
}

func TestMenuStartKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   core.KeyEvent
		want bool
	}{
		{"space press", core.Press(core.KeySpace), true},
		{"enter press", core.Press(core.KeyEnter), true},
		{"space release", core.Release(core.KeySpace), false},
		{"unmapped press", core.Press(core.KeyQ), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := mustNew(t, testEnv())
			m.Input(tc.ev)
			m.Update(0.016, core.WindowInfo{})

			tr, ok := m.Transition()
			if ok != tc.want {
				t.Fatalf("Transition() ok = %v, expected %v", ok, tc.want)
			}
			if ok && (tr.Next != screen.Overworld || tr.Args != nil) {
				t.Errorf("Transition() = %+v, expected key-only Overworld", tr)
			}
		})
	}
}

func TestMenuTransitionIsOneShot(t *testing.T) {
	m := mustNew(t, testEnv())
	m.Input(core.Press(core.KeySpace))

	if _, ok := m.Transition(); !ok {
		t.Fatal("expected pending transition")
	}
	if _, ok := m.Transition(); ok {
		t.Error("transition reported twice")
	}
}

func TestMenuBindingsFromConfig(t *testing.T) {
	env := testEnv()
	env.Config.Bindings.Menu = map[string][]string{"start": {"x"}}
	m := mustNew(t, env)

	m.Input(core.Press(core.KeySpace))
	if _, ok := m.Transition(); ok {
		t.Error("space still starts after rebinding to x")
	}
	m.Input(core.Press(core.KeyX))
	if _, ok := m.Transition(); !ok {
		t.Error("x does not start after rebinding")
	}
}

func TestMenuUnknownBindingAction(t *testing.T) {
	env := testEnv()
	env.Config.Bindings.Menu = map[string][]string{"launch": {"space"}}
	if _, err := New(env); err == nil {
		t.Error("expected error for unknown menu action")
	}
}

func TestMenuActionsMatchConfig(t *testing.T) {
	for _, name := range config.ActionNames("menu") {
		a, err := ParseAction(name)
		if err != nil || a.String() != name {
			t.Errorf("ParseAction(%q) = %v, %v", name, a, err)
		}
	}
}

func TestMenuRender(t *testing.T) {
	m := mustNew(t, testEnv())
	c := &textCanvas{}
	m.Render(core.Frame{Width: 800, Height: 600}, c)

	if len(c.cleared) != 1 || c.cleared[0] != core.ColorBlue {
		t.Errorf("cleared = %v, expected one blue clear", c.cleared)
	}
	if len(c.texts) != 2 || c.texts[0] != "cargo-bug" || c.texts[1] != "press space to start" {
		t.Errorf("texts = %q, expected title and hint", c.texts)
	}
	if c.styles[0].Font != nil {
		t.Error("built-in face expected when no font is configured")
	}
}

func TestMenuCentresMeasuredText(t *testing.T) {
	m := mustNew(t, testEnv())
	c := &textCanvas{}
	m.Render(core.Frame{Width: 800, Height: 600}, c)

	// "cargo-bug" is 90 wide, "press space to start" is 200 wide.
	want := []core.Vec2{core.V(355, 170), core.V(300, 350)}
	for i, pos := range c.at {
		if pos != want[i] {
			t.Errorf("text %q at %v, expected %v", c.texts[i], pos, want[i])
		}
	}
}

func TestMenuCentredOnCellCanvas(t *testing.T) {
	m := mustNew(t, testEnv())
	buf := core.NewCellBuffer(80, 30)
	m.Render(core.Frame{Width: 800, Height: 600}, core.NewCellCanvas(buf, 10, 20))

	row := buf.Row(8)
	left := strings.Index(row, "cargo-bug")
	if left < 0 {
		t.Fatalf("title missing from row 8: %q", row)
	}
	right := len([]rune(row)) - left - len("cargo-bug")
	if d := left - right; d < -1 || d > 1 {
		t.Errorf("title off centre: %d cells left, %d right", left, right)
	}
}

func TestMenuHandleEventCounts(t *testing.T) {
	m := mustNew(t, testEnv())
	m.HandleEvent(core.UpdateEvent{DT: 0.1})
	m.HandleEvent(core.RenderEvent{})
	if m.Events() != 2 {
		t.Errorf("Events() = %d, expected 2", m.Events())
	}
}

func TestMenuFontLoading(t *testing.T) {
	env := testEnv()
	env.Config.Menu.Font = "fonts/menu.ttf"
	stub := &fontStub{font: &core.Font{Name: "fonts/menu.ttf", Data: []byte{1}}}
	env.Fonts = stub

	m := mustNew(t, env)
	c := &textCanvas{}
	m.Render(core.Frame{Width: 800, Height: 600}, c)
	if c.styles[0].Font != stub.font || c.styles[1].Font != stub.font {
		t.Error("configured font not used for title and hint")
	}
	if len(stub.asks) != 1 || stub.asks[0] != "fonts/menu.ttf" {
		t.Errorf("font requests = %v", stub.asks)
	}
}

func TestMenuMissingFontIsConfigurationError(t *testing.T) {
	env := testEnv()
	env.Config.Menu.Font = "fonts/missing.ttf"
	env.Fonts = &fontStub{err: resource.ErrNotFound}

	r := registry.New()
	r.Register(screen.MainMenu, registry.Factory{
		New: func(env screen.Env) (screen.Screen, error) { return New(env) },
	})

	_, err := registry.NewMachine(r, screen.MainMenu, env)
	if !screen.IsConfigurationError(err) {
		t.Fatalf("err = %v, expected ConfigurationError", err)
	}
	if !errors.Is(err, resource.ErrNotFound) {
		t.Errorf("err = %v, expected to wrap resource.ErrNotFound", err)
	}
}

func TestMenuFontWithoutLoader(t *testing.T) {
	env := testEnv()
	env.Config.Menu.Font = "fonts/menu.ttf"
	if _, err := New(env); err == nil {
		t.Error("expected error when a font is configured without a loader")
	}
}

func TestMenuRegistered(t *testing.T) {
	f, ok := registry.Default().Lookup(screen.MainMenu)
	if !ok {
		t.Fatal("MainMenu not registered")
	}
	if f.WithArgs != nil {
		t.Error("MainMenu must not accept arguments")
	}
}

func TestMenuRequestStart(t *testing.T) {
	m := mustNew(t, testEnv())
	m.RequestStart()
	tr, ok := m.Transition()
	if !ok || tr.Next != screen.Overworld {
		t.Errorf("Transition() = %+v, %v, expected Overworld", tr, ok)
	}
}
