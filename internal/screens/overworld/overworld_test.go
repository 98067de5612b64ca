package overworld

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cargobug/internal/config"
	"github.com/vovakirdan/cargobug/internal/core"
	"github.com/vovakirdan/cargobug/internal/registry"
	"github.com/vovakirdan/cargobug/internal/screen"
)

type drawCanvas struct {
	cleared  []core.Color
	polygons [][]core.Vec2
	colors   []core.Color
}

func (c *drawCanvas) Clear(col core.Color) { c.cleared = append(c.cleared, col) }
func (c *drawCanvas) FillPolygon(pts []core.Vec2, col core.Color) {
	c.polygons = append(c.polygons, pts)
	c.colors = append(c.colors, col)
}
func (c *drawCanvas) DrawText(core.Vec2, string, core.TextStyle)   {}
func (c *drawCanvas) MeasureText(string, core.TextStyle) core.Vec2 { return core.Vec2{} }

type otherArgs struct{}

func (otherArgs) Target() screen.Key { return screen.Overworld }

func testEnv() screen.Env {
	return screen.Env{
		Config: config.Default(),
		Logger: log.New(io.Discard),
	}
}

func mustNew(t *testing.T) *Overworld {
	t.Helper()
	o, err := New(testEnv())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return o
}

func TestOverworldStartsWithHeroAtOrigin(t *testing.T) {
	o := mustNew(t)
	h := o.Hero()
	if !h.TopLeft.IsZero() || !h.Velocity.IsZero() {
		t.Errorf("hero = pos %v vel %v, expected origin at rest", h.TopLeft, h.Velocity)
	}
	if h.MaxVelocity != core.V(5, 5) || h.Size != 50 || h.Color != core.ColorRed {
		t.Errorf("hero = %+v, expected default tuning", h)
	}
}

func TestOverworldHeroMovement(t *testing.T) {
	o := mustNew(t)

	o.Input(core.Press(core.KeyRight))
	o.Input(core.Press(core.KeyUp))
	o.Update(0.1, core.WindowInfo{})

	h := o.Hero()
	if h.Velocity != core.V(500, -500) {
		t.Errorf("Velocity = %v, expected (500, -500)", h.Velocity)
	}
	if h.TopLeft != core.V(5, -5) {
		t.Errorf("TopLeft = %v, expected (5, -5)", h.TopLeft)
	}

	o.Input(core.Release(core.KeyUp))
	o.Update(0.1, core.WindowInfo{})
	if !h.Velocity.IsZero() || h.TopLeft != core.V(5, -5) {
		t.Errorf("after release: vel %v pos %v, expected stopped at (5, -5)", h.Velocity, h.TopLeft)
	}
}

func TestOverworldTransitions(t *testing.T) {
	tests := []struct {
		name     string
		key      core.Key
		wantNext screen.Key
		wantArgs screen.Args
	}{
		{"space leaves", core.KeySpace, screen.MainMenu, nil},
		{"r respawns", core.KeyR, screen.Overworld, Args{Start: core.V(0, 0)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := mustNew(t)
			o.Input(core.Press(tc.key))
			o.Update(0.016, core.WindowInfo{})

			tr, ok := o.Transition()
			if !ok {
				t.Fatal("expected transition")
			}
			if tr.Next != tc.wantNext || tr.Args != tc.wantArgs {
				t.Errorf("Transition() = %+v, expected next %s args %v", tr, tc.wantNext, tc.wantArgs)
			}
			if _, again := o.Transition(); again {
				t.Error("transition reported twice")
			}
		})
	}
}

func TestOverworldReleaseDoesNotTransition(t *testing.T) {
	o := mustNew(t)
	o.Input(core.Release(core.KeySpace))
	if _, ok := o.Transition(); ok {
		t.Error("space release requested a transition")
	}
}

func TestOverworldWithArgs(t *testing.T) {
	o, err := NewWithArgs(testEnv(), Args{Start: core.V(30, -20)})
	if err != nil {
		t.Fatal(err)
	}
	if o.Hero().TopLeft != core.V(30, -20) {
		t.Errorf("TopLeft = %v, expected (30, -20)", o.Hero().TopLeft)
	}
}

func TestOverworldWithArgsMismatch(t *testing.T) {
	_, err := NewWithArgs(testEnv(), otherArgs{})
	if !errors.Is(err, screen.ErrArgsMismatch) {
		t.Errorf("err = %v, expected ErrArgsMismatch", err)
	}

	// Through the registry the rejection is a recoverable transition error.
	_, err = registry.Default().CreateWithArgs(screen.Overworld, testEnv(), otherArgs{})
	var te *screen.TransitionError
	if !errors.As(err, &te) || !errors.Is(err, screen.ErrArgsMismatch) {
		t.Errorf("registry err = %v, expected TransitionError(ErrArgsMismatch)", err)
	}
}

func TestOverworldConfigTuning(t *testing.T) {
	env := testEnv()
	env.Config.Hero.Start = core.V(10, 10)
	env.Config.Hero.MaxVelocity = core.V(2, 3)
	env.Config.Bindings.Hero = map[string][]string{"move_right": {"l"}}

	o, err := New(env)
	if err != nil {
		t.Fatal(err)
	}

	o.Input(core.Press(core.KeyRight))
	if !o.Hero().Velocity.IsZero() {
		t.Error("arrow key still bound after rebinding")
	}
	o.Input(core.Press(core.KeyL))
	o.Update(1, core.WindowInfo{})
	if o.Hero().TopLeft != core.V(12, 10) {
		t.Errorf("TopLeft = %v, expected (12, 10)", o.Hero().TopLeft)
	}
}

func TestOverworldActionsMatchConfig(t *testing.T) {
	names := config.ActionNames("overworld")
	if len(names) != 2 {
		t.Fatalf("config accepts %d overworld actions, expected 2", len(names))
	}
	for _, name := range names {
		a, err := ParseAction(name)
		if err != nil || a.String() != name {
			t.Errorf("ParseAction(%q) = %v, %v", name, a, err)
		}
	}
}

func TestOverworldScreenBindingsFromConfig(t *testing.T) {
	env := testEnv()
	env.Config.Bindings.Overworld = map[string][]string{"leave": {"q"}, "respawn": {"r"}}
	o, err := New(env)
	if err != nil {
		t.Fatal(err)
	}

	o.Input(core.Press(core.KeySpace))
	if _, ok := o.Transition(); ok {
		t.Error("space still leaves after rebinding leave to q")
	}
	o.Input(core.Press(core.KeyQ))
	tr, ok := o.Transition()
	if !ok || tr.Next != screen.MainMenu {
		t.Errorf("Transition() = %+v, %v, expected MainMenu", tr, ok)
	}
}

func TestOverworldBadBindings(t *testing.T) {
	env := testEnv()
	env.Config.Bindings.Hero = map[string][]string{"jump": {"space"}}
	if _, err := New(env); err == nil {
		t.Error("expected error for unknown hero action")
	}
}

func TestOverworldRender(t *testing.T) {
	o := mustNew(t)
	c := &drawCanvas{}
	o.Render(core.Frame{Width: 800, Height: 600}, c)

	if len(c.cleared) != 1 || c.cleared[0] != core.ColorGreen {
		t.Errorf("cleared = %v, expected one green clear", c.cleared)
	}
	if len(c.polygons) != 1 || c.colors[0] != core.ColorRed {
		t.Fatalf("expected one red polygon, got %d", len(c.polygons))
	}
	want := []core.Vec2{{X: 375, Y: 275}, {X: 425, Y: 275}, {X: 425, Y: 325}, {X: 375, Y: 325}}
	for i, p := range c.polygons[0] {
		if p != want[i] {
			t.Errorf("corner %d = %v, expected %v", i, p, want[i])
		}
	}
}

func TestOverworldRegistered(t *testing.T) {
	f, ok := registry.Default().Lookup(screen.Overworld)
	if !ok {
		t.Fatal("Overworld not registered")
	}
	if f.WithArgs == nil {
		t.Error("Overworld must accept arguments")
	}
}
