// Package overworld implements the playable screen: a coloured field with a
// hero the player moves around.
package overworld

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/cargobug/internal/action"
	"github.com/vovakirdan/cargobug/internal/config"
	"github.com/vovakirdan/cargobug/internal/core"
	"github.com/vovakirdan/cargobug/internal/entity"
	"github.com/vovakirdan/cargobug/internal/registry"
	"github.com/vovakirdan/cargobug/internal/screen"
)

func init() {
	registry.Register(screen.Overworld, registry.Factory{
		Name: "Overworld",
		New: func(env screen.Env) (screen.Screen, error) {
			return New(env)
		},
		WithArgs: func(env screen.Env, args screen.Args) (screen.Screen, error) {
			return NewWithArgs(env, args)
		},
	})
}

// Args configures an overworld built through a transition.
type Args struct {
	// Start is the hero's top-left position.
	Start core.Vec2
}

// Target implements screen.Args.
func (Args) Target() screen.Key { return screen.Overworld }

// Action is a screen-level intent, separate from hero movement.
type Action int

const (
	Leave   Action = iota + 1 // Back to the main menu
	Respawn                   // Rebuild the overworld with the hero at its start
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case Leave:
		return "leave"
	case Respawn:
		return "respawn"
	default:
		return fmt.Sprintf("OverworldAction(%d)", int(a))
	}
}

// ParseAction resolves a configuration name.
func ParseAction(name string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "leave":
		return Leave, nil
	case "respawn":
		return Respawn, nil
	}
	return 0, fmt.Errorf("overworld: unknown action %q", name)
}

// DefaultBindings maps Space to Leave and R to Respawn.
func DefaultBindings() *action.Builder[Action] {
	return action.NewBuilder[Action]().
		Map(core.KeySpace, Leave).
		Map(core.KeyR, Respawn)
}

// Overworld is the playable screen.
type Overworld struct {
	background core.Color
	start      core.Vec2
	hero       *entity.Hero

	input   *action.Translator[Action]
	pending *screen.Transition
}

var _ screen.Screen = (*Overworld)(nil)

// New builds the overworld with the hero at the configured start.
func New(env screen.Env) (*Overworld, error) {
	return build(env, env.Config.Hero.Start)
}

// NewWithArgs builds the overworld from transition arguments. Only Args is
// accepted; any other payload is ErrArgsMismatch.
func NewWithArgs(env screen.Env, args screen.Args) (*Overworld, error) {
	a, ok := args.(Args)
	if !ok {
		return nil, fmt.Errorf("overworld: got %T: %w", args, screen.ErrArgsMismatch)
	}
	return build(env, a.Start)
}

func build(env screen.Env, start core.Vec2) (*Overworld, error) {
	heroInput, err := heroBindings(env)
	if err != nil {
		return nil, err
	}
	input, err := screenBindings(env)
	if err != nil {
		return nil, err
	}

	cfg := heroConfig(env.Config.Hero)
	cfg.Start = start

	return &Overworld{
		background: env.Config.Overworld.Background,
		start:      env.Config.Hero.Start,
		hero:       entity.NewHero(cfg, heroInput),
		input:      input,
	}, nil
}

func screenBindings(env screen.Env) (*action.Translator[Action], error) {
	if len(env.Config.Bindings.Overworld) == 0 {
		return DefaultBindings().Build(), nil
	}
	b, err := action.FromNames(env.Config.Bindings.Overworld, ParseAction)
	if err != nil {
		return nil, err
	}
	for _, o := range b.Overrides() {
		env.Log().Warn("overworld binding overridden", "key", o.Key, "was", o.Action)
	}
	return b.Build(), nil
}

func heroBindings(env screen.Env) (*action.Translator[entity.HeroAction], error) {
	if len(env.Config.Bindings.Hero) == 0 {
		return entity.DefaultHeroBindings().Build(), nil
	}
	b, err := action.FromNames(env.Config.Bindings.Hero, entity.ParseHeroAction)
	if err != nil {
		return nil, err
	}
	for _, o := range b.Overrides() {
		env.Log().Warn("hero binding overridden", "key", o.Key, "was", o.Action)
	}
	return b.Build(), nil
}

func heroConfig(c config.HeroConfig) entity.HeroConfig {
	return entity.HeroConfig{
		Start:             c.Start,
		Size:              c.Size,
		Rotation:          c.Rotation,
		Color:             c.Color,
		VelocityIncrement: c.VelocityIncrement,
		MaxVelocity:       c.MaxVelocity,
	}
}

// Hero returns the screen's hero.
func (o *Overworld) Hero() *entity.Hero { return o.hero }

// HandleEvent is a no-op.
func (o *Overworld) HandleEvent(core.Event) {}

// Input forwards the event to the hero, then checks screen-level keys.
func (o *Overworld) Input(ev core.KeyEvent) {
	o.hero.Input(ev)

	t := o.input.Translate(ev)
	if t.Kind != action.Press {
		return
	}

	var next screen.Transition
	switch t.Action {
	case Leave:
		next = screen.To(screen.MainMenu)
	case Respawn:
		next = screen.WithArgs(screen.Overworld, Args{Start: o.start})
	default:
		return
	}
	o.pending = &next
}

// Update moves the hero.
func (o *Overworld) Update(dt float64, _ core.WindowInfo) {
	o.hero.Update(dt)
}

// Render clears to the background and draws the hero.
func (o *Overworld) Render(frame core.Frame, c core.Canvas) {
	c.Clear(o.background)
	o.hero.Render(frame, c)
}

// Transition returns and clears the pending request.
func (o *Overworld) Transition() (screen.Transition, bool) {
	if o.pending == nil {
		return screen.Transition{}, false
	}
	t := *o.pending
	o.pending = nil
	return t, true
}
