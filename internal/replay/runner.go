package replay

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cargobug/internal/core"
	"github.com/vovakirdan/cargobug/internal/game"
	"github.com/vovakirdan/cargobug/internal/registry"
	"github.com/vovakirdan/cargobug/internal/screen"
	"github.com/vovakirdan/cargobug/internal/screens/overworld"

	// Registers MainMenu.
	_ "github.com/vovakirdan/cargobug/internal/screens/menu"
)

// HeroState is the hero snapshot in a report.
type HeroState struct {
	TopLeft  core.Vec2 `yaml:"top_left"`
	Velocity core.Vec2 `yaml:"velocity"`
}

// Report summarises a finished replay.
type Report struct {
	Script      string     `yaml:"script"`
	Screen      string     `yaml:"screen"`
	ScreenKey   uint8      `yaml:"screen_key"`
	Hero        *HeroState `yaml:"hero,omitempty"`
	Frames      uint64     `yaml:"frames"`
	Updates     uint64     `yaml:"updates"`
	Inputs      uint64     `yaml:"inputs"`
	Transitions int        `yaml:"transitions"`
	Rejected    int        `yaml:"rejected"`
	// LastRejection is the most recent refused transition.
	LastRejection string `yaml:"last_rejection,omitempty"`
	// Unplayed counts script events left after a close step.
	Unplayed int `yaml:"unplayed,omitempty"`
	// Frame is the last rendered frame as text, one line per cell row.
	Frame string `yaml:"frame,omitempty"`
}

// Options configures a replay run.
type Options struct {
	// Registry supplies the screens; nil uses the process-wide registry.
	Registry *registry.Registry
	// CellWidth and CellHeight size the text raster used for renders.
	CellWidth  float64
	CellHeight float64
}

// Run plays the script against a fresh loop starting at the main menu.
// A fatal screen error is returned together with the report gathered so
// far.
func Run(ctx context.Context, s *Script, env screen.Env, opts Options) (Report, error) {
	if opts.CellWidth <= 0 {
		opts.CellWidth = env.Config.Terminal.CellWidth
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = env.Config.Terminal.CellHeight
	}

	env.Window = core.WindowInfo{Width: s.Window.Width, Height: s.Window.Height}
	buf := core.NewCellBuffer(
		int(float64(s.Window.Width)/opts.CellWidth),
		int(float64(s.Window.Height)/opts.CellHeight),
	)
	canvas := core.NewCellCanvas(buf, opts.CellWidth, opts.CellHeight)

	loop, err := game.New(opts.Registry, env, canvas)
	if err != nil {
		return Report{Script: s.Name}, err
	}

	src := game.Events(s.Events()...)
	runErr := loop.Run(ctx, src)

	r := Summarize(loop)
	r.Script = s.Name
	r.Unplayed = src.Remaining()
	if r.Frames > 0 {
		r.Frame = buf.String()
	}
	return r, runErr
}

// Summarize snapshots the loop's active screen and counters.
func Summarize(loop *game.Loop) Report {
	m := loop.Machine()
	st := loop.Stats()

	r := Report{
		Screen:      m.ActiveKey().String(),
		ScreenKey:   uint8(m.ActiveKey()),
		Frames:      st.Frames,
		Updates:     st.Updates,
		Inputs:      st.Inputs,
		Transitions: st.Transitions,
		Rejected:    st.Rejected,
	}
	if err := m.LastRejection(); err != nil {
		r.LastRejection = err.Error()
	}
	if ow, ok := m.Active().(*overworld.Overworld); ok {
		h := ow.Hero()
		r.Hero = &HeroState{TopLeft: h.TopLeft, Velocity: h.Velocity}
	}
	return r
}

// Marshal renders the report as YAML.
func (r Report) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("replay: marshal report: %w", err)
	}
	return out, nil
}
