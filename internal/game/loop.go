// Package game runs the frame loop: it pulls events from a frontend, routes
// them to the active screen and hands configuration reloads to the screen
// state machine between updates.
//
// The loop is single-threaded. Push-style frontends (ebiten, Bubble Tea)
// call Dispatch from their own callbacks; pull-style sources (replay
// scripts) are driven by Run.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cargobug/internal/config"
	"github.com/vovakirdan/cargobug/internal/core"
	"github.com/vovakirdan/cargobug/internal/registry"
	"github.com/vovakirdan/cargobug/internal/screen"
)

// ErrClosed is returned by Dispatch for a CloseEvent.
var ErrClosed = errors.New("game: closed")

// EventSource yields loop events. Next returns io.EOF when exhausted.
type EventSource interface {
	Next(ctx context.Context) (core.Event, error)
}

// Stats counts what the loop has processed.
type Stats struct {
	Frames      uint64
	Updates     uint64
	Inputs      uint64
	Transitions int
	Rejected    int
	Reloads     int
}

// Loop dispatches events to the screen state machine.
type Loop struct {
	machine *registry.Machine
	canvas  core.Canvas
	reloads <-chan config.Config
	log     *log.Logger

	stats Stats
}

// New starts the main menu from reg (the process-wide registry when nil)
// and returns a loop drawing onto canvas. A nil canvas discards drawing.
func New(reg *registry.Registry, env screen.Env, canvas core.Canvas) (*Loop, error) {
	m, err := registry.NewMachine(reg, screen.MainMenu, env)
	if err != nil {
		return nil, err
	}
	return NewLoop(m, canvas, env.Log()), nil
}

// NewLoop wraps an existing machine.
func NewLoop(m *registry.Machine, canvas core.Canvas, logger *log.Logger) *Loop {
	if canvas == nil {
		canvas = discardCanvas{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Loop{
		machine: m,
		canvas:  canvas,
		log:     logger,
	}
}

// Machine returns the screen state machine.
func (l *Loop) Machine() *registry.Machine {
	return l.machine
}

// Stats returns a snapshot of the loop counters.
func (l *Loop) Stats() Stats {
	s := l.stats
	s.Transitions = l.machine.Transitions()
	s.Rejected = l.machine.Rejected()
	return s
}

// SetCanvas replaces the render target.
func (l *Loop) SetCanvas(c core.Canvas) {
	if c == nil {
		c = discardCanvas{}
	}
	l.canvas = c
}

// WatchConfig registers a channel of reloaded configurations. Pending
// reloads are applied at the start of the next update, on the loop
// goroutine, and only affect screens constructed afterwards.
func (l *Loop) WatchConfig(ch <-chan config.Config) {
	l.reloads = ch
}

// Dispatch routes one event. Every event is first offered to the active
// screen's HandleEvent, then handled by category.
//
// It returns ErrClosed for a CloseEvent and a *screen.ConfigurationError
// when a transition target cannot be built. Both end the loop.
func (l *Loop) Dispatch(ev core.Event) error {
	l.machine.HandleEvent(ev)

	switch e := ev.(type) {
	case core.RenderEvent:
		l.stats.Frames++
		l.machine.Render(e.Frame, l.canvas)

	case core.UpdateEvent:
		l.stats.Updates++
		l.applyReloads()
		return l.machine.Update(e.DT, e.Window)

	case core.InputEvent:
		l.stats.Inputs++
		l.machine.Input(e.Key)

	case core.ResizeEvent:
		l.log.Debug("window resized", "width", e.Window.Width, "height", e.Window.Height)

	case core.CloseEvent:
		return ErrClosed
	}

	return nil
}

// Run pulls events from src until it is exhausted, ctx is cancelled or a
// CloseEvent arrives, all of which are a normal exit. A fatal screen error
// is returned as is.
func (l *Loop) Run(ctx context.Context, src EventSource) error {
	defer func() {
		s := l.Stats()
		l.log.Debug("loop finished",
			"frames", s.Frames,
			"updates", s.Updates,
			"inputs", s.Inputs,
			"transitions", s.Transitions,
			"rejected", s.Rejected,
		)
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}

		ev, err := src.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("game: event source: %w", err)
		}

		if err := l.Dispatch(ev); err != nil {
			if errors.Is(err, ErrClosed) {
				return nil
			}
			return err
		}
	}
}

func (l *Loop) applyReloads() {
	if l.reloads == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-l.reloads:
			if !ok {
				l.reloads = nil
				return
			}
			if err := cfg.Validate(); err != nil {
				l.log.Warn("config reload rejected", "source", cfg.SettingsName(), "error", err)
				continue
			}
			l.machine.Reconfigure(cfg)
			if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
				l.log.SetLevel(lvl)
			}
			l.stats.Reloads++
			l.log.Info("config reloaded", "source", cfg.SettingsName())
		default:
			return
		}
	}
}

// discardCanvas drops all drawing.
type discardCanvas struct{}

func (discardCanvas) Clear(core.Color)                             {}
func (discardCanvas) FillPolygon([]core.Vec2, core.Color)          {}
func (discardCanvas) DrawText(core.Vec2, string, core.TextStyle)   {}
func (discardCanvas) MeasureText(string, core.TextStyle) core.Vec2 { return core.Vec2{} }
