package registry

import (
	"errors"

	"github.com/vovakirdan/cargobug/internal/config"
	"github.com/vovakirdan/cargobug/internal/core"
	"github.com/vovakirdan/cargobug/internal/screen"
)

// Machine owns the single active screen and replaces it when the screen asks
// for a transition. There is no history and no terminal state.
type Machine struct {
	reg    *Registry
	env    screen.Env
	active screen.Screen
	key    screen.Key

	transitions int
	rejected    int
	lastReject  error
	reported    map[rejection]struct{}
}

type rejection struct {
	key    screen.Key
	reason string
}

// NewMachine constructs the initial screen and returns a machine running it.
// Failing to build the initial screen is always a ConfigurationError.
func NewMachine(reg *Registry, initial screen.Key, env screen.Env) (*Machine, error) {
	if reg == nil {
		reg = Default()
	}

	s, err := reg.Create(initial, env)
	if err != nil {
		var te *screen.TransitionError
		if errors.As(err, &te) {
			err = &screen.ConfigurationError{Screen: initial, Err: te.Err}
		}
		return nil, err
	}

	env.Log().Debug("screen started", "screen", initial)

	return &Machine{
		reg:      reg,
		env:      env,
		active:   s,
		key:      initial,
		reported: make(map[rejection]struct{}),
	}, nil
}

// Active returns the live screen.
func (m *Machine) Active() screen.Screen {
	return m.active
}

// ActiveKey returns the key of the live screen.
func (m *Machine) ActiveKey() screen.Key {
	return m.key
}

// Transitions returns how many times the active screen was replaced.
func (m *Machine) Transitions() int {
	return m.transitions
}

// Rejected returns how many transition requests were refused.
func (m *Machine) Rejected() int {
	return m.rejected
}

// LastRejection returns the most recent refused transition, or nil.
func (m *Machine) LastRejection() error {
	return m.lastReject
}

// Reconfigure swaps the configuration used for screens constructed from
// now on. The live screen keeps the settings it was built with.
func (m *Machine) Reconfigure(cfg config.Config) {
	m.env.Config = cfg
}

// HandleEvent forwards a raw loop event to the active screen.
func (m *Machine) HandleEvent(ev core.Event) {
	m.active.HandleEvent(ev)
}

// Input forwards a key event to the active screen.
func (m *Machine) Input(ev core.KeyEvent) {
	m.active.Input(ev)
}

// Render draws the active screen.
func (m *Machine) Render(frame core.Frame, c core.Canvas) {
	m.active.Render(frame, c)
}

// Update advances the active screen, then applies its transition request.
//
// A rejected request (unknown key, unexpected or mismatched arguments)
// leaves the active screen in place and is logged once per key and reason.
// The only error returned is a ConfigurationError from a failing
// constructor, which the loop treats as fatal.
func (m *Machine) Update(dt float64, win core.WindowInfo) error {
	m.env.Window = win
	m.active.Update(dt, win)

	t, ok := m.active.Transition()
	if !ok {
		return nil
	}

	next, err := m.reg.CreateWithArgs(t.Next, m.env, t.Args)
	if err != nil {
		var te *screen.TransitionError
		if errors.As(err, &te) {
			m.reject(te)
			return nil
		}
		m.env.Log().Error("screen construction failed", "screen", t.Next, "error", err)
		return err
	}

	m.env.Log().Debug("screen transition", "from", m.key, "to", t.Next, "args", t.Args != nil)
	m.active = next
	m.key = t.Next
	m.transitions++
	return nil
}

func (m *Machine) reject(te *screen.TransitionError) {
	m.rejected++
	m.lastReject = te

	reason := argsSentinel(te.Err)
	if reason == nil {
		reason = te.Err
	}
	r := rejection{key: te.Key, reason: reason.Error()}
	if _, seen := m.reported[r]; seen {
		return
	}
	m.reported[r] = struct{}{}
	m.env.Log().Warn("transition rejected", "from", m.key, "to", te.Key, "reason", te.Err)
}

// argsSentinel maps err to the transition sentinel it wraps, if any.
func argsSentinel(err error) error {
	for _, s := range []error{screen.ErrUnknownScreen, screen.ErrArgsUnsupported, screen.ErrArgsMismatch} {
		if errors.Is(err, s) {
			return s
		}
	}
	return nil
}
