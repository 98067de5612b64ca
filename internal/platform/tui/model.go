package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cargobug/internal/config"
	"github.com/vovakirdan/cargobug/internal/core"
	"github.com/vovakirdan/cargobug/internal/game"
)

// footerHeight is the number of terminal rows reserved for the help line.
const footerHeight = 1

// Model is the Bubble Tea model driving a game loop.
// It holds pointers so the value copies Bubble Tea makes share one loop.
type Model struct {
	loop    *game.Loop
	cfg     config.TerminalConfig
	log     *log.Logger
	buf     *core.CellBuffer
	canvas  *core.CellCanvas
	tracker *releaseTracker
	keys    KeyMap
	help    help.Model
	state   *runState
}

type runState struct {
	err      error
	quitting bool
	frames   uint64
}

// NewModel creates a model for loop with a width x height cell viewport.
func NewModel(loop *game.Loop, cfg config.Config, width, height int, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	buf := core.NewCellBuffer(width, max(1, height-footerHeight))
	canvas := core.NewCellCanvas(buf, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	loop.SetCanvas(canvas)

	h := help.New()
	h.Width = width

	return Model{
		loop:    loop,
		cfg:     cfg.Terminal,
		log:     logger,
		buf:     buf,
		canvas:  canvas,
		tracker: newReleaseTracker(cfg.Terminal.ReleaseAfter),
		keys:    NewKeyMap(cfg),
		help:    h,
		state:   &runState{},
	}
}

// Err returns the fatal loop error that ended the program, if any.
func (m Model) Err() error {
	return m.state.err
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		_ = m.loop.Dispatch(core.CloseEvent{})
		m.state.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	k, ok := MapKey(msg)
	if !ok {
		return m, nil
	}
	if !m.tracker.Press(k, now) {
		// Auto-repeat of a held key.
		return m, nil
	}
	return m, m.dispatch(core.InputEvent{Key: core.Press(k)})
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.buf.Resize(msg.Width, max(1, msg.Height-footerHeight))
	m.help.Width = msg.Width
	return m, m.dispatch(core.ResizeEvent{Window: m.window()})
}

// handleTick releases expired keys, then advances the loop one step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, k := range m.tracker.Expire(now) {
		if cmd := m.dispatch(core.InputEvent{Key: core.Release(k)}); cmd != nil {
			return m, cmd
		}
	}

	ev := core.UpdateEvent{
		DT:     1 / float64(m.cfg.TickRate),
		Window: m.window(),
	}
	if cmd := m.dispatch(ev); cmd != nil {
		return m, cmd
	}

	// Continue ticking
	return m, tickCmd(m.cfg.TickRate)
}

// dispatch forwards ev and returns tea.Quit when the loop ends.
func (m Model) dispatch(ev core.Event) tea.Cmd {
	err := m.loop.Dispatch(ev)
	if err == nil {
		return nil
	}
	if !errors.Is(err, game.ErrClosed) {
		m.state.err = err
		m.log.Error("loop stopped", "error", err)
	}
	m.state.quitting = true
	return tea.Quit
}

// window reports the viewport in canvas pixels.
func (m Model) window() core.WindowInfo {
	f := m.canvas.Frame()
	return core.WindowInfo{Width: int(f.Width), Height: int(f.Height)}
}

// View renders the active screen into the cell buffer and adds the help footer.
func (m Model) View() string {
	if m.state.quitting {
		return ""
	}

	frame := m.canvas.Frame()
	frame.Ticks = m.state.frames
	m.state.frames++
	_ = m.loop.Dispatch(core.RenderEvent{Frame: frame})

	return RenderBuffer(m.buf) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for loop and blocks until it exits.
// It returns the fatal loop error, if any.
func Run(loop *game.Loop, cfg config.Config, width, height int, logger *log.Logger) error {
	model := NewModel(loop, cfg, width, height, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return err
	}
	return model.Err()
}
