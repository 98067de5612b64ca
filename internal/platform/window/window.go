// Package window runs the game loop inside a native ebiten window.
//
// Ebiten owns the frame clock: every tick the frontend forwards key edges
// and an update to the loop, and every draw a render. Screens never see
// ebiten types; they draw through Canvas.
package window

import (
	"errors"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/cargobug/internal/config"
	"github.com/vovakirdan/cargobug/internal/core"
	"github.com/vovakirdan/cargobug/internal/game"
	"github.com/vovakirdan/cargobug/internal/screens/menu"
)

// Frontend adapts a game loop to ebiten.Game.
type Frontend struct {
	loop    *game.Loop
	cfg     config.WindowConfig
	log     *log.Logger
	canvas  *Canvas
	overlay *menuOverlay

	width, height int
	frames        uint64
	keys          []ebiten.Key
	err           error
}

var _ ebiten.Game = (*Frontend)(nil)

// New creates a frontend for loop using cfg for the window.
func New(loop *game.Loop, cfg config.WindowConfig, logger *log.Logger) (*Frontend, error) {
	if logger == nil {
		logger = log.Default()
	}
	canvas, err := NewCanvas(logger)
	if err != nil {
		return nil, err
	}
	loop.SetCanvas(canvas)

	return &Frontend{
		loop:    loop,
		cfg:     cfg,
		log:     logger,
		canvas:  canvas,
		overlay: newMenuOverlay(),
		width:   cfg.Width,
		height:  cfg.Height,
	}, nil
}

// Run opens the window and blocks until it is closed. It returns nil on a
// normal close and the fatal loop error otherwise.
func (f *Frontend) Run() error {
	ebiten.SetWindowTitle(f.cfg.Title)
	ebiten.SetWindowSize(f.cfg.Width, f.cfg.Height)
	ebiten.SetFullscreen(f.cfg.Fullscreen)
	ebiten.SetVsyncEnabled(f.cfg.Vsync)
	ebiten.SetTPS(f.cfg.TPS)
	ebiten.SetWindowClosingHandled(true)
	if f.cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}

	f.log.Info("opening window", "title", f.cfg.Title, "width", f.cfg.Width, "height", f.cfg.Height, "tps", f.cfg.TPS)

	err := ebiten.RunGameWithOptions(f, &ebiten.RunGameOptions{
		GraphicsLibrary: graphicsLibrary(f.cfg.Graphics),
	})
	if f.err != nil {
		return f.err
	}
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update forwards key edges and one fixed-step update to the loop.
func (f *Frontend) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return f.close()
	}

	if m, ok := f.loop.Machine().Active().(*menu.Menu); ok {
		f.overlay.Update(m)
	}

	f.keys = inpututil.AppendJustPressedKeys(f.keys[:0])
	for _, k := range f.keys {
		if k == ebiten.KeyEscape && f.cfg.ExitOnEscape {
			return f.close()
		}
		if ck, ok := translateKey(k); ok {
			if err := f.dispatch(core.InputEvent{Key: core.Press(ck)}); err != nil {
				return err
			}
		}
	}

	f.keys = inpututil.AppendJustReleasedKeys(f.keys[:0])
	for _, k := range f.keys {
		if ck, ok := translateKey(k); ok {
			if err := f.dispatch(core.InputEvent{Key: core.Release(ck)}); err != nil {
				return err
			}
		}
	}

	return f.dispatch(core.UpdateEvent{
		DT:     1 / float64(ebiten.TPS()),
		Window: core.WindowInfo{Width: f.width, Height: f.height},
	})
}

// Draw renders the active screen, then the menu overlay when it applies.
func (f *Frontend) Draw(screen *ebiten.Image) {
	f.canvas.Target(screen)
	frame := core.Frame{Width: float64(f.width), Height: float64(f.height), Ticks: f.frames}
	f.frames++

	// Render never fails; errors surface from Update.
	_ = f.loop.Dispatch(core.RenderEvent{Frame: frame})

	if _, ok := f.loop.Machine().Active().(*menu.Menu); ok {
		f.overlay.Draw(screen)
	}
}

// Layout tracks the outside size and reports resizes to the loop.
func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != f.width || outsideHeight != f.height {
		f.width, f.height = outsideWidth, outsideHeight
		_ = f.loop.Dispatch(core.ResizeEvent{Window: core.WindowInfo{Width: f.width, Height: f.height}})
	}
	return f.width, f.height
}

func (f *Frontend) dispatch(ev core.Event) error {
	if err := f.loop.Dispatch(ev); err != nil {
		if errors.Is(err, game.ErrClosed) {
			return ebiten.Termination
		}
		f.err = err
		return err
	}
	return nil
}

func (f *Frontend) close() error {
	_ = f.loop.Dispatch(core.CloseEvent{})
	return ebiten.Termination
}

func graphicsLibrary(name string) ebiten.GraphicsLibrary {
	switch strings.ToLower(name) {
	case "opengl":
		return ebiten.GraphicsLibraryOpenGL
	case "directx":
		return ebiten.GraphicsLibraryDirectX
	case "metal":
		return ebiten.GraphicsLibraryMetal
	default:
		return ebiten.GraphicsLibraryAuto
	}
}
