package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cargobug/internal/core"
	"github.com/vovakirdan/cargobug/internal/game"
	"github.com/vovakirdan/cargobug/internal/platform/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the terminal",
	Long: `Run the game in the terminal. Each cell stands for
terminal.cell_width x terminal.cell_height pixels of the game viewport.

Terminals do not report key releases: a key counts as held until no
press or auto-repeat has arrived for terminal.release_after.

Logs are discarded unless --log-file is set.

Controls:
  Space/Enter     - Start (menu), back to menu (overworld)
  Arrows/WASD     - Move the hero
  R               - Respawn the hero
  ?               - Toggle help
  Ctrl+C/Esc      - Quit`,
	Args: cobra.NoArgs,
	Run:  runTUI,
}

func runTUI(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger(cfg, io.Discard)
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	env := newEnv(cfg, logger)
	env.Window = core.WindowInfo{
		Width:  int(float64(width) * cfg.Terminal.CellWidth),
		Height: int(float64(height) * cfg.Terminal.CellHeight),
	}
	loop, err := game.New(nil, env, nil)
	if err != nil {
		exitOnLoopError(err)
	}
	stopWatch := watchConfig(cfg, loop, logger)
	defer stopWatch()

	if err := tui.Run(loop, cfg, width, height, logger); err != nil {
		stopWatch()
		exitOnLoopError(err)
	}
}
