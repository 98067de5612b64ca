package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cargobug/internal/game"
	"github.com/vovakirdan/cargobug/internal/platform/window"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the game window",
	Long: `Open a native window and start at the main menu.

Controls:
  Space/Enter     - Start (menu), back to menu (overworld)
  Arrows/WASD     - Move the hero
  R               - Respawn the hero
  Esc             - Quit (when window.exit_on_escape is set)

Examples:
  cargobug run
  cargobug run --config ./configs/cargobug.yaml --watch`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger(cfg, os.Stderr)
	defer closeLog()

	logger.Debug("config loaded", "source", cfg.SettingsName())

	env := newEnv(cfg, logger)
	loop, err := game.New(nil, env, nil)
	if err != nil {
		exitOnLoopError(err)
	}
	stopWatch := watchConfig(cfg, loop, logger)
	defer stopWatch()

	frontend, err := window.New(loop, cfg.Window, logger)
	if err != nil {
		fatal("%v", err)
	}
	if err := frontend.Run(); err != nil {
		stopWatch()
		exitOnLoopError(err)
	}
}
