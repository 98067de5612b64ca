package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cargobug/internal/core"
	"github.com/vovakirdan/cargobug/internal/replay"
)

var flagShowFrame bool

var replayCmd = &cobra.Command{
	Use:   "replay <script>...",
	Short: "Run YAML input scripts headlessly",
	Long: `Play one or more scripts of key presses, updates and renders against a
fresh game, then print the final screen and hero state as YAML.

Script format:
  name: enter and move
  window: {width: 800, height: 600}
  dt: 0.1
  steps:
    - press: space
    - update: 1
    - press: right
    - update: 3
    - release: right
    - render: true

Examples:
  cargobug replay scripts/enter_and_move.yaml
  cargobug replay --frame a.yaml b.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagShowFrame, "frame", false, "Include the last rendered frame in the report")
}

func runReplay(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger(cfg, os.Stderr)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	win := core.WindowInfo{Width: cfg.Window.Width, Height: cfg.Window.Height}
	failed := false

	for i, path := range args {
		script, err := replay.LoadFile(path, win)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
			continue
		}

		report, runErr := replay.Run(ctx, script, newEnv(cfg, logger), replay.Options{})
		if !flagShowFrame {
			report.Frame = ""
		}
		out, err := report.Marshal()
		if err != nil {
			fatal("%v", err)
		}

		if i > 0 {
			fmt.Println("---")
		}
		fmt.Print(string(out))

		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", script.Name, runErr)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
