// cargobug is a small screen-based game shell: a main menu and an overworld
// with a hero you steer around.
//
// Usage:
//
//	cargobug run                 - Open the game window
//	cargobug tui                 - Play in the terminal
//	cargobug replay <script>...  - Run YAML input scripts headlessly
//	cargobug keys                - Show key bindings and screens
//	cargobug config              - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.cargobug, ./configs, embedded)
//	--log-level <lvl>   - debug, info, warn, error (default: from config)
//	--log-file <path>   - Write logs to a file instead of stderr
//	--watch             - Reload the config file when it changes
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cargobug/internal/config"
	"github.com/vovakirdan/cargobug/internal/game"
	"github.com/vovakirdan/cargobug/internal/resource"
	"github.com/vovakirdan/cargobug/internal/screen"

	// Import screens to register them
	_ "github.com/vovakirdan/cargobug/internal/screens/menu"
	_ "github.com/vovakirdan/cargobug/internal/screens/overworld"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagWatch    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cargobug",
	Short: "cargobug - a tiny screen-based game shell",
	Long: `cargobug opens a main menu; press Space to enter the overworld and
steer the red square with the arrow keys or WASD. Space returns to the menu,
R respawns the hero.

Available commands:
  run      - Open the game window
  tui      - Play in the terminal
  replay   - Run YAML input scripts without a window
  keys     - Show key bindings and registered screens
  config   - Print the effective configuration

Examples:
  cargobug run
  cargobug run --config ./my.yaml --watch
  cargobug tui --log-file cargobug.log
  cargobug replay scripts/enter_and_move.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}

// fatal prints err and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the configuration or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatal("%v", err)
	}
	return cfg
}

// newLogger builds the process logger. Logs go to --log-file when set,
// else to fallback. The level comes from --log-level, then the config.
func newLogger(cfg config.Config, fallback io.Writer) (*log.Logger, func()) {
	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fatal("open log file: %v", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "cargobug",
	})

	levelName := cfg.Log.Level
	if flagLogLevel != "" {
		levelName = flagLogLevel
	}
	if levelName != "" {
		lvl, err := log.ParseLevel(levelName)
		if err != nil {
			fatal("invalid log level %q", levelName)
		}
		logger.SetLevel(lvl)
	}
	return logger, closeFn
}

// newEnv builds the screen construction context.
func newEnv(cfg config.Config, logger *log.Logger) screen.Env {
	return screen.Env{
		Config: cfg,
		Fonts:  resource.NewFinder(cfg.Assets),
		Logger: logger,
	}
}

// watchConfig starts the config watcher when --watch is set and feeds it
// to loop. The returned func stops it.
func watchConfig(cfg config.Config, loop *game.Loop, logger *log.Logger) func() {
	if !flagWatch {
		return func() {}
	}
	if cfg.Source == "" || cfg.Source == "embedded" {
		logger.Warn("--watch ignored: no config file in use")
		return func() {}
	}

	w, err := config.Watch(cfg.Source)
	if err != nil {
		logger.Warn("could not watch config", "path", cfg.Source, "error", err)
		return func() {}
	}
	logger.Info("watching config", "path", w.Path())

	loop.WatchConfig(w.Configs)
	go func() {
		for err := range w.Errors {
			logger.Warn("config reload failed", "error", err)
		}
	}()
	return func() { _ = w.Close() }
}

// exitOnLoopError reports a fatal loop error and exits.
func exitOnLoopError(err error) {
	if err == nil {
		return
	}
	if screen.IsConfigurationError(err) {
		fatal("%v\nCheck the assets folder and the menu/hero settings in your config.", err)
	}
	fatal("%v", err)
}
