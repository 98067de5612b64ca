package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/cargobug/internal/core"
)

//go:embed defaults/cargobug.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultYAML...)
}

// Default returns the hardcoded default configuration. It mirrors the
// embedded YAML and is used when that cannot be parsed.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:        "cargo-bug",
			Width:        800,
			Height:       600,
			ExitOnEscape: true,
			Vsync:        true,
			TPS:          60,
			Graphics:     "opengl",
		},
		Hero: HeroConfig{
			Size:              50,
			Color:             core.ColorRed,
			VelocityIncrement: 500,
			MaxVelocity:       core.Vec2{X: 5, Y: 5},
		},
		Menu: MenuConfig{
			Background: core.ColorBlue,
			Foreground: core.ColorWhite,
			Title:      "cargo-bug",
			Hint:       "press space to start",
			FontSize:   24,
		},
		Overworld: OverworldConfig{
			Background: core.ColorGreen,
		},
		Bindings: BindingsConfig{
			Hero: map[string][]string{
				"move_up":    {"up", "w"},
				"move_down":  {"down", "s"},
				"move_left":  {"left", "a"},
				"move_right": {"right", "d"},
			},
			Menu: map[string][]string{
				"start": {"space", "enter"},
			},
			Overworld: map[string][]string{
				"leave":   {"space"},
				"respawn": {"r"},
			},
		},
		Assets: AssetsConfig{
			Folder:     "assets",
			SearchUp:   3,
			SearchDown: 3,
		},
		Terminal: TerminalConfig{
			CellWidth:    10,
			CellHeight:   20,
			ReleaseAfter: 150 * time.Millisecond,
			TickRate:     30,
		},
		Log: LogConfig{
			Level: "info",
		},
		Source: "embedded",
	}
}
