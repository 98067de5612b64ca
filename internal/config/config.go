// Package config provides YAML-based configuration loading, validation and
// hot reload for the game shell.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vovakirdan/cargobug/internal/core"
)

// Config is the complete application configuration.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Hero      HeroConfig      `yaml:"hero"`
	Menu      MenuConfig      `yaml:"menu"`
	Overworld OverworldConfig `yaml:"overworld"`
	Bindings  BindingsConfig  `yaml:"bindings"`
	Assets    AssetsConfig    `yaml:"assets"`
	Terminal  TerminalConfig  `yaml:"terminal"`
	Log       LogConfig       `yaml:"log"`

	// Source is the file the config was read from ("embedded" for defaults).
	Source string `yaml:"-"`
}

// WindowConfig configures the native window.
type WindowConfig struct {
	Title        string `yaml:"title"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	ExitOnEscape bool   `yaml:"exit_on_escape"`
	Fullscreen   bool   `yaml:"fullscreen"`
	Vsync        bool   `yaml:"vsync"`
	Resizable    bool   `yaml:"resizable"`
	TPS          int    `yaml:"tps"`      // Update ticks per second
	Graphics     string `yaml:"graphics"` // auto, opengl, directx, metal
}

// HeroConfig tunes the overworld hero.
type HeroConfig struct {
	Start             core.Vec2  `yaml:"start"`
	Size              float64    `yaml:"size"`
	Rotation          float64    `yaml:"rotation"` // Radians
	Color             core.Color `yaml:"color"`
	VelocityIncrement float64    `yaml:"velocity_increment"`
	MaxVelocity       core.Vec2  `yaml:"max_velocity"`
}

// MenuConfig configures the main menu screen.
type MenuConfig struct {
	Background core.Color `yaml:"background"`
	Foreground core.Color `yaml:"foreground"`
	Title      string     `yaml:"title"`
	Hint       string     `yaml:"hint"`
	// Font is a path relative to the assets folder. Empty uses the
	// frontend's built-in face and skips the asset search entirely.
	Font     string  `yaml:"font"`
	FontSize float64 `yaml:"font_size"`
}

// OverworldConfig configures the overworld screen.
type OverworldConfig struct {
	Background core.Color `yaml:"background"`
}

// BindingsConfig maps action names to key names, per screen.
// Several keys may map to one action; a key listed under two actions keeps
// the alphabetically later action. Hero and overworld bindings are active on
// the same screen and must not share keys.
type BindingsConfig struct {
	Hero      map[string][]string `yaml:"hero"`
	Menu      map[string][]string `yaml:"menu"`
	Overworld map[string][]string `yaml:"overworld"`
}

// bindingActions lists the action names each bindings section accepts.
var bindingActions = map[string][]string{
	"hero":      {"move_up", "move_down", "move_left", "move_right"},
	"menu":      {"start"},
	"overworld": {"leave", "respawn"},
}

// ActionNames returns the action names accepted under bindings.<section>.
func ActionNames(section string) []string {
	return append([]string(nil), bindingActions[section]...)
}

// AssetsConfig controls the assets folder search.
type AssetsConfig struct {
	Folder     string `yaml:"folder"`
	SearchUp   int    `yaml:"search_up"`
	SearchDown int    `yaml:"search_down"`
}

// TerminalConfig configures the terminal frontend.
type TerminalConfig struct {
	// CellWidth and CellHeight are the pixel size of one terminal cell in
	// the logical viewport.
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	// ReleaseAfter is how long after the last press (or auto-repeat) a key
	// is considered released. Terminals do not report key-up.
	ReleaseAfter time.Duration `yaml:"release_after"`
	TickRate     int           `yaml:"tick_rate"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// validGraphics lists accepted graphics library names.
var validGraphics = map[string]bool{
	"":        true,
	"auto":    true,
	"opengl":  true,
	"directx": true,
	"metal":   true,
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS))
	}
	if !validGraphics[strings.ToLower(c.Window.Graphics)] {
		errs = append(errs, fmt.Errorf("window.graphics: unknown library %q", c.Window.Graphics))
	}
	if c.Hero.Size <= 0 {
		errs = append(errs, fmt.Errorf("hero.size must be positive, got %v", c.Hero.Size))
	}
	if c.Hero.MaxVelocity.X < 0 || c.Hero.MaxVelocity.Y < 0 {
		errs = append(errs, fmt.Errorf("hero.max_velocity must not be negative, got %v", c.Hero.MaxVelocity))
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("terminal cell size must be positive"))
	}
	if c.Terminal.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("terminal.tick_rate must be positive, got %d", c.Terminal.TickRate))
	}
	errs = append(errs, validateBindings("hero", c.Bindings.Hero)...)
	errs = append(errs, validateBindings("menu", c.Bindings.Menu)...)
	errs = append(errs, validateBindings("overworld", c.Bindings.Overworld)...)
	errs = append(errs, sharedKeys("hero", c.Bindings.Hero, "overworld", c.Bindings.Overworld)...)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

func validateBindings(section string, bindings map[string][]string) []error {
	var errs []error
	for _, name := range sortedNames(bindings) {
		if !knownAction(section, name) {
			errs = append(errs, fmt.Errorf("bindings.%s.%s: unknown action (expected one of %s)",
				section, name, strings.Join(bindingActions[section], ", ")))
		}
		for _, k := range bindings[name] {
			if _, err := core.ParseKey(k); err != nil {
				errs = append(errs, fmt.Errorf("bindings.%s.%s: %w", section, name, err))
			}
		}
	}
	return errs
}

func knownAction(section, name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, a := range bindingActions[section] {
		if a == name {
			return true
		}
	}
	return false
}

// sharedKeys reports keys bound in both sections.
func sharedKeys(aName string, a map[string][]string, bName string, b map[string][]string) []error {
	owner := make(map[core.Key]string)
	for _, name := range sortedNames(a) {
		for _, keyName := range a[name] {
			if k, err := core.ParseKey(keyName); err == nil {
				owner[k] = name
			}
		}
	}

	var errs []error
	for _, name := range sortedNames(b) {
		for _, keyName := range b[name] {
			k, err := core.ParseKey(keyName)
			if err != nil {
				continue
			}
			if other, ok := owner[k]; ok {
				errs = append(errs, fmt.Errorf("bindings: key %s bound to both %s.%s and %s.%s",
					k, aName, other, bName, name))
			}
		}
	}
	return errs
}

func sortedNames(bindings map[string][]string) []string {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SettingsName identifies the configuration in logs.
func (c Config) SettingsName() string {
	if c.Source == "" {
		return "embedded"
	}
	return c.Source
}
