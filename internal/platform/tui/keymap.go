package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cargobug/internal/config"
	"github.com/vovakirdan/cargobug/internal/core"
)

// KeyMap holds the terminal-level bindings and the game bindings shown in
// the help footer. Only Quit and Help are handled by the frontend; every
// other key is forwarded to the loop.
type KeyMap struct {
	Quit key.Binding
	Help key.Binding

	// Game lists one display binding per configured action.
	Game []key.Binding
}

// NewKeyMap builds the key map from configuration.
func NewKeyMap(cfg config.Config) KeyMap {
	quitKeys := []string{"ctrl+c"}
	if cfg.Window.ExitOnEscape {
		quitKeys = append(quitKeys, "esc")
	}

	km := KeyMap{
		Quit: key.NewBinding(
			key.WithKeys(quitKeys...),
			key.WithHelp(strings.Join(quitKeys, "/"), "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
	km.Game = append(km.Game, displayBindings(cfg.Bindings.Menu)...)
	km.Game = append(km.Game, displayBindings(cfg.Bindings.Hero)...)
	km.Game = append(km.Game, displayBindings(cfg.Bindings.Overworld)...)
	return km
}

func displayBindings(bindings map[string][]string) []key.Binding {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]key.Binding, 0, len(names))
	for _, name := range names {
		keys := bindings[name]
		out = append(out, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), strings.ReplaceAll(name, "_", " ")),
		))
	}
	return out
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Quit, km.Help}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Quit, km.Help},
		km.Game,
	}
}

// MapKey translates a Bubble Tea key message to a core key.
// Returns false for keys the game does not know.
func MapKey(msg tea.KeyMsg) (core.Key, bool) {
	name := msg.String()
	switch name {
	case " ", "space":
		return core.KeySpace, true
	case "esc":
		return core.KeyEscape, true
	}

	k, err := core.ParseKey(strings.ToLower(name))
	if err != nil {
		return core.KeyUnknown, false
	}
	return k, true
}
