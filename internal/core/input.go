package core

import (
	"fmt"
	"sort"
	"strings"
)

// Key identifies a physical key independently of the windowing or terminal
// library that reported it. Frontends translate their native key codes into
// Key before handing events to the game loop.
type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

var keyNames = map[Key]string{
	KeyUnknown:   "unknown",
	KeySpace:     "space",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
}

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('a' + int(k-KeyA)))
	}
	for k := Key0; k <= Key9; k++ {
		keyNames[k] = string(rune('0' + int(k-Key0)))
	}
}

// String returns the lower-case key name used in configuration files.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// ParseKey looks up a key by its configuration name. "esc" and "return" are
// accepted as aliases.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "esc":
		name = "escape"
	case "return":
		name = "enter"
	}
	for k, n := range keyNames {
		if n == name && k != KeyUnknown {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("core: unknown key %q", name)
}

// KeyNames returns every named key sorted by key code.
func KeyNames() []string {
	keys := make([]Key, 0, len(keyNames))
	for k := range keyNames {
		if k != KeyUnknown {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return names
}

// KeyState is the edge reported for a key.
type KeyState int

const (
	KeyStateNone KeyState = iota
	KeyPressed
	KeyReleased
)

// String returns a human-readable name for the state.
func (s KeyState) String() string {
	switch s {
	case KeyPressed:
		return "press"
	case KeyReleased:
		return "release"
	default:
		return "none"
	}
}

// KeyEvent is a raw input event: a physical key and the edge that occurred.
type KeyEvent struct {
	Key   Key
	State KeyState
}

// Press builds a press-edge event for k.
func Press(k Key) KeyEvent {
	return KeyEvent{Key: k, State: KeyPressed}
}

// Release builds a release-edge event for k.
func Release(k Key) KeyEvent {
	return KeyEvent{Key: k, State: KeyReleased}
}

// String formats the event as "press(space)".
func (e KeyEvent) String() string {
	return fmt.Sprintf("%s(%s)", e.State, e.Key)
}
