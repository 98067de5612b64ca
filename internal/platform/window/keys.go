package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/cargobug/internal/core"
)

// keyMap translates ebiten keys into core keys. Keys missing from the table
// are not forwarded to the loop.
var keyMap = map[ebiten.Key]core.Key{
	ebiten.KeySpace:      core.KeySpace,
	ebiten.KeyEnter:      core.KeyEnter,
	ebiten.KeyEscape:     core.KeyEscape,
	ebiten.KeyTab:        core.KeyTab,
	ebiten.KeyBackspace:  core.KeyBackspace,
	ebiten.KeyArrowUp:    core.KeyUp,
	ebiten.KeyArrowDown:  core.KeyDown,
	ebiten.KeyArrowLeft:  core.KeyLeft,
	ebiten.KeyArrowRight: core.KeyRight,

	ebiten.KeyA: core.KeyA,
	ebiten.KeyB: core.KeyB,
	ebiten.KeyC: core.KeyC,
	ebiten.KeyD: core.KeyD,
	ebiten.KeyE: core.KeyE,
	ebiten.KeyF: core.KeyF,
	ebiten.KeyG: core.KeyG,
	ebiten.KeyH: core.KeyH,
	ebiten.KeyI: core.KeyI,
	ebiten.KeyJ: core.KeyJ,
	ebiten.KeyK: core.KeyK,
	ebiten.KeyL: core.KeyL,
	ebiten.KeyM: core.KeyM,
	ebiten.KeyN: core.KeyN,
	ebiten.KeyO: core.KeyO,
	ebiten.KeyP: core.KeyP,
	ebiten.KeyQ: core.KeyQ,
	ebiten.KeyR: core.KeyR,
	ebiten.KeyS: core.KeyS,
	ebiten.KeyT: core.KeyT,
	ebiten.KeyU: core.KeyU,
	ebiten.KeyV: core.KeyV,
	ebiten.KeyW: core.KeyW,
	ebiten.KeyX: core.KeyX,
	ebiten.KeyY: core.KeyY,
	ebiten.KeyZ: core.KeyZ,

	ebiten.KeyDigit0: core.Key0,
	ebiten.KeyDigit1: core.Key1,
	ebiten.KeyDigit2: core.Key2,
	ebiten.KeyDigit3: core.Key3,
	ebiten.KeyDigit4: core.Key4,
	ebiten.KeyDigit5: core.Key5,
	ebiten.KeyDigit6: core.Key6,
	ebiten.KeyDigit7: core.Key7,
	ebiten.KeyDigit8: core.Key8,
	ebiten.KeyDigit9: core.Key9,
}

// translateKey maps an ebiten key, reporting whether it is known.
func translateKey(k ebiten.Key) (core.Key, bool) {
	ck, ok := keyMap[k]
	return ck, ok
}
