package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"transform-demo/internal/input"
)

var keyCodes = map[input.Key]int32{
	input.KeyLeft:     rl.KeyLeft,
	input.KeyRight:    rl.KeyRight,
	input.KeyUp:       rl.KeyUp,
	input.KeyDown:     rl.KeyDown,
	input.KeyPageUp:   rl.KeyPageUp,
	input.KeyPageDown: rl.KeyPageDown,
	input.KeyM:        rl.KeyM,
	input.KeyR:        rl.KeyR,
	input.KeyX:        rl.KeyX,
	input.KeyY:        rl.KeyY,
	input.KeyZ:        rl.KeyZ,
	input.KeyEscape:   rl.KeyEscape,
}

// PressedKeys returns the viewer keys pressed (or auto-repeated while held) this frame,
// in input.Keys order.
func PressedKeys() []input.Key {
	var out []input.Key
	for _, k := range input.Keys() {
		code, ok := keyCodes[k]
		if !ok {
			continue
		}
		if rl.IsKeyPressed(code) || rl.IsKeyPressedRepeat(code) {
			out = append(out, k)
		}
	}
	return out
}
