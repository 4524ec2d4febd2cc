//go:build !tinygo && !periph && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// stickSlew is how far an axis moves per tick while an arrow is held.
const stickSlew = 128

// hostKeyboard maps the keyboard onto the board: arrows deflect the stick,
// A is button A, J or space is the stick button.
type hostKeyboard struct {
	h    *Host
	x, y int
}

func newHostKeyboard(h *Host) *hostKeyboard {
	return &hostKeyboard{h: h, x: adcRest, y: adcRest}
}

func (k *hostKeyboard) poll() {
	k.x = slew(k.x, axis(ebiten.KeyArrowLeft, ebiten.KeyArrowRight))
	// Pushing the stick up raises the Y reading.
	k.y = slew(k.y, axis(ebiten.KeyArrowDown, ebiten.KeyArrowUp))
	k.h.SetStick(uint16(k.x), uint16(k.y))

	k.button(PinButtonA, ebiten.KeyA)
	k.button(PinButtonJoy, ebiten.KeyJ, ebiten.KeySpace)
}

func (k *hostKeyboard) button(pin int, keys ...ebiten.Key) {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			k.h.Press(pin, true)
			return
		}
		if inpututil.IsKeyJustReleased(key) {
			k.h.Release(pin)
			return
		}
	}
}

// axis returns the raw reading an axis heads for: an end stop while one of
// the keys is held, the rest position otherwise.
func axis(lo, hi ebiten.Key) int {
	switch {
	case ebiten.IsKeyPressed(lo) && !ebiten.IsKeyPressed(hi):
		return 0
	case ebiten.IsKeyPressed(hi) && !ebiten.IsKeyPressed(lo):
		return ADCMax
	default:
		return adcRest
	}
}

func slew(cur, target int) int {
	switch {
	case target == adcRest:
		return adcRest
	case cur < target:
		return min(cur+stickSlew, target)
	case cur > target:
		return max(cur-stickSlew, target)
	}
	return cur
}
