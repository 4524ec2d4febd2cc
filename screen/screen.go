// Package screen draws the marker, the border decorations and the boot splash
// onto a 128x64 monochrome display.
package screen

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Panel geometry in pixels.
const (
	Width  = 128
	Height = 64
)

var (
	On  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Off = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

func pixel(lit bool) color.RGBA {
	if lit {
		return On
	}
	return Off
}

// Clear blanks the whole panel buffer. It does not flush.
func Clear(d drivers.Displayer) {
	w, h := d.Size()
	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			d.SetPixel(x, y, Off)
		}
	}
}
