//go:build !tinygo && !periph && cgo

package hal

import (
	"image/color"

	"bitdog/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	windowScale = 4
	ledStripH   = 24
)

var (
	oledColor = color.RGBA{R: 0x9F, G: 0xE8, B: 0xFF, A: 0xFF}
	ledOff    = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xFF}
)

// RunWindow opens a desktop window showing the OLED and the RGB LED and
// forwards the keyboard to the stick and buttons. It blocks until the window
// closes.
func RunWindow(h *Host, newApp func(HAL) func() error) error {
	step := newApp(h)

	g := &hostGame{h: h, kbd: newHostKeyboard(h), step: step}
	ebiten.SetWindowTitle("BitDogLab (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(DisplayWidth*windowScale, (DisplayHeight+ledStripH)*windowScale)
	ebiten.SetTPS(DefaultHz)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h    *Host
	kbd  *hostKeyboard
	step func() error

	oled *ebiten.Image
	rgba []byte
}

func (g *hostGame) Update() error {
	g.h.Advance(tickPeriod)
	g.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.oled == nil {
		g.oled = ebiten.NewImage(DisplayWidth, DisplayHeight)
		g.rgba = make([]byte, DisplayWidth*DisplayHeight*4)
	}

	frame := g.h.Frame()
	for i, v := range frame.Pix {
		j := i * 4
		if v != 0 {
			g.rgba[j+0] = oledColor.R
			g.rgba[j+1] = oledColor.G
			g.rgba[j+2] = oledColor.B
		} else {
			g.rgba[j+0], g.rgba[j+1], g.rgba[j+2] = 0, 0, 0
		}
		g.rgba[j+3] = 0xFF
	}
	g.oled.WritePixels(g.rgba)
	screen.DrawImage(g.oled, nil)

	leds := g.h.LEDs()
	cy := float32(DisplayHeight + ledStripH/2)
	for i, c := range []color.RGBA{
		mix(leds.Red, color.RGBA{R: 0xFF, A: 0xFF}),
		mix(leds.Green, color.RGBA{G: 0xFF, A: 0xFF}),
		mix(leds.Blue, color.RGBA{B: 0xFF, A: 0xFF}),
	} {
		cx := float32(DisplayWidth/2 + (i-1)*24)
		vector.DrawFilledCircle(screen, cx, cy, 8, c, true)
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return DisplayWidth, DisplayHeight + ledStripH
}

// mix blends full from the off color by level.
func mix(level float64, full color.RGBA) color.RGBA {
	if level <= 0 {
		return ledOff
	}
	if level > 1 {
		level = 1
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*level)
	}
	return color.RGBA{
		R: lerp(ledOff.R, full.R),
		G: lerp(ledOff.G, full.G),
		B: lerp(ledOff.B, full.B),
		A: 0xFF,
	}
}
