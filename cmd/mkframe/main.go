//go:build !tinygo && !periph

// mkframe renders one display frame on the simulated board and writes it as
// a PNG or as ASCII art.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"bitdog/app"
	"bitdog/control"
	"bitdog/hal"
)

// pressGap keeps consecutive presses outside the debounce window.
const pressGap = control.DebounceWindow + app.TickPeriod

type options struct {
	x, y    uint
	presses []int
	ticks   int
	scale   int
}

func main() {
	var (
		opts    options
		press   string
		outPath string
	)
	flag.UintVar(&opts.x, "x", 2048, "Raw X axis reading (0..4095).")
	flag.UintVar(&opts.y, "y", 2048, "Raw Y axis reading (0..4095).")
	flag.StringVar(&press, "press", "", "Comma separated button presses to apply first: a, joy.")
	flag.IntVar(&opts.ticks, "ticks", 1, "Main loop steps to run after the presses.")
	flag.IntVar(&opts.scale, "scale", 1, "PNG pixel scale.")
	flag.StringVar(&outPath, "o", "-", "Output path; .png writes an image, anything else ASCII. - is stdout.")
	flag.Parse()

	presses, err := parsePresses(press)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	opts.presses = presses

	if err := run(opts, outPath); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func parsePresses(s string) ([]int, error) {
	var pins []int
	for _, f := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "":
		case "a":
			pins = append(pins, hal.PinButtonA)
		case "joy", "j", "joystick":
			pins = append(pins, hal.PinButtonJoy)
		default:
			return nil, fmt.Errorf("unknown button %q", f)
		}
	}
	return pins, nil
}

func run(opts options, outPath string) error {
	if opts.x > hal.ADCMax || opts.y > hal.ADCMax {
		return fmt.Errorf("stick reading %d,%d out of range", opts.x, opts.y)
	}
	h, err := render(opts)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %q: %w", outPath, err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if strings.EqualFold(filepath.Ext(outPath), ".png") {
		if err := png.Encode(w, upscale(h.Frame(), opts.scale)); err != nil {
			return fmt.Errorf("encode %q: %w", outPath, err)
		}
		return nil
	}
	return h.WriteASCII(w)
}

// render boots the firmware on a simulated board, applies the presses and
// steps it. The board holds the last flushed frame.
func render(opts options) (*hal.Host, error) {
	h := hal.NewHost(io.Discard)
	h.SetStick(uint16(opts.x), uint16(opts.y))
	l := app.NewLoop(h, app.Config{})

	tick := func() error {
		h.Advance(app.TickPeriod)
		if err := l.Step(); err != nil {
			return fmt.Errorf("step: %w", err)
		}
		return nil
	}

	for _, pin := range opts.presses {
		h.Advance(pressGap)
		h.Press(pin, false)
		h.Release(pin)
		if err := tick(); err != nil {
			return nil, err
		}
	}
	for i := 0; i < opts.ticks; i++ {
		if err := tick(); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func upscale(src *image.Gray, n int) *image.Gray {
	if n <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*n, b.Dy()*n))
	for y := 0; y < dst.Rect.Dy(); y++ {
		for x := 0; x < dst.Rect.Dx(); x++ {
			dst.Pix[y*dst.Stride+x] = src.Pix[(y/n)*src.Stride+x/n]
		}
	}
	return dst
}
