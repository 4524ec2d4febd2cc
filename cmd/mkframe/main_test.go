//go:build !tinygo && !periph

package main

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bitdog/hal"
)

func TestParsePresses(t *testing.T) {
	pins, err := parsePresses("a, joy,J")
	if err != nil {
		t.Fatalf("parsePresses: %v", err)
	}
	want := []int{hal.PinButtonA, hal.PinButtonJoy, hal.PinButtonJoy}
	if len(pins) != len(want) {
		t.Fatalf("pins = %v, want %v", pins, want)
	}
	for i := range want {
		if pins[i] != want[i] {
			t.Fatalf("pins = %v, want %v", pins, want)
		}
	}
	if _, err := parsePresses("b"); err == nil {
		t.Fatal("unknown button accepted")
	}
	if pins, _ := parsePresses(""); len(pins) != 0 {
		t.Fatalf("empty list parsed to %v", pins)
	}
}

func TestRenderJoystickPressDrawsBorder(t *testing.T) {
	h, err := render(options{x: 2048, y: 2048, presses: []int{hal.PinButtonJoy}, ticks: 1})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	f := h.Frame()
	if f.GrayAt(0, 0).Y == 0 || f.GrayAt(127, 63).Y == 0 {
		t.Fatal("solid border missing after one joystick press")
	}
	if f.GrayAt(58, 27).Y == 0 {
		t.Fatal("marker missing at rest position")
	}
}

func TestRunWritesPNGAndASCII(t *testing.T) {
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "frame.png")
	if err := run(options{x: 2048, y: 2048, ticks: 1, scale: 2}, pngPath); err != nil {
		t.Fatalf("run png: %v", err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 256 || b.Dy() != 128 {
		t.Fatalf("png size = %v, want 256x128", b)
	}

	txtPath := filepath.Join(dir, "frame.txt")
	if err := run(options{x: 2048, y: 2048, ticks: 1}, txtPath); err != nil {
		t.Fatalf("run ascii: %v", err)
	}
	txt, err := os.ReadFile(txtPath)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(txt), "\n"), "\n")
	if len(lines) != 64 || !strings.Contains(lines[27], "#########") {
		t.Fatalf("unexpected ascii frame:\n%s", txt)
	}

	if err := run(options{x: 5000, y: 0}, txtPath); err == nil {
		t.Fatal("out of range reading accepted")
	}
}
