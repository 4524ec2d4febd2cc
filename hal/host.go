//go:build !tinygo && !periph

package hal

import (
	"fmt"
	"image"
	"io"
	"strings"
	"sync"
	"time"
)

// Host is the desktop simulator board. Time only moves when Advance is
// called, so a run is reproducible tick for tick.
type Host struct {
	*virtualBoard
	clock *virtualClock
}

// NewHost returns a simulator that logs to w.
func NewHost(w io.Writer) *Host {
	if w == nil {
		w = io.Discard
	}
	clock := &virtualClock{}
	return &Host{
		virtualBoard: newVirtualBoard(&hostLogger{w: w}, clock),
		clock:        clock,
	}
}

// SetStick sets both raw joystick axes.
func (h *Host) SetStick(x, y uint16) { h.setStick(x, y) }

// Press pushes the button wired to pin. chatter adds one contact bounce.
func (h *Host) Press(pin int, chatter bool) { h.press(pin, chatter) }

// Release lets the button wired to pin go back to its pull-up level.
func (h *Host) Release(pin int) { h.release(pin) }

// Advance moves the board clock forward.
func (h *Host) Advance(d time.Duration) { h.clock.step(d) }

// Now returns the board clock as a wall time anchored at the zero time.
func (h *Host) Now() time.Time {
	return time.Time{}.Add(time.Duration(h.clock.Micros()) * time.Microsecond)
}

// LEDs returns the current RGB LED output.
func (h *Host) LEDs() LEDLevels { return h.leds() }

// Frame returns the last flushed display frame.
func (h *Host) Frame() *image.Gray { return h.frame() }

// WriteASCII renders the last flushed frame as text, '#' for lit pixels.
func (h *Host) WriteASCII(w io.Writer) error {
	return writeASCII(w, h.frame())
}

func writeASCII(w io.Writer, img *image.Gray) error {
	b := img.Bounds()
	var sb strings.Builder
	sb.Grow((b.Dx() + 1) * b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.GrayAt(x, y).Y != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
