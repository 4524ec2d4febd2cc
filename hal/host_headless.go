//go:build !tinygo && !periph

package hal

import (
	"context"
	"fmt"
	"time"
)

// DefaultHz is the simulator tick rate; each tick is one main loop pass.
const DefaultHz = 100

const tickPeriod = time.Second / DefaultHz

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64
	// AutoPress presses the joystick button once per period. Zero disables it.
	AutoPress time.Duration
}

// RunHeadless drives the app on h without opening a window. Each tick moves
// the board clock by one tick period, whatever the wall clock does.
func RunHeadless(ctx context.Context, h *Host, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = DefaultHz
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	step := newApp(h)

	var sig GPIOPin
	if cfg.AutoPress > 0 {
		// Held for a single tick: one falling edge per period.
		sig = newSignalPinWithClock("AUTOPRESS", cfg.AutoPress, d, h.Now)
		if err := sig.Configure(GPIOModeInput, GPIOPullNone); err != nil {
			return err
		}
	}
	var held bool

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.Advance(d)
			if sig != nil {
				level, err := sig.Read()
				if err != nil {
					return err
				}
				switch {
				case level && !held:
					h.Press(PinButtonJoy, true)
				case !level && held:
					h.Release(PinButtonJoy)
				}
				held = level
			}
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
