package hal

import (
	"image"
	"sync/atomic"
	"time"
)

// virtualBoard is a BitDogLab without hardware: GPIO, PWM, ADC and the OLED
// are in-memory models that a simulator drives from the outside.
type virtualBoard struct {
	logger Logger
	gpio   *virtualGPIO
	pwm    *virtualPWM
	adc    *virtualADC
	fb     *monoFramebuffer
	clock  Time
}

func newVirtualBoard(logger Logger, clock Time) *virtualBoard {
	return &virtualBoard{
		logger: logger,
		gpio:   newVirtualGPIO(PinCount),
		pwm:    newVirtualPWM(),
		adc:    newVirtualADC(),
		fb:     newMonoFramebuffer(DisplayWidth, DisplayHeight),
		clock:  clock,
	}
}

func (b *virtualBoard) Logger() Logger   { return b.logger }
func (b *virtualBoard) GPIO() GPIO       { return b.gpio }
func (b *virtualBoard) PWM() PWM         { return b.pwm }
func (b *virtualBoard) ADC() ADC         { return b.adc }
func (b *virtualBoard) Display() Display { return b.fb }
func (b *virtualBoard) Time() Time       { return b.clock }

// setStick positions the joystick potentiometers.
func (b *virtualBoard) setStick(x, y uint16) {
	b.adc.set(ADCStickX, x)
	b.adc.set(ADCStickY, y)
}

// press pulls a button input low. With chatter the contact bounces once
// before settling, as a real tactile switch does.
func (b *virtualBoard) press(pin int, chatter bool) {
	p := b.gpio.pin(pin)
	if p == nil {
		return
	}
	p.drive(false)
	if chatter {
		p.drive(true)
		p.drive(false)
	}
}

func (b *virtualBoard) release(pin int) {
	if p := b.gpio.pin(pin); p != nil {
		p.drive(true)
	}
}

// LEDLevels is the light output of the RGB LED, each 0..1.
type LEDLevels struct {
	Red, Green, Blue float64
}

func (b *virtualBoard) leds() LEDLevels {
	var green float64
	if p := b.gpio.pin(PinLEDGreen); p != nil {
		if p.driven() {
			green = 1
		}
	}
	return LEDLevels{
		Red:   b.pwm.brightness(PinLEDRed),
		Green: green,
		Blue:  b.pwm.brightness(PinLEDBlue),
	}
}

func (b *virtualBoard) frame() *image.Gray { return b.fb.image() }

// virtualClock is a microsecond counter that only moves when stepped.
type virtualClock struct {
	us atomic.Uint64
}

func (c *virtualClock) Micros() uint64 { return c.us.Load() }

func (c *virtualClock) step(d time.Duration) {
	if d <= 0 {
		return
	}
	c.us.Add(uint64(d / time.Microsecond))
}

// wallClock reports microseconds since it was created.
type wallClock struct {
	t0 time.Time
}

func newWallClock() *wallClock { return &wallClock{t0: time.Now()} }

func (c *wallClock) Micros() uint64 { return uint64(time.Since(c.t0) / time.Microsecond) }
