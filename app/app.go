// Package app is the firmware main loop: it samples the stick, moves the
// marker, shapes the LED levels and applies debounced button presses.
package app

import (
	"fmt"
	"time"

	"bitdog/control"
	"bitdog/hal"
	"bitdog/internal/buildinfo"
	"bitdog/joystick"
	"bitdog/screen"
)

// Config holds the runtime knobs of the firmware.
type Config struct {
	// Splash is how long the boot banner stays up. Zero skips it.
	Splash time.Duration
	// Heartbeat is the period of the alive log line. Zero disables it.
	Heartbeat time.Duration
	// Verbose adds the stick reading and LED levels to the heartbeat.
	Verbose bool
}

// Loop owns all firmware state. Only Step touches it; interrupt handlers
// reach it through the control.Input queue.
type Loop struct {
	cfg  Config
	log  hal.Logger
	disp hal.Display
	clk  hal.Time

	sampler *joystick.Sampler
	in      *control.Input
	state   control.State

	pwm   hal.PWM
	gates []hal.PWMChannel
	green hal.GPIOPin

	prev   joystick.Position
	drawn  bool
	splash int
	beat   uint64
	ticks  uint64

	red, blue uint16
	raw       joystick.RawSample
}

// New initializes the board with DefaultConfig and returns the step
// function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig initializes the board with cfg and returns the step function.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	return NewLoop(h, cfg).Step
}

// Run starts the firmware and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

// RunWithConfig runs the loop with cfg every TickPeriod until Step fails.
func RunWithConfig(h hal.HAL, cfg Config) {
	l := NewLoop(h, cfg)
	for {
		if err := l.Step(); err != nil {
			l.logf("halt: %v", err)
			select {}
		}
		time.Sleep(TickPeriod)
	}
}

// NewLoop brings up every peripheral. A peripheral that fails is logged and
// left out; the loop runs with whatever came up.
func NewLoop(h hal.HAL, cfg Config) *Loop {
	l := &Loop{
		cfg:   cfg,
		log:   h.Logger(),
		disp:  h.Display(),
		clk:   h.Time(),
		pwm:   h.PWM(),
		state: control.NewState(),
	}
	l.logf("boot: %s %s", Title, buildinfo.Describe())

	l.sampler = joystick.NewSampler(h.ADC())
	l.bootStep("adc", nil)

	l.initLEDs(h.GPIO())
	l.in = control.NewInput(l.clk)
	l.initButton(h.GPIO(), hal.PinButtonA, control.ButtonA)
	l.initButton(h.GPIO(), hal.PinButtonJoy, control.ButtonJoystick)

	if l.disp != nil {
		screen.Clear(l.disp)
		if cfg.Splash > 0 {
			screen.Splash(l.disp, Title, buildinfo.Short())
			l.splash = int(cfg.Splash / TickPeriod)
		}
		l.bootStep("display", l.disp.Display())
	}
	l.beat = l.now()
	return l
}

func (l *Loop) initLEDs(gpio hal.GPIO) {
	for _, pin := range []int{hal.PinLEDRed, hal.PinLEDBlue} {
		ch, err := l.pwm.Configure(pin)
		l.bootStep(fmt.Sprintf("pwm GP%d", pin), err)
		if err != nil {
			continue
		}
		if !l.hasGate(ch) {
			l.gates = append(l.gates, ch)
		}
	}
	l.setGates(l.state.Red)

	if p := gpio.Pin(hal.PinLEDGreen); p != nil {
		err := p.Configure(hal.GPIOModeOutput, hal.GPIOPullNone)
		if err == nil {
			err = p.Write(l.state.Green)
		}
		l.bootStep(fmt.Sprintf("gpio GP%d", hal.PinLEDGreen), err)
		if err == nil {
			l.green = p
		}
	}
}

func (l *Loop) initButton(gpio hal.GPIO, pin int, b control.Button) {
	p := gpio.Pin(pin)
	if p == nil {
		l.bootStep(fmt.Sprintf("button %s GP%d", b, pin), hal.ErrNotImplemented)
		return
	}
	err := p.Configure(hal.GPIOModeInput, hal.GPIOPullUp)
	if err == nil {
		in := l.in
		err = p.SetInterrupt(hal.GPIOEdgeFalling, func() { in.Trigger(b) })
	}
	l.bootStep(fmt.Sprintf("button %s GP%d", b, pin), err)
}

func (l *Loop) hasGate(ch hal.PWMChannel) bool {
	for _, g := range l.gates {
		if g == ch {
			return true
		}
	}
	return false
}

func (l *Loop) setGates(on bool) {
	for _, ch := range l.gates {
		l.pwm.Enable(ch, on)
	}
}

// Step runs one main loop iteration.
func (l *Loop) Step() (err error) {
	defer l.recoverPanic(&err)

	l.ticks++
	if l.splash > 0 {
		l.splash--
		if l.splash == 0 {
			screen.Clear(l.disp)
			return l.disp.Display()
		}
		return nil
	}

	raw := l.sampler.Sample()
	pos := joystick.Map(raw, l.state.Border)
	l.raw = raw
	l.red, l.blue = joystick.Shape(raw.X), joystick.Shape(raw.Y)
	l.pwm.SetLevel(hal.PinLEDRed, l.red)
	l.pwm.SetLevel(hal.PinLEDBlue, l.blue)

	if l.disp != nil {
		if l.drawn {
			screen.DrawMarker(l.disp, l.prev.X, l.prev.Y, false)
		}
		screen.DrawMarker(l.disp, pos.X, pos.Y, true)
		l.drawn = true
	}

	for {
		p, ok := l.in.Next()
		if !ok {
			break
		}
		l.press(p)
	}

	l.prev = pos
	l.heartbeat()
	if l.disp == nil {
		return nil
	}
	return l.disp.Display()
}

// press applies p. The logged age is how long the press waited in the queue.
func (l *Loop) press(p control.Press) {
	age := l.now() - p.At
	l.state.Press(p.Button)
	switch p.Button {
	case control.ButtonA:
		l.setGates(l.state.Red)
		l.logf("btn: A age=%dus red=%t blue=%t", age, l.state.Red, l.state.Blue)
	case control.ButtonJoystick:
		if l.green != nil {
			l.green.Write(l.state.Green)
		}
		l.logf("btn: joystick age=%dus green=%t", age, l.state.Green)
	}
	if !l.state.BorderPending {
		return
	}
	if l.disp != nil {
		screen.DrawBorder(l.disp, l.state.Border, l.state.BorderVisible)
	}
	l.logf("border: %s visible=%t", l.state.Border, l.state.BorderVisible)
	l.state.AdvanceBorder()
}

func (l *Loop) heartbeat() {
	if l.cfg.Heartbeat <= 0 {
		return
	}
	now := l.now()
	if now-l.beat < uint64(l.cfg.Heartbeat/time.Microsecond) {
		return
	}
	l.beat = now
	if !l.cfg.Verbose {
		l.logf("heartbeat: tick %d", l.ticks)
		return
	}
	l.logf("heartbeat: tick %d raw=%d,%d pos=%d,%d pwm=%d,%d dropped=%d",
		l.ticks, l.raw.X, l.raw.Y, l.prev.X, l.prev.Y, l.red, l.blue, l.in.Dropped())
}

// State returns the current mode state.
func (l *Loop) State() control.State { return l.state }

// Position returns where the marker was last drawn.
func (l *Loop) Position() joystick.Position { return l.prev }

// Levels returns the red and blue PWM levels set by the last step.
func (l *Loop) Levels() (red, blue uint16) { return l.red, l.blue }

func (l *Loop) now() uint64 {
	if l.clk == nil {
		return 0
	}
	return l.clk.Micros()
}

func (l *Loop) bootStep(what string, err error) {
	if err != nil {
		l.logf("boot: %s: %v", what, err)
		return
	}
	l.logf("boot: %s ok", what)
}

func (l *Loop) logf(format string, args ...any) {
	if l.log == nil {
		return
	}
	l.log.WriteLineString(fmt.Sprintf(format, args...))
}
