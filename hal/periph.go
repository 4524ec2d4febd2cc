//go:build !tinygo && periph

package hal

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"sync"

	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"
)

// stickRef is the supply the joystick potentiometers sit across.
const stickRef = 3300 * physic.MilliVolt

type periphHAL struct {
	logger *periphLogger
	gpio   *periphGPIO
	pwm    *periphPWM
	adc    ADC
	oled   Display
	t      *wallClock
}

// New returns a HAL for a Linux single board computer: the panel and an
// ADS1115 for the stick share the default I2C bus, buttons and LEDs sit on
// the header GPIOs with the same numbers as on the BitDogLab.
//
// Peripherals that fail to come up are replaced by in-memory stand-ins so
// the firmware keeps running; every failure is logged.
func New() HAL {
	logger := &periphLogger{}
	h := &periphHAL{
		logger: logger,
		gpio:   &periphGPIO{},
		pwm:    newPeriphPWM(),
		t:      newWallClock(),
	}
	h.oled = newMonoFramebuffer(DisplayWidth, DisplayHeight)
	h.adc = newVirtualADC()

	if _, err := host.Init(); err != nil {
		logger.WriteLineString("hal: host init: " + err.Error())
		return h
	}
	bus, err := i2creg.Open("")
	if err != nil {
		logger.WriteLineString("hal: i2c: " + err.Error())
		return h
	}

	if oled, err := newPeriphOLED(bus); err != nil {
		logger.WriteLineString("hal: oled: " + err.Error())
	} else {
		h.oled = oled
	}
	if adc, err := newPeriphADC(bus); err != nil {
		logger.WriteLineString("hal: adc: " + err.Error())
	} else {
		h.adc = adc
	}
	return h
}

func (h *periphHAL) Logger() Logger   { return h.logger }
func (h *periphHAL) GPIO() GPIO       { return h.gpio }
func (h *periphHAL) PWM() PWM         { return h.pwm }
func (h *periphHAL) ADC() ADC         { return h.adc }
func (h *periphHAL) Display() Display { return h.oled }
func (h *periphHAL) Time() Time       { return h.t }

type periphLogger struct {
	mu sync.Mutex
}

func (l *periphLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(os.Stdout, s)
}

func (l *periphLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	os.Stdout.Write(b)
	os.Stdout.Write([]byte{'\n'})
}

// periphOLED keeps the frame in an image1bit buffer, which has the panel's
// page layout, and only hands the changed region to the driver.
type periphOLED struct {
	dev   *ssd1306.Dev
	img   *image1bit.VerticalLSB
	dirty image.Rectangle
}

func newPeriphOLED(bus i2c.Bus) (*periphOLED, error) {
	opts := ssd1306.DefaultOpts
	opts.W, opts.H = DisplayWidth, DisplayHeight
	dev, err := ssd1306.NewI2C(bus, &opts)
	if err != nil {
		return nil, err
	}
	return &periphOLED{
		dev: dev,
		img: image1bit.NewVerticalLSB(image.Rect(0, 0, DisplayWidth, DisplayHeight)),
	}, nil
}

func (d *periphOLED) Size() (x, y int16) { return DisplayWidth, DisplayHeight }

func (d *periphOLED) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if !image.Pt(ix, iy).In(d.img.Rect) {
		return
	}
	bit := image1bit.Bit(c.R != 0 || c.G != 0 || c.B != 0)
	if d.img.BitAt(ix, iy) == bit {
		return
	}
	d.img.SetBit(ix, iy, bit)
	d.dirty = d.dirty.Union(image.Rect(ix, iy, ix+1, iy+1))
}

func (d *periphOLED) ClearBuffer() {
	for i, b := range d.img.Pix {
		if b != 0 {
			d.dirty = d.img.Rect
		}
		d.img.Pix[i] = 0
	}
}

func (d *periphOLED) Display() error {
	if d.dirty.Empty() {
		return nil
	}
	r := d.dirty
	d.dirty = image.Rectangle{}
	return d.dev.Draw(r, d.img, r.Min)
}

// periphADC reads the stick through an ADS1115; Select picks the input.
type periphADC struct {
	pins [2]ads1x15.PinADC
	sel  int
}

func newPeriphADC(bus i2c.Bus) (*periphADC, error) {
	dev, err := ads1x15.NewADS1115(bus, &ads1x15.DefaultOpts)
	if err != nil {
		return nil, err
	}
	a := &periphADC{}
	for ch, in := range []ads1x15.Channel{ads1x15.Channel0, ads1x15.Channel1} {
		pin, err := dev.PinForChannel(in, 4*physic.Volt, 860*physic.Hertz, ads1x15.BestQuality)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", ch, err)
		}
		a.pins[ch] = pin
	}
	return a, nil
}

func (a *periphADC) Select(ch int) {
	if ch < 0 || ch >= len(a.pins) {
		return
	}
	a.sel = ch
}

// Read rescales the measured voltage to the 12-bit range of the board ADC.
// A failed conversion reads as the rest position.
func (a *periphADC) Read() uint16 {
	s, err := a.pins[a.sel].Read()
	if err != nil {
		return adcRest
	}
	return voltsToRaw(s)
}

func voltsToRaw(s analog.Sample) uint16 {
	if s.V <= 0 {
		return 0
	}
	v := int64(s.V) * ADCMax / int64(stickRef)
	if v > ADCMax {
		v = ADCMax
	}
	return uint16(v)
}

type periphGPIO struct{}

func (periphGPIO) PinCount() int { return PinCount }

func (periphGPIO) Pin(id int) GPIOPin {
	p := gpioreg.ByName(fmt.Sprintf("GPIO%d", id))
	if p == nil {
		return nil
	}
	return &periphPin{pin: p}
}

// periphPin adapts a header pin. Interrupts are emulated with a goroutine
// blocked in WaitForEdge.
type periphPin struct {
	pin  gpio.PinIO
	pull gpio.Pull
	edge gpio.Edge
}

func (p *periphPin) Name() string { return p.pin.Name() }

func (p *periphPin) Configure(mode GPIOMode, pull GPIOPull) error {
	switch pull {
	case GPIOPullUp:
		p.pull = gpio.PullUp
	default:
		p.pull = gpio.Float
	}
	switch mode {
	case GPIOModeInput:
		return p.pin.In(p.pull, gpio.NoEdge)
	case GPIOModeOutput:
		return p.pin.Out(gpio.Low)
	}
	return fmt.Errorf("gpio: pin %s: invalid mode", p.pin.Name())
}

func (p *periphPin) Read() (bool, error) { return bool(p.pin.Read()), nil }

func (p *periphPin) Write(level bool) error { return p.pin.Out(gpio.Level(level)) }

func (p *periphPin) SetInterrupt(edge GPIOEdge, fn func()) error {
	switch edge {
	case GPIOEdgeFalling:
		p.edge = gpio.FallingEdge
	case GPIOEdgeRising:
		p.edge = gpio.RisingEdge
	default:
		p.edge = gpio.BothEdges
	}
	if err := p.pin.In(p.pull, p.edge); err != nil {
		return err
	}
	go func() {
		for {
			if p.pin.WaitForEdge(-1) {
				fn()
			}
		}
	}()
	return nil
}

// periphPWM drives LEDs with the pins' PWM capability (hardware on GPIO12
// and GPIO13 of a Raspberry Pi). A closed gate holds the pin low.
type periphPWM struct {
	mu    sync.Mutex
	pins  map[int]gpio.PinIO
	level map[int]uint16
	gates [8]bool
}

func newPeriphPWM() *periphPWM {
	return &periphPWM{pins: make(map[int]gpio.PinIO), level: make(map[int]uint16)}
}

func (p *periphPWM) Configure(pin int) (PWMChannel, error) {
	out := gpioreg.ByName(fmt.Sprintf("GPIO%d", pin))
	if out == nil {
		return 0, fmt.Errorf("pwm: pin %d: not found", pin)
	}
	if err := out.Out(gpio.Low); err != nil {
		return 0, fmt.Errorf("pwm: pin %d: %w", pin, err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pins[pin] = out
	p.level[pin] = 0
	return SliceForPin(pin), nil
}

func (p *periphPWM) SetLevel(pin int, level uint16) {
	if level > PWMWrap {
		level = PWMWrap
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	out, ok := p.pins[pin]
	if !ok || p.level[pin] == level {
		return
	}
	p.level[pin] = level
	if p.gates[SliceForPin(pin)] {
		p.apply(out, level)
	}
}

func (p *periphPWM) Enable(ch PWMChannel, on bool) {
	if int(ch) >= len(p.gates) {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gates[ch] = on
	for pin, out := range p.pins {
		if SliceForPin(pin) != ch {
			continue
		}
		if on {
			p.apply(out, p.level[pin])
		} else {
			out.Out(gpio.Low)
		}
	}
}

func (p *periphPWM) apply(out gpio.PinIO, level uint16) {
	duty := gpio.Duty(int64(level) * int64(gpio.DutyMax) / PWMWrap)
	out.PWM(duty, PWMFrequency*physic.Hertz)
}
