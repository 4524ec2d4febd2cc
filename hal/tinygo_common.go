//go:build tinygo && baremetal

package hal

import (
	"errors"
	"machine"
	"strconv"
	"time"
)

type tinyGoTime struct {
	t0 time.Time
}

func newTinyGoTime() *tinyGoTime { return &tinyGoTime{t0: time.Now()} }

func (t *tinyGoTime) Micros() uint64 {
	return uint64(time.Since(t.t0) / time.Microsecond)
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type machineGPIO struct{}

func (machineGPIO) PinCount() int { return PinCount }

func (machineGPIO) Pin(id int) GPIOPin {
	if id < 0 || id >= PinCount {
		return nil
	}
	return machinePin{pin: machine.Pin(id)}
}

type machinePin struct {
	pin machine.Pin
}

func (p machinePin) Name() string {
	return "GP" + strconv.Itoa(int(p.pin))
}

func (p machinePin) Configure(mode GPIOMode, pull GPIOPull) error {
	var m machine.PinMode
	switch {
	case mode == GPIOModeOutput:
		m = machine.PinOutput
	case mode == GPIOModeInput && pull == GPIOPullUp:
		m = machine.PinInputPullup
	case mode == GPIOModeInput:
		m = machine.PinInput
	default:
		return errors.New("gpio: invalid mode")
	}
	p.pin.Configure(machine.PinConfig{Mode: m})
	return nil
}

func (p machinePin) Read() (bool, error) { return p.pin.Get(), nil }

func (p machinePin) Write(level bool) error {
	p.pin.Set(level)
	return nil
}

func (p machinePin) SetInterrupt(edge GPIOEdge, fn func()) error {
	var change machine.PinChange
	if edge&GPIOEdgeFalling != 0 {
		change |= machine.PinFalling
	}
	if edge&GPIOEdgeRising != 0 {
		change |= machine.PinRising
	}
	if fn == nil {
		return p.pin.SetInterrupt(0, nil)
	}
	return p.pin.SetInterrupt(change, func(machine.Pin) { fn() })
}

// machineADC multiplexes the RP2040 converter across GP26..GP29.
type machineADC struct {
	chans [4]machine.ADC
	sel   int
}

func newMachineADC() *machineADC {
	machine.InitADC()
	a := &machineADC{}
	for i, pin := range []machine.Pin{machine.ADC0, machine.ADC1, machine.ADC2, machine.ADC3} {
		a.chans[i] = machine.ADC{Pin: pin}
		a.chans[i].Configure(machine.ADCConfig{})
	}
	return a
}

func (a *machineADC) Select(ch int) {
	if ch < 0 || ch >= len(a.chans) {
		return
	}
	a.sel = ch
}

// Read returns a 12-bit sample; machine.ADC scales every reading to 16 bits.
func (a *machineADC) Read() uint16 {
	return a.chans[a.sel].Get() >> 4
}
