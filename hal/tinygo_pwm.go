//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"machine"
)

type pwmDevice interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
	Enable(enable bool)
}

type pwmOutput struct {
	dev pwmDevice
	ch  uint8
}

// machinePWM drives LEDs from the RP2040 PWM slices.
type machinePWM struct {
	pins       map[int]pwmOutput
	configured [8]bool
}

func newMachinePWM() *machinePWM {
	return &machinePWM{pins: make(map[int]pwmOutput)}
}

func pwmForPin(pin machine.Pin) pwmDevice {
	slice, err := machine.PWMPeripheral(pin)
	if err != nil {
		return nil
	}
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	case 7:
		return machine.PWM7
	default:
		return nil
	}
}

func (p *machinePWM) Configure(pin int) (PWMChannel, error) {
	mp := machine.Pin(pin)
	dev := pwmForPin(mp)
	if dev == nil {
		return 0, fmt.Errorf("pwm: pin %d: no slice", pin)
	}
	slice := SliceForPin(pin)
	if !p.configured[slice] {
		if err := dev.Configure(machine.PWMConfig{Period: 1e9 / PWMFrequency}); err != nil {
			return 0, fmt.Errorf("pwm: pin %d: %w", pin, err)
		}
		p.configured[slice] = true
	}
	ch, err := dev.Channel(mp)
	if err != nil {
		return 0, fmt.Errorf("pwm: pin %d: %w", pin, err)
	}
	dev.Set(ch, 0)
	p.pins[pin] = pwmOutput{dev: dev, ch: ch}
	return slice, nil
}

// SetLevel rescales level from the 0..PWMWrap range to the slice's top.
func (p *machinePWM) SetLevel(pin int, level uint16) {
	out, ok := p.pins[pin]
	if !ok {
		return
	}
	if level > PWMWrap {
		level = PWMWrap
	}
	out.dev.Set(out.ch, uint32(level)*out.dev.Top()/PWMWrap)
}

func (p *machinePWM) Enable(ch PWMChannel, on bool) {
	for pin, out := range p.pins {
		if SliceForPin(pin) == ch {
			out.dev.Enable(on)
			return
		}
	}
}
