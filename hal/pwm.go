package hal

import (
	"fmt"
	"sync"
)

// virtualPWM models RP2040 slices: pins on the same slice share one gate.
type virtualPWM struct {
	mu     sync.Mutex
	levels map[int]uint16
	gates  [8]bool
}

func newVirtualPWM() *virtualPWM {
	return &virtualPWM{levels: make(map[int]uint16)}
}

func (p *virtualPWM) Configure(pin int) (PWMChannel, error) {
	if pin < 0 || pin >= PinCount {
		return 0, fmt.Errorf("pwm: pin %d: out of range", pin)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.levels[pin]; !ok {
		p.levels[pin] = 0
	}
	return SliceForPin(pin), nil
}

func (p *virtualPWM) SetLevel(pin int, level uint16) {
	if level > PWMWrap {
		level = PWMWrap
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.levels[pin]; !ok {
		return
	}
	p.levels[pin] = level
}

func (p *virtualPWM) Enable(ch PWMChannel, on bool) {
	if int(ch) >= len(p.gates) {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gates[ch] = on
}

// output returns the configured level of pin and whether its gate is open.
func (p *virtualPWM) output(pin int) (level uint16, enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	level, ok := p.levels[pin]
	if !ok {
		return 0, false
	}
	return level, p.gates[SliceForPin(pin)]
}

// brightness is the duty cycle pin emits, 0..1.
func (p *virtualPWM) brightness(pin int) float64 {
	level, on := p.output(pin)
	if !on {
		return 0
	}
	return float64(level) / PWMWrap
}
