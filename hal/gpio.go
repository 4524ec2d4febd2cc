package hal

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutput
)

// GPIOPull selects the pull resistor of an input. The board's buttons switch
// to ground, so they only ever need the pull-up.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
)

// GPIOEdge selects which transition fires an interrupt.
type GPIOEdge uint8

const (
	GPIOEdgeFalling GPIOEdge = 1 << iota
	GPIOEdgeRising
)

// GPIO provides access to general-purpose IO pins, indexed by GPIO number.
type GPIO interface {
	PinCount() int
	Pin(id int) GPIOPin
}

// GPIOPin is a single digital IO pin.
type GPIOPin interface {
	Name() string
	Configure(mode GPIOMode, pull GPIOPull) error
	Read() (level bool, err error)
	Write(level bool) error
	// SetInterrupt registers fn to run on the given edges. fn may run in
	// interrupt context and must not block or allocate.
	SetInterrupt(edge GPIOEdge, fn func()) error
}

// virtualGPIO is a bank of simulated pins, one per board GPIO.
type virtualGPIO struct {
	pins []*virtualPin
}

func newVirtualGPIO(n int) *virtualGPIO {
	g := &virtualGPIO{pins: make([]*virtualPin, n)}
	for i := range g.pins {
		g.pins[i] = &virtualPin{name: fmt.Sprintf("GPIO%d", i)}
	}
	return g
}

func (g *virtualGPIO) PinCount() int { return len(g.pins) }

func (g *virtualGPIO) Pin(id int) GPIOPin {
	if p := g.pin(id); p != nil {
		return p
	}
	return nil
}

func (g *virtualGPIO) pin(id int) *virtualPin {
	if id < 0 || id >= len(g.pins) {
		return nil
	}
	return g.pins[id]
}

// virtualPin is an input until configured otherwise. As an input its level
// is set from outside with drive; as an output only Write changes it.
type virtualPin struct {
	mu     sync.Mutex
	name   string
	output bool
	level  bool
	edge   GPIOEdge
	fn     func()
}

func (p *virtualPin) Name() string { return p.name }

func (p *virtualPin) Configure(mode GPIOMode, pull GPIOPull) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch mode {
	case GPIOModeInput:
		p.output = false
		// An open input rests at its pull level.
		p.level = pull == GPIOPullUp
	case GPIOModeOutput:
		if pull != GPIOPullNone {
			return fmt.Errorf("gpio: pin %s: pull on an output", p.name)
		}
		p.output = true
		p.level = false
		p.fn = nil
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", p.name)
	}
	return nil
}

func (p *virtualPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level, nil
}

func (p *virtualPin) Write(level bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.output {
		return fmt.Errorf("gpio: pin %s: not in output mode", p.name)
	}
	p.level = level
	return nil
}

func (p *virtualPin) SetInterrupt(edge GPIOEdge, fn func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.output {
		return fmt.Errorf("gpio: pin %s: interrupt needs input mode", p.name)
	}
	p.edge = edge
	p.fn = fn
	return nil
}

// driven reports whether the pin is an output writing high.
func (p *virtualPin) driven() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.output && p.level
}

// drive sets the level seen on an input pin, as an external circuit would,
// and runs the interrupt handler on a matching transition. The handler runs
// without the pin lock held.
func (p *virtualPin) drive(level bool) {
	p.mu.Lock()
	if p.output {
		p.mu.Unlock()
		return
	}
	prev := p.level
	p.level = level
	var fn func()
	if (prev && !level && p.edge&GPIOEdgeFalling != 0) || (!prev && level && p.edge&GPIOEdgeRising != 0) {
		fn = p.fn
	}
	p.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// signalPin is a read-only input that follows a fixed square wave on an
// injected clock. The headless runner samples it to press a button
// periodically.
type signalPin struct {
	name   string
	now    func() time.Time
	t0     time.Time
	period time.Duration
	high   time.Duration
}

// newSignalPinWithClock returns a pin that reads high for the first high of
// every period, counted from the clock reading at creation. It returns nil
// for a blank name.
func newSignalPinWithClock(name string, period, high time.Duration, now func() time.Time) GPIOPin {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	if now == nil {
		now = time.Now
	}
	if period <= 0 {
		period = time.Second
	}
	high = min(max(high, 0), period)
	return &signalPin{name: name, now: now, t0: now(), period: period, high: high}
}

func (p *signalPin) Name() string { return p.name }

func (p *signalPin) Configure(mode GPIOMode, pull GPIOPull) error {
	if mode != GPIOModeInput || pull != GPIOPullNone {
		return fmt.Errorf("gpio: pin %s: only a plain input", p.name)
	}
	return nil
}

func (p *signalPin) Read() (bool, error) {
	elapsed := p.now().Sub(p.t0)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	return elapsed%p.period < p.high, nil
}

func (p *signalPin) Write(bool) error {
	return fmt.Errorf("gpio: pin %s: output unsupported", p.name)
}

func (p *signalPin) SetInterrupt(GPIOEdge, func()) error {
	return fmt.Errorf("gpio: pin %s: interrupt unsupported", p.name)
}
