// Package control holds the button-driven mode state of the board: LED
// enables and the border cycle.
//
// Edges arrive in interrupt context through Input.Trigger, which only
// debounces and queues. The main loop drains the queue with Input.Next and
// applies each press to its State, so the State is never touched
// concurrently.
package control

import (
	"sync/atomic"

	"bitdog/irq"
	"bitdog/screen"
)

// Button identifies a push-button input.
type Button uint8

const (
	ButtonA Button = iota
	ButtonJoystick
)

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonJoystick:
		return "joystick"
	default:
		return "unknown"
	}
}

// Clock reports monotonic microseconds.
type Clock interface {
	Micros() uint64
}

// Input is the interrupt-side half: debounce filter plus event queue.
type Input struct {
	clock Clock
	deb   *Debouncer
	q     irq.Queue

	dropped atomic.Uint32 // accepted presses lost to a full queue
}

// NewInput returns an Input debouncing against clock with DebounceWindow.
func NewInput(clock Clock) *Input {
	return &Input{clock: clock, deb: NewDebouncer(DebounceWindow)}
}

// Trigger handles a falling edge on button b. It is safe to call from an
// interrupt handler.
func (in *Input) Trigger(b Button) {
	now := in.clock.Micros()
	if !in.deb.Accept(now) {
		return
	}
	if !in.q.TryPush(irq.Event{Line: uint8(b), At: now}) {
		in.dropped.Add(1)
	}
}

// Press is one accepted button edge.
type Press struct {
	Button Button
	At     uint64 // clock reading when the edge was accepted
}

// Next returns the next accepted press, if any.
func (in *Input) Next() (Press, bool) {
	ev, ok := in.q.TryPop()
	if !ok {
		return Press{}, false
	}
	return Press{Button: Button(ev.Line), At: ev.At}, true
}

// Dropped reports how many accepted presses found the queue full.
func (in *Input) Dropped() uint32 {
	return in.dropped.Load()
}

// State is the main-loop half.
type State struct {
	Border        screen.Border
	BorderVisible bool
	// BorderPending is set by a joystick press and cleared once the border
	// has been rendered and the cycle advanced.
	BorderPending bool

	Red, Green, Blue bool
}

// NewState returns the power-on state: red and blue PWM running, green off,
// solid border queued as the first style to show.
func NewState() State {
	return State{
		Border: screen.BorderSolid,
		Red:    true,
		Blue:   true,
	}
}

// Press applies one accepted press.
func (s *State) Press(b Button) {
	switch b {
	case ButtonA:
		// Red and blue share one PWM gate; they always flip together.
		on := !s.Red
		s.Red = on
		s.Blue = on
	case ButtonJoystick:
		s.Green = !s.Green
		s.BorderVisible = !s.BorderVisible
		s.BorderPending = true
	}
}

// AdvanceBorder moves the cycle one step and clears the pending request. It
// is called after the current style has been rendered, so the screen shows the
// style that was stored before the press.
func (s *State) AdvanceBorder() {
	s.Border = s.Border.Next()
	s.BorderPending = false
}
