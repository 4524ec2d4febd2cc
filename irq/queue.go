// Package irq carries events from interrupt context to the main loop.
package irq

import "sync/atomic"

// QueueSlots is the queue capacity. Accepted button events are at least one
// debounce window apart and the main loop drains every tick, so two slots are
// never both occupied in practice.
const QueueSlots = 2

// Event is one accepted edge on an interrupt line.
type Event struct {
	Line uint8
	At   uint64 // microseconds since boot
}

type slot struct {
	ready atomic.Bool
	ev    Event
}

// Queue is a fixed-size multi-producer, single-consumer queue.
// Push never blocks and never allocates, so it is safe to call from an
// interrupt handler.
type Queue struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	slots [QueueSlots]slot
}

// TryPush enqueues ev, returning false if the queue is full.
func (q *Queue) TryPush(ev Event) bool {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if head-tail >= QueueSlots {
			return false
		}
		if q.head.CompareAndSwap(head, head+1) {
			s := &q.slots[head%QueueSlots]
			s.ev = ev
			s.ready.Store(true)
			return true
		}
	}
}

// TryPop dequeues one event, returning false if nothing is ready.
func (q *Queue) TryPop() (Event, bool) {
	tail := q.tail.Load()
	if tail == q.head.Load() {
		return Event{}, false
	}
	s := &q.slots[tail%QueueSlots]
	if !s.ready.Load() {
		// Slot reserved but the producer has not finished writing it.
		return Event{}, false
	}
	ev := s.ev
	s.ready.Store(false)
	q.tail.Store(tail + 1)
	return ev, true
}
