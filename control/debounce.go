package control

import (
	"sync/atomic"
	"time"
)

// DebounceWindow is the minimum spacing between two accepted presses.
const DebounceWindow = 200 * time.Millisecond

// Debouncer filters contact chatter. One Debouncer is shared by every button
// it guards, so a press on one button also masks the others for a window.
//
// It is called from interrupt context and holds no locks.
type Debouncer struct {
	window uint64
	// last is the accepted timestamp plus one; zero means nothing has been
	// accepted yet.
	last atomic.Uint64
}

// NewDebouncer returns a Debouncer that has accepted nothing yet.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: uint64(window / time.Microsecond)}
}

// Accept reports whether an edge at now (microseconds) is a new press, and if
// so records it.
func (d *Debouncer) Accept(now uint64) bool {
	for {
		last := d.last.Load()
		if last != 0 && now-(last-1) < d.window {
			return false
		}
		if d.last.CompareAndSwap(last, now+1) {
			return true
		}
	}
}
