package control

import (
	"testing"
	"time"

	"bitdog/screen"
)

type manualClock struct {
	us uint64
}

func (c *manualClock) Micros() uint64 { return c.us }

func (c *manualClock) advance(d time.Duration) { c.us += uint64(d / time.Microsecond) }

func drain(in *Input) []Button {
	var out []Button
	for {
		p, ok := in.Next()
		if !ok {
			return out
		}
		out = append(out, p.Button)
	}
}

func TestDebouncerFirstEdgeAccepted(t *testing.T) {
	d := NewDebouncer(DebounceWindow)
	if !d.Accept(0) {
		t.Fatal("Accept(0) = false, want first edge accepted")
	}
	if d.Accept(0) {
		t.Fatal("Accept(0) again = true, want false")
	}
}

func TestDebounce(t *testing.T) {
	tests := []struct {
		name string
		gap  time.Duration
		want int
	}{
		{"chatter", 1 * time.Millisecond, 1},
		{"fast double press", 50 * time.Millisecond, 1},
		{"just inside window", DebounceWindow - time.Microsecond, 1},
		{"at window", DebounceWindow, 2},
		{"well apart", time.Second, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &manualClock{us: 5_000_000}
			in := NewInput(clock)

			in.Trigger(ButtonJoystick)
			clock.advance(tt.gap)
			in.Trigger(ButtonJoystick)

			if got := len(drain(in)); got != tt.want {
				t.Fatalf("accepted = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDebounceSharedAcrossButtons(t *testing.T) {
	clock := &manualClock{}
	in := NewInput(clock)

	in.Trigger(ButtonA)
	clock.advance(10 * time.Millisecond)
	in.Trigger(ButtonJoystick)

	got := drain(in)
	if len(got) != 1 || got[0] != ButtonA {
		t.Fatalf("accepted = %v, want [A]", got)
	}
}

func TestInputNextCarriesAcceptTime(t *testing.T) {
	clock := &manualClock{}
	in := NewInput(clock)

	clock.advance(30 * time.Millisecond)
	in.Trigger(ButtonJoystick)
	clock.advance(DebounceWindow)
	in.Trigger(ButtonA)

	want := []Press{
		{Button: ButtonJoystick, At: 30_000},
		{Button: ButtonA, At: 230_000},
	}
	for _, w := range want {
		got, ok := in.Next()
		if !ok || got != w {
			t.Fatalf("Next() = %+v, %v; want %+v", got, ok, w)
		}
	}
	if _, ok := in.Next(); ok {
		t.Fatal("Next() on empty queue returned a press")
	}
}

func TestInputQueueOverflowCounted(t *testing.T) {
	clock := &manualClock{}
	in := NewInput(clock)

	for i := 0; i < 3; i++ {
		in.Trigger(ButtonA)
		clock.advance(DebounceWindow)
	}
	if got := in.Dropped(); got != 1 {
		t.Fatalf("Dropped() = %d, want 1", got)
	}
	if got := len(drain(in)); got != 2 {
		t.Fatalf("drained = %d, want 2", got)
	}
}

func TestButtonATogglesRedAndBlueTogether(t *testing.T) {
	s := NewState()
	if !s.Red || !s.Blue || s.Green {
		t.Fatalf("NewState() = %+v, want red and blue on, green off", s)
	}
	for i := 0; i < 4; i++ {
		s.Press(ButtonA)
		if s.Red != s.Blue {
			t.Fatalf("press %d: red=%v blue=%v, want equal", i, s.Red, s.Blue)
		}
		if want := i%2 == 1; s.Red != want {
			t.Fatalf("press %d: red=%v, want %v", i, s.Red, want)
		}
		if s.Green || s.BorderPending {
			t.Fatalf("press %d: A touched green or border: %+v", i, s)
		}
	}
}

func TestJoystickPressCyclesBorder(t *testing.T) {
	s := NewState()
	want := []screen.Border{screen.BorderDashed, screen.BorderDoubleLine, screen.BorderNone, screen.BorderSolid}
	for i, w := range want {
		s.Press(ButtonJoystick)
		if !s.BorderPending {
			t.Fatalf("press %d: BorderPending = false", i)
		}
		if s.BorderVisible != (i%2 == 0) {
			t.Fatalf("press %d: BorderVisible = %v", i, s.BorderVisible)
		}
		if s.Green != (i%2 == 0) {
			t.Fatalf("press %d: Green = %v", i, s.Green)
		}
		s.AdvanceBorder()
		if s.Border != w {
			t.Fatalf("press %d: Border = %v, want %v", i, s.Border, w)
		}
		if s.BorderPending {
			t.Fatalf("press %d: BorderPending still set after advance", i)
		}
	}
	if !s.Red || !s.Blue {
		t.Fatal("joystick press changed red/blue")
	}
}
