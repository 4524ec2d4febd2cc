package joystick

import "testing"

func TestShapeDeadZone(t *testing.T) {
	for raw := uint16(DeadCenter - DeadHalf); raw <= DeadCenter+DeadHalf; raw++ {
		if got := Shape(raw); got != 0 {
			t.Fatalf("Shape(%d) = %d, want 0", raw, got)
		}
	}
}

func TestShapeAbove(t *testing.T) {
	prev := uint16(0)
	for raw := uint16(2249); raw <= 4095; raw++ {
		got := Shape(raw)
		if want := raw - 2248; got != want {
			t.Fatalf("Shape(%d) = %d, want %d", raw, got, want)
		}
		if got <= prev {
			t.Fatalf("Shape(%d) = %d, not above previous %d", raw, got, prev)
		}
		prev = got
	}
}

func TestShapeBelow(t *testing.T) {
	prev := uint16(0)
	for raw := int(1847); raw >= 0; raw-- {
		got := Shape(uint16(raw))
		if want := uint16(1848 - raw); got != want {
			t.Fatalf("Shape(%d) = %d, want %d", raw, got, want)
		}
		if got <= prev {
			t.Fatalf("Shape(%d) = %d, not above previous %d", raw, got, prev)
		}
		prev = got
	}
}

func TestShapeRange(t *testing.T) {
	for raw := 0; raw <= 4095; raw++ {
		if got := Shape(uint16(raw)); got > 2047 {
			t.Fatalf("Shape(%d) = %d, want <= 2047", raw, got)
		}
	}
}
