package joystick

import (
	"testing"
	"time"
)

type fakeADC struct {
	values   map[int]uint16
	selected int
	reads    []int
}

func (a *fakeADC) Select(ch int) { a.selected = ch }

func (a *fakeADC) Read() uint16 {
	a.reads = append(a.reads, a.selected)
	return a.values[a.selected]
}

func TestSamplerReadsBothChannels(t *testing.T) {
	adc := &fakeADC{values: map[int]uint16{ChannelX: 100, ChannelY: 3900}}
	var settles []time.Duration
	s := NewSampler(adc)
	s.sleep = func(d time.Duration) { settles = append(settles, d) }

	got := s.Sample()
	if want := (RawSample{X: 100, Y: 3900}); got != want {
		t.Fatalf("Sample() = %+v, want %+v", got, want)
	}
	if len(adc.reads) != 2 || adc.reads[0] != ChannelX || adc.reads[1] != ChannelY {
		t.Fatalf("read order = %v, want [%d %d]", adc.reads, ChannelX, ChannelY)
	}
	if len(settles) != 2 || settles[0] != SettleTime {
		t.Fatalf("settles = %v, want two of %v", settles, SettleTime)
	}
}

func TestSamplerClampsOverrange(t *testing.T) {
	adc := &fakeADC{values: map[int]uint16{ChannelX: 0xFFFF, ChannelY: 4095}}
	s := NewSampler(adc)
	s.sleep = nil

	got := s.Sample()
	if got.X != 4095 || got.Y != 4095 {
		t.Fatalf("Sample() = %+v, want both 4095", got)
	}
}
