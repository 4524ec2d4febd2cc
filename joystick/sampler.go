// Package joystick turns raw analog stick readings into a marker position and
// LED intensities.
package joystick

import (
	"time"

	"bitdog/hal"
)

// RawSample is one reading of both axes, each in [0, hal.ADCMax].
type RawSample struct {
	X, Y uint16
}

// Center is the raw reading of an axis at rest.
var Center = RawSample{X: 2048, Y: 2048}

// Analog channels wired to the stick.
const (
	ChannelX = hal.ADCStickX // GP27
	ChannelY = hal.ADCStickY // GP26
)

// SettleTime is waited after every channel switch before converting.
const SettleTime = 2 * time.Microsecond

// Sampler reads the stick through a multiplexed ADC.
type Sampler struct {
	adc   hal.ADC
	sleep func(time.Duration)
}

// NewSampler returns a Sampler reading adc.
func NewSampler(adc hal.ADC) *Sampler {
	return &Sampler{adc: adc, sleep: time.Sleep}
}

// Sample reads X then Y.
func (s *Sampler) Sample() RawSample {
	return RawSample{
		X: s.read(ChannelX),
		Y: s.read(ChannelY),
	}
}

func (s *Sampler) read(ch int) uint16 {
	s.adc.Select(ch)
	if s.sleep != nil {
		s.sleep(SettleTime)
	}
	v := s.adc.Read()
	if v > hal.ADCMax {
		v = hal.ADCMax
	}
	return v
}
