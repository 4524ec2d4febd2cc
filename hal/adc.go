package hal

import "sync/atomic"

// ADCChannels is the number of RP2040 ADC inputs (four pins and the
// temperature sensor).
const ADCChannels = 5

// adcRest is the reading of a centered potentiometer.
const adcRest = 2048

// virtualADC holds one settable value per channel.
type virtualADC struct {
	sel  atomic.Int32
	vals [ADCChannels]atomic.Uint32
}

func newVirtualADC() *virtualADC {
	a := &virtualADC{}
	for i := range a.vals {
		a.vals[i].Store(adcRest)
	}
	return a
}

func (a *virtualADC) Select(ch int) {
	if ch < 0 || ch >= ADCChannels {
		return
	}
	a.sel.Store(int32(ch))
}

func (a *virtualADC) Read() uint16 {
	return uint16(a.vals[a.sel.Load()].Load())
}

func (a *virtualADC) set(ch int, v uint16) {
	if ch < 0 || ch >= ADCChannels {
		return
	}
	if v > ADCMax {
		v = ADCMax
	}
	a.vals[ch].Store(uint32(v))
}
