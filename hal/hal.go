package hal

import (
	"errors"

	"tinygo.org/x/drivers"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Display is a monochrome panel with an in-memory, page-organized buffer.
//
// SetPixel only touches the buffer. Display pushes the buffer to the panel;
// after it returns the panel shows one complete frame.
type Display interface {
	drivers.Displayer
	ClearBuffer()
}

// ADCMax is the largest value a 12-bit conversion returns.
const ADCMax = 4095

// ADC is a multiplexed analog-to-digital converter.
type ADC interface {
	// Select routes input channel ch to the converter.
	Select(ch int)
	// Read converts the selected channel, 0..ADCMax.
	Read() uint16
}

// PWM output shape shared by every platform: a wrap of 4096 counts at
// roughly 1.9 kHz (125 MHz system clock, divider 16).
const (
	PWMWrap      = 4095
	PWMFrequency = 1907
)

// PWMChannel is the hardware unit that gates one or more PWM pins. On RP2040
// this is the PWM slice; two pins share each slice.
type PWMChannel uint8

// PWM drives LED brightness.
type PWM interface {
	// Configure switches pin to PWM output and returns the channel that gates it.
	Configure(pin int) (PWMChannel, error)
	// SetLevel sets the on-time of pin, 0..PWMWrap. It does not change the gate.
	SetLevel(pin int, level uint16)
	// Enable opens or closes the gate of every pin on ch.
	Enable(ch PWMChannel, on bool)
}

// Time provides a monotonic clock.
type Time interface {
	// Micros returns microseconds since boot.
	Micros() uint64
}

// HAL provides the only contact point between the firmware and the board.
type HAL interface {
	Logger() Logger
	GPIO() GPIO
	PWM() PWM
	ADC() ADC
	Display() Display
	Time() Time
}
