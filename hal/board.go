package hal

// BitDogLab (RP2040) wiring. The periph build reuses the same BCM numbers on a
// Raspberry Pi header, where GPIO12 and GPIO13 are also hardware PWM pins.
const (
	PinButtonA   = 5
	PinButtonJoy = 22

	PinLEDGreen = 11
	PinLEDBlue  = 12
	PinLEDRed   = 13

	PinStickY = 26
	PinStickX = 27

	PinDisplaySDA = 14
	PinDisplaySCL = 15
)

// ADC inputs behind PinStickY and PinStickX.
const (
	ADCStickY = 0
	ADCStickX = 1
)

// DisplayAddress is the I2C address of the SSD1306 panel.
const DisplayAddress = 0x3C

// DisplayWidth and DisplayHeight are the panel size in pixels.
const (
	DisplayWidth  = 128
	DisplayHeight = 64
)

// PinCount is the number of user GPIOs on RP2040.
const PinCount = 30

// SliceForPin returns the RP2040 PWM slice that drives pin.
func SliceForPin(pin int) PWMChannel {
	return PWMChannel((pin >> 1) & 7)
}
