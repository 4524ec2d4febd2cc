//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/ssd1306"
)

type tinyGoHAL struct {
	logger *uartLogger
	gpio   *machineGPIO
	pwm    *machinePWM
	adc    *machineADC
	oled   Display
	t      *tinyGoTime
}

// New returns the BitDogLab (RP2040) HAL.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// OLED: SSD1306 on I2C1, GP14 (SDA) / GP15 (SCL), 400 kHz.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	h := &tinyGoHAL{
		logger: logger,
		gpio:   &machineGPIO{},
		pwm:    newMachinePWM(),
		adc:    newMachineADC(),
		t:      newTinyGoTime(),
	}

	oled, err := newOLED()
	if err != nil {
		logger.WriteLineString("hal: oled: " + err.Error())
	}
	h.oled = oled
	return h
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) GPIO() GPIO       { return h.gpio }
func (h *tinyGoHAL) PWM() PWM         { return h.pwm }
func (h *tinyGoHAL) ADC() ADC         { return h.adc }
func (h *tinyGoHAL) Display() Display { return h.oled }
func (h *tinyGoHAL) Time() Time       { return h.t }

func newOLED() (Display, error) {
	bus := machine.I2C1
	err := bus.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.GP14,
		SCL:       machine.GP15,
	})
	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Address:  DisplayAddress,
		Width:    DisplayWidth,
		Height:   DisplayHeight,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	dev.ClearDisplay()
	return dev, err
}
