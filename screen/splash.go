package screen

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Splash clears the buffer and writes the boot banner. It does not flush.
func Splash(d drivers.Displayer, title, build string) {
	Clear(d)
	font := &proggy.TinySZ8pt7b
	tinyfont.WriteLine(d, font, 4, 14, title, On)
	tinyfont.WriteLine(d, font, 4, 30, "joystick + leds", On)
	tinyfont.WriteLine(d, font, 4, 56, "build "+build, On)
	rect(d, 0, true)
}
