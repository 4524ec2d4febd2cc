package screen

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
)

// MarkerSize is the side of the square marker outline.
const MarkerSize = 9

// DrawMarker draws (or, with visible false, erases) the marker outline whose
// top-left corner is at x, y.
func DrawMarker(d drivers.Displayer, x, y int16, visible bool) {
	c := pixel(visible)
	const s = MarkerSize - 1
	tinydraw.Line(d, x, y, x+s, y, c)
	tinydraw.Line(d, x, y+s, x+s, y+s, c)
	tinydraw.Line(d, x, y, x, y+s, c)
	tinydraw.Line(d, x+s, y, x+s, y+s, c)
}
