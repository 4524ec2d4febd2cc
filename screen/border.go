package screen

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
)

// Border is the decoration drawn around the panel edge.
type Border uint8

const (
	BorderNone Border = iota
	BorderSolid
	BorderDashed
	BorderDoubleLine

	borderCount
)

// Next returns the following style in the cycle.
func (b Border) Next() Border {
	return (b + 1) % borderCount
}

func (b Border) String() string {
	switch b {
	case BorderNone:
		return "none"
	case BorderSolid:
		return "solid"
	case BorderDashed:
		return "dashed"
	case BorderDoubleLine:
		return "double"
	default:
		return "unknown"
	}
}

const (
	dashStep   = 4
	innerInset = 3
)

// DrawBorder draws style b when visible is true and erases it otherwise.
// Erasing uses the same geometry with unset pixels, so an erase removes
// exactly what a draw of the same style put down.
//
// BorderNone ignores visible: it clears both rectangles of the double-line
// style and draws nothing.
func DrawBorder(d drivers.Displayer, b Border, visible bool) {
	switch b {
	case BorderSolid:
		rect(d, 0, visible)
	case BorderDashed:
		dashes(d, visible)
	case BorderDoubleLine:
		rect(d, 0, visible)
		rect(d, innerInset, visible)
	case BorderNone:
		rect(d, 0, false)
		rect(d, innerInset, false)
	}
}

// rect draws the outline of the panel inset by off pixels on every side.
func rect(d drivers.Displayer, off int16, lit bool) {
	c := pixel(lit)
	x0, y0 := off, off
	x1, y1 := int16(Width-1)-off, int16(Height-1)-off
	tinydraw.Line(d, x0, y0, x1, y0, c)
	tinydraw.Line(d, x0, y1, x1, y1, c)
	tinydraw.Line(d, x0, y0, x0, y1, c)
	tinydraw.Line(d, x1, y0, x1, y1, c)
}

func dashes(d drivers.Displayer, lit bool) {
	c := pixel(lit)
	for x := int16(0); x < Width; x += dashStep {
		d.SetPixel(x, 0, c)
		d.SetPixel(x, Height-1, c)
	}
	for y := int16(0); y < Height; y += dashStep {
		d.SetPixel(0, y, c)
		d.SetPixel(Width-1, y, c)
	}
}
