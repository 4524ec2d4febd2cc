package joystick

import "bitdog/screen"

// Position is the top-left anchor of the marker in panel pixels.
type Position struct {
	X, Y int16
}

// Bounds is the inclusive range the marker anchor may occupy.
type Bounds struct {
	MinX, MaxX int16
	MinY, MaxY int16
}

// Travel is the usable marker range: the panel minus the marker itself.
const (
	TravelW = screen.Width - screen.MarkerSize  // 119
	TravelH = screen.Height - screen.MarkerSize // 55
)

// RawSpan is the top of the raw range used for scaling. Readings above it
// clamp to the far edge.
const RawSpan = 4083

const doubleInset = 4

var (
	// EdgeBounds keeps the marker off the one pixel outer border.
	EdgeBounds = Bounds{MinX: 1, MaxX: TravelW - 1, MinY: 1, MaxY: TravelH - 1}

	// InsetBounds keeps the marker inside the second line of the double border.
	InsetBounds = Bounds{
		MinX: doubleInset, MaxX: TravelW - doubleInset,
		MinY: doubleInset, MaxY: TravelH - doubleInset,
	}
)

// BoundsFor returns the marker range allowed while border b is active.
func BoundsFor(b screen.Border) Bounds {
	if b == screen.BorderDoubleLine {
		return InsetBounds
	}
	return EdgeBounds
}

// Map converts a raw stick reading into a marker position for border b.
// The Y axis is inverted so pushing the stick up moves the marker up.
func Map(raw RawSample, b screen.Border) Position {
	bd := BoundsFor(b)
	x := bd.MinX - 2 + scale(raw.X, bd.MaxX-bd.MinX+2)
	y := bd.MaxY - scale(raw.Y, bd.MaxY-bd.MinY+2)
	return Position{X: clamp(x, bd.MinX, bd.MaxX), Y: clamp(y, bd.MinY, bd.MaxY)}
}

// scale maps v from [0, RawSpan] onto [0, span]. The low end of each axis
// lands two pixels short of the bound and is pulled back in by the clamp.
func scale(v uint16, span int16) int16 {
	return int16(int32(v) * int32(span) / RawSpan)
}

func clamp(v, lo, hi int16) int16 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
