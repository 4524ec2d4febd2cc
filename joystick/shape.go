package joystick

// Dead zone around the resting reading, in raw counts.
const (
	DeadCenter = 2048
	DeadHalf   = 200
)

// Shape converts one raw axis reading into a PWM level. Readings inside the
// dead zone give 0; outside it the level grows with the distance from the
// zone edge in either direction.
func Shape(raw uint16) uint16 {
	const hi = DeadCenter + DeadHalf
	const lo = DeadCenter - DeadHalf
	switch {
	case raw > hi:
		return raw - hi
	case raw < lo:
		return lo - raw
	default:
		return 0
	}
}
