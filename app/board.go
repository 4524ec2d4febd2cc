package app

import "time"

// TickPeriod is the main loop period on the board.
const TickPeriod = 10 * time.Millisecond

// Title is shown on the boot splash.
const Title = "BitDogLab"

// DefaultConfig is what the board runs with.
func DefaultConfig() Config {
	return Config{
		Splash:    1500 * time.Millisecond,
		Heartbeat: time.Second,
	}
}
