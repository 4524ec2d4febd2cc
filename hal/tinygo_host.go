//go:build tinygo && !baremetal

package hal

// New returns a TinyGo-on-host HAL: the simulated board with the stick at
// rest, logging through println.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU pin mapping.
func New() HAL {
	return newVirtualBoard(tinyGoHostLogger{}, newWallClock())
}

type tinyGoHostLogger struct{}

func (tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}
