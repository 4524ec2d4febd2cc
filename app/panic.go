package app

import (
	"fmt"
	"unicode/utf8"

	"bitdog/screen"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	panicLineH = 10
	panicCols  = 21
)

// recoverPanic turns a panic inside Step into an error. The message is
// logged and painted on the panel so a board without a UART attached still
// shows why it stopped.
func (l *Loop) recoverPanic(err *error) {
	v := recover()
	if v == nil {
		return
	}
	msg := fmt.Sprint(v)
	l.logf("panic: %s", msg)
	l.paintPanic(msg)
	*err = fmt.Errorf("panic: %s", msg)
}

func (l *Loop) paintPanic(msg string) {
	if l.disp == nil {
		return
	}
	screen.Clear(l.disp)
	font := &proggy.TinySZ8pt7b
	tinyfont.WriteLine(l.disp, font, 0, panicLineH, "panic", screen.On)

	y := int16(2 * panicLineH)
	for len(msg) > 0 && y < screen.Height {
		var line string
		line, msg = takeRunes(msg, panicCols)
		tinyfont.WriteLine(l.disp, font, 0, y, line, screen.On)
		y += panicLineH
	}
	_ = l.disp.Display()
}

// takeRunes splits s after its first n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 {
		return "", s
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
