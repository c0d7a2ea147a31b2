package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments
var (
	csi      = []byte("\x1b[")
	csiSGR0  = []byte("\x1b[0m")
	csiClear = []byte("\x1b[2J")
	csiHome  = []byte("\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// OSC 0 sets icon name and window title, terminated by BEL
	oscTitle    = []byte("\x1b]0;")
	oscTitleEnd = byte(0x07)
)

// SGR bases for the 8-color palette, +60 selects the bright variant
const (
	sgrFgBase     = 30
	sgrBgBase     = 40
	sgrBrightStep = 60
)

// writeInt writes a non-negative integer without allocation
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}

// writeCursorPos emits CUP, terminal coordinates are 1-based
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}

// sgrCodes returns the foreground and background SGR parameters for a color pair
func sgrCodes(fg, bg Color) (int, int) {
	f := sgrFgBase + int(MapToPalette(fg))
	if Intense(fg) {
		f += sgrBrightStep
	}
	b := sgrBgBase + int(MapToPalette(bg))
	if Intense(bg) {
		b += sgrBrightStep
	}
	return f, b
}
