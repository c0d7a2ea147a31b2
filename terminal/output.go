package terminal

import (
	"bufio"
	"io"
	"unicode"
)

// ansiWriter buffers ANSI output for one frame and coalesces redundant color changes
type ansiWriter struct {
	writer *bufio.Writer

	// Style state for coalescing
	lastFg    int
	lastBg    int
	lastValid bool
}

func newANSIWriter(w io.Writer) *ansiWriter {
	return &ansiWriter{
		writer: bufio.NewWriterSize(w, 65536),
	}
}

func (a *ansiWriter) moveCursor(x, y int) {
	writeCursorPos(a.writer, x, y)
}

// setColors emits a combined SGR only when the mapped codes differ from the last emitted pair
func (a *ansiWriter) setColors(fg, bg Color) {
	f, b := sgrCodes(fg, bg)
	if a.lastValid && f == a.lastFg && b == a.lastBg {
		return
	}
	w := a.writer
	w.Write(csi)
	writeInt(w, f)
	w.WriteByte(';')
	writeInt(w, b)
	w.WriteByte('m')
	a.lastFg, a.lastBg, a.lastValid = f, b, true
}

func (a *ansiWriter) writeRune(r rune) {
	if r < 0x20 || r == 0x7f {
		r = ' '
	}
	if r < 0x80 {
		a.writer.WriteByte(byte(r))
		return
	}
	a.writer.WriteRune(r)
}

func (a *ansiWriter) setCursorVisible(visible bool) {
	if visible {
		a.writer.Write(csiCursorShow)
		return
	}
	a.writer.Write(csiCursorHide)
}

// setTitle drops control characters so the title cannot terminate the OSC early
func (a *ansiWriter) setTitle(title string) {
	w := a.writer
	w.Write(oscTitle)
	for _, r := range title {
		if unicode.IsControl(r) {
			continue
		}
		w.WriteRune(r)
	}
	w.WriteByte(oscTitleEnd)
}

// clear paints the whole screen with bg and homes the cursor
func (a *ansiWriter) clear(bg Color) {
	a.setColors(Black, bg)
	a.writer.Write(csiClear)
	a.writer.Write(csiHome)
}

func (a *ansiWriter) resetAttributes() {
	a.writer.Write(csiSGR0)
	a.lastValid = false
}

func (a *ansiWriter) flush() error {
	return a.writer.Flush()
}
