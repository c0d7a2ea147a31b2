package engine

import (
	"time"

	"github.com/lixenwraith/tread/terminal"
)

type fakeWrite struct {
	x, y   int
	fg, bg terminal.Color
	r      rune
}

// fakeBackend is a scripted terminal.Backend: keys are returned in order, size and
// clock are set by the test
type fakeBackend struct {
	width, height int
	keys          []terminal.Key
	now           time.Duration
	initErr       error

	inits, finis  int
	cursorVisible bool
	title         string
	clears        []terminal.Color
	flushes       int

	x, y   int
	fg, bg terminal.Color
	writes []fakeWrite
}

func newFakeBackend(w, h int) *fakeBackend {
	return &fakeBackend{width: w, height: h, cursorVisible: true}
}

func (f *fakeBackend) Init() error {
	f.inits++
	return f.initErr
}

func (f *fakeBackend) Fini()                           { f.finis++ }
func (f *fakeBackend) Size() (int, int)                { return f.width, f.height }
func (f *fakeBackend) MoveCursor(x, y int)             { f.x, f.y = x, y }
func (f *fakeBackend) SetColors(fg, bg terminal.Color) { f.fg, f.bg = fg, bg }
func (f *fakeBackend) SetCursorVisible(visible bool)   { f.cursorVisible = visible }
func (f *fakeBackend) SetTitle(title string)           { f.title = title }
func (f *fakeBackend) Clear(bg terminal.Color)         { f.clears = append(f.clears, bg) }
func (f *fakeBackend) ResetAttributes()                {}
func (f *fakeBackend) Now() time.Duration              { return f.now }

func (f *fakeBackend) WriteRune(r rune) {
	f.writes = append(f.writes, fakeWrite{x: f.x, y: f.y, fg: f.fg, bg: f.bg, r: r})
	f.x++
}

func (f *fakeBackend) Flush() error {
	f.flushes++
	return nil
}

func (f *fakeBackend) ReadKey() terminal.Key {
	if len(f.keys) == 0 {
		return terminal.KeyNone
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k
}

// takeWrites returns and clears the recorded writes
func (f *fakeBackend) takeWrites() []fakeWrite {
	w := f.writes
	f.writes = nil
	return w
}
