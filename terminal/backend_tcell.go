package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// tcellBackend renders through a tcell Screen. It runs wherever tcell does and accepts a
// SimulationScreen, which makes it the backend used for headless tests
type tcellBackend struct {
	screen tcell.Screen
	x, y   int
	style  tcell.Style
}

func newTcellBackend() (Backend, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create tcell screen")
	}
	return NewTcellBackend(s), nil
}

// NewTcellBackend wraps an existing, uninitialized screen
func NewTcellBackend(s tcell.Screen) Backend {
	return &tcellBackend{screen: s, style: tcell.StyleDefault}
}

// Init hands raw mode to tcell. Ctrl+C arrives as a key event there, never as a signal
func (b *tcellBackend) Init() error {
	if err := b.screen.Init(); err != nil {
		return errors.Wrap(err, "init tcell screen")
	}
	return nil
}

func (b *tcellBackend) Fini() {
	b.screen.Fini()
}

func (b *tcellBackend) Size() (int, int) {
	return b.screen.Size()
}

func (b *tcellBackend) MoveCursor(x, y int) {
	b.x, b.y = x, y
}

func (b *tcellBackend) SetColors(fg, bg Color) {
	b.style = tcellStyle(fg, bg)
}

func (b *tcellBackend) WriteRune(r rune) {
	b.screen.SetContent(b.x, b.y, r, nil, b.style)
	b.x++
}

func (b *tcellBackend) SetCursorVisible(visible bool) {
	if visible {
		b.screen.ShowCursor(b.x, b.y)
		return
	}
	b.screen.HideCursor()
}

func (b *tcellBackend) SetTitle(title string) {
	b.screen.SetTitle(title)
}

func (b *tcellBackend) Clear(bg Color) {
	b.style = tcellStyle(Black, bg)
	b.screen.Fill(' ', b.style)
	b.x, b.y = 0, 0
}

func (b *tcellBackend) ResetAttributes() {
	b.style = tcell.StyleDefault
}

func (b *tcellBackend) Flush() error {
	b.screen.Show()
	return nil
}

// ReadKey drains queued events until one maps to a key
func (b *tcellBackend) ReadKey() Key {
	for b.screen.HasPendingEvent() {
		ev, ok := b.screen.PollEvent().(*tcell.EventKey)
		if !ok {
			continue
		}
		if k := tcellKey(ev); k != KeyNone {
			return k
		}
	}
	return KeyNone
}

func (b *tcellBackend) Now() time.Duration {
	return monotonicNow()
}

// tcellColor maps to one of the 16 basic palette entries, the bright half for intense colors
func tcellColor(c Color) tcell.Color {
	idx := int(MapToPalette(c))
	if Intense(c) {
		idx += paletteSize
	}
	return tcell.PaletteColor(idx)
}

func tcellStyle(fg, bg Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(fg)).Background(tcellColor(bg))
}

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyEsc:        KeyEscape,
	tcell.KeyTab:        KeyTab,
}

// tcellKey maps a tcell key event, Ctrl+C and other unmapped control keys yield KeyNone
func tcellKey(ev *tcell.EventKey) Key {
	k := ev.Key()
	if k == tcell.KeyRune {
		return Key(ev.Rune())
	}
	if key, ok := tcellKeys[k]; ok {
		return key
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return FunctionKey(int(k-tcell.KeyF1) + 1)
	}
	return KeyNone
}
