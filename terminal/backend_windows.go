//go:build windows

package terminal

import (
	"encoding/binary"
	"log"
	"time"
	"unicode/utf16"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// Console functions without typed wrappers in x/sys/windows
var (
	k32 = windows.NewLazySystemDLL("kernel32.dll")

	procReadConsoleInput           = k32.NewProc("ReadConsoleInputW")
	procGetConsoleCursorInfo       = k32.NewProc("GetConsoleCursorInfo")
	procSetConsoleCursorInfo       = k32.NewProc("SetConsoleCursorInfo")
	procSetConsoleTextAttribute    = k32.NewProc("SetConsoleTextAttribute")
	procSetConsoleTitle            = k32.NewProc("SetConsoleTitleW")
	procSetConsoleCtrlHandler      = k32.NewProc("SetConsoleCtrlHandler")
	procFillConsoleOutputAttribute = k32.NewProc("FillConsoleOutputAttribute")
	procFillConsoleOutputCharacter = k32.NewProc("FillConsoleOutputCharacterW")
)

// Character attribute bits
const (
	attrFgBlue      = 0x0001
	attrFgGreen     = 0x0002
	attrFgRed       = 0x0004
	attrFgIntensity = 0x0008
	attrBgBlue      = 0x0010
	attrBgGreen     = 0x0020
	attrBgRed       = 0x0040
	attrBgIntensity = 0x0080
)

const (
	ctrlCEvent = 0

	inputKeyEvent uint16 = 1
)

// Virtual key codes for the special keys
const (
	vkPrior  = 0x21
	vkNext   = 0x22
	vkEnd    = 0x23
	vkHome   = 0x24
	vkLeft   = 0x25
	vkUp     = 0x26
	vkRight  = 0x27
	vkDown   = 0x28
	vkInsert = 0x2D
	vkDelete = 0x2E
	vkF1     = 0x70
	vkF12    = 0x7B
)

var vkKeys = map[uint16]Key{
	vkPrior:  KeyPageUp,
	vkNext:   KeyPageDown,
	vkEnd:    KeyEnd,
	vkHome:   KeyHome,
	vkLeft:   KeyLeft,
	vkUp:     KeyUp,
	vkRight:  KeyRight,
	vkDown:   KeyDown,
	vkInsert: KeyInsert,
	vkDelete: KeyDelete,
}

type inputRecord struct {
	typ  uint16
	_    uint16
	data [16]byte
}

type cursorInfo struct {
	size    uint32
	visible int32
}

// setCtrlHandler adds or removes ctrlHandler, replaced in tests
var setCtrlHandler = func(add bool) error {
	var flag uintptr
	if add {
		flag = 1
	}
	if rv, _, err := procSetConsoleCtrlHandler.Call(ctrlHandler, flag); rv == 0 {
		return errors.Wrap(err, "set ctrl handler")
	}
	return nil
}

// ctrlHandler swallows Ctrl+C, other control events fall through to the default handler
var ctrlHandler = windows.NewCallback(func(ctrlType uint32) uintptr {
	if ctrlType == ctrlCEvent {
		return 1
	}
	return 0
})

// windowsBackend drives the console through the Win32 console API
type windowsBackend struct {
	in  windows.Handle
	out windows.Handle

	oldInMode  uint32
	oldOutMode uint32
	active     bool
	handler    bool

	highSurrogate uint16
}

func newNativeBackend() (Backend, error) {
	in, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return nil, errors.Wrap(err, "stdin handle")
	}
	out, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return nil, errors.Wrap(err, "stdout handle")
	}
	return &windowsBackend{in: in, out: out}, nil
}

func (b *windowsBackend) Init() error {
	if err := windows.GetConsoleMode(b.in, &b.oldInMode); err != nil {
		return errors.Wrap(ErrNotTerminal, "stdin")
	}
	if err := windows.GetConsoleMode(b.out, &b.oldOutMode); err != nil {
		return errors.Wrap(ErrNotTerminal, "stdout")
	}

	mode := b.oldInMode &^ (windows.ENABLE_LINE_INPUT | windows.ENABLE_ECHO_INPUT)
	if err := windows.SetConsoleMode(b.in, mode); err != nil {
		return errors.Wrap(err, "enter raw mode")
	}

	// Without the handler Ctrl+C falls through to the default action
	if err := setCtrlHandler(true); err != nil {
		log.Printf("terminal: ctrl handler: %v", err)
	} else {
		b.handler = true
	}
	b.active = true
	return nil
}

func (b *windowsBackend) Fini() {
	if !b.active {
		return
	}
	windows.SetConsoleMode(b.out, b.oldOutMode)
	windows.SetConsoleMode(b.in, b.oldInMode)
	if b.handler {
		setCtrlHandler(false)
		b.handler = false
	}
	b.active = false
}

func (b *windowsBackend) Size() (int, int) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(b.out, &info); err != nil {
		return 0, 0
	}
	return int(info.Window.Right-info.Window.Left) + 1, int(info.Window.Bottom-info.Window.Top) + 1
}

func (b *windowsBackend) MoveCursor(x, y int) {
	windows.SetConsoleCursorPosition(b.out, windows.Coord{X: int16(x), Y: int16(y)})
}

func (b *windowsBackend) SetColors(fg, bg Color) {
	procSetConsoleTextAttribute.Call(uintptr(b.out), uintptr(consoleAttributes(fg, bg)))
}

func (b *windowsBackend) WriteRune(r rune) {
	var buf [2]uint16
	n := 1
	if r1, r2 := utf16.EncodeRune(r); r1 != 0xFFFD {
		buf[0], buf[1] = uint16(r1), uint16(r2)
		n = 2
	} else {
		buf[0] = uint16(r)
	}
	var written uint32
	windows.WriteConsole(b.out, &buf[0], uint32(n), &written, nil)
}

func (b *windowsBackend) SetCursorVisible(visible bool) {
	var ci cursorInfo
	procGetConsoleCursorInfo.Call(uintptr(b.out), uintptr(unsafe.Pointer(&ci)))
	ci.visible = 0
	if visible {
		ci.visible = 1
	}
	procSetConsoleCursorInfo.Call(uintptr(b.out), uintptr(unsafe.Pointer(&ci)))
}

func (b *windowsBackend) SetTitle(title string) {
	p, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return
	}
	procSetConsoleTitle.Call(uintptr(unsafe.Pointer(p)))
}

// Clear fills the whole screen buffer with blanks in bg and homes the cursor
func (b *windowsBackend) Clear(bg Color) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(b.out, &info); err != nil {
		return
	}
	count := uintptr(int(info.Size.X) * int(info.Size.Y))
	var written uint32
	procFillConsoleOutputCharacter.Call(uintptr(b.out), uintptr(' '), count, packCoord(0, 0), uintptr(unsafe.Pointer(&written)))
	procFillConsoleOutputAttribute.Call(uintptr(b.out), uintptr(consoleAttributes(Black, bg)), count, packCoord(0, 0), uintptr(unsafe.Pointer(&written)))
	b.MoveCursor(0, 0)
}

// ResetAttributes restores light gray on black, the console default
func (b *windowsBackend) ResetAttributes() {
	procSetConsoleTextAttribute.Call(uintptr(b.out), uintptr(attrFgRed|attrFgGreen|attrFgBlue))
}

// Flush is a no-op, console calls take effect immediately
func (b *windowsBackend) Flush() error {
	return nil
}

// ReadKey drains pending console records until a key press maps to a key
func (b *windowsBackend) ReadKey() Key {
	for {
		var n uint32
		if err := windows.GetNumberOfConsoleInputEvents(b.in, &n); err != nil || n == 0 {
			return KeyNone
		}

		var rec inputRecord
		var nrec uint32
		rv, _, _ := procReadConsoleInput.Call(uintptr(b.in), uintptr(unsafe.Pointer(&rec)), 1, uintptr(unsafe.Pointer(&nrec)))
		if rv == 0 || nrec != 1 {
			return KeyNone
		}
		if rec.typ != inputKeyEvent {
			continue
		}
		if k := b.decodeKeyRecord(rec.data); k != KeyNone {
			return k
		}
	}
}

// decodeKeyRecord maps a KEY_EVENT_RECORD, key releases yield KeyNone
func (b *windowsBackend) decodeKeyRecord(data [16]byte) Key {
	isDown := binary.LittleEndian.Uint32(data[0:])
	vk := binary.LittleEndian.Uint16(data[6:])
	ch := binary.LittleEndian.Uint16(data[10:])
	if isDown == 0 {
		return KeyNone
	}

	if k, ok := vkKeys[vk]; ok {
		return k
	}
	if vk >= vkF1 && vk <= vkF12 {
		return FunctionKey(int(vk-vkF1) + 1)
	}
	if ch == 0 {
		return KeyNone
	}

	if utf16.IsSurrogate(rune(ch)) {
		if b.highSurrogate == 0 {
			b.highSurrogate = ch
			return KeyNone
		}
		r := utf16.DecodeRune(rune(b.highSurrogate), rune(ch))
		b.highSurrogate = 0
		return Key(r)
	}

	switch ch {
	case '\r', '\n':
		return KeyEnter
	case 0x08, 0x7f:
		return KeyBackspace
	}
	return Key(ch)
}

func (b *windowsBackend) Now() time.Duration {
	return monotonicNow()
}

// packCoord passes a COORD by value: X in the low word, Y in the high word
func packCoord(x, y int) uintptr {
	return uintptr(uint32(uint16(x)) | uint32(uint16(y))<<16)
}

// consoleAttributes maps a color pair to console attribute bits.
// Palette index bit 0 is red, bit 1 green, bit 2 blue
func consoleAttributes(fg, bg Color) uint16 {
	var attr uint16
	f := MapToPalette(fg)
	if f&1 != 0 {
		attr |= attrFgRed
	}
	if f&2 != 0 {
		attr |= attrFgGreen
	}
	if f&4 != 0 {
		attr |= attrFgBlue
	}
	if Intense(fg) {
		attr |= attrFgIntensity
	}

	g := MapToPalette(bg)
	if g&1 != 0 {
		attr |= attrBgRed
	}
	if g&2 != 0 {
		attr |= attrBgGreen
	}
	if g&4 != 0 {
		attr |= attrBgBlue
	}
	if Intense(bg) {
		attr |= attrBgIntensity
	}
	return attr
}
