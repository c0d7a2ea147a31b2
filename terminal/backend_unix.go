//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// maxPendingInput bounds the unread input kept between frames
const maxPendingInput = 4096

// unixBackend drives an ANSI terminal through termios and escape sequences
type unixBackend struct {
	in      *os.File
	out     *os.File
	inFd    int
	outFd   int
	oldTerm *term.State

	w         *ansiWriter
	interrupt *interruptGuard

	readBuf [256]byte
	pending []byte
}

func newNativeBackend() (Backend, error) {
	return &unixBackend{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
		w:     newANSIWriter(os.Stdout),
	}, nil
}

// Init disables canonical mode and echo with VMIN=VTIME=0, leaving signal generation
// on so SIGINT reaches the interrupt guard instead of the default handler
func (b *unixBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return errors.Wrap(ErrNotTerminal, "stdin")
	}

	old, err := term.GetState(b.inFd)
	if err != nil {
		return errors.Wrap(err, "save terminal state")
	}

	termios, err := unix.IoctlGetTermios(b.inFd, ioctlReadTermios)
	if err != nil {
		return errors.Wrap(err, "read termios")
	}
	termios.Lflag &^= unix.ICANON | unix.ECHO
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(b.inFd, ioctlWriteTermiosFlush, termios); err != nil {
		return errors.Wrap(err, "enter raw mode")
	}
	b.oldTerm = old

	b.interrupt = newInterruptGuard()
	b.interrupt.start()
	return nil
}

func (b *unixBackend) Fini() {
	if b.oldTerm != nil {
		term.Restore(b.inFd, b.oldTerm)
		b.oldTerm = nil
	}
	if b.interrupt != nil {
		b.interrupt.stop()
		b.interrupt = nil
	}
	b.pending = b.pending[:0]
}

func (b *unixBackend) Size() (int, int) {
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0
	}
	return int(ws.Col), int(ws.Row)
}

func (b *unixBackend) MoveCursor(x, y int)           { b.w.moveCursor(x, y) }
func (b *unixBackend) SetColors(fg, bg Color)        { b.w.setColors(fg, bg) }
func (b *unixBackend) WriteRune(r rune)              { b.w.writeRune(r) }
func (b *unixBackend) SetCursorVisible(visible bool) { b.w.setCursorVisible(visible) }
func (b *unixBackend) SetTitle(title string)         { b.w.setTitle(title) }
func (b *unixBackend) Clear(bg Color)                { b.w.clear(bg) }
func (b *unixBackend) ResetAttributes()              { b.w.resetAttributes() }

func (b *unixBackend) Flush() error {
	return errors.Wrap(b.w.flush(), "flush terminal output")
}

// ReadKey polls stdin with a zero timeout, appends whatever is available and decodes one key
func (b *unixBackend) ReadKey() Key {
	b.fill()
	k, n := DecodeKey(b.pending)
	b.pending = b.pending[:copy(b.pending, b.pending[n:])]
	return k
}

// fill reads without blocking, dropping input beyond maxPendingInput
func (b *unixBackend) fill() {
	fds := []unix.PollFd{{Fd: int32(b.inFd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil || n == 0 || fds[0].Revents&unix.POLLIN == 0 {
		return
	}

	rn, err := unix.Read(b.inFd, b.readBuf[:])
	if err != nil || rn <= 0 {
		return
	}
	if len(b.pending)+rn > maxPendingInput {
		return
	}
	b.pending = append(b.pending, b.readBuf[:rn]...)
}

func (b *unixBackend) Now() time.Duration {
	return monotonicNow()
}
