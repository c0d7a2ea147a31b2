package terminal

import (
	"time"

	"github.com/pkg/errors"
)

// Backend isolates every platform-specific terminal call.
// Output calls are buffered by the implementation and become visible on Flush
type Backend interface {
	// Lifecycle
	// Init enters raw input mode and suppresses the interrupt key. Fini restores both
	Init() error
	Fini()

	// Size returns (columns, rows), or (0, 0) when unavailable
	Size() (width, height int)

	// Output
	MoveCursor(x, y int)
	SetColors(fg, bg Color)
	WriteRune(r rune)
	SetCursorVisible(visible bool)
	SetTitle(title string)
	Clear(bg Color)
	ResetAttributes()
	Flush() error

	// Input
	// ReadKey never blocks and returns KeyNone when nothing is pending
	ReadKey() Key

	// Now is a monotonic timestamp, immune to wall-clock adjustment
	Now() time.Duration
}

// Kind selects a backend implementation
type Kind string

const (
	// KindNative uses the platform backend chosen at build time
	KindNative Kind = "native"
	// KindTcell renders through tcell, portable and used for simulation
	KindTcell Kind = "tcell"
)

// Open returns an uninitialized backend of the requested kind
func Open(kind Kind) (Backend, error) {
	switch kind {
	case KindNative, "":
		return newNativeBackend()
	case KindTcell:
		return newTcellBackend()
	}
	return nil, errors.Wrapf(ErrUnknownBackend, "%q", string(kind))
}

// ParseKind validates a backend name from config or flags
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindNative, KindTcell:
		return k, nil
	}
	return "", errors.Wrapf(ErrUnknownBackend, "%q", s)
}
