package engine

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrAlreadyOpen is returned by Open while another session is open in the process
	ErrAlreadyOpen = errors.New("session already open")
	// ErrNotOpen is returned by frame and lifecycle calls on a closed session
	ErrNotOpen = errors.New("session not open")
	// ErrNoTerminalSize is returned by Open when the backend cannot report its dimensions
	ErrNoTerminalSize = errors.New("terminal size unavailable")
)

// ResizeError reports that the terminal changed size mid-session. Buffers are never
// reflowed, the caller must close the session and exit
type ResizeError struct {
	FromWidth, FromHeight int
	ToWidth, ToHeight     int
}

func (e *ResizeError) Error() string {
	return fmt.Sprintf("terminal resized from %dx%d to %dx%d", e.FromWidth, e.FromHeight, e.ToWidth, e.ToHeight)
}

// IsFatal reports whether err requires the caller's loop to close the session and terminate
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var re *ResizeError
	return errors.As(err, &re) || errors.Is(err, ErrNoTerminalSize)
}
