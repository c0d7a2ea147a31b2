package terminal

import (
	"github.com/pkg/errors"
)

var (
	// ErrNotTerminal is returned by Init when stdin/stdout is not an interactive terminal
	ErrNotTerminal = errors.New("not a terminal")
	// ErrUnknownBackend is returned by Open for an unrecognized backend kind
	ErrUnknownBackend = errors.New("unknown backend")
	// ErrUnsupported is returned when no native backend exists for the platform
	ErrUnsupported = errors.New("platform not supported")
	// ErrUnknownKey is returned by ParseKey
	ErrUnknownKey = errors.New("unknown key name")
)
