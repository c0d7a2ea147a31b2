//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd || windows)

package terminal

import (
	"runtime"

	"github.com/pkg/errors"
)

// newNativeBackend has no implementation here, the tcell backend is the portable choice
func newNativeBackend() (Backend, error) {
	return nil, errors.Wrapf(ErrUnsupported, "native backend on %s", runtime.GOOS)
}
