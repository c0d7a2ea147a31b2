//go:build linux

package terminal

import (
	"golang.org/x/sys/unix"
)

const (
	ioctlReadTermios       = unix.TCGETS
	ioctlWriteTermios      = unix.TCSETS
	ioctlWriteTermiosFlush = unix.TCSETSF
)
