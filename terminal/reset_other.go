//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

// resetTerminalMode has no termios to restore on this platform
func resetTerminalMode() {}
