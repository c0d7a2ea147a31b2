// Package terminal isolates the platform side of a character-cell display.
//
// Features:
//   - One Backend capability interface with native (termios/ANSI or Win32 console) and tcell implementations
//   - Nearest-of-8 ANSI palette mapping with a brightness heuristic
//   - Non-blocking key reads decoded into a single key code space above Unicode
//   - Monotonic frame clock
//   - Terminal restoration on close and on panic
//
// The native POSIX path bypasses terminfo/termcap entirely and emits direct ANSI sequences.
package terminal
