package terminal

import (
	"unicode"
)

// Key is a unified key code. Values up to unicode.MaxRune are the typed character itself,
// special keys occupy the range above so ordinary characters pass through unmodified
type Key rune

// KeyNone means no key was available
const KeyNone Key = 0

// Control keys keep their ASCII values
const (
	KeyBackspace Key = 8
	KeyTab       Key = 9
	KeyEnter     Key = 13
	KeyEscape    Key = 27
	KeySpace     Key = ' '
	KeyDelete    Key = 127
)

const keySpecialBase Key = unicode.MaxRune + 1

// Special keys
const (
	KeyUp Key = keySpecialBase + iota
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	keySpecialEnd
)

// IsSpecial reports whether k is in the reserved range above Unicode
func (k Key) IsSpecial() bool {
	return k >= keySpecialBase && k < keySpecialEnd
}

// Rune returns the character for a plain key, 0 for special keys and KeyNone
func (k Key) Rune() rune {
	if k <= KeyNone || k > unicode.MaxRune {
		return 0
	}
	return rune(k)
}

// FunctionKey returns F1..F12 for n in 1..12, KeyNone otherwise
func FunctionKey(n int) Key {
	if n < 1 || n > 12 {
		return KeyNone
	}
	return KeyF1 + Key(n-1)
}
