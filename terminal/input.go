package terminal

import (
	"unicode/utf8"
)

// DecodeKey decodes one key from the front of buf and returns it with the number of bytes consumed.
// Unread bytes stay with the caller for the next call. An incomplete escape sequence consumes
// everything and yields KeyNone, an unknown one consumes only itself. A partial UTF-8 tail
// consumes nothing so the rest can arrive with the next read
func DecodeKey(buf []byte) (Key, int) {
	if len(buf) == 0 {
		return KeyNone, 0
	}

	b := buf[0]
	switch {
	case b == 0x1b:
		return decodeEscape(buf)
	case b == 0x7f || b == 0x08:
		return KeyBackspace, 1
	case b == '\r' || b == '\n':
		return KeyEnter, 1
	case b < 0x80:
		return Key(b), 1
	}

	if !utf8.FullRune(buf) {
		return KeyNone, 0
	}
	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size == 1 {
		return KeyNone, 1
	}
	return Key(r), size
}

// decodeEscape handles input starting with ESC
func decodeEscape(buf []byte) (Key, int) {
	if len(buf) == 1 {
		return KeyEscape, 1
	}

	switch buf[1] {
	case '[':
		return decodeCSI(buf)
	case 'O':
		if len(buf) < 3 {
			return KeyNone, len(buf)
		}
		if k, ok := lookupSS3(buf[2:3]); ok {
			return k, 3
		}
		return KeyNone, 3
	}

	// ESC followed by an ordinary byte, the byte is left for the next read
	return KeyEscape, 1
}

// decodeCSI parses ESC [ params final
func decodeCSI(buf []byte) (Key, int) {
	i := 2
	if i >= len(buf) {
		return KeyNone, len(buf)
	}

	// Linux console function keys: ESC [ [ A..E
	if buf[i] == '[' {
		if i+1 >= len(buf) {
			return KeyNone, len(buf)
		}
		end := i + 2
		if k, ok := lookupCSI(buf[2:end]); ok {
			return k, end
		}
		return KeyNone, end
	}

	// Parameter and intermediate bytes are 0x20-0x3F, the final byte is 0x40-0x7E
	for i < len(buf) && buf[i] >= 0x20 && buf[i] <= 0x3f {
		i++
	}
	if i >= len(buf) {
		return KeyNone, len(buf)
	}
	if buf[i] < 0x40 || buf[i] > 0x7e {
		// Malformed, drop the introducer only
		return KeyNone, 2
	}

	end := i + 1
	if k, ok := lookupCSI(buf[2:end]); ok {
		return k, end
	}
	return KeyNone, end
}
