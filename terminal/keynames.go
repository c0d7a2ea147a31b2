package terminal

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// keyToName maps special and control keys to canonical config names
var keyToName = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeySpace:     "space",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyInsert:   "insert",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",
}

// nameToKey is the reverse lookup plus accepted aliases
var nameToKey = func() map[string]Key {
	m := make(map[string]Key, len(keyToName)+4)
	for k, name := range keyToName {
		m[name] = k
	}
	m["esc"] = KeyEscape
	m["return"] = KeyEnter
	m["pgup"] = KeyPageUp
	m["pgdn"] = KeyPageDown
	return m
}()

// KeyName returns the canonical name of k. Plain characters are returned as themselves
func KeyName(k Key) string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	if r := k.Rune(); r != 0 {
		return string(r)
	}
	return ""
}

// ParseKey resolves a config key name. A single character names itself
func ParseKey(name string) (Key, error) {
	if k, ok := nameToKey[strings.ToLower(name)]; ok {
		return k, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if r != utf8.RuneError {
			return Key(r), nil
		}
	}
	return KeyNone, errors.Wrapf(ErrUnknownKey, "%q", name)
}
