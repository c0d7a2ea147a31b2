package render

import (
	"github.com/lixenwraith/tread/terminal"
)

// Surface receives the per-cell output of a flush. terminal.Backend satisfies it
type Surface interface {
	MoveCursor(x, y int)
	SetColors(fg, bg terminal.Color)
	WriteRune(r rune)
}
