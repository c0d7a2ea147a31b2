package render

import (
	"github.com/lixenwraith/tread/terminal"
)

// Cell is one terminal character position
type Cell struct {
	Rune rune
	Fg   terminal.Color
	Bg   terminal.Color
}

// Equal compares glyph and colors, alpha excluded
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Fg.Equal(other.Fg) && c.Bg.Equal(other.Bg)
}

// blankCell is a space on a solid color
func blankCell(c terminal.Color) Cell {
	return Cell{Rune: ' ', Fg: c, Bg: c}
}
