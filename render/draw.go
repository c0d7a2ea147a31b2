package render

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/tread/terminal"
)

// FallbackGlyph replaces text clusters that do not occupy exactly one column
const FallbackGlyph = '?'

// BorderGlyph draws rectangle outlines
const BorderGlyph = '#'

// resolve maps the Blank sentinel to the current background
func (b *FrameBuffer) resolve(c terminal.Color) terminal.Color {
	if c.IsBlank() {
		return b.background
	}
	return c
}

// DrawPixel fills one cell with a solid color
func (b *FrameBuffer) DrawPixel(x, y int, color terminal.Color) {
	color = b.resolve(color)
	b.Set(x, y, ' ', color, color)
}

// DrawText writes one cell per grapheme cluster along row y starting at x.
// Clusters wider or narrower than one column are drawn as FallbackGlyph
func (b *FrameBuffer) DrawText(text string, x, y int, fg, bg terminal.Color) {
	if y < 0 || y >= b.height {
		return
	}
	bg = b.resolve(bg)

	state := -1
	for cx := x; len(text) > 0 && cx < b.width; cx++ {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		if cx < 0 {
			continue
		}
		b.Set(cx, y, glyphOf(cluster), fg, bg)
	}
}

// MeasureText returns the number of cells DrawText uses for text
func MeasureText(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// glyphOf picks the single rune a cluster is drawn as
func glyphOf(cluster string) rune {
	if runewidth.StringWidth(cluster) != 1 {
		return FallbackGlyph
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	if r == utf8.RuneError {
		return FallbackGlyph
	}
	return r
}

// DrawRectangle fills a w x h block row by row with spaces in (fg, bg)
func (b *FrameBuffer) DrawRectangle(x, y, w, h int, fg, bg terminal.Color) {
	bg = b.resolve(bg)
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, b.width), min(y+h, b.height)
	for cy := y0; cy < y1; cy++ {
		row := cy * b.width
		for cx := x0; cx < x1; cx++ {
			b.cells[row+cx] = Cell{Rune: ' ', Fg: fg, Bg: bg}
		}
	}
}

// DrawRectangleLines draws the border of a w x h rectangle with BorderGlyph.
// Top and bottom rows are drawn in full, side columns skip the corners
func (b *FrameBuffer) DrawRectangleLines(x, y, w, h int, fg, bg terminal.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	bg = b.resolve(bg)
	// Walk only the on-screen span of each edge
	for cx := max(x, 0); cx < min(x+w, b.width); cx++ {
		b.Set(cx, y, BorderGlyph, fg, bg)
		b.Set(cx, y+h-1, BorderGlyph, fg, bg)
	}
	for cy := max(y+1, 0); cy < min(y+h-1, b.height); cy++ {
		b.Set(x, cy, BorderGlyph, fg, bg)
		b.Set(x+w-1, cy, BorderGlyph, fg, bg)
	}
}
