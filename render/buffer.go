package render

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/tread/terminal"
)

// MaxCells bounds a buffer allocation, larger requests fail with ErrInvalidSize
const MaxCells = 1 << 24

// FrameBuffer is the current frame plus a shadow copy of the last flushed frame.
// Both grids are indexed y*width+x and keep the same length for the buffer's lifetime
type FrameBuffer struct {
	cells      []Cell
	prev       []Cell
	width      int
	height     int
	background terminal.Color
}

// NewFrameBuffer allocates both grids filled with spaces on black
func NewFrameBuffer(width, height int) (*FrameBuffer, error) {
	if width <= 0 || height <= 0 || width > MaxCells/height {
		return nil, errors.Wrapf(ErrInvalidSize, "%dx%d", width, height)
	}
	size := width * height
	b := &FrameBuffer{
		cells:      make([]Cell, size),
		prev:       make([]Cell, size),
		width:      width,
		height:     height,
		background: terminal.Black,
	}
	fill(b.cells, blankCell(terminal.Black))
	copy(b.prev, b.cells)
	return b, nil
}

func (b *FrameBuffer) Width() int  { return b.width }
func (b *FrameBuffer) Height() int { return b.height }

// Background returns the color remembered by the last Clear
func (b *FrameBuffer) Background() terminal.Color {
	return b.background
}

// Clear fills every cell with a space in color and remembers color as the background
func (b *FrameBuffer) Clear(color terminal.Color) {
	b.background = color
	fill(b.cells, blankCell(color))
}

// Reset re-primes the current grid with the remembered background
func (b *FrameBuffer) Reset() {
	fill(b.cells, blankCell(b.background))
}

// inBounds returns true if in buffer bounds
func (b *FrameBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one cell, out-of-range writes are dropped
func (b *FrameBuffer) Set(x, y int, r rune, fg, bg terminal.Color) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg}
}

// Cell returns the current content at (x, y)
func (b *FrameBuffer) Cell(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Flush emits a cursor move, color set and glyph for every cell that differs from the
// previous frame, then makes the current frame the previous one. Returns the number of
// cells written. The caller flushes the surface itself
func (b *FrameBuffer) Flush(s Surface) int {
	changed := 0
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			c := b.cells[row+x]
			if c.Equal(b.prev[row+x]) {
				continue
			}
			s.MoveCursor(x, y)
			s.SetColors(c.Fg, c.Bg)
			s.WriteRune(c.Rune)
			changed++
		}
	}
	copy(b.prev, b.cells)
	return changed
}

// Invalidate forces the next Flush to write every cell
func (b *FrameBuffer) Invalidate() {
	fill(b.prev, Cell{Rune: -1})
}

// fill sets every element using exponential copy
func fill(cells []Cell, c Cell) {
	if len(cells) == 0 {
		return
	}
	cells[0] = c
	for filled := 1; filled < len(cells); filled *= 2 {
		copy(cells[filled:], cells[:filled])
	}
}
