package render

import (
	"testing"
	"time"

	"github.com/lixenwraith/tread/terminal"
)

func TestDrawText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		x, y  int
		want  string // expected runes from column 0, '.' for untouched
		width int
	}{
		{"plain", "hi", 1, 0, ".hi...", 6},
		{"clipped right", "hello", 3, 0, "...hel", 6},
		{"clipped left", "hello", -2, 0, "llo...", 6},
		{"wide cluster", "a世b", 0, 0, "a?b...", 6},
		{"combining mark", "e\u0301x", 0, 0, "ex....", 6},
		{"control rune", "\tz", 0, 0, "?z....", 6},
		{"row out of range", "hi", 0, 5, "......", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := NewFrameBuffer(tt.width, 1)
			b.Clear(terminal.Black)
			b.DrawText(tt.text, tt.x, tt.y, terminal.White, terminal.Blank)
			got := make([]rune, tt.width)
			for x := 0; x < tt.width; x++ {
				c, _ := b.Cell(x, 0)
				got[x] = c.Rune
				if c.Rune == ' ' {
					got[x] = '.'
				}
			}
			if string(got) != tt.want {
				t.Errorf("row = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestDrawTextResolvesBlank(t *testing.T) {
	b, _ := NewFrameBuffer(4, 1)
	b.Clear(terminal.DarkBlue)
	b.DrawText("ab", 0, 0, terminal.White, terminal.Blank)
	c, _ := b.Cell(0, 0)
	if !c.Bg.Equal(terminal.DarkBlue) {
		t.Errorf("bg = %v, want background", c.Bg)
	}
	if !c.Fg.Equal(terminal.White) {
		t.Errorf("fg = %v, want white", c.Fg)
	}
}

func TestMeasureText(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"é", 1},
		{"🇩🇪x", 2},
	}
	for _, tt := range tests {
		if got := MeasureText(tt.text); got != tt.want {
			t.Errorf("MeasureText(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestDrawPixel(t *testing.T) {
	b, _ := NewFrameBuffer(3, 3)
	b.Clear(terminal.Gray)
	b.DrawPixel(1, 1, terminal.Red)
	b.DrawPixel(2, 2, terminal.Blank)
	b.DrawPixel(-1, 7, terminal.Red)

	c, _ := b.Cell(1, 1)
	if c.Rune != ' ' || !c.Fg.Equal(terminal.Red) || !c.Bg.Equal(terminal.Red) {
		t.Errorf("pixel = %+v", c)
	}
	c, _ = b.Cell(2, 2)
	if !c.Bg.Equal(terminal.Gray) {
		t.Errorf("blank pixel bg = %v, want background", c.Bg)
	}
}

func TestDrawRectangleLines(t *testing.T) {
	b, _ := NewFrameBuffer(6, 5)
	b.DrawRectangleLines(1, 1, 4, 3, terminal.White, terminal.Black)
	want := []string{
		"......",
		".####.",
		".#..#.",
		".####.",
		"......",
	}
	for y, row := range want {
		for x, ch := range row {
			c, _ := b.Cell(x, y)
			border := c.Rune == BorderGlyph
			if border != (ch == '#') {
				t.Errorf("(%d,%d) border=%v, want %v", x, y, border, ch == '#')
			}
		}
	}
}

func TestDrawRectangleLinesClipped(t *testing.T) {
	b, _ := NewFrameBuffer(4, 4)
	b.DrawRectangleLines(-1, -1, 6, 6, terminal.White, terminal.Black)
	s := &recordingSurface{}
	b.Flush(s)
	for _, wr := range s.writes {
		if wr.x < 0 || wr.x >= 4 || wr.y < 0 || wr.y >= 4 {
			t.Errorf("write outside buffer at (%d,%d)", wr.x, wr.y)
		}
	}
}

func TestDrawRectangleLinesOversized(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		want       []string
	}{
		{"huge width", 0, 0, 1 << 40, 3, []string{
			"##########",
			"..........",
			"##########",
		}},
		{"huge height", 2, 0, 3, 1 << 40, []string{
			"..###.....",
			"..#.#.....",
			"..#.#.....",
		}},
		{"huge both from negative origin", -(1 << 40), -(1 << 40), 1 << 41, 1 << 41, []string{
			"..........",
			"..........",
			"..........",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := NewFrameBuffer(10, 3)
			done := make(chan struct{})
			go func() {
				b.DrawRectangleLines(tt.x, tt.y, tt.w, tt.h, terminal.Red, terminal.Red)
				close(done)
			}()
			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("DrawRectangleLines did not return")
			}
			for y, row := range tt.want {
				for x, ch := range row {
					c, _ := b.Cell(x, y)
					if border := c.Rune == BorderGlyph; border != (ch == '#') {
						t.Errorf("(%d,%d) border=%v, want %v", x, y, border, ch == '#')
					}
				}
			}
		})
	}
}
