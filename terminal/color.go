package terminal

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Color is an RGBA color. Alpha is advisory and never affects output or equality
type Color struct {
	R, G, B, A uint8
}

// Equal compares RGB channels only
func (c Color) Equal(other Color) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// IsBlank reports whether c is the transparent/inherit sentinel
func (c Color) IsBlank() bool {
	return c.Equal(Blank)
}

// Hex returns the #rrggbb form
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor accepts a palette name or "#rrggbb" / "#rgb"
func ParseColor(s string) (Color, error) {
	if c, ok := NamedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.Wrapf(err, "parse color %q", s)
	}
	r, g, b := cf.RGB255()
	return Color{R: r, G: g, B: b, A: 255}, nil
}

// PaletteIndex is one of the 8 basic ANSI colors, in SGR order
type PaletteIndex uint8

const (
	PaletteBlack PaletteIndex = iota
	PaletteRed
	PaletteGreen
	PaletteYellow
	PaletteBlue
	PaletteMagenta
	PaletteCyan
	PaletteWhite
)

// paletteSize is the number of basic terminal colors
const paletteSize = 8

// terminalPalette holds the canonical RGB of each basic color, indexed by PaletteIndex.
// Bit 0 red, bit 1 green, bit 2 blue
var terminalPalette = [paletteSize]Color{
	{0, 0, 0, 255},
	{255, 0, 0, 255},
	{0, 255, 0, 255},
	{255, 255, 0, 255},
	{0, 0, 255, 255},
	{255, 0, 255, 255},
	{0, 255, 255, 255},
	{255, 255, 255, 255},
}

// MapToPalette returns the basic color nearest to c by squared RGB distance.
// On a tie the lowest index wins
func MapToPalette(c Color) PaletteIndex {
	best := PaletteBlack
	bestDist := -1
	for i, p := range terminalPalette {
		dr := int(c.R) - int(p.R)
		dg := int(c.G) - int(p.G)
		db := int(c.B) - int(p.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = PaletteIndex(i)
		}
	}
	return best
}

// Intense reports whether c should use the bright variant: any channel above 128
func Intense(c Color) bool {
	return c.R > 128 || c.G > 128 || c.B > 128
}
