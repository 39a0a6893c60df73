// Package font6x8 is a small 6x8 bitmap font covering the calculator's
// display and key labels.
package font6x8

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	Width  = 6
	Height = 8
)

// Font implements tinyfont.Fonter. Runes outside the table render as '?'.
var Font tinyfont.Fonter = font6x8{}

type font6x8 struct{}

type glyph struct {
	r    rune
	bits [8]byte
}

func (g glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	for row := 0; row < Height; row++ {
		b := g.bits[row]
		for col := 0; col < Width; col++ {
			if b&(0x20>>col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(7-row), c)
		}
	}
}

func (g glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    Width,
		Height:   Height,
		XAdvance: Width,
		XOffset:  0,
		YOffset:  -7,
	}
}

func (font6x8) GetYAdvance() uint8 { return Height }

func (font6x8) GetGlyph(r rune) tinyfont.Glypher {
	bits, ok := glyphs[r]
	if !ok {
		bits = glyphs['?']
	}
	return glyph{r: r, bits: bits}
}

// Has reports whether r has its own glyph.
func Has(r rune) bool {
	_, ok := glyphs[r]
	return ok
}
