package ui2d

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	firstGlyph   = ' '
	lastGlyph    = '~'
	atlasColumns = 16
)

// Font is a fixed-width bitmap font baked into an alpha atlas.
type Font struct {
	Atlas *image.Alpha

	cellW, cellH int
	rows         int
}

// NewFont bakes the printable ASCII range of basicfont's 7x13 face.
func NewFont() *Font {
	face := basicfont.Face7x13
	f := &Font{
		cellW: face.Advance,
		cellH: face.Height,
	}
	count := int(lastGlyph-firstGlyph) + 1
	f.rows = (count + atlasColumns - 1) / atlasColumns
	f.Atlas = image.NewAlpha(image.Rect(0, 0, atlasColumns*f.cellW, f.rows*f.cellH))

	d := &font.Drawer{
		Dst:  f.Atlas,
		Src:  image.Opaque,
		Face: face,
	}
	for r := firstGlyph; r <= lastGlyph; r++ {
		col, row := f.cell(r)
		d.Dot = fixed.P(col*f.cellW, row*f.cellH+face.Ascent)
		d.DrawString(string(r))
	}
	return f
}

func (f *Font) cell(r rune) (col, row int) {
	if r < firstGlyph || r > lastGlyph {
		r = '?'
	}
	i := int(r - firstGlyph)
	return i % atlasColumns, i / atlasColumns
}

// GlyphSize returns the cell size in pixels.
func (f *Font) GlyphSize() (int, int) {
	return f.cellW, f.cellH
}

// GlyphUV returns the atlas texture coordinates of r. Runes outside
// printable ASCII map to '?'.
func (f *Font) GlyphUV(r rune) (u0, v0, u1, v1 float32) {
	col, row := f.cell(r)
	w := float32(f.Atlas.Rect.Dx())
	h := float32(f.Atlas.Rect.Dy())
	u0 = float32(col*f.cellW) / w
	v0 = float32(row*f.cellH) / h
	u1 = float32((col+1)*f.cellW) / w
	v1 = float32((row+1)*f.cellH) / h
	return
}

// MeasureText returns the width and height of text drawn at scale.
func (f *Font) MeasureText(text string, scale float32) (float32, float32) {
	lines, widest, cur := 1, 0, 0
	for _, r := range text {
		if r == '\n' {
			lines++
			cur = 0
			continue
		}
		cur++
		widest = max(widest, cur)
	}
	return float32(widest*f.cellW) * scale, float32(lines*f.cellH) * scale
}
