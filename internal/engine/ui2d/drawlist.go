package ui2d

// Vertex strides in floats.
const (
	SolidStride = 6 // x, y, r, g, b, a
	TextStride  = 8 // x, y, u, v, r, g, b, a
)

// DrawList batches one frame of 2D geometry in window pixels, origin top
// left. A GL backend uploads it in two draw calls: solids, then text.
type DrawList struct {
	Solid []float32
	Text  []float32
	Font  *Font
}

// NewDrawList creates an empty list drawing text with f.
func NewDrawList(f *Font) *DrawList {
	return &DrawList{
		Solid: make([]float32, 0, 4096),
		Text:  make([]float32, 0, 4096),
		Font:  f,
	}
}

// Reset empties the list for a new frame.
func (d *DrawList) Reset() {
	d.Solid = d.Solid[:0]
	d.Text = d.Text[:0]
}

// Empty reports whether nothing was queued.
func (d *DrawList) Empty() bool {
	return len(d.Solid) == 0 && len(d.Text) == 0
}

// DrawRect queues a filled rectangle.
func (d *DrawList) DrawRect(r Rect, c Color) {
	x, y, w, h := r.X, r.Y, r.W, r.H
	d.Solid = append(d.Solid,
		x, y, c.R, c.G, c.B, c.A,
		x+w, y, c.R, c.G, c.B, c.A,
		x+w, y+h, c.R, c.G, c.B, c.A,
		x, y, c.R, c.G, c.B, c.A,
		x+w, y+h, c.R, c.G, c.B, c.A,
		x, y+h, c.R, c.G, c.B, c.A,
	)
}

// DrawRectOutline queues a rectangle border of the given thickness.
func (d *DrawList) DrawRectOutline(r Rect, thickness float32, c Color) {
	d.DrawRect(Rect{r.X, r.Y, r.W, thickness}, c)
	d.DrawRect(Rect{r.X, r.Y + r.H - thickness, r.W, thickness}, c)
	d.DrawRect(Rect{r.X, r.Y + thickness, thickness, r.H - thickness*2}, c)
	d.DrawRect(Rect{r.X + r.W - thickness, r.Y + thickness, thickness, r.H - thickness*2}, c)
}

// DrawPanel queues a bordered panel.
func (d *DrawList) DrawPanel(r Rect, bg, border Color) {
	d.DrawRect(r, bg)
	d.DrawRectOutline(r, 1, border)
}

// DrawText queues text with its top-left corner at (x, y).
func (d *DrawList) DrawText(x, y float32, text string, scale float32, c Color) {
	if d.Font == nil {
		return
	}
	gw, gh := d.Font.GlyphSize()
	cw, ch := float32(gw)*scale, float32(gh)*scale

	cx := x
	for _, r := range text {
		if r == '\n' {
			cx = x
			y += ch
			continue
		}
		if r != ' ' {
			u0, v0, u1, v1 := d.Font.GlyphUV(r)
			d.Text = append(d.Text,
				cx, y, u0, v0, c.R, c.G, c.B, c.A,
				cx+cw, y, u1, v0, c.R, c.G, c.B, c.A,
				cx+cw, y+ch, u1, v1, c.R, c.G, c.B, c.A,
				cx, y, u0, v0, c.R, c.G, c.B, c.A,
				cx+cw, y+ch, u1, v1, c.R, c.G, c.B, c.A,
				cx, y+ch, u0, v1, c.R, c.G, c.B, c.A,
			)
		}
		cx += cw
	}
}

// MeasureText returns the size of text at scale.
func (d *DrawList) MeasureText(text string, scale float32) (float32, float32) {
	if d.Font == nil {
		return 0, 0
	}
	return d.Font.MeasureText(text, scale)
}
