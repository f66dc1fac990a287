// Package stage holds the per-frame scene logic: input samplers, the virtual
// page, the section trigger and the frame updater. It has no window or GL
// dependency, so everything here runs under plain go test.
package stage

import "github.com/chewxy/math32"

// Viewport is the window's logical size and its device pixel ratio.
type Viewport struct {
	Width      int
	Height     int
	PixelRatio float32
}

// Aspect returns width / height, or 1 for a degenerate viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Surface returns the render target size: the logical size times the
// pixel ratio, rounded, and at least 1x1.
func (v Viewport) Surface() (int, int) {
	w := int(math32.Round(float32(v.Width) * v.PixelRatio))
	h := int(math32.Round(float32(v.Height) * v.PixelRatio))
	return max(w, 1), max(h, 1)
}

// Cursor is the pointer position normalised to [-0.5, 0.5] on both axes,
// with +Y pointing down as in window coordinates.
type Cursor struct {
	X, Y float32
}

// FrameContext is the input state sampled between frames and read by the
// updater. The game loop owns it; handlers overwrite fields, last write
// wins.
type FrameContext struct {
	Viewport Viewport
	Cursor   Cursor
	Scroll   float32 // page offset in pixels
}

// NewFrameContext creates a context for a window of the given size.
func NewFrameContext(width, height, drawableWidth int, maxPixelRatio float32) *FrameContext {
	ctx := &FrameContext{}
	ctx.Resize(width, height, drawableWidth, maxPixelRatio)
	return ctx
}

// Resize records a new window size. The pixel ratio is drawableWidth/width
// capped at maxPixelRatio, and never below 1. The result depends only on
// the arguments.
func (c *FrameContext) Resize(width, height, drawableWidth int, maxPixelRatio float32) {
	c.Viewport.Width = width
	c.Viewport.Height = height

	ratio := float32(1)
	if width > 0 && drawableWidth > 0 {
		ratio = float32(drawableWidth) / float32(width)
	}
	if maxPixelRatio > 0 && ratio > maxPixelRatio {
		ratio = maxPixelRatio
	}
	if ratio < 1 {
		ratio = 1
	}
	c.Viewport.PixelRatio = ratio
}

// PointerMove records the pointer position in window pixels.
func (c *FrameContext) PointerMove(px, py int) {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return
	}
	c.Cursor.X = float32(px)/float32(c.Viewport.Width) - 0.5
	c.Cursor.Y = float32(py)/float32(c.Viewport.Height) - 0.5
}
