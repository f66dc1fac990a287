// Package ui2d is a small immediate-mode UI drawn over the scene: panels,
// labels, buttons, sliders and color swatches. It only produces a DrawList;
// the glui subpackage puts it on screen.
package ui2d

import "fmt"

const (
	titleBarH  = 22
	padding    = 8
	rowSpacing = 6
	textScale  = 1
)

// Rect is an axis-aligned rectangle in window pixels.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Context is the main UI context that manages layout and input.
type Context struct {
	draw  *DrawList
	input *InputState

	width, height float32

	// Widget pressed this frame; interaction stays with it until release
	activeWidget string

	panel    *Rect
	cursorX  float32
	cursorY  float32
	rowH     float32
	sameLine bool
	lastX    float32
	lastY    float32

	// Set when the pointer is over any panel drawn this frame
	hovered bool
}

// NewContext creates a UI context for a window of the given size.
func NewContext(width, height int) *Context {
	return &Context{
		draw:   NewDrawList(NewFont()),
		input:  &InputState{},
		width:  float32(width),
		height: float32(height),
	}
}

// DrawList returns the geometry queued this frame.
func (c *Context) DrawList() *DrawList {
	return c.draw
}

// Input returns the input state for modification.
func (c *Context) Input() *InputState {
	return c.input
}

// Resize updates the screen size.
func (c *Context) Resize(width, height int) {
	c.width = float32(width)
	c.height = float32(height)
}

// ScreenSize returns the logical screen size.
func (c *Context) ScreenSize() (float32, float32) {
	return c.width, c.height
}

// Hovered reports whether the pointer was over UI during the last frame.
func (c *Context) Hovered() bool {
	return c.hovered
}

// Begin starts a new UI frame.
func (c *Context) Begin() {
	c.input.Update()
	c.draw.Reset()
	c.hovered = false
}

// End finishes the UI frame.
func (c *Context) End() {
	if c.input.MouseLeftReleased {
		c.activeWidget = ""
	}
}

// BeginPanel starts a titled panel and lays widgets out inside it.
func (c *Context) BeginPanel(x, y, w, h float32, title string) {
	r := Rect{x, y, w, h}
	c.panel = &r
	if c.input.IsMouseInRect(r) {
		c.hovered = true
	}

	c.draw.DrawPanel(r, ColorPanelBg, ColorPanelBorder)
	c.draw.DrawRect(Rect{x + 1, y + 1, w - 2, titleBarH - 1}, ColorButtonNormal)
	_, th := c.draw.MeasureText(title, textScale)
	c.draw.DrawText(x+padding, y+(titleBarH-th)/2, title, textScale, ColorText)

	c.cursorX = x + padding
	c.cursorY = y + titleBarH + padding
	c.rowH = 0
	c.sameLine = false
}

// EndPanel finishes the current panel.
func (c *Context) EndPanel() {
	c.panel = nil
}

// SameLine places the next widget to the right of the previous one.
func (c *Context) SameLine() {
	c.sameLine = true
}

// ContentWidth returns the usable width inside the current panel.
func (c *Context) ContentWidth() float32 {
	if c.panel == nil {
		return c.width - 2*padding
	}
	return c.panel.W - 2*padding
}

// place reserves a w x h slot and returns it.
func (c *Context) place(w, h float32) Rect {
	var r Rect
	if c.sameLine {
		r = Rect{c.lastX + padding, c.lastY, w, h}
		c.sameLine = false
		c.rowH = max(c.rowH, h)
	} else {
		c.cursorY += c.rowH
		if c.rowH > 0 {
			c.cursorY += rowSpacing
		}
		r = Rect{c.cursorX, c.cursorY, w, h}
		c.rowH = h
	}
	c.lastX = r.X + r.W
	c.lastY = r.Y
	return r
}

// Label draws a line of text.
func (c *Context) Label(text string) {
	c.LabelColored(text, ColorText)
}

// LabelColored draws a line of text in color.
func (c *Context) LabelColored(text string, color Color) {
	w, h := c.draw.MeasureText(text, textScale)
	r := c.place(w, h)
	c.draw.DrawText(r.X, r.Y, text, textScale, color)
}

// Button draws a button and reports whether it was clicked this frame.
// A click is a press and release both inside the button.
func (c *Context) Button(id string, width float32, label string) bool {
	_, th := c.draw.MeasureText(label, textScale)
	return c.ButtonAt(id, c.place(width, th+10), label)
}

// ButtonAt draws a button at a fixed position, outside any panel layout.
func (c *Context) ButtonAt(id string, r Rect, label string) bool {
	hover := c.input.IsMouseInRect(r)
	if hover {
		c.hovered = true
	}
	if hover && c.input.MouseLeftPressed {
		c.activeWidget = id
	}
	clicked := hover && c.input.MouseLeftReleased && c.activeWidget == id

	bg := ColorButtonNormal
	switch {
	case c.activeWidget == id && c.input.MouseLeftDown:
		bg = ColorButtonActive
	case hover:
		bg = ColorButtonHover
	}
	c.draw.DrawPanel(r, bg, ColorPanelBorder)

	tw, th := c.draw.MeasureText(label, textScale)
	c.draw.DrawText(r.X+(r.W-tw)/2, r.Y+(r.H-th)/2, label, textScale, ColorText)
	return clicked
}

// MeasureText returns the size of label in the UI font.
func (c *Context) MeasureText(label string) (float32, float32) {
	return c.draw.MeasureText(label, textScale)
}

// Slider draws a horizontal slider for value in [lo, hi]. It returns the
// new value and whether it changed this frame.
func (c *Context) Slider(id string, width float32, label string, value, lo, hi float32) (float32, bool) {
	text := fmt.Sprintf("%s %.2f", label, value)
	_, th := c.draw.MeasureText(text, textScale)
	r := c.place(width, th+10)

	hover := c.input.IsMouseInRect(r)
	if hover {
		c.hovered = true
	}
	if hover && c.input.MouseLeftPressed {
		c.activeWidget = id
	}

	changed := false
	if c.activeWidget == id && c.input.MouseLeftDown && hi > lo && r.W > 0 {
		t := (c.input.MouseX - r.X) / r.W
		t = min(max(t, 0), 1)
		if v := lo + t*(hi-lo); v != value {
			value = v
			changed = true
		}
	}

	c.draw.DrawPanel(r, ColorTrack, ColorPanelBorder)
	fill := float32(0)
	if hi > lo {
		fill = (value - lo) / (hi - lo)
	}
	c.draw.DrawRect(Rect{r.X + 1, r.Y + 1, (r.W - 2) * min(max(fill, 0), 1), r.H - 2}, ColorButtonActive)
	c.draw.DrawText(r.X+padding, r.Y+(r.H-th)/2, fmt.Sprintf("%s %.2f", label, value), textScale, ColorText)
	return value, changed
}

// Swatch draws a filled color box.
func (c *Context) Swatch(width, height float32, color Color) {
	r := c.place(width, height)
	c.draw.DrawPanel(r, color, ColorPanelBorder)
}
