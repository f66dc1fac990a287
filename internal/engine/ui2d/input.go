package ui2d

import "github.com/Faultbox/scrollscene/internal/engine/input"

// InputState holds the mouse state the widgets react to.
type InputState struct {
	MouseX float32
	MouseY float32

	MouseLeftDown     bool
	MouseLeftPressed  bool // went down this frame
	MouseLeftReleased bool // went up this frame

	prevMouseLeft bool
}

// Feed applies a window event. Coordinates are logical window pixels.
func (i *InputState) Feed(ev input.Event) {
	switch ev.Type {
	case input.EventMouseMove:
		i.MouseX = float32(ev.MouseX)
		i.MouseY = float32(ev.MouseY)
	case input.EventMouseDown:
		i.MouseX = float32(ev.MouseX)
		i.MouseY = float32(ev.MouseY)
		if ev.Button == input.ButtonLeft {
			i.MouseLeftDown = true
		}
	case input.EventMouseUp:
		i.MouseX = float32(ev.MouseX)
		i.MouseY = float32(ev.MouseY)
		if ev.Button == input.ButtonLeft {
			i.MouseLeftDown = false
		}
	}
}

// Update derives press/release edges. Call once per frame after Feed.
func (i *InputState) Update() {
	i.MouseLeftPressed = i.MouseLeftDown && !i.prevMouseLeft
	i.MouseLeftReleased = !i.MouseLeftDown && i.prevMouseLeft
	i.prevMouseLeft = i.MouseLeftDown
}

// IsMouseInRect checks if the mouse is within a rectangle.
func (i *InputState) IsMouseInRect(r Rect) bool {
	return r.Contains(i.MouseX, i.MouseY)
}
