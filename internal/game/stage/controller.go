package stage

import (
	"github.com/Faultbox/scrollscene/internal/engine/input"
)

// Actions are requests from input that the game shell carries out.
type Actions struct {
	Quit          bool
	TogglePanel   bool
	Screenshot    bool
	Resized       bool
	SectionChange bool
}

// Controller routes input events into the frame context and section trigger.
type Controller struct {
	Context *FrameContext
	Page    Page
	Trigger *SectionTrigger

	MaxPixelRatio float32
	// DrawableWidth returns the framebuffer width after a resize. Nil means
	// the drawable matches the window.
	DrawableWidth func() int
}

// Handle applies one event.
func (c *Controller) Handle(ev input.Event) Actions {
	var act Actions
	h := c.Context.Viewport.Height

	switch ev.Type {
	case input.EventQuit:
		act.Quit = true

	case input.EventWindowResize:
		dw := ev.Width
		if c.DrawableWidth != nil {
			dw = c.DrawableWidth()
		}
		c.Context.Resize(ev.Width, ev.Height, dw, c.MaxPixelRatio)
		act.Resized = true
		// A shorter page can push the offset past its end
		if clamped := c.Page.Clamp(c.Context.Scroll, ev.Height); clamped != c.Context.Scroll {
			act.SectionChange = c.scrollTo(clamped)
		}

	case input.EventMouseMove:
		c.Context.PointerMove(ev.MouseX, ev.MouseY)

	case input.EventMouseWheel:
		act.SectionChange = c.scrollTo(c.Page.Wheel(c.Context.Scroll, ev.WheelY, h))

	case input.EventKeyDown:
		switch ev.Key {
		case input.KeyEscape:
			act.Quit = true
		case input.KeyF1:
			act.TogglePanel = true
		case input.KeyF12:
			act.Screenshot = true
		case input.KeyDown:
			act.SectionChange = c.scrollTo(c.Context.Scroll + c.Page.KeyStep)
		case input.KeyUp:
			act.SectionChange = c.scrollTo(c.Context.Scroll - c.Page.KeyStep)
		case input.KeyPageDown:
			act.SectionChange = c.scrollTo(c.Context.Scroll + float32(h))
		case input.KeyPageUp:
			act.SectionChange = c.scrollTo(c.Context.Scroll - float32(h))
		case input.KeySpace:
			step := float32(h)
			if ev.Shift {
				step = -step
			}
			act.SectionChange = c.scrollTo(c.Context.Scroll + step)
		case input.KeyHome:
			act.SectionChange = c.scrollTo(0)
		case input.KeyEnd:
			act.SectionChange = c.scrollTo(c.Page.Max(h))
		}
	}

	return act
}

// HandleAll applies events in order and merges the resulting actions.
func (c *Controller) HandleAll(events []input.Event) Actions {
	var all Actions
	for _, ev := range events {
		a := c.Handle(ev)
		all.Quit = all.Quit || a.Quit
		all.TogglePanel = all.TogglePanel != a.TogglePanel
		all.Screenshot = all.Screenshot || a.Screenshot
		all.Resized = all.Resized || a.Resized
		all.SectionChange = all.SectionChange || a.SectionChange
	}
	return all
}

// ScrollTo moves the page and fires the section trigger, like a scroll
// event. Returns true if a new section started.
func (c *Controller) ScrollTo(offset float32) bool {
	return c.scrollTo(offset)
}

func (c *Controller) scrollTo(offset float32) bool {
	h := c.Context.Viewport.Height
	offset = c.Page.Clamp(offset, h)
	if offset == c.Context.Scroll {
		return false
	}
	c.Context.Scroll = offset
	if c.Trigger == nil {
		return false
	}
	return c.Trigger.OnScroll(offset, h)
}
