// Package sdlinput translates SDL2 events into input events.
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/scrollscene/internal/engine/input"
)

var keys = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_ESCAPE:   input.KeyEscape,
	sdl.SCANCODE_UP:       input.KeyUp,
	sdl.SCANCODE_DOWN:     input.KeyDown,
	sdl.SCANCODE_PAGEUP:   input.KeyPageUp,
	sdl.SCANCODE_PAGEDOWN: input.KeyPageDown,
	sdl.SCANCODE_HOME:     input.KeyHome,
	sdl.SCANCODE_END:      input.KeyEnd,
	sdl.SCANCODE_SPACE:    input.KeySpace,
	sdl.SCANCODE_F1:       input.KeyF1,
	sdl.SCANCODE_F12:      input.KeyF12,
}

// Poll drains the SDL queue into in. Returns true if the game should quit.
func Poll(in *input.Input) bool {
	in.Reset()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			in.Push(input.Event{Type: input.EventQuit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				in.Push(input.Event{
					Type:   input.EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			key, ok := keys[e.Keysym.Scancode]
			if !ok {
				continue
			}
			shift := uint16(e.Keysym.Mod)&uint16(sdl.KMOD_SHIFT) != 0
			if e.Type == sdl.KEYDOWN {
				in.Push(input.Event{Type: input.EventKeyDown, Key: key, Shift: shift})
			} else if e.Type == sdl.KEYUP {
				in.Push(input.Event{Type: input.EventKeyUp, Key: key, Shift: shift})
			}

		case *sdl.MouseMotionEvent:
			in.Push(input.Event{
				Type:   input.EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
			})

		case *sdl.MouseButtonEvent:
			ev := input.Event{
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: e.Button,
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				ev.Type = input.EventMouseDown
			} else {
				ev.Type = input.EventMouseUp
			}
			in.Push(ev)

		case *sdl.MouseWheelEvent:
			dy := float32(e.Y)
			if e.Direction == uint32(sdl.MOUSEWHEEL_FLIPPED) {
				dy = -dy
			}
			in.Push(input.Event{Type: input.EventMouseWheel, WheelY: dy})
		}
	}

	return in.QuitRequested()
}
