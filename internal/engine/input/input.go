// Package input defines the window-system independent events the scene
// reacts to. The sdlinput subpackage fills an Input from SDL.
package input

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Key identifies the keys the scene binds.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeySpace
	KeyF1
	KeyF12
)

// Mouse buttons, numbered like SDL.
const (
	ButtonLeft   uint8 = 1
	ButtonMiddle uint8 = 2
	ButtonRight  uint8 = 3
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Shift  bool
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
	WheelY float32 // positive scrolls up, toward the top of the page
}

// Input collects the events of one frame.
type Input struct {
	events []Event
	quit   bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Reset clears the previous frame's events.
func (i *Input) Reset() {
	i.events = i.events[:0]
	i.quit = false
}

// Push appends an event.
func (i *Input) Push(e Event) {
	if e.Type == EventQuit {
		i.quit = true
	}
	i.events = append(i.events, e)
}

// Events returns the events since the last Reset.
func (i *Input) Events() []Event {
	return i.events
}

// QuitRequested reports whether a quit event arrived since the last Reset.
func (i *Input) QuitRequested() bool {
	return i.quit
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(key Key) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == key {
			return true
		}
	}
	return false
}
