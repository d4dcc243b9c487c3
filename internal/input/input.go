// Package input turns window-system notifications into a small generic event
// form and maps them to loop actions.
package input

// Kind identifies what an Event reports.
type Kind int

const (
	Resize Kind = iota
	KeyPress
	KeyRelease
	ButtonPress
	ButtonRelease
	Motion
)

// Key is a keyboard key the loop knows about.
type Key int

const (
	KeyOther Key = iota
	KeyOne
	KeyEscape
)

// Button is a mouse button.
type Button int

const (
	ButtonLeft Button = iota + 1
	ButtonMiddle
	ButtonRight
)

// Event is one queued notification. X and Y carry the cursor position for
// mouse events and the new window size for Resize.
type Event struct {
	Kind   Kind
	Key    Key
	Button Button
	X, Y   int
}

// IsMouse reports whether e came from the pointer.
func (e Event) IsMouse() bool {
	return e.Kind == ButtonPress || e.Kind == ButtonRelease || e.Kind == Motion
}

// Action is what the loop should do after a key event.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
)

// Keyboard maps key presses to actions.
type Keyboard struct{}

func (Keyboard) Handle(e Event) Action {
	if e.Kind != KeyPress {
		return ActionNone
	}
	switch e.Key {
	case KeyOne:
		// Reserved.
	case KeyEscape:
		return ActionQuit
	}
	return ActionNone
}

// Mouse tracks the last cursor position so repeated motion reports at the
// same spot are dropped.
type Mouse struct {
	lastX, lastY int
}

// Handle reports whether e was a mouse event the demo reacts to. Button
// presses are accepted but do nothing yet.
func (m *Mouse) Handle(e Event) bool {
	if !e.IsMouse() {
		return false
	}
	switch e.Kind {
	case ButtonRelease:
		return false
	case ButtonPress:
		switch e.Button {
		case ButtonLeft, ButtonRight:
			return true
		}
		return false
	}

	// Motion
	if e.X == m.lastX && e.Y == m.lastY {
		return false
	}
	m.lastX, m.lastY = e.X, e.Y
	return true
}
