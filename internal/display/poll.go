package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"bouncebox/internal/input"
)

var buttons = []struct {
	eb ebiten.MouseButton
	b  input.Button
}{
	{ebiten.MouseButtonLeft, input.ButtonLeft},
	{ebiten.MouseButtonMiddle, input.ButtonMiddle},
	{ebiten.MouseButtonRight, input.ButtonRight},
}

// Poll queues everything that happened since the previous tick: a size
// change, key and button edges, then cursor motion.
func (s *Session) Poll() {
	s.pollResize()
	s.pollInput()
}

func (s *Session) pollResize() {
	if s.outW != s.width || s.outH != s.height {
		s.push(input.Event{Kind: input.Resize, X: s.outW, Y: s.outH})
	}
}

func (s *Session) pollInput() {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		s.push(input.Event{Kind: input.KeyPress, Key: translateKey(k)})
	}
	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		s.push(input.Event{Kind: input.KeyRelease, Key: translateKey(k)})
	}

	x, y := ebiten.CursorPosition()
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			s.push(input.Event{Kind: input.ButtonPress, Button: b.b, X: x, Y: y})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			s.push(input.Event{Kind: input.ButtonRelease, Button: b.b, X: x, Y: y})
		}
	}
	if x != s.cursorX || y != s.cursorY {
		s.cursorX, s.cursorY = x, y
		s.push(input.Event{Kind: input.Motion, X: x, Y: y})
	}
}

func translateKey(k ebiten.Key) input.Key {
	switch k {
	case ebiten.Key1:
		return input.KeyOne
	case ebiten.KeyEscape:
		return input.KeyEscape
	}
	return input.KeyOther
}
