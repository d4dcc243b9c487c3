// Package display owns the window: its size, the event queue fed from the
// window system, the pixel projection and frame presentation.
package display

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"

	"bouncebox/internal/input"
)

var (
	ErrNoDisplay = errors.New("cannot connect to display server")
	ErrNoVisual  = errors.New("no appropriate visual found")
)

var getenv = os.Getenv

// Projection maps y-up window pixels onto the y-down screen, 1:1.
type Projection struct {
	Width, Height int
}

func (p Projection) ToScreen(x, y float64) (float64, float64) {
	return x, float64(p.Height) - y
}

func (p Projection) Viewport() image.Rectangle {
	return image.Rect(0, 0, p.Width, p.Height)
}

// Session is the open window. It is not safe for concurrent use; ebiten
// calls Update, Draw and Layout from one goroutine.
type Session struct {
	width, height int // tracked size
	outW, outH    int // size last reported by Layout
	proj          Projection

	queue   []input.Event
	keys    []ebiten.Key
	cursorX int
	cursorY int

	frames int
	closed bool
}

// Open configures a resizable window of the given size and title. The window
// appears once ebiten.RunGame starts.
func Open(width, height int, title string) (*Session, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d RGBA surface", ErrNoVisual, width, height)
	}
	if !displayReachable() {
		return nil, ErrNoDisplay
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("window %dx%d %q", width, height, title)
	return newSession(width, height), nil
}

func newSession(width, height int) *Session {
	return &Session{
		width:  width,
		height: height,
		outW:   width,
		outH:   height,
		proj:   Projection{Width: width, Height: height},
	}
}

// displayReachable reports whether an X server is configured. ebiten only
// talks X11 on these systems.
func displayReachable() bool {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return getenv("DISPLAY") != ""
	}
	return true
}

func (s *Session) Projection() Projection {
	return s.proj
}

// Observe records the outside size ebiten hands to Layout. A difference from
// the tracked size is queued as a Resize event by the next Poll.
func (s *Session) Observe(width, height int) {
	s.outW, s.outH = width, height
}

// HasPendingEvent reports whether NextEvent has something to return.
func (s *Session) HasPendingEvent() bool {
	return len(s.queue) > 0
}

// NextEvent pops the oldest queued event. Callers check HasPendingEvent
// first.
func (s *Session) NextEvent() input.Event {
	e := s.queue[0]
	s.queue = s.queue[1:]
	return e
}

func (s *Session) push(e input.Event) {
	s.queue = append(s.queue, e)
}

// NotifyResize applies a Resize event whose size differs from the tracked
// one, updating the viewport and projection, and returns the new size.
func (s *Session) NotifyResize(e input.Event) (width, height int, ok bool) {
	if e.Kind != input.Resize {
		return 0, 0, false
	}
	if e.X == s.width && e.Y == s.height {
		return 0, 0, false
	}
	s.width, s.height = e.X, e.Y
	s.proj = Projection{Width: e.X, Height: e.Y}
	return s.width, s.height, true
}

// Present finishes the frame. ebiten swaps buffers once Draw returns.
func (s *Session) Present() {
	s.frames++
}

func (s *Session) Frames() int {
	return s.frames
}

// Close tears the session down. Only the first call has any effect.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	log.Printf("closed after %d frames", s.Frames())
}

// Run shows the window and drives game until it terminates. ebiten reports
// a missing graphics context or pixel format from here, so any error is
// wrapped in ErrNoVisual.
func (s *Session) Run(game ebiten.Game) error {
	return runError(ebiten.RunGame(game))
}

func runError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrNoVisual, err)
}
