package display

import (
	"errors"
	"image"
	"runtime"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"bouncebox/internal/input"
)

func TestOpenRejectsEmptySurface(t *testing.T) {
	for _, size := range [][2]int{{0, 200}, {400, 0}, {-1, -1}} {
		_, err := Open(size[0], size[1], "test")
		if !errors.Is(err, ErrNoVisual) {
			t.Errorf("Open(%d, %d) error = %v, want ErrNoVisual", size[0], size[1], err)
		}
	}
}

func TestOpenWithoutDisplay(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("DISPLAY only matters on X11 systems")
	}
	old := getenv
	getenv = func(string) string { return "" }
	defer func() { getenv = old }()

	if _, err := Open(400, 200, "test"); !errors.Is(err, ErrNoDisplay) {
		t.Errorf("Open() error = %v, want ErrNoDisplay", err)
	}
}

func TestEventQueue(t *testing.T) {
	s := newSession(400, 200)
	if s.HasPendingEvent() {
		t.Fatal("new session has pending events")
	}
	s.push(input.Event{Kind: input.KeyPress, Key: input.KeyOne})
	s.push(input.Event{Kind: input.KeyPress, Key: input.KeyEscape})

	var got []input.Key
	for s.HasPendingEvent() {
		got = append(got, s.NextEvent().Key)
	}
	if len(got) != 2 || got[0] != input.KeyOne || got[1] != input.KeyEscape {
		t.Errorf("drained keys = %v, want [KeyOne KeyEscape]", got)
	}
}

func TestNotifyResize(t *testing.T) {
	tests := []struct {
		name   string
		e      input.Event
		wantOK bool
	}{
		{"not a resize", input.Event{Kind: input.Motion, X: 300, Y: 100}, false},
		{"same size", input.Event{Kind: input.Resize, X: 400, Y: 200}, false},
		{"wider", input.Event{Kind: input.Resize, X: 500, Y: 200}, true},
		{"taller", input.Event{Kind: input.Resize, X: 400, Y: 300}, true},
		{"collapsed", input.Event{Kind: input.Resize, X: 0, Y: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(400, 200)
			w, h, ok := s.NotifyResize(tt.e)
			if ok != tt.wantOK {
				t.Fatalf("NotifyResize(%+v) ok = %v, want %v", tt.e, ok, tt.wantOK)
			}
			if !ok {
				if sw, sh := s.width, s.height; sw != 400 || sh != 200 {
					t.Errorf("size changed to %dx%d on ignored event", sw, sh)
				}
				return
			}
			if w != tt.e.X || h != tt.e.Y {
				t.Errorf("NotifyResize() = %dx%d, want %dx%d", w, h, tt.e.X, tt.e.Y)
			}
			want := image.Rect(0, 0, tt.e.X, tt.e.Y)
			if got := s.Projection().Viewport(); got != want {
				t.Errorf("viewport = %v, want %v", got, want)
			}
		})
	}
}

func TestObservedResizeQueuedOnce(t *testing.T) {
	s := newSession(400, 200)

	s.pollResize()
	if s.HasPendingEvent() {
		t.Fatal("resize queued before the size changed")
	}

	s.Observe(300, 200)
	s.pollResize()
	var got []input.Event
	for s.HasPendingEvent() {
		got = append(got, s.NextEvent())
	}
	want := input.Event{Kind: input.Resize, X: 300, Y: 200}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("queued %+v, want [%+v]", got, want)
	}

	if w, h, ok := s.NotifyResize(got[0]); !ok || w != 300 || h != 200 {
		t.Fatalf("NotifyResize() = %d, %d, %v, want 300, 200, true", w, h, ok)
	}
	s.pollResize()
	if s.HasPendingEvent() {
		t.Errorf("resize queued again after it was applied: %+v", s.NextEvent())
	}
}

func TestRunError(t *testing.T) {
	if err := runError(nil); err != nil {
		t.Errorf("runError(nil) = %v, want nil", err)
	}
	cause := errors.New("APIUnavailable: GLX: No GLXFBConfigs returned")
	err := runError(cause)
	if !errors.Is(err, ErrNoVisual) || !errors.Is(err, cause) {
		t.Errorf("runError() = %v, want it to wrap ErrNoVisual and the cause", err)
	}
}

func TestProjectionToScreen(t *testing.T) {
	p := Projection{Width: 400, Height: 200}
	tests := []struct {
		x, y   float64
		sx, sy float64
	}{
		{0, 0, 0, 200},
		{20, 100, 20, 100},
		{400, 200, 400, 0},
		{40, 150, 40, 50},
	}
	for _, tt := range tests {
		if sx, sy := p.ToScreen(tt.x, tt.y); sx != tt.sx || sy != tt.sy {
			t.Errorf("ToScreen(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, sx, sy, tt.sx, tt.sy)
		}
	}
}

func TestPresentAndClose(t *testing.T) {
	s := newSession(400, 200)
	s.Present()
	s.Present()
	if s.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", s.Frames())
	}
	s.Close()
	s.Close()
	if !s.closed {
		t.Error("session not marked closed")
	}
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		k    ebiten.Key
		want input.Key
	}{
		{ebiten.Key1, input.KeyOne},
		{ebiten.KeyEscape, input.KeyEscape},
		{ebiten.KeyA, input.KeyOther},
		{ebiten.Key2, input.KeyOther},
	}
	for _, tt := range tests {
		if got := translateKey(tt.k); got != tt.want {
			t.Errorf("translateKey(%v) = %v, want %v", tt.k, got, tt.want)
		}
	}
}
