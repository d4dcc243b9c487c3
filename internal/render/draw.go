package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bouncebox/internal/display"
	"bouncebox/internal/world"
)

// Background is the clear color, a dark grey.
var Background = color.RGBA{0x1a, 0x1a, 0x1a, 0xff}

// Drawer is the rendering backend: it clears the frame and fills an
// axis-aligned square given its center in y-up window pixels.
type Drawer interface {
	Clear()
	FillSquare(cx, cy, half float64, c Color)
}

// Draw paints one frame.
func Draw(d Drawer, w world.World, c Color, visible bool) {
	d.Clear()
	if !visible {
		return
	}
	d.FillSquare(w.X, w.Y, w.HalfWidth, c)
}

// Screen draws onto an ebiten image through the session projection.
type Screen struct {
	Target *ebiten.Image
	Proj   display.Projection
}

func (s Screen) Clear() {
	s.Target.Fill(Background)
}

func (s Screen) FillSquare(cx, cy, half float64, c Color) {
	x, y := s.Proj.ToScreen(cx-half, cy+half) // top-left corner
	side := float32(2 * half)
	vector.DrawFilledRect(s.Target, float32(x), float32(y), side, side, c.ToRGBA(), false)
}
