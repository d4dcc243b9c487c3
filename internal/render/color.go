// Package render evolves the square's color from frame to frame and draws it.
package render

import (
	"image/color"

	"bouncebox/internal/world"
)

const (
	// Step is how far red and blue move per frame in which the window
	// width changed.
	Step = 0.1
	// EdgeMargin is the distance from both edges the square must clear
	// before its red value is restored from the snapshot.
	EdgeMargin = 30
)

// Color is the square's current color plus the red snapshot taken when the
// square crosses the middle of the window. Channels are in [0, 1].
type Color struct {
	R, G, B float64
	PrevR   float64
}

// Initial is the color the square starts with.
var Initial = Color{R: 0.3, G: 0.2, B: 0.8, PrevR: 0.3}

// ToRGBA converts to an opaque 8-bit color.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{channel(c.R), channel(c.G), channel(c.B), 0xff}
}

func channel(v float64) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}

// Frame returns the color for the frame described by w, given the window
// width seen on the previous frame, and whether the square is drawn at all.
// When the window is too small to hold the square nothing but the midpoint
// snapshot is updated.
func Frame(w world.World, prevWidth int, c Color) (Color, bool) {
	// 1. Snapshot red at the exact middle
	if w.X == float64(w.Width/2) {
		c.PrevR = c.R
	}

	// 2. Too small to draw
	if !w.Fits() {
		return c, false
	}

	// 3. Wider turns bluer, narrower turns redder
	switch {
	case w.Width > prevWidth:
		c.B += Step
		c.R -= Step
		c.R = max(c.R, 0)
		c.B = min(c.B, 1)
	case w.Width < prevWidth:
		c.R += Step
		c.B -= Step
		c.R = min(c.R, 1)
		c.B = max(c.B, 0)
	}

	// 4. Edge flash, or restore once well inside
	right, left := w.X+w.HalfWidth, w.X-w.HalfWidth
	switch {
	case right == float64(w.Width) || left == 0:
		c.R = 1
	case right < float64(w.Width-EdgeMargin) && left > EdgeMargin:
		c.R = c.PrevR
	}

	return c, true
}
