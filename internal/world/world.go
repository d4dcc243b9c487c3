// Package world holds the simulation record for the bouncing square and the
// per-tick motion integrator.
package world

// Initial geometry and motion.
const (
	HalfWidth = 20.0
	Speed     = 25.0
)

// YPolicy decides what happens to the square's vertical position when the
// window is resized.
type YPolicy int

const (
	// KeepY leaves Y where it was placed at startup, half the initial height.
	KeepY YPolicy = iota
	// CenterY moves Y to half the new height.
	CenterY
)

// World is the window resolution plus the square's geometry and motion.
type World struct {
	Width, Height int
	HalfWidth     float64
	Direction     float64 // signed pixels per tick
	X, Y          float64 // square center, y up
}

// New places the square against the left edge, vertically centered, moving
// right.
func New(width, height int) World {
	return World{
		Width:     width,
		Height:    height,
		HalfWidth: HalfWidth,
		Direction: Speed,
		X:         HalfWidth,
		Y:         float64(height) / 2,
	}
}

// Step advances the square by one tick and bounces it off the window edges.
// Both edges are checked on every call, so in a window narrower than the
// square both clamps fire and the square stays pinned at HalfWidth.
func Step(w *World) {
	w.X += w.Direction

	// Right edge
	if right := float64(w.Width) - w.HalfWidth; w.X >= right {
		w.X = right
		w.Direction = -w.Direction
	}

	// Left edge
	if w.X <= w.HalfWidth {
		w.X = w.HalfWidth
		w.Direction = -w.Direction
	}
}

// Resize records a new window resolution.
func Resize(w *World, width, height int, policy YPolicy) {
	w.Width, w.Height = width, height
	if policy == CenterY {
		w.Y = float64(height) / 2
	}
}

// Fits reports whether the window is large enough to show the whole square.
func (w World) Fits() bool {
	side := 2 * w.HalfWidth
	return float64(w.Width) >= side && float64(w.Height) >= side
}

// Contained reports whether the square's center lies within the horizontal
// bounds Step enforces.
func (w World) Contained() bool {
	return w.X >= w.HalfWidth && w.X <= float64(w.Width)-w.HalfWidth
}
