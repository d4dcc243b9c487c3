package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"bouncebox/internal/display"
	"bouncebox/internal/input"
	"bouncebox/internal/render"
	"bouncebox/internal/world"
)

// The square keeps its startup height when the window is resized. Switch to
// world.CenterY to keep it vertically centered instead.
const yPolicy = world.KeepY

// session is the part of display.Session the loop drives.
type session interface {
	Observe(width, height int)
	Poll()
	HasPendingEvent() bool
	NextEvent() input.Event
	NotifyResize(e input.Event) (width, height int, ok bool)
	Projection() display.Projection
	Present()
}

// Game holds the loop state
type Game struct {
	session  session
	keyboard input.Keyboard
	mouse    input.Mouse

	world     world.World
	color     render.Color // after this tick's ramp, used by the next tick
	drawn     render.Color // painted this tick
	visible   bool
	prevWidth int // width at the end of the previous tick
	done      bool
}

func NewGame(s session) *Game {
	w := world.New(s.Projection().Width, s.Projection().Height)
	return &Game{
		session:   s,
		world:     w,
		color:     render.Initial,
		drawn:     render.Initial,
		visible:   w.Fits(),
		prevWidth: w.Width,
	}
}

// Update: Events, Physics, Color (60 TPS)
// An Escape press finishes the tick so its frame is still drawn; the next
// Update ends the game.
func (g *Game) Update() error {
	if g.done {
		return ebiten.Termination
	}

	// 1. Drain pending events
	g.session.Poll()
	for !g.done && g.session.HasPendingEvent() {
		e := g.session.NextEvent()
		if w, h, ok := g.session.NotifyResize(e); ok {
			world.Resize(&g.world, w, h, yPolicy)
		}
		g.mouse.Handle(e)
		if g.keyboard.Handle(e) == input.ActionQuit {
			g.done = true
		}
	}

	// 2. Physics
	world.Step(&g.world)

	// 3. The square is painted with the color it had before this tick's ramp
	g.drawn = g.color
	g.color, g.visible = render.Frame(g.world, g.prevWidth, g.color)
	g.prevWidth = g.world.Width

	return nil
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	g.paint(render.Screen{Target: screen, Proj: g.session.Projection()})
	g.session.Present()
}

func (g *Game) paint(d render.Drawer) {
	render.Draw(d, g.world, g.drawn, g.visible)
}

// Layout: 1:1 with the window. ebiten needs a positive screen, so a
// collapsed window still gets one pixel while the session sees its real size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.session.Observe(outsideWidth, outsideHeight)
	return max(outsideWidth, 1), max(outsideHeight, 1)
}
