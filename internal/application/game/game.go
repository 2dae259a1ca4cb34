// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/recycle/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
// Scenes receive the wall-clock time elapsed since the previous Update,
// so the session countdown follows real seconds even when frames drop.
type Game struct {
	current scene.Scene
	screenW int
	screenH int

	now  func() time.Time
	last time.Time
	dt   float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		now:     time.Now,
		dt:      1.0 / 60.0,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.elapsed())
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// elapsed returns seconds since the previous call; the first frame counts as one tick
func (g *Game) elapsed() float64 {
	if g.now == nil {
		return g.dt
	}
	t := g.now()
	if g.last.IsZero() {
		g.last = t
		return g.dt
	}
	dt := t.Sub(g.last).Seconds()
	g.last = t
	if dt < 0 {
		return 0
	}
	return dt
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Close lets the current scene release its resources after the loop stops
func (g *Game) Close() {
	g.current.OnExit()
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// SetDT switches to a fixed delta time instead of the wall clock.
// Useful for testing or replays.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
	g.now = nil
}
