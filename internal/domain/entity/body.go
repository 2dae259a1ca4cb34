package entity

import "math"

// Rect is an axis-aligned bounding box in pixels.
// X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Overlaps reports whether a and b intersect with positive area on both axes.
// Touching edges do not count.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// OverlapDepth returns how far a reaches into b on each axis.
// Only meaningful when Overlaps(a, b) is true.
func OverlapDepth(a, b Rect) (dx, dy float64) {
	dx = math.Min(a.X+a.W-b.X, b.X+b.W-a.X)
	dy = math.Min(a.Y+a.H-b.Y, b.Y+b.H-a.Y)
	return dx, dy
}

// Center returns the centre point of the rect
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Bounds returns the rect itself; lets embedding types satisfy Bounded
func (r Rect) Bounds() Rect {
	return r
}

// ClampTo keeps the rect inside a canvas of the given size
func (r *Rect) ClampTo(width, height float64) {
	r.X = math.Max(0, math.Min(width-r.W, r.X))
	r.Y = math.Max(0, math.Min(height-r.H, r.Y))
}

// Bounded is anything with a collision box
type Bounded interface {
	Bounds() Rect
}

// Player represents the player entity
type Player struct {
	Rect
	VX, VY float64
	Speed  float64

	// Carrying is nil or the single item the player holds.
	// A carried item is never also in World.Trash.
	Carrying *TrashItem

	Facing    Direction
	AnimPhase float64

	// Immunity frames; strikes are ignored while > 0
	ImmuneTimer int
}

// NewPlayer creates a new player at pixel position x, y
func NewPlayer(x, y, w, h, speed float64, immuneFrames int) *Player {
	return &Player{
		Rect:        Rect{X: x, Y: y, W: w, H: h},
		Speed:       speed,
		Facing:      DirDown,
		ImmuneTimer: immuneFrames,
	}
}

// Immune returns true while the immunity countdown is running
func (p *Player) Immune() bool {
	return p.ImmuneTimer > 0
}

// IsCarrying returns true if the player holds an item
func (p *Player) IsCarrying() bool {
	return p.Carrying != nil
}

// Moving returns true if the player has any velocity
func (p *Player) Moving() bool {
	return p.VX != 0 || p.VY != 0
}

// Stop zeroes the velocity
func (p *Player) Stop() {
	p.VX = 0
	p.VY = 0
}

// Flicker returns true on the frames where an immune player is drawn translucent
func (p *Player) Flicker() bool {
	return p.Immune() && (p.ImmuneTimer/6)%2 == 0
}
