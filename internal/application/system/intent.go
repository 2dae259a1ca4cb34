package system

import "github.com/younwookim/recycle/internal/domain/entity"

// Intent represents an action the player wants to perform.
// A nil Intent is a no-op.
type Intent interface {
	isIntent()
}

// MoveTowardIntent steers the player centre toward a point (mouse or touch)
type MoveTowardIntent struct {
	X, Y float64
}

func (MoveTowardIntent) isIntent() {}

// DirectionIntent sets one velocity axis to full speed (keyboard)
type DirectionIntent struct {
	Dir entity.Direction
}

func (DirectionIntent) isIntent() {}

// DirectionsIntent applies several keyboard directions in one frame
type DirectionsIntent struct {
	Dirs []entity.Direction
}

func (DirectionsIntent) isIntent() {}
