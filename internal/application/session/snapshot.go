package session

import (
	"github.com/younwookim/recycle/internal/application/state"
	"github.com/younwookim/recycle/internal/domain/entity"
)

// Snapshot is a copy of everything a renderer needs for one frame.
// Mutating it does not affect the session.
type Snapshot struct {
	Width, Height float64

	Player    entity.Player
	Carrying  *entity.TrashItem
	Trash     []entity.TrashItem
	Bins      []entity.Bin
	Obstacles []entity.Obstacle
	Enemies   []entity.Enemy
	Particles []entity.Particle

	Score    int
	TimeLeft int
	State    state.GameState
	Frame    int
	Shake    int
	Stats    Stats
}

// Snapshot copies the current world
func (s *Session) Snapshot() Snapshot {
	w := s.world
	snap := Snapshot{
		Width:     w.Width,
		Height:    w.Height,
		Player:    *w.Player,
		Trash:     make([]entity.TrashItem, len(w.Trash)),
		Bins:      make([]entity.Bin, len(w.Bins)),
		Obstacles: make([]entity.Obstacle, len(w.Obstacles)),
		Enemies:   make([]entity.Enemy, len(w.Enemies)),
		Score:     s.score,
		TimeLeft:  s.timeLeft,
		State:     s.state,
		Frame:     s.frame,
		Shake:     s.shake,
		Stats:     s.stats,
	}

	if w.Player.Carrying != nil {
		item := *w.Player.Carrying
		snap.Carrying = &item
	}
	snap.Player.Carrying = snap.Carrying

	for i, t := range w.Trash {
		snap.Trash[i] = *t
	}
	for i, b := range w.Bins {
		snap.Bins[i] = *b
	}
	for i, o := range w.Obstacles {
		snap.Obstacles[i] = *o
	}
	for i, e := range w.Enemies {
		snap.Enemies[i] = *e
	}

	particles := s.particles.Particles()
	snap.Particles = make([]entity.Particle, len(particles))
	for i, p := range particles {
		snap.Particles[i] = *p
	}

	return snap
}
