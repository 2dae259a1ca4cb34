package session

import (
	"context"
	"time"

	"github.com/younwookim/recycle/internal/application/system"
	"github.com/younwookim/recycle/internal/domain/entity"
)

// IntentSource produces the player's input for each frame
type IntentSource interface {
	Next(world *entity.World) system.Intent
}

// Runner drives a session without a window. A single goroutine selects on
// a frame ticker and a one-second ticker until the session ends.
type Runner struct {
	Session *Session
	Source  IntentSource

	// FrameInterval defaults to 1/60 s, SecondInterval to 1 s.
	// Tests shrink both to run a round quickly.
	FrameInterval  time.Duration
	SecondInterval time.Duration

	// OnFrame is called after every step
	OnFrame func(s *Session)
}

// NewRunner creates a runner at real-time speed
func NewRunner(s *Session, src IntentSource, framerate int) *Runner {
	if framerate <= 0 {
		framerate = 60
	}
	return &Runner{
		Session:        s,
		Source:         src,
		FrameInterval:  time.Second / time.Duration(framerate),
		SecondInterval: time.Second,
	}
}

// Run blocks until the session ends or ctx is cancelled.
// Returns ctx.Err() on cancellation and nil when the clock ran out.
func (r *Runner) Run(ctx context.Context) error {
	frameInterval := r.FrameInterval
	if frameInterval <= 0 {
		frameInterval = time.Second / 60
	}
	secondInterval := r.SecondInterval
	if secondInterval <= 0 {
		secondInterval = time.Second
	}

	frames := time.NewTicker(frameInterval)
	defer frames.Stop()
	seconds := time.NewTicker(secondInterval)
	defer seconds.Stop()

	for !r.Session.Ended() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-frames.C:
			if r.Source != nil {
				r.Session.SetIntent(r.Source.Next(r.Session.World()))
			}
			r.Session.Step()
			if r.OnFrame != nil {
				r.OnFrame(r.Session)
			}
		case <-seconds.C:
			r.Session.Tick()
		}
	}
	return nil
}

// Simulate plays the whole session as fast as possible:
// framerate steps, then one tick, until the clock runs out.
func Simulate(s *Session, src IntentSource, framerate int) {
	if framerate <= 0 {
		framerate = 60
	}
	for !s.Ended() {
		for i := 0; i < framerate && !s.Ended(); i++ {
			if src != nil {
				s.SetIntent(src.Next(s.World()))
			}
			s.Step()
		}
		s.Tick()
	}
}
