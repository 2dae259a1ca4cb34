package session

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/recycle/internal/application/system"
	"github.com/younwookim/recycle/internal/domain/entity"
	"github.com/younwookim/recycle/internal/infrastructure/config"
)

type idleSource struct {
	calls int
}

func (s *idleSource) Next(*entity.World) system.Intent {
	s.calls++
	return nil
}

func shortConfig(seconds int) *config.GameConfig {
	cfg := config.Default()
	cfg.Rules.Session.DurationSeconds = seconds
	return cfg
}

func TestRunner_RunsUntilTimeout(t *testing.T) {
	sub := &fakeSubmitter{}
	s := New(shortConfig(3), Options{PlayerName: "bot", Seed: testSeed, Submitter: sub})
	src := &idleSource{}

	r := NewRunner(s, src, 60)
	r.FrameInterval = time.Millisecond
	r.SecondInterval = 10 * time.Millisecond

	frames := 0
	r.OnFrame = func(*Session) { frames++ }

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, r.Run(ctx))
	assert.True(t, s.Ended())
	assert.Equal(t, 0, s.TimeLeft())
	assert.Len(t, sub.calls, 1)
	assert.Equal(t, src.calls, frames)
	assert.Equal(t, s.Frame(), frames)
}

func TestRunner_Cancel(t *testing.T) {
	s := New(shortConfig(1000), Options{Seed: testSeed})
	r := NewRunner(s, nil, 60)
	r.FrameInterval = time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := r.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, s.Ended())
}

func TestNewRunner_Defaults(t *testing.T) {
	r := NewRunner(nil, nil, 0)
	assert.Equal(t, time.Second/60, r.FrameInterval)
	assert.Equal(t, time.Second, r.SecondInterval)

	r = NewRunner(nil, nil, 30)
	assert.Equal(t, time.Second/30, r.FrameInterval)
}

func TestSimulate_Autopilot(t *testing.T) {
	sub := &fakeSubmitter{}
	s := New(shortConfig(20), Options{PlayerName: "bot", Seed: testSeed, Submitter: sub})

	Simulate(s, system.NewAutopilot(rand.New(rand.NewSource(testSeed))), 60)

	require.True(t, s.Ended())
	assert.Equal(t, 20*60, s.Frame())
	assert.Greater(t, s.Stats().Picked, 0, "the autopilot should collect something in 20s")
	require.Len(t, sub.calls, 1)
	assert.Equal(t, s.Score(), sub.calls[0].score)
}

func TestSimulate_Idle(t *testing.T) {
	s := New(shortConfig(2), Options{Seed: testSeed})
	Simulate(s, nil, 60)

	assert.True(t, s.Ended())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 120, s.Frame())
}
