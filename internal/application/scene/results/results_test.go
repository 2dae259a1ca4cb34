package results

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/recycle/internal/application/scene"
	"github.com/younwookim/recycle/internal/application/session"
	"github.com/younwookim/recycle/internal/infrastructure/leaderboard"
)

type failingQuerier struct{}

func (failingQuerier) TopScores(context.Context, int) ([]leaderboard.Record, error) {
	return nil, errors.New("offline")
}

type stubScene struct{ scene.Scene }

func createTestResults(q leaderboard.Querier, restart func() scene.Scene) *Results {
	r := New("Ann", 42, session.Stats{Picked: 5, Correct: 4, Wrong: 2, Pecked: 1}, q, restart, 800, 600)
	r.readInput = func() Input { return Input{} }
	return r
}

// waitLoaded updates the scene until the leaderboard fetch completes
func waitLoaded(t *testing.T, r *Results) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for r.Loading() {
		require.True(t, time.Now().Before(deadline), "leaderboard never loaded")
		_, err := r.Update(1.0 / 60.0)
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}
}

func TestResults_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Results)(nil)
}

func TestResults_LoadsTopScores(t *testing.T) {
	store := leaderboard.NewMemoryStore()
	store.SeedDemo()
	for i := 0; i < 6; i++ {
		store.Submit("Filler", i)
	}
	store.Submit("Ann", 42)

	r := createTestResults(store, nil)
	r.OnEnter()
	waitLoaded(t, r)

	require.Len(t, r.Top(), TopN)
	assert.Equal(t, "Demo Player", r.Top()[0].PlayerName)

	lines := r.Lines()
	assert.Contains(t, lines, "Final score: 42")
	assert.Contains(t, lines, "Sorted: 4 correct, 2 wrong")
	assert.Contains(t, lines, "Top scores")
	assert.Contains(t, lines, "*3. Ann                      42")
}

func TestResults_LeaderboardError(t *testing.T) {
	r := createTestResults(failingQuerier{}, nil)
	r.OnEnter()
	waitLoaded(t, r)

	assert.Contains(t, r.Lines(), "Leaderboard unavailable")
}

func TestResults_NoQuerier(t *testing.T) {
	r := createTestResults(nil, nil)
	r.OnEnter()

	assert.False(t, r.Loading())
	assert.NotContains(t, r.Lines(), "Top scores")
	assert.Contains(t, r.Lines(), "R: play again   ESC: quit")
}

func TestResults_Restart(t *testing.T) {
	next := &stubScene{}
	calls := 0
	r := createTestResults(nil, func() scene.Scene {
		calls++
		return next
	})

	got, err := r.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.Nil(t, got)

	r.readInput = func() Input { return Input{Restart: true} }
	got, err = r.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.Same(t, next, got)
	assert.Equal(t, 1, calls)
}

func TestResults_Quit(t *testing.T) {
	r := createTestResults(nil, nil)
	r.readInput = func() Input { return Input{Quit: true} }

	_, err := r.Update(1.0 / 60.0)
	assert.ErrorIs(t, err, ebiten.Termination)
}

func TestResults_Backdrop(t *testing.T) {
	r := createTestResults(nil, nil)
	assert.Nil(t, r.Backdrop())

	r.SetBackdrop(func(*ebiten.Image) {})
	assert.NotNil(t, r.Backdrop())
}
