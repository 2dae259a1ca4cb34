// Package results provides the end-of-round scene: final score, round
// statistics and the top of the leaderboard.
package results

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/recycle/internal/application/scene"
	"github.com/younwookim/recycle/internal/application/session"
	"github.com/younwookim/recycle/internal/infrastructure/leaderboard"
)

// TopN is the number of leaderboard rows shown
const TopN = 5

const fetchTimeout = 5 * time.Second

var (
	colorBG    = color.RGBA{0, 0, 0, 200}
	colorPanel = color.RGBA{40, 70, 40, 255}
)

// Input is what the results scene reacts to
type Input struct {
	Restart bool
	Quit    bool
}

type fetchResult struct {
	records []leaderboard.Record
	err     error
}

// Results shows the outcome of a finished round
type Results struct {
	playerName string
	score      int
	stats      session.Stats

	querier leaderboard.Querier
	fetched chan fetchResult
	top     []leaderboard.Record
	err     error
	loading bool

	onRestart func() scene.Scene
	readInput func() Input
	backdrop  func(screen *ebiten.Image)

	screenW int
	screenH int
}

// New creates the results scene. querier may be nil; onRestart builds the
// scene to switch to when the player asks for another round.
func New(playerName string, score int, stats session.Stats, querier leaderboard.Querier, onRestart func() scene.Scene, screenW, screenH int) *Results {
	return &Results{
		playerName: playerName,
		score:      score,
		stats:      stats,
		querier:    querier,
		onRestart:  onRestart,
		readInput:  readKeys,
		screenW:    screenW,
		screenH:    screenH,
	}
}

func readKeys() Input {
	return Input{
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Quit: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// OnEnter starts loading the leaderboard in the background
func (r *Results) OnEnter() {
	if r.querier == nil {
		return
	}

	r.loading = true
	r.fetched = make(chan fetchResult, 1)
	go func(q leaderboard.Querier) {
		// Let our own score land before reading the list
		if w, ok := q.(interface{ Wait() }); ok {
			w.Wait()
		}
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		records, err := q.TopScores(ctx, TopN)
		r.fetched <- fetchResult{records: records, err: err}
	}(r.querier)
}

// OnExit is called when leaving this scene
func (r *Results) OnExit() {}

// Update polls the leaderboard fetch and handles restart and quit
func (r *Results) Update(_ float64) (scene.Scene, error) {
	if r.loading {
		select {
		case res := <-r.fetched:
			r.top, r.err = res.records, res.err
			r.loading = false
		default:
		}
	}

	in := r.readInput()
	if in.Quit {
		return nil, ebiten.Termination
	}
	if in.Restart && r.onRestart != nil {
		return r.onRestart(), nil
	}
	return nil, nil
}

// Lines returns the text shown on the results panel
func (r *Results) Lines() []string {
	lines := []string{
		"TIME'S UP!",
		"",
		fmt.Sprintf("Final score: %d", r.score),
		fmt.Sprintf("Sorted: %d correct, %d wrong", r.stats.Correct, r.stats.Wrong),
		fmt.Sprintf("Picked up: %d   Pecked: %d", r.stats.Picked, r.stats.Pecked),
		"",
	}

	switch {
	case r.querier == nil:
	case r.loading:
		lines = append(lines, "Loading leaderboard...")
	case r.err != nil:
		lines = append(lines, "Leaderboard unavailable")
	case len(r.top) == 0:
		lines = append(lines, "No scores yet")
	default:
		lines = append(lines, "Top scores")
		for i, rec := range r.top {
			marker := " "
			if rec.PlayerName == r.playerName && rec.Score == r.score {
				marker = "*"
			}
			lines = append(lines, fmt.Sprintf("%s%d. %-20s %6d", marker, i+1, rec.PlayerName, rec.Score))
		}
	}

	return append(lines, "", "R: play again   ESC: quit")
}

// SetBackdrop sets what is painted under the panel, usually the final
// frame of the round
func (r *Results) SetBackdrop(draw func(screen *ebiten.Image)) {
	r.backdrop = draw
}

// Backdrop returns the function painting under the panel, or nil
func (r *Results) Backdrop() func(screen *ebiten.Image) {
	return r.backdrop
}

// Draw renders the results panel
func (r *Results) Draw(screen *ebiten.Image) {
	if r.backdrop != nil {
		r.backdrop(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, float32(r.screenW), float32(r.screenH), colorBG, false)

	pw, ph := float32(360), float32(300)
	px := (float32(r.screenW) - pw) / 2
	py := (float32(r.screenH) - ph) / 2
	vector.DrawFilledRect(screen, px, py, pw, ph, colorPanel, false)

	ebitenutil.DebugPrintAt(screen, strings.Join(r.Lines(), "\n"), int(px)+20, int(py)+20)
}

// Loading returns true while the leaderboard fetch is in flight
func (r *Results) Loading() bool {
	return r.loading
}

// Top returns the fetched leaderboard rows
func (r *Results) Top() []leaderboard.Record {
	return r.top
}
