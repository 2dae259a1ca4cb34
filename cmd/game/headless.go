package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/younwookim/recycle/internal/application/replay"
	"github.com/younwookim/recycle/internal/application/session"
	"github.com/younwookim/recycle/internal/infrastructure/config"
)

var errReplayMismatch = errors.New("replay diverged")

// runHeadless plays one round without a window. Fast mode simulates the
// whole round at once; realtime mode paces frames and seconds with tickers
// and stops early on Ctrl-C.
func runHeadless(cfg *config.GameConfig, opts session.Options, bot session.IntentSource, realtime bool) (*session.Session, error) {
	s := session.New(cfg, opts)

	if !realtime {
		session.Simulate(s, bot, cfg.Rules.Display.Framerate)
		return s, nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := session.NewRunner(s, bot, cfg.Rules.Display.Framerate)
	if err := r.Run(ctx); err != nil {
		s.End()
		return s, err
	}
	return s, nil
}

// verifyReplay plays a recording against a fresh session and checks the
// final score against the one stored in the file. Recordings saved before
// the round ended carry no final score and are only played.
func verifyReplay(cfg *config.GameConfig, data *replay.ReplayData) (*session.Session, error) {
	s := session.New(cfg, session.Options{
		PlayerName: data.Player,
		Seed:       data.Seed,
	})

	replay.NewReplayer(*data).Play(s)
	if !s.Ended() {
		s.End()
		return s, nil
	}

	if s.Score() != data.Score {
		return s, fmt.Errorf("score %d, recorded %d: %w", s.Score(), data.Score, errReplayMismatch)
	}
	return s, nil
}
