// Package leaderboard stores and serves final scores: an in-memory store,
// the HTTP API in front of it, a websocket feed of the top scores, and the
// client the game uses to submit results.
package leaderboard

import (
	"context"
	"errors"
	"strings"
	"time"
)

const (
	// MaxNameLength is the number of characters kept from a submitted name
	MaxNameLength = 20

	// DefaultLimit is the size of the public top list
	DefaultLimit = 10
)

// ErrInvalidScore is returned when a submission has no player name
var ErrInvalidScore = errors.New("invalid score submission")

// Record is one stored score
type Record struct {
	ID         int64     `json:"id"`
	PlayerName string    `json:"player_name"`
	Score      int       `json:"score"`
	Timestamp  time.Time `json:"timestamp"`
}

// PlayerStats summarizes every score stored under one name
type PlayerStats struct {
	PlayerName  string `json:"player_name"`
	BestScore   int    `json:"best_score"`
	GamesPlayed int    `json:"games_played"`
}

// Querier reads the top of the leaderboard
type Querier interface {
	TopScores(ctx context.Context, n int) ([]Record, error)
}

// Store is the storage behind the HTTP API
type Store interface {
	Querier
	Add(ctx context.Context, playerName string, score int) (Record, error)
	PlayerStats(ctx context.Context, playerName string) (PlayerStats, error)
}

// Sanitize keeps the first MaxNameLength characters of name and strips
// angle brackets from them.
func Sanitize(name string) string {
	runes := []rune(name)
	if len(runes) > MaxNameLength {
		runes = runes[:MaxNameLength]
	}
	return strings.NewReplacer("<", "", ">", "").Replace(string(runes))
}
