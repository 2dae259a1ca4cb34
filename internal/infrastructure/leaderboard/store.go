package leaderboard

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"
)

// MemoryStore keeps scores in memory. It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record
	nextID  int64
	now     func() time.Time

	// OnAdd is called after a record is stored, outside the lock
	OnAdd func(r Record)
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		now:    time.Now,
	}
}

// SeedDemo inserts the two demo rows shown on a fresh server
func (s *MemoryStore) SeedDemo() {
	ctx := context.Background()
	_, _ = s.Add(ctx, "Demo Player", 1000)
	_, _ = s.Add(ctx, "Test User", 850)
}

// Add stores a score under the sanitized player name
func (s *MemoryStore) Add(ctx context.Context, playerName string, score int) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	name := Sanitize(playerName)
	if name == "" {
		return Record{}, fmt.Errorf("%w: player name is required", ErrInvalidScore)
	}

	s.mu.Lock()
	r := Record{
		ID:         s.nextID,
		PlayerName: name,
		Score:      score,
		Timestamp:  s.now().UTC(),
	}
	s.nextID++
	s.records = append(s.records, r)
	s.mu.Unlock()

	if s.OnAdd != nil {
		s.OnAdd(r)
	}
	return r, nil
}

// TopScores returns up to n records, highest score first.
// Equal scores keep submission order.
func (s *MemoryStore) TopScores(ctx context.Context, n int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	sorted := make([]Record, len(s.records))
	copy(sorted, s.records)
	s.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted, nil
}

// PlayerStats returns the best score and number of games for a name.
// Unknown names report zero for both.
func (s *MemoryStore) PlayerStats(ctx context.Context, playerName string) (PlayerStats, error) {
	if err := ctx.Err(); err != nil {
		return PlayerStats{}, err
	}

	stats := PlayerStats{PlayerName: playerName}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.PlayerName != playerName {
			continue
		}
		if stats.GamesPlayed == 0 || r.Score > stats.BestScore {
			stats.BestScore = r.Score
		}
		stats.GamesPlayed++
	}
	return stats, nil
}

// Len returns the number of stored records
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Submit stores a final score directly; the game uses it when no server is configured
func (s *MemoryStore) Submit(playerName string, score int) {
	if _, err := s.Add(context.Background(), playerName, score); err != nil {
		log.Printf("Failed to save score: %v", err)
	}
}
