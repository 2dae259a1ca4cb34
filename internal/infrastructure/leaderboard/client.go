package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client talks to a leaderboard server
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	wg      sync.WaitGroup

	// OnSubmitError is called when a background submission fails.
	// Defaults to logging the error.
	OnSubmitError func(err error)
}

// NewClient creates a client for the server at baseURL (e.g. http://localhost:3001)
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// Submit posts a final score on its own goroutine and returns immediately.
// Failures are reported through OnSubmitError and never reach the caller.
func (c *Client) Submit(playerName string, score int) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()

		rec, err := c.SubmitScore(ctx, playerName, score)
		if err != nil {
			if c.OnSubmitError != nil {
				c.OnSubmitError(err)
			} else {
				log.Printf("Failed to submit score: %v", err)
			}
			return
		}
		log.Printf("Score submitted: %s %d (id %d)", rec.PlayerName, rec.Score, rec.ID)
	}()
}

// Wait blocks until every background submission has finished
func (c *Client) Wait() {
	c.wg.Wait()
}

// SubmitScore posts a score and returns the stored record
func (c *Client) SubmitScore(ctx context.Context, playerName string, score int) (Record, error) {
	body, err := json.Marshal(submitRequest{PlayerName: playerName, Score: &score})
	if err != nil {
		return Record{}, fmt.Errorf("failed to encode score: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/scores", bytes.NewReader(body))
	if err != nil {
		return Record{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp submitResponse
	if err := c.do(req, &resp); err != nil {
		return Record{}, err
	}
	return Record{ID: resp.ID, PlayerName: resp.PlayerName, Score: resp.Score}, nil
}

// TopScores fetches the server's top list and returns at most n records
func (c *Client) TopScores(ctx context.Context, n int) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/scores", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var records []Record
	if err := c.do(req, &records); err != nil {
		return nil, err
	}
	if n >= 0 && len(records) > n {
		records = records[:n]
	}
	return records, nil
}

// PlayerStats fetches the best score and games played for a name
func (c *Client) PlayerStats(ctx context.Context, playerName string) (PlayerStats, error) {
	u := c.baseURL + "/api/scores/player/" + url.PathEscape(playerName)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return PlayerStats{}, fmt.Errorf("failed to create request: %w", err)
	}

	var stats PlayerStats
	if err := c.do(req, &stats); err != nil {
		return PlayerStats{}, err
	}
	return stats, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach leaderboard: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(b, &e) == nil && e.Error != "" {
			return fmt.Errorf("leaderboard returned %d: %s", resp.StatusCode, e.Error)
		}
		return fmt.Errorf("leaderboard returned %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// LiveURL returns the websocket address of the server's live feed
func (c *Client) LiveURL() string {
	u := c.baseURL
	switch {
	case strings.HasPrefix(u, "https://"):
		u = "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		u = "ws://" + strings.TrimPrefix(u, "http://")
	}
	return u + "/api/scores/live"
}

// Subscribe reads the live feed and calls fn with every top list it receives.
// It blocks until ctx is cancelled or the connection fails.
func (c *Client) Subscribe(ctx context.Context, fn func(records []Record)) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.LiveURL(), nil)
	if err != nil {
		return fmt.Errorf("failed to dial live feed: %w", err)
	}
	defer conn.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-stop:
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("live feed closed: %w", err)
		}

		env, err := DecodeEnvelope(msg)
		if err != nil {
			log.Printf("live feed: %v", err)
			continue
		}
		if env.T != MsgScores {
			continue
		}
		records, err := DecodePayload[[]Record](env)
		if err != nil {
			log.Printf("live feed: %v", err)
			continue
		}
		fn(records)
	}
}
