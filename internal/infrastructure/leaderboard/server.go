package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"
)

const (
	msgInvalidInput     = "Invalid input. Player name and score are required."
	msgMethodNotAllowed = "Method not allowed"
	msgSaved            = "Score saved successfully!"
)

// Server exposes a Store over HTTP
type Server struct {
	store Store
	hub   *Hub
	limit int
	now   func() time.Time
}

// NewServer creates the API. hub may be nil, which disables the live feed.
func NewServer(store Store, hub *Hub, limit int) *Server {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Server{
		store: store,
		hub:   hub,
		limit: limit,
		now:   time.Now,
	}
}

// Handler returns the routed API
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/scores", s.handleScores)
	mux.HandleFunc("/api/scores/player/{name}", s.handlePlayer)
	mux.HandleFunc("/api/scores/live", s.handleLive)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

type submitRequest struct {
	PlayerName string `json:"player_name"`
	Score      *int   `json:"score"`
}

type submitResponse struct {
	ID         int64  `json:"id"`
	PlayerName string `json:"player_name"`
	Score      int    `json:"score"`
	Message    string `json:"message"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		records, err := s.store.TopScores(r.Context(), s.limit)
		if err != nil {
			log.Printf("Failed to load scores: %v", err)
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}
		writeJSON(w, http.StatusOK, records)

	case http.MethodPost:
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerName == "" || req.Score == nil {
			writeError(w, http.StatusBadRequest, msgInvalidInput)
			return
		}

		rec, err := s.store.Add(r.Context(), req.PlayerName, *req.Score)
		if errors.Is(err, ErrInvalidScore) {
			writeError(w, http.StatusBadRequest, msgInvalidInput)
			return
		}
		if err != nil {
			log.Printf("Failed to save score: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to save score")
			return
		}

		writeJSON(w, http.StatusOK, submitResponse{
			ID:         rec.ID,
			PlayerName: rec.PlayerName,
			Score:      rec.Score,
			Message:    msgSaved,
		})
		s.publish(r.Context())

	default:
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	}
}

func (s *Server) handlePlayer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}

	stats, err := s.store.PlayerStats(r.Context(), r.PathValue("name"))
	if err != nil {
		log.Printf("Failed to load player stats: %v", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "OK",
		Timestamp: s.now().UTC().Format(time.RFC3339),
	})
}

// handleLive upgrades to a websocket, sends the current top list and then
// every update until the client disconnects.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}
	if s.hub == nil {
		writeError(w, http.StatusNotFound, "Live feed disabled")
		return
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("live feed upgrade: %v", err)
		return
	}

	c := newWSConn(ws)
	go c.writePump()

	if !s.hub.Register(c) {
		_ = c.Close()
		return
	}
	if b, err := s.topFrame(r.Context()); err == nil {
		_ = c.Send(b)
	}

	c.readPump()
	s.hub.Unregister(c)
	_ = c.Close()
}

// publish pushes the current top list to live subscribers
func (s *Server) publish(ctx context.Context) {
	if s.hub == nil {
		return
	}
	b, err := s.topFrame(ctx)
	if err != nil {
		log.Printf("Failed to publish scores: %v", err)
		return
	}
	s.hub.Broadcast(b)
}

func (s *Server) topFrame(ctx context.Context) ([]byte, error) {
	records, err := s.store.TopScores(ctx, s.limit)
	if err != nil {
		return nil, err
	}
	return Encode(MsgScores, records)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
