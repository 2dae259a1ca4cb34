package leaderboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestServer() (*Server, *MemoryStore) {
	store := createTestStore()
	srv := NewServer(store, nil, DefaultLimit)
	srv.now = func() time.Time { return time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC) }
	return srv, store
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestServer_PostScore(t *testing.T) {
	srv, store := createTestServer()
	h := srv.Handler()

	rec := do(t, h, http.MethodPost, "/api/scores", `{"player_name":"<Zed>","score":120}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decode[submitResponse](t, rec)
	assert.Equal(t, submitResponse{ID: 1, PlayerName: "Zed", Score: 120, Message: "Score saved successfully!"}, resp)
	assert.Equal(t, 1, store.Len())
}

func TestServer_PostScoreInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"score":5}`},
		{"empty name", `{"player_name":"","score":5}`},
		{"missing score", `{"player_name":"Ann"}`},
		{"string score", `{"player_name":"Ann","score":"5"}`},
		{"fractional score", `{"player_name":"Ann","score":5.5}`},
		{"not json", `hello`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, store := createTestServer()
			rec := do(t, srv.Handler(), http.MethodPost, "/api/scores", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Invalid input. Player name and score are required.", decode[errorResponse](t, rec).Error)
			assert.Equal(t, 0, store.Len())
		})
	}
}

func TestServer_GetScores(t *testing.T) {
	srv, store := createTestServer()
	h := srv.Handler()

	rec := do(t, h, http.MethodGet, "/api/scores", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	for i := 0; i < 12; i++ {
		_, err := store.Add(t.Context(), "p", i*10)
		require.NoError(t, err)
	}

	rec = do(t, h, http.MethodGet, "/api/scores", "")
	require.Equal(t, http.StatusOK, rec.Code)
	records := decode[[]Record](t, rec)
	require.Len(t, records, 10)
	assert.Equal(t, 110, records[0].Score)
	assert.Equal(t, 20, records[9].Score)
}

func TestServer_PlayerStats(t *testing.T) {
	srv, store := createTestServer()
	_, _ = store.Add(t.Context(), "Ann", 30)
	_, _ = store.Add(t.Context(), "Ann", 60)

	rec := do(t, srv.Handler(), http.MethodGet, "/api/scores/player/Ann", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"player_name":"Ann","best_score":60,"games_played":2}`, rec.Body.String())

	rec = do(t, srv.Handler(), http.MethodGet, "/api/scores/player/Nobody", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"player_name":"Nobody","best_score":0,"games_played":0}`, rec.Body.String())
}

func TestServer_Health(t *testing.T) {
	srv, _ := createTestServer()
	rec := do(t, srv.Handler(), http.MethodGet, "/api/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK","timestamp":"2026-05-06T07:08:09Z"}`, rec.Body.String())
}

func TestServer_MethodNotAllowed(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodDelete, "/api/scores"},
		{http.MethodPut, "/api/scores"},
		{http.MethodPost, "/api/scores/player/Ann"},
		{http.MethodPost, "/api/health"},
		{http.MethodPost, "/api/scores/live"},
	}

	srv, _ := createTestServer()
	h := srv.Handler()
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, "")
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
		})
	}
}

func TestServer_LiveDisabled(t *testing.T) {
	srv, _ := createTestServer()
	rec := do(t, srv.Handler(), http.MethodGet, "/api/scores/live", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
