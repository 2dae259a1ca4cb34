package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/recycle/internal/infrastructure/config"
	"github.com/younwookim/recycle/internal/infrastructure/leaderboard"
)

func TestNewServer_SeedDemo(t *testing.T) {
	store, _, srv := newServer(&config.ServerConfig{Port: "4000", Limit: 10, SeedDemo: true})

	assert.Equal(t, ":4000", srv.Addr)
	assert.Equal(t, 2, store.Len())
}

func TestNewServer_RoundTrip(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, hub, srv := newServer(&config.ServerConfig{Port: "0", Limit: 3})
	go hub.Run(ctx)

	ts := httptest.NewServer(srv.Handler)
	defer ts.Close()

	for _, body := range []string{
		`{"player_name":"Ann","score":5}`,
		`{"player_name":"Bob","score":9}`,
		`{"player_name":"Cy","score":1}`,
		`{"player_name":"Di","score":7}`,
	} {
		resp, err := http.Post(ts.URL+"/api/scores", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	assert.Equal(t, 4, store.Len())

	resp, err := http.Get(ts.URL + "/api/scores")
	require.NoError(t, err)
	defer resp.Body.Close()

	var top []leaderboard.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&top))
	require.Len(t, top, 3, "limit comes from the server config")
	assert.Equal(t, "Bob", top[0].PlayerName)
	assert.Equal(t, "Di", top[1].PlayerName)
	assert.Equal(t, "Ann", top[2].PlayerName)
}
