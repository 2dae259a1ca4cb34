package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/younwookim/recycle/internal/infrastructure/config"
	"github.com/younwookim/recycle/internal/infrastructure/leaderboard"
)

const shutdownTimeout = 5 * time.Second

// newServer wires the store, the live feed hub and the HTTP API
func newServer(cfg *config.ServerConfig) (*leaderboard.MemoryStore, *leaderboard.Hub, *http.Server) {
	store := leaderboard.NewMemoryStore()
	if cfg.SeedDemo {
		store.SeedDemo()
	}
	hub := leaderboard.NewHub()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           leaderboard.NewServer(store, hub, cfg.Limit).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return store, hub, srv
}

func main() {
	envFlag := flag.String("env", ".env", "Environment file to load if present")
	flag.Parse()

	cfg, err := config.LoadServer(*envFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, hub, srv := newServer(cfg)
	go hub.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Leaderboard listening on %s (top %d)", srv.Addr, cfg.Limit)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	case <-ctx.Done():
	}

	log.Printf("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown: %v", err)
	}
	<-hub.Done()
}
