package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ServerConfig configures the leaderboard server
type ServerConfig struct {
	Port     string
	Limit    int
	SeedDemo bool
}

// LoadServer reads the optional .env file and then the process environment.
// A missing .env is fine; a malformed one is not.
func LoadServer(envFiles ...string) (*ServerConfig, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &ServerConfig{
		Port:  "3001",
		Limit: 10,
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("LEADERBOARD_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("failed to parse LEADERBOARD_LIMIT %q: %w", v, ErrInvalidConfig)
		}
		cfg.Limit = n
	}
	if v := os.Getenv("LEADERBOARD_SEED_DEMO"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("failed to parse LEADERBOARD_SEED_DEMO: %w", err)
		}
		cfg.SeedDemo = b
	}
	return cfg, nil
}

// Addr returns the listen address
func (c *ServerConfig) Addr() string {
	return ":" + c.Port
}
