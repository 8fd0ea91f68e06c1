// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits with an error.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration for the search service.
type Config struct {
	Port                   string
	DatabaseURL            string
	RedisURL               string
	CacheTTL               time.Duration
	SnapshotRefreshMinutes int // how often the job snapshot reloads
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	port := os.Getenv("SEARCH_PORT")
	if port == "" {
		port = "8083"
	}

	ttlSeconds := 60
	if s := os.Getenv("CACHE_TTL_SECONDS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("CACHE_TTL_SECONDS must be a positive integer, got %q", s)
		}
		ttlSeconds = v
	}

	refresh := 5
	if s := os.Getenv("SNAPSHOT_REFRESH_MINUTES"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("SNAPSHOT_REFRESH_MINUTES must be a positive integer, got %q", s)
		}
		refresh = v
	}

	return &Config{
		Port:                   port,
		DatabaseURL:            dbURL,
		RedisURL:               redisURL,
		CacheTTL:               time.Duration(ttlSeconds) * time.Second,
		SnapshotRefreshMinutes: refresh,
	}, nil
}
