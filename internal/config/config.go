// Package config reads the host binary's defaults from the environment.
// Command-line flags override every value.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/iw2rmb/linkpad/editor"
)

type Config struct {
	DBPath      string
	CommitDelay time.Duration
	LogFile     string
	LogLevel    string
	LogFormat   string
}

func Load() Config {
	cfg := Config{
		DBPath:    envOr("LINKPAD_DB", defaultDBPath()),
		LogFile:   envOr("LINKPAD_LOG_FILE", filepath.Join(os.TempDir(), "linkpad.log")),
		LogLevel:  envOr("LINKPAD_LOG_LEVEL", "info"),
		LogFormat: envOr("LINKPAD_LOG_FORMAT", "text"),
	}
	cfg.CommitDelay = parseDurationOr("LINKPAD_COMMIT_DELAY", editor.DefaultCommitDelay)
	return cfg
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "linkpad.db"
	}
	return filepath.Join(dir, "linkpad", "notes.db")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
