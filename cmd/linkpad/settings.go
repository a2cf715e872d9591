package main

import (
	"fmt"
	"time"

	"github.com/iw2rmb/linkpad/internal/config"
)

// settings is the environment configuration with command-line overrides
// applied.
type settings struct {
	config.Config
}

func resolve(env config.Config, g Globals) (*settings, error) {
	s := &settings{Config: env}
	if g.DB != "" {
		s.DBPath = g.DB
	}
	if g.CommitDelay != "" {
		d, err := time.ParseDuration(g.CommitDelay)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid --commit-delay %q", g.CommitDelay)
		}
		s.CommitDelay = d
	}
	if g.LogFile != "" {
		s.LogFile = g.LogFile
	}
	if g.LogLevel != "" {
		s.LogLevel = g.LogLevel
	}
	if g.LogFormat != "" {
		s.LogFormat = g.LogFormat
	}
	return s, nil
}
