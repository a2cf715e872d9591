package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iw2rmb/linkpad/internal/notestore"
)

func openStore(ctx context.Context, s *settings) (*notestore.Store, error) {
	if s.DBPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(s.DBPath), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	return notestore.Open(ctx, s.DBPath)
}
