package main

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/iw2rmb/linkpad/internal/notestore"
)

// session is the mutable state behind one editing run. The app model is
// copied on every update, so it holds a pointer.
type session struct {
	ctx   context.Context
	store *notestore.Store
	name  string
	log   *slog.Logger

	saved  time.Time
	saves  int
	err    error
	opened string
}

func newSession(ctx context.Context, store *notestore.Store, note notestore.Note, log *slog.Logger) *session {
	return &session{
		ctx:   ctx,
		store: store,
		name:  note.Name,
		log:   log,
		saved: note.UpdatedAt,
	}
}

func (s *session) save(text string) {
	note, err := s.store.Save(s.ctx, s.name, text)
	if err != nil {
		s.err = err
		s.log.Error("save note", "name", s.name, "err", err)
		return
	}
	s.err = nil
	s.saved = note.UpdatedAt
	s.saves++
	s.log.Info("note saved", "name", s.name, "runes", utf8.RuneCountInString(text))
}

func (s *session) openLink(url string) {
	s.opened = url
	s.log.Info("link activated", "url", url)
}
