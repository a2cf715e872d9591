// Package debounce coalesces bursts of edits into one trailing-edge commit.
//
// State is the single-threaded core: it records the latest snapshot and
// hands out a sequence number per schedule so that stale timers can be told
// apart from the current one. Debouncer drives State with real timers for
// hosts that do not run an event loop of their own.
package debounce

import "time"

// DefaultDelay is the quiet period used when none is configured.
const DefaultDelay = time.Second

// PendingCommit is the single outstanding commit. Each new edit supersedes
// it rather than queueing behind it.
type PendingCommit struct {
	Snapshot    string
	ScheduledAt time.Time
	Seq         uint64
}

// State tracks at most one PendingCommit.
type State struct {
	pending PendingCommit
	active  bool
	seq     uint64
}

// Schedule records text as the pending snapshot and returns it with a fresh
// sequence number. Any earlier pending commit is superseded.
func (s *State) Schedule(text string, now time.Time) PendingCommit {
	s.seq++
	s.pending = PendingCommit{Snapshot: text, ScheduledAt: now, Seq: s.seq}
	s.active = true
	return s.pending
}

// Fire delivers the pending snapshot if seq identifies the current schedule.
// A stale or cancelled seq yields false.
func (s *State) Fire(seq uint64) (string, bool) {
	if !s.active || s.pending.Seq != seq {
		return "", false
	}
	return s.take(), true
}

// Flush delivers the pending snapshot regardless of its timer.
func (s *State) Flush() (string, bool) {
	if !s.active {
		return "", false
	}
	return s.take(), true
}

// Cancel drops the pending commit and invalidates every outstanding seq.
func (s *State) Cancel() {
	s.seq++
	s.active = false
	s.pending = PendingCommit{}
}

// Pending returns the outstanding commit, if any.
func (s *State) Pending() (PendingCommit, bool) {
	if !s.active {
		return PendingCommit{}, false
	}
	return s.pending, true
}

func (s *State) take() string {
	text := s.pending.Snapshot
	s.pending = PendingCommit{}
	s.active = false
	return text
}
