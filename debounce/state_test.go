package debounce

import (
	"testing"
	"time"
)

func TestState_ScheduleSupersedes(t *testing.T) {
	var s State
	t0 := time.Unix(100, 0)

	first := s.Schedule("a", t0)
	second := s.Schedule("ab", t0.Add(10*time.Millisecond))
	if second.Seq == first.Seq {
		t.Fatalf("expected fresh seq, got %d twice", first.Seq)
	}

	if _, ok := s.Fire(first.Seq); ok {
		t.Fatalf("stale seq fired")
	}
	p, ok := s.Pending()
	if !ok || p.Snapshot != "ab" || !p.ScheduledAt.Equal(t0.Add(10*time.Millisecond)) {
		t.Fatalf("pending=%v,%v", p, ok)
	}

	text, ok := s.Fire(second.Seq)
	if !ok || text != "ab" {
		t.Fatalf("fire=%q,%v, want %q,true", text, ok, "ab")
	}
	if _, ok := s.Pending(); ok {
		t.Fatalf("pending must clear after fire")
	}
	if _, ok := s.Fire(second.Seq); ok {
		t.Fatalf("second fire of the same seq delivered again")
	}
}

func TestState_CancelInvalidatesSeq(t *testing.T) {
	var s State
	p := s.Schedule("x", time.Time{})
	s.Cancel()

	if _, ok := s.Fire(p.Seq); ok {
		t.Fatalf("cancelled seq fired")
	}
	if _, ok := s.Flush(); ok {
		t.Fatalf("flush after cancel delivered")
	}
}

func TestState_Flush(t *testing.T) {
	var s State
	if _, ok := s.Flush(); ok {
		t.Fatalf("flush without pending delivered")
	}
	p := s.Schedule("x", time.Time{})
	text, ok := s.Flush()
	if !ok || text != "x" {
		t.Fatalf("flush=%q,%v", text, ok)
	}
	if _, ok := s.Fire(p.Seq); ok {
		t.Fatalf("timer fired after flush")
	}
}

func TestState_TenEditsOneCommit(t *testing.T) {
	var s State
	t0 := time.Unix(0, 0)
	var last PendingCommit
	for i := 1; i <= 10; i++ {
		last = s.Schedule(string(rune('a'+i-1)), t0.Add(time.Duration(i)*10*time.Millisecond))
	}

	delivered := 0
	var got string
	for seq := uint64(1); seq <= last.Seq; seq++ {
		if text, ok := s.Fire(seq); ok {
			delivered++
			got = text
		}
	}
	if delivered != 1 {
		t.Fatalf("delivered=%d, want 1", delivered)
	}
	if got != "j" {
		t.Fatalf("commit=%q, want %q", got, "j")
	}
}
