package buffer

import "testing"

func TestBuffer_Apply_AppliesSequentiallyAgainstEvolvingState(t *testing.T) {
	b := New("hello")
	v := b.Version()

	b.Apply(
		TextEdit{Range: Range{Start: 0, End: 0}, Text: "X"},
		TextEdit{Range: Range{Start: 1, End: 2}, Text: ""},
	)

	if got, want := b.Text(), "Xello"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 1; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}

	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected last change")
	}
	if got := len(ch.AppliedEdits); got != 2 {
		t.Fatalf("applied edits=%d, want 2", got)
	}
}

func TestBuffer_Apply_ClampsRangesAndSkipsNoOps(t *testing.T) {
	b := New("abc")

	b.Apply(TextEdit{Range: Range{Start: 1, End: 2}, Text: "b"})
	if got := b.Version(); got != 0 {
		t.Fatalf("identity edit bumped version to %d", got)
	}

	b.Apply(TextEdit{Range: Range{Start: 99, End: 99}, Text: "!"})
	if got, want := b.Text(), "abc!"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := b.Cursor(); got != 4 {
		t.Fatalf("cursor=%d, want 4", got)
	}
}

func TestBuffer_Apply_EmptyBatchIsNoOp(t *testing.T) {
	b := New("abc")
	b.Apply()
	if got := b.Version(); got != 0 {
		t.Fatalf("version=%d, want 0", got)
	}
}
