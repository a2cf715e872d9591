package editor

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestComposition_SingleRenderCycleAfterEnd(t *testing.T) {
	m := New(Config{Text: "ab"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	cycles := m.cycles

	m, cmd := m.Update(CompositionStartMsg{})
	if cmd != nil {
		t.Fatalf("composition start scheduled a commit")
	}
	if !m.Composing() {
		t.Fatalf("expected composing after start")
	}

	m, _ = m.Update(keyRunes("n"))
	m, _ = m.Update(CompositionUpdateMsg{Text: "に"})
	m, cmd = m.Update(keyRunes("h"))
	if cmd != nil {
		t.Fatalf("keystroke while composing scheduled a commit")
	}

	if got := m.cycles; got != cycles {
		t.Fatalf("render cycles while composing: got %d, want %d", got, cycles)
	}
	if got := m.Text(); got != "abにh" {
		t.Fatalf("text while composing: got %q, want %q", got, "abにh")
	}

	m, cmd = m.Update(CompositionEndMsg{Text: "日本"})
	if m.Composing() {
		t.Fatalf("still composing after end")
	}
	if got := m.cycles; got != cycles+1 {
		t.Fatalf("render cycles after end: got %d, want %d", got, cycles+1)
	}
	if got := m.Text(); got != "ab日本" {
		t.Fatalf("text after end: got %q, want %q", got, "ab日本")
	}
	if got := m.Cursor(); got != 4 {
		t.Fatalf("cursor after end: got %d, want %d", got, 4)
	}
	if cmd == nil {
		t.Fatalf("composition end should schedule a commit")
	}
	if p, ok := m.PendingCommit(); !ok || p.Snapshot != "ab日本" {
		t.Fatalf("pending commit: got %+v (ok=%v)", p, ok)
	}
}

func TestComposition_AnnotationWaitsForEnd(t *testing.T) {
	m := New(Config{Text: "go https://a.b"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	before := m.Spans()

	m, _ = m.Update(CompositionStartMsg{})
	m, _ = m.Update(CompositionUpdateMsg{Text: "c"})
	if got := m.Spans(); !reflect.DeepEqual(got, before) {
		t.Fatalf("spans changed while composing: got %+v, want %+v", got, before)
	}
	if _, ok := m.LinkAtCursor(); ok {
		t.Fatalf("link reported while composing")
	}

	m, _ = m.Update(CompositionEndMsg{})
	if got := m.Text(); got != "go https://a.bc" {
		t.Fatalf("text after end: got %q", got)
	}
	url, ok := m.LinkAtCursor()
	if !ok || url != "https://a.bc" {
		t.Fatalf("link after end: got %q (ok=%v), want %q", url, ok, "https://a.bc")
	}
}

func TestComposition_StartReplacesSelection(t *testing.T) {
	m := New(Config{Text: "hello"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})

	m, _ = m.Update(CompositionStartMsg{})
	if got := m.Text(); got != "llo" {
		t.Fatalf("text after start: got %q, want %q", got, "llo")
	}
	m, cmd := m.Update(CompositionEndMsg{Text: "ye"})
	if got := m.Text(); got != "yello" {
		t.Fatalf("text after end: got %q, want %q", got, "yello")
	}
	if cmd == nil {
		t.Fatalf("end should schedule a commit")
	}
}

func TestComposition_BackspaceStaysInsideComposedText(t *testing.T) {
	m := New(Config{Text: "ab"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m, _ = m.Update(CompositionStartMsg{})
	m, _ = m.Update(keyRunes("x"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	if got := m.Text(); got != "ab" {
		t.Fatalf("text: got %q, want %q", got, "ab")
	}

	m, cmd := m.Update(CompositionEndMsg{})
	if cmd != nil {
		t.Fatalf("composition without net change scheduled a commit")
	}
}

func TestComposition_BackspaceKeepsClusterJoinedToCommittedText(t *testing.T) {
	m := New(Config{Text: "xe"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m, _ = m.Update(CompositionStartMsg{})
	m, _ = m.Update(keyRunes("\u0301"))
	if got := m.Text(); got != "xe\u0301" {
		t.Fatalf("text while composing: got %q, want %q", got, "xe\u0301")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Text(); got != "xe" {
		t.Fatalf("text after backspace: got %q, want %q", got, "xe")
	}
	if got := m.Cursor(); got != 2 {
		t.Fatalf("cursor after backspace: got %d, want %d", got, 2)
	}
	if got := m.comp.length; got != 0 {
		t.Fatalf("composed length: got %d, want %d", got, 0)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Text(); got != "xe" {
		t.Fatalf("backspace past composition start: got %q, want %q", got, "xe")
	}

	m, _ = m.Update(CompositionEndMsg{Text: "Z"})
	if got := m.Text(); got != "xeZ" {
		t.Fatalf("text after end: got %q, want %q", got, "xeZ")
	}
}

func TestComposition_BlurFlushesAndCommits(t *testing.T) {
	var commits []string
	m := New(Config{OnCommit: func(s string) { commits = append(commits, s) }})
	cycles := m.cycles

	m, _ = m.Update(CompositionStartMsg{})
	m, _ = m.Update(CompositionUpdateMsg{Text: "한"})
	m, _ = m.Update(tea.BlurMsg{})

	if m.Composing() {
		t.Fatalf("still composing after blur")
	}
	if got := m.cycles; got != cycles+1 {
		t.Fatalf("render cycles after blur: got %d, want %d", got, cycles+1)
	}
	if want := []string{"한"}; !reflect.DeepEqual(commits, want) {
		t.Fatalf("commits: got %q, want %q", commits, want)
	}
	if _, ok := m.PendingCommit(); ok {
		t.Fatalf("pending commit left after blur")
	}
}

func TestComposition_PasteFinishesComposition(t *testing.T) {
	m := New(Config{})
	m, _ = m.Update(CompositionStartMsg{})
	m, _ = m.Update(CompositionUpdateMsg{Text: "あ"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!"), Paste: true})

	if m.Composing() {
		t.Fatalf("still composing after paste")
	}
	if got := m.Text(); got != "あ!" {
		t.Fatalf("text: got %q, want %q", got, "あ!")
	}
	if got := m.Cursor(); got != 2 {
		t.Fatalf("cursor: got %d, want %d", got, 2)
	}
}

func TestComposition_MessagesOutOfOrderAreIgnored(t *testing.T) {
	m := New(Config{Text: "ab"})
	v := m.Version()

	m, cmd := m.Update(CompositionUpdateMsg{Text: "x"})
	if cmd != nil || m.Version() != v {
		t.Fatalf("update without start changed the document")
	}
	m, cmd = m.Update(CompositionEndMsg{Text: "x"})
	if cmd != nil || m.Version() != v {
		t.Fatalf("end without start changed the document")
	}

	m, _ = m.Update(CompositionStartMsg{})
	m, _ = m.Update(CompositionStartMsg{})
	if !m.Composing() {
		t.Fatalf("second start should keep the composition open")
	}
}

func TestComposition_ReadOnlyNeverComposes(t *testing.T) {
	m := New(Config{Text: "ab", ReadOnly: true})
	m, _ = m.Update(CompositionStartMsg{})
	if m.Composing() {
		t.Fatalf("read-only editor entered composition")
	}
}
