package editor

import "github.com/iw2rmb/linkpad/buffer"

// ChangeEvent reports the editor state after an update that changed text,
// caret or selection. Offsets are canonical rune offsets.
type ChangeEvent struct {
	Version   uint64
	Cursor    int
	Selection struct {
		Range  buffer.Range
		Active bool
	}
	// Composing is true while an input method composition is open. The
	// decorated view lags the text until it ends.
	Composing bool

	Text string
	// Edits lists the text edits that produced Version, when the update
	// made exactly one buffer change. It is nil for caret-only updates.
	Edits []buffer.AppliedEdit
}

func buildChangeEvent(b *buffer.Buffer, composing bool, versionBefore uint64) ChangeEvent {
	ev := ChangeEvent{
		Version:   b.Version(),
		Cursor:    b.Cursor(),
		Composing: composing,
		Text:      b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	if c, ok := b.LastChange(); ok && c.VersionBefore == versionBefore && c.VersionAfter == ev.Version {
		ev.Edits = c.AppliedEdits
	}
	return ev
}
