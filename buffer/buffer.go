package buffer

type selectionState struct {
	active bool
	anchor int
	end    int
}

// Buffer is the canonical document: plain text, a monotonic text version,
// and the caret/selection expressed as rune offsets into the text.
type Buffer struct {
	text    []rune
	version uint64

	cursor int
	sel    selectionState

	lastChange    Change
	hasLastChange bool
}

func New(text string) *Buffer {
	return &Buffer{text: []rune(text)}
}

func (b *Buffer) Text() string { return string(b.text) }

// Len returns the rune length of the canonical text.
func (b *Buffer) Len() int { return len(b.text) }

// Version increments on every effective text mutation. Caret and selection
// changes leave it untouched.
func (b *Buffer) Version() uint64 { return b.version }

// Read returns the canonical text together with its version.
func (b *Buffer) Read() (string, uint64) { return string(b.text), b.version }

// Slice returns the canonical text in r, clamped to the document.
func (b *Buffer) Slice(r Range) string {
	r = NormalizeRange(ClampRange(r, len(b.text)))
	return string(b.text[r.Start:r.End])
}

// Replace swaps the whole canonical text. The caret and selection are
// clamped into the new bounds.
func (b *Buffer) Replace(text string) {
	next := []rune(text)
	if string(next) == string(b.text) {
		return
	}

	change := b.beginChange(ChangeSourceHost)
	prev := string(b.text)
	b.text = next
	b.cursor = ClampOffset(b.cursor, len(b.text))
	b.sel = b.clampSelection(b.sel)
	b.version++
	change.addAppliedEdit(AppliedEdit{
		RangeBefore: Range{Start: 0, End: len([]rune(prev))},
		RangeAfter:  Range{Start: 0, End: len(b.text)},
		InsertText:  text,
		DeletedText: prev,
	})
	b.commitChange(change)
}

func (b *Buffer) Cursor() int { return b.cursor }

func (b *Buffer) SetCursor(off int) {
	b.cursor = ClampOffset(off, len(b.text))
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns the selection anchor (Start) and focus (End) without
// normalization, preserving the selection direction.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

// SetSelection sets anchor and focus. The caret follows the focus. An empty
// selection clears it.
func (b *Buffer) SetSelection(anchor, focus int) {
	anchor = ClampOffset(anchor, len(b.text))
	focus = ClampOffset(focus, len(b.text))
	b.cursor = focus
	if anchor == focus {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{active: true, anchor: anchor, end: focus}
}

func (b *Buffer) ClearSelection() {
	b.sel = selectionState{}
}

func (b *Buffer) clampSelection(s selectionState) selectionState {
	if !s.active {
		return selectionState{}
	}
	s.anchor = ClampOffset(s.anchor, len(b.text))
	s.end = ClampOffset(s.end, len(b.text))
	if s.anchor == s.end {
		return selectionState{}
	}
	return s
}
