package editor

import (
	"github.com/iw2rmb/linkpad/buffer"
	"github.com/iw2rmb/linkpad/render"
	"github.com/iw2rmb/linkpad/selection"
	"github.com/iw2rmb/linkpad/span"
)

// DecoratedView returns the run list currently shown on the surface. While a
// composition is open it lags the canonical text.
func (m *Model) DecoratedView() render.View { return m.view }

// NativeSelection returns the surface caret as run-relative points.
func (m *Model) NativeSelection() (anchor, focus selection.Point) {
	return m.anchor, m.focus
}

// SetNativeSelection places the surface caret.
func (m *Model) SetNativeSelection(anchor, focus selection.Point) {
	m.anchor, m.focus = anchor, focus
}

// cycle re-annotates the canonical text, rebuilds the decorated view and
// puts the buffer caret back onto it.
func (m *Model) cycle() {
	text := m.buf.Text()
	m.spans = span.Annotate(text)
	m.view = render.Project(text, m.spans)
	m.cycles++
	m.restoreSelection()
}

// captureSelection reads the surface caret into the buffer.
func (m *Model) captureSelection() {
	sel := selection.Capture(m)
	m.buf.SetSelection(sel.Anchor, sel.Focus)
}

// restoreSelection writes the buffer caret onto the surface. An offset that
// no longer fits clamps to the end of the document.
func (m *Model) restoreSelection() {
	want := bufferSelection(m.buf)
	got := selection.Restore(m, want)
	if got != want {
		m.cfg.Logger.Debug("selection clamped", "anchor", want.Anchor, "focus", want.Focus, "len", m.view.Len())
		m.buf.SetSelection(got.Anchor, got.Focus)
	}
}

func bufferSelection(b *buffer.Buffer) selection.Selection {
	if raw, ok := b.SelectionRaw(); ok {
		return selection.Selection{Anchor: raw.Start, Focus: raw.End}
	}
	return selection.Caret(b.Cursor())
}
