package editor

import (
	"github.com/iw2rmb/linkpad/render"
	"github.com/iw2rmb/linkpad/span"
)

// LinkAtCursor returns the URL of the link under or just before the caret.
// Nothing is reported while a composition is open, since the annotation is
// stale until it ends.
func (m Model) LinkAtCursor() (string, bool) {
	if m.Composing() {
		return "", false
	}
	sp, ok := span.At(m.spans, m.buf.Cursor())
	if !ok {
		return "", false
	}
	return sp.Text(m.buf.Text()), true
}

func (m *Model) openLinkAtCursor() {
	url, ok := m.LinkAtCursor()
	if !ok {
		return
	}
	m.openLink(url)
}

// linkAtOffset returns the link run whose characters cover off.
func (m *Model) linkAtOffset(off int) (string, bool) {
	i := m.view.RunAt(off)
	if i < 0 {
		return "", false
	}
	r := m.view.Runs[i]
	if r.Kind != render.Link || off < r.Start || off >= r.End {
		return "", false
	}
	return r.Target()
}

func (m *Model) openLink(url string) {
	m.cfg.Logger.Debug("open link", "url", url)
	if m.cfg.OnOpenLink != nil {
		m.cfg.OnOpenLink(url)
	}
}
