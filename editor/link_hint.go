package editor

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// renderLinkHint composites the URL of the link under the caret onto base,
// on the row below the caret or above it when the caret is on the last
// visible row.
func (m Model) renderLinkHint(base string) (string, bool) {
	if !m.cfg.LinkHint || !m.focused {
		return "", false
	}
	url, ok := m.LinkAtCursor()
	if !ok {
		return "", false
	}
	x, y, ok := (&m).offsetToScreen(m.buf.Cursor())
	if !ok {
		return "", false
	}

	st := m.cfg.Style.LinkHint
	width := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	if maxText := width - st.GetHorizontalFrameSize(); maxText > 0 {
		url = ansi.Truncate(url, maxText, "…")
	}
	hint := st.Render(url)
	hw, hh := lipgloss.Width(hint), lipgloss.Height(hint)
	if hw > width {
		return "", false
	}

	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	row := y + 1
	if row+hh > h {
		row = y - hh
	}
	if row < 0 {
		return "", false
	}
	if x+hw > width {
		x = width - hw
	}

	leftFrame := m.viewport.Style.GetMarginLeft() + m.viewport.Style.GetBorderLeftSize() + m.viewport.Style.GetPaddingLeft()
	topFrame := m.viewport.Style.GetMarginTop() + m.viewport.Style.GetBorderTopSize() + m.viewport.Style.GetPaddingTop()
	return overlay.Composite(hint, base, overlay.Left, overlay.Top, leftFrame+x, topFrame+row), true
}
