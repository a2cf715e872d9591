package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/linkpad/selection"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	// Pointer placement would move the caret under the input method.
	if !m.focused || m.Composing() {
		return m, cmd
	}

	// Only handle selection/cursor changes for left button interactions.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m, cmd
		}

		off := m.screenToOffset(msg.X, msg.Y)
		if msg.Ctrl {
			if url, ok := m.linkAtOffset(off); ok {
				m.openLink(url)
				return m, cmd
			}
		}

		m.captureSelection()
		before := m.inputState()
		anchor := off
		if msg.Shift {
			anchor = bufferSelection(m.buf).Anchor
		}
		m.mouseAnchor = anchor
		m.mouseDragging = true
		m.selectOffsets(anchor, off)
		m.afterInput(before)

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, cmd
		}

		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		before := m.inputState()
		m.selectOffsets(m.mouseAnchor, m.screenToOffset(x, y))
		m.afterInput(before)

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, cmd
}

// selectOffsets places the surface selection and reads it back into the
// buffer.
func (m *Model) selectOffsets(anchor, focus int) {
	m.SetNativeSelection(selection.PointAt(m.view, anchor), selection.PointAt(m.view, focus))
	m.captureSelection()
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clampInt(x, 0, m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = clampInt(y, 0, m.viewport.Height-1)
	}
	return x, y
}
