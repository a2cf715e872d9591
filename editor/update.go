package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/linkpad/buffer"
	"github.com/iw2rmb/linkpad/selection"
)

// inputState is what an input event is judged by: the text version, the
// caret and whether a composition is open.
type inputState struct {
	version   uint64
	sel       selection.Selection
	composing bool
}

func (m *Model) inputState() inputState {
	return inputState{
		version:   m.buf.Version(),
		sel:       bufferSelection(m.buf),
		composing: m.Composing(),
	}
}

// afterInput completes an input event. A text change runs a render cycle
// and schedules a commit; a caret-only change is restored onto the existing
// view. Nothing is re-projected while composing.
func (m *Model) afterInput(before inputState) tea.Cmd {
	after := m.inputState()

	var cmd tea.Cmd
	switch {
	case after.composing:
	case after.version != before.version:
		m.cycle()
		cmd = m.scheduleCommit()
	case after.sel != before.sel:
		m.restoreSelection()
	}
	m.refresh()
	m.emitChange(before)
	return cmd
}

func (m *Model) emitChange(before inputState) {
	if m.cfg.OnChange == nil || m.inputState() == before {
		return
	}
	m.cfg.OnChange(buildChangeEvent(m.buf, m.Composing(), before.version))
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste {
		return m.paste(string(msg.Runes))
	}

	if m.Composing() {
		before := m.inputState()
		m.composeKey(msg)
		return m, m.afterInput(before)
	}

	m.captureSelection()
	before := m.inputState()

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.buf.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.buf.DeleteForward()
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.buf.InsertNewline()
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			return m.pasteClipboard()
		}

	case key.Matches(msg, km.OpenLink):
		m.openLinkAtCursor()

	default:
		if m.cfg.ReadOnly {
			break
		}
		switch {
		case msg.Type == tea.KeyTab:
			m.buf.InsertRune('\t')
		case msg.Type == tea.KeySpace:
			m.buf.InsertRune(' ')
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			m.buf.InsertText(string(msg.Runes))
		}
	}

	return m, m.afterInput(before)
}

// paste inserts clipboard text as plain text. An open composition is
// finished first so that the pasted text lands after it.
func (m Model) paste(raw string) (Model, tea.Cmd) {
	if m.cfg.ReadOnly {
		return m, nil
	}

	var cmds []tea.Cmd
	if m.Composing() {
		m.cfg.Logger.Debug("composition interrupted", "reason", "paste")
		before := m.inputState()
		cmds = append(cmds, m.finishComposition())
		m.emitChange(before)
	}

	text := sanitizePaste(raw)
	if text == "" {
		m.cfg.Logger.Debug("paste ignored", "reason", "no plain text")
		return m, tea.Batch(cmds...)
	}

	m.captureSelection()
	before := m.inputState()
	m.buf.InsertText(text)
	cmds = append(cmds, m.afterInput(before))
	return m, tea.Batch(cmds...)
}

func (m Model) pasteClipboard() (Model, tea.Cmd) {
	if m.cfg.Clipboard == nil {
		return m, nil
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.cfg.Logger.Debug("clipboard read failed", "err", err)
		return m, nil
	}
	return m.paste(s)
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	r, ok := m.buf.Selection()
	if !ok {
		return
	}
	if err := m.cfg.Clipboard.WriteText(m.buf.Slice(r)); err != nil {
		m.cfg.Logger.Debug("clipboard write failed", "err", err)
	}
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	r, ok := m.buf.Selection()
	if !ok {
		return
	}
	if err := m.cfg.Clipboard.WriteText(m.buf.Slice(r)); err != nil {
		m.cfg.Logger.Debug("clipboard write failed", "err", err)
		return
	}
	m.buf.DeleteSelection()
}
