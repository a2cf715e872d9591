package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/linkpad/buffer"
	"github.com/iw2rmb/linkpad/internal/grapheme"
)

// CompositionStartMsg opens an input method composition at the caret. An
// active selection is replaced by the composed text.
type CompositionStartMsg struct{}

// CompositionUpdateMsg replaces the in-flight composed text.
type CompositionUpdateMsg struct {
	Text string
}

// CompositionEndMsg closes the composition. A non-empty Text replaces the
// in-flight text; an empty Text keeps what was composed so far.
type CompositionEndMsg struct {
	Text string
}

type compositionPhase uint8

const (
	phaseIdle compositionPhase = iota
	phaseComposing
)

// composition tracks the in-flight text as a canonical range starting at
// start. startText is the document before the composition touched it.
type composition struct {
	phase     compositionPhase
	start     int
	length    int
	startText string
}

func (c composition) preedit() buffer.Range {
	return buffer.Range{Start: c.start, End: c.start + c.length}
}

func (m Model) updateCompositionStart() (Model, tea.Cmd) {
	if !m.focused || m.cfg.ReadOnly {
		return m, nil
	}
	if m.Composing() {
		m.cfg.Logger.Debug("composition already open")
		return m, nil
	}

	before := m.inputState()
	m.captureSelection()
	m.comp = composition{phase: phaseComposing, startText: m.buf.Text()}
	m.buf.DeleteSelection()
	m.comp.start = m.buf.Cursor()
	m.cfg.Logger.Debug("composition started", "offset", m.comp.start)
	return m, m.afterInput(before)
}

func (m Model) updateCompositionUpdate(msg CompositionUpdateMsg) (Model, tea.Cmd) {
	if !m.Composing() {
		m.cfg.Logger.Debug("composition update without start")
		return m, nil
	}
	before := m.inputState()
	m.replacePreedit(msg.Text)
	return m, m.afterInput(before)
}

func (m Model) updateCompositionEnd(msg CompositionEndMsg) (Model, tea.Cmd) {
	if !m.Composing() {
		m.cfg.Logger.Debug("composition end without start")
		return m, nil
	}
	before := m.inputState()
	if msg.Text != "" {
		m.replacePreedit(msg.Text)
	}
	cmd := m.finishComposition()
	m.emitChange(before)
	return m, cmd
}

// composeKey applies a key press to the in-flight text. Only typing and
// backspace inside the composed range have an effect.
func (m *Model) composeKey(msg tea.KeyMsg) {
	switch {
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		n := m.buf.Len()
		m.buf.InsertText(string(msg.Runes))
		m.comp.length += m.buf.Len() - n
	case msg.Type == tea.KeySpace:
		m.buf.InsertRune(' ')
		m.comp.length++
	case key.Matches(msg, m.cfg.KeyMap.Backspace):
		cur := m.buf.Cursor()
		if cur <= m.comp.start {
			return
		}
		// A composed mark can join the committed cluster before it; only
		// the composed part is removed.
		from := max(grapheme.Prev([]rune(m.buf.Text()), cur), m.comp.start)
		n := m.buf.Len()
		m.buf.Apply(buffer.TextEdit{Range: buffer.Range{Start: from, End: cur}})
		m.comp.length = max(m.comp.length-(n-m.buf.Len()), 0)
	default:
		m.cfg.Logger.Debug("key ignored while composing")
	}
}

func (m *Model) replacePreedit(text string) {
	m.buf.Apply(buffer.TextEdit{Range: m.comp.preedit(), Text: text})
	m.comp.length = len([]rune(text))
	m.buf.SetCursor(m.comp.start + m.comp.length)
}

// finishComposition returns to idle and runs the one render cycle that was
// held back. A commit is scheduled when the composition changed the text.
func (m *Model) finishComposition() tea.Cmd {
	changed := m.buf.Text() != m.comp.startText
	m.comp = composition{}
	m.cycle()
	m.refresh()
	m.cfg.Logger.Debug("composition ended", "changed", changed)
	if !changed {
		return nil
	}
	return m.scheduleCommit()
}
