package editor

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/linkpad/buffer"
	"github.com/iw2rmb/linkpad/debounce"
	"github.com/iw2rmb/linkpad/render"
	"github.com/iw2rmb/linkpad/selection"
	"github.com/iw2rmb/linkpad/span"
)

var lastID atomic.Int64

func nextID() int64 { return lastID.Add(1) }

// Model is a Bubble Tea component that edits one document.
//
// The buffer is authoritative for text. Between events the caret lives on
// the surface as native points over the decorated view, and is read back
// before each input is applied.
type Model struct {
	id  int64
	cfg Config
	buf *buffer.Buffer

	spans  []span.Span
	view   render.View
	anchor selection.Point
	focus  selection.Point

	comp    composition
	commits debounce.State
	cycles  int

	focused bool
	closed  bool

	viewport viewport.Model
	xOffset  int

	mouseDragging bool
	mouseAnchor   int
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		id:       nextID(),
		cfg:      cfg,
		buf:      buffer.New(cfg.Text),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.cycle()
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Text returns the canonical plain text.
func (m Model) Text() string { return m.buf.Text() }

// Version increments on every text mutation.
func (m Model) Version() uint64 { return m.buf.Version() }

// Cursor returns the caret as a canonical rune offset.
func (m Model) Cursor() int { return m.buf.Cursor() }

// Selection returns the anchor/focus pair in canonical offsets.
func (m Model) Selection() selection.Selection { return bufferSelection(m.buf) }

// Spans returns the annotation from the last render cycle.
func (m Model) Spans() []span.Span { return append([]span.Span(nil), m.spans...) }

func (m Model) Composing() bool { return m.comp.phase == phaseComposing }

func (m Model) Focused() bool { return m.focused }

func (m Model) Closed() bool { return m.closed }

// PendingCommit returns the commit waiting for its quiet period, if any.
func (m Model) PendingCommit() (debounce.PendingCommit, bool) { return m.commits.Pending() }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.refresh()
	return m
}

func (m Model) Focus() Model {
	if m.closed || m.focused {
		return m
	}
	m.focused = true
	m.refresh()
	return m
}

// Blur removes focus. An open composition is flushed as if it had ended and
// the pending commit is delivered immediately.
func (m Model) Blur() Model {
	if !m.focused {
		return m
	}
	m.focused = false
	m.mouseDragging = false
	if m.Composing() {
		m.cfg.Logger.Debug("composition interrupted", "reason", "blur")
		_ = m.finishComposition()
	}
	m.flushCommit()
	m.refresh()
	return m
}

// ReplaceText swaps the content of the current document, for example after
// the note changed elsewhere. The version keeps counting, the caret and
// selection are clamped into the new text, and an open composition and the
// pending commit are discarded. OnChange fires when anything changed.
func (m Model) ReplaceText(text string) Model {
	if m.closed {
		return m
	}
	before := m.inputState()
	if m.Composing() {
		m.cfg.Logger.Debug("composition interrupted", "reason", "replace")
	}
	m.comp = composition{}
	m.commits.Cancel()
	m.mouseDragging = false
	m.buf.Replace(text)
	m.cycle()
	m.refresh()
	m.emitChange(before)
	return m
}

// SetText loads text as a fresh document with its own version history.
// Use ReplaceText to keep the current document. Any composition and pending
// commit belonging to the previous document are discarded.
func (m Model) SetText(text string) Model {
	if m.closed {
		return m
	}
	m.buf = buffer.New(text)
	m.comp = composition{}
	m.commits.Cancel()
	m.mouseDragging = false
	m.xOffset = 0
	m.cycle()
	m.refresh()
	return m
}

// FlushCommit delivers the pending commit now instead of waiting for its
// quiet period.
func (m Model) FlushCommit() Model {
	m.flushCommit()
	return m
}

// Close tears the editor down. A pending commit is cancelled, not
// delivered, and every later message is ignored.
func (m Model) Close() Model {
	if m.closed {
		return m
	}
	if _, ok := m.commits.Pending(); ok {
		m.cfg.Logger.Debug("pending commit cancelled", "reason", "close")
	}
	m.commits.Cancel()
	m.comp = composition{}
	m.closed = true
	m.focused = false
	m.mouseDragging = false
	m.refresh()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.FocusMsg:
		return m.Focus(), nil
	case tea.BlurMsg:
		return m.Blur(), nil
	case commitTickMsg:
		return m.updateCommitTick(msg), nil
	case CompositionStartMsg:
		return m.updateCompositionStart()
	case CompositionUpdateMsg:
		return m.updateCompositionUpdate(msg)
	case CompositionEndMsg:
		return m.updateCompositionEnd(msg)
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	default:
		return m, nil
	}
}

func (m Model) View() string {
	base := m.viewport.View()
	if hint, ok := m.renderLinkHint(base); ok {
		return hint
	}
	return base
}

func (m *Model) refresh() {
	row, cell := m.caretScreenPos()
	m.followCursorX(cell)
	m.viewport.SetContent(m.renderContent())
	m.followCursorY(row)
}

// followCursorX keeps the caret cell inside the visible columns. Lines are
// never wrapped.
func (m *Model) followCursorX(cell int) {
	w := m.contentWidth()
	if w <= 0 {
		return
	}
	if cell < m.xOffset {
		m.xOffset = cell
	} else if cell >= m.xOffset+w {
		m.xOffset = cell - w + 1
	}
}

func (m *Model) followCursorY(row int) {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
	} else if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
