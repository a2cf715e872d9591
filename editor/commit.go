package editor

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// commitTickMsg fires when a commit's quiet period has passed. Ticks for a
// superseded or cancelled commit carry a stale seq and are dropped.
type commitTickMsg struct {
	id  int64
	seq uint64
}

// scheduleCommit records the current text as the pending commit, replacing
// any earlier one, and starts its timer.
func (m *Model) scheduleCommit() tea.Cmd {
	p := m.commits.Schedule(m.buf.Text(), time.Now())
	id, seq := m.id, p.Seq
	return tea.Tick(m.cfg.CommitDelay, func(time.Time) tea.Msg {
		return commitTickMsg{id: id, seq: seq}
	})
}

func (m Model) updateCommitTick(msg commitTickMsg) Model {
	if msg.id != m.id {
		return m
	}
	text, ok := m.commits.Fire(msg.seq)
	if !ok {
		m.cfg.Logger.Debug("stale commit tick", "seq", msg.seq)
		return m
	}
	m.deliverCommit(text)
	return m
}

func (m *Model) flushCommit() {
	if text, ok := m.commits.Flush(); ok {
		m.deliverCommit(text)
	}
}

func (m *Model) deliverCommit(text string) {
	if m.cfg.SkipBlankCommits && strings.TrimSpace(text) == "" {
		m.cfg.Logger.Debug("commit skipped", "reason", "blank")
		return
	}
	m.cfg.Logger.Debug("commit", "runes", len([]rune(text)))
	if m.cfg.OnCommit != nil {
		m.cfg.OnCommit(text)
	}
}
