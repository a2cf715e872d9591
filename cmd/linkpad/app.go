package main

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/iw2rmb/linkpad/editor"
)

var quitKey = key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "save and quit"))

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	errorStyle  = statusStyle.Foreground(lipgloss.Color("203"))
)

type app struct {
	sess   *session
	editor editor.Model
	width  int
	now    func() time.Time
}

func newApp(sess *session, cfg editor.Config) app {
	cfg.OnCommit = sess.save
	cfg.OnOpenLink = func(url string) {
		sess.openLink(url)
		if cfg.Clipboard != nil {
			if err := cfg.Clipboard.WriteText(url); err != nil {
				sess.log.Debug("copy link", "err", err)
			}
		}
	}
	return app{sess: sess, editor: editor.New(cfg), now: time.Now}
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.editor = a.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return a, nil
	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			a.editor = a.editor.FlushCommit()
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, a.editor.View(), a.statusLine())
}

func (a app) statusLine() string {
	left := " " + a.sess.name
	if _, ok := a.editor.PendingCommit(); ok {
		left += " *"
	}
	if url, ok := a.editor.LinkAtCursor(); ok {
		left += "  " + url
	} else if a.sess.opened != "" {
		left += "  copied " + a.sess.opened
	}

	style := statusStyle
	right := "saved " + humanize.RelTime(a.sess.saved, a.now(), "ago", "from now") + " "
	if a.sess.saves == 0 {
		right = quitKey.Help().Key + " " + quitKey.Help().Desc + " "
	}
	if a.sess.err != nil {
		style = errorStyle
		right = "save failed: " + a.sess.err.Error() + " "
	}

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right
	return style.Width(a.width).MaxWidth(a.width).Render(line)
}
