package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/linkpad/editor"
)

// EditCmd opens a note in the full-screen editor. Every debounced commit is
// saved to the notes database.
type EditCmd struct {
	Name         string `arg:"" help:"Note name"`
	LineNumbers  bool   `name:"line-numbers" short:"n" help:"Show line numbers"`
	NoHyperlinks bool   `name:"no-hyperlinks" help:"Do not emit OSC 8 hyperlinks"`
	NoLinkHint   bool   `name:"no-link-hint" help:"Hide the popup showing the URL under the caret"`
	ReadOnly     bool   `name:"read-only" help:"Open the note without editing it"`
}

func (c *EditCmd) Run(s *settings) error {
	ctx := context.Background()

	log, closeLog, err := openLog(s)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := openStore(ctx, s)
	if err != nil {
		return err
	}
	defer store.Close()

	note, err := store.GetOrCreate(ctx, c.Name)
	if err != nil {
		return fmt.Errorf("load note: %w", err)
	}
	log.Info("editing note", "name", note.Name, "id", note.ID, "db", s.DBPath)

	sess := newSession(ctx, store, note, log)
	clip := &terminalClipboard{out: termenv.NewOutput(os.Stderr)}
	m := newApp(sess, editor.Config{
		Text:         note.Body,
		ShowLineNums: c.LineNumbers,
		Style:        editor.DefaultStyle(),
		Hyperlinks:   !c.NoHyperlinks,
		LinkHint:     !c.NoLinkHint,
		ReadOnly:     c.ReadOnly,
		CommitDelay:  s.CommitDelay,
		Clipboard:    clip,
		Logger:       log.With("component", "editor"),
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	final, err := p.Run()
	return finishEdit(final, err, sess)
}

// finishEdit delivers the edit still waiting for its quiet period. An
// interrupted program skips the quit key but still hands back its last
// model, so the flush happens before the run error is reported.
func finishEdit(final tea.Model, runErr error, sess *session) error {
	if a, ok := final.(app); ok {
		a.editor.FlushCommit()
	}
	if runErr != nil {
		return fmt.Errorf("run editor: %w", runErr)
	}
	return sess.err
}

// terminalClipboard keeps a process-local register and mirrors writes to the
// system clipboard through OSC 52.
type terminalClipboard struct {
	out  *termenv.Output
	text string
}

func (c *terminalClipboard) ReadText() (string, error) { return c.text, nil }

func (c *terminalClipboard) WriteText(s string) error {
	c.text = s
	c.out.Copy(s)
	return nil
}
