package editor

import (
	"log/slog"
	"time"

	"github.com/iw2rmb/linkpad/debounce"
)

// DefaultCommitDelay is the quiet period before OnCommit fires.
const DefaultCommitDelay = debounce.DefaultDelay

// DefaultTabWidth is used when Config.TabWidth is not positive.
const DefaultTabWidth = 4

// Config configures the editor Model.
type Config struct {
	// Initial text for the document.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	TabWidth     int
	// Hyperlinks wraps link runs in OSC 8 escape sequences so that capable
	// terminals make them clickable.
	Hyperlinks bool
	// LinkHint shows the URL of the link under the caret in a popup next
	// to it.
	LinkHint bool

	KeyMap   KeyMap
	ReadOnly bool

	// CommitDelay is the trailing-edge quiet period. Zero or negative means
	// DefaultCommitDelay.
	CommitDelay time.Duration
	// SkipBlankCommits suppresses OnCommit when the snapshot is only
	// whitespace.
	SkipBlankCommits bool

	// OnCommit receives the debounced text snapshot.
	OnCommit func(text string)
	// OnChange fires after every update that changed text, caret or selection.
	OnChange func(ChangeEvent)
	// OnOpenLink receives the URL of an activated link.
	OnOpenLink func(url string)

	Clipboard Clipboard

	// Logger receives debug records about input handling. Nil discards.
	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if len(c.KeyMap.Enter.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	if c.TabWidth <= 0 {
		c.TabWidth = DefaultTabWidth
	}
	if c.CommitDelay <= 0 {
		c.CommitDelay = DefaultCommitDelay
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c
}
