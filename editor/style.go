package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
//
// Styles should avoid layout-affecting options (padding, margin, width) so
// that one grapheme keeps mapping to its own cells.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Link      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	// Composition marks text an input method is still composing.
	Composition lipgloss.Style
	// LinkHint frames the popup shown for the link under the caret.
	LinkHint lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Link:          lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Composition:   lipgloss.NewStyle().Underline(true),
		LinkHint:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1),
	}
}
