package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/linkpad/render"
)

func (m *Model) renderContent() string {
	f := m.currentFrame()
	lines := layoutRuns(f.view, m.cfg.TabWidth)
	caretRow, _ := lineAt(lines, f.caret)

	digitCount := 0
	if m.cfg.ShowLineNums {
		digitCount = gutterDigits(len(lines))
	}

	left := m.xOffset
	right := int(^uint(0) >> 1)
	if w := m.contentWidth(); w > 0 {
		right = left + w
	}

	out := make([]string, 0, len(lines))
	for row, ln := range lines {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == caretRow {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		sb.WriteString(m.renderLine(f, ln, row == caretRow, left, right))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderLine draws the cells of ln that fit in [left, right). Link runs are
// optionally wrapped in OSC 8 hyperlinks, one sequence per visible piece.
func (m *Model) renderLine(f frame, ln line, hasCaret bool, left, right int) string {
	st := m.cfg.Style
	showCaret := hasCaret && m.focused

	var sb, link strings.Builder
	linkRun := -1
	flushLink := func() {
		if linkRun < 0 {
			return
		}
		url, _ := f.view.Runs[linkRun].Target()
		sb.WriteString(termenv.Hyperlink(url, link.String()))
		link.Reset()
		linkRun = -1
	}

	for _, c := range ln.cells {
		if c.x < left {
			continue
		}
		if c.x+c.width > right {
			break
		}

		isLink := f.view.Runs[c.run].Kind == render.Link
		s := m.cellStyle(f, c, isLink, showCaret).Render(cellText(c))

		if !m.cfg.Hyperlinks || !isLink {
			flushLink()
			sb.WriteString(s)
			continue
		}
		if linkRun != c.run {
			flushLink()
			linkRun = c.run
		}
		link.WriteString(s)
	}
	flushLink()

	if showCaret && f.caret == ln.end && ln.width >= left && ln.width < right {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func (m *Model) cellStyle(f frame, c cell, isLink, showCaret bool) lipgloss.Style {
	st := m.cfg.Style
	switch {
	case showCaret && c.off == f.caret:
		return st.Cursor
	case c.off >= f.selStart && c.off < f.selEnd:
		return st.Selection
	case c.off >= f.preedit.Start && c.off < f.preedit.End:
		return st.Composition
	case isLink:
		return st.Link
	default:
		return st.Text
	}
}

func cellText(c cell) string {
	if c.text == "\t" {
		return strings.Repeat(" ", c.width)
	}
	return c.text
}
