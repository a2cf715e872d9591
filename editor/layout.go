package editor

import (
	"strings"

	"github.com/iw2rmb/linkpad/buffer"
	graphemeutil "github.com/iw2rmb/linkpad/internal/grapheme"
	"github.com/iw2rmb/linkpad/render"
	"github.com/iw2rmb/linkpad/selection"
)

// cell is one grapheme cluster placed on a screen line.
type cell struct {
	text  string
	off   int // canonical rune offset of the cluster
	x     int // first terminal cell within the line
	width int
	run   int // index of the run the cluster came from
}

// line is one '\n'-separated row of the decorated view.
type line struct {
	cells []cell
	start int
	end   int // canonical offset of the line end, before any newline
	width int
}

// layoutRuns cuts a run list into screen lines. Lines are never wrapped.
func layoutRuns(v render.View, tabWidth int) []line {
	lines := []line{{}}
	cur := &lines[0]
	off := 0
	for ri, r := range v.Runs {
		for pi, piece := range strings.Split(r.Text, "\n") {
			if pi > 0 {
				cur.end = off
				off++
				lines = append(lines, line{start: off})
				cur = &lines[len(lines)-1]
			}
			for _, g := range graphemeutil.Split(piece) {
				w := graphemeCellWidth(g, cur.width, tabWidth)
				cur.cells = append(cur.cells, cell{text: g, off: off, x: cur.width, width: w, run: ri})
				cur.width += w
				off += len([]rune(g))
			}
		}
	}
	cur.end = off
	return lines
}

// frame is what the surface currently shows. While composing it shows the
// canonical text undecorated, with the in-flight range marked.
type frame struct {
	view     render.View
	caret    int
	selStart int
	selEnd   int
	preedit  buffer.Range
}

func (m *Model) currentFrame() frame {
	if m.Composing() {
		text := m.buf.Text()
		n := m.buf.Len()
		f := frame{caret: m.buf.Cursor(), preedit: m.comp.preedit()}
		if n > 0 {
			f.view = render.View{Runs: []render.Run{{Kind: render.Literal, Text: text, End: n}}}
		}
		return f
	}
	sel := selection.Capture(m)
	start, end := sel.Bounds()
	return frame{view: m.view, caret: sel.Focus, selStart: start, selEnd: end}
}

// caretScreenPos returns the line and cell of the caret shown on the surface.
func (m *Model) caretScreenPos() (row, x int) {
	f := m.currentFrame()
	lines := layoutRuns(f.view, m.cfg.TabWidth)
	row, ln := lineAt(lines, f.caret)
	return row, cellXAt(ln, f.caret)
}

// lineAt returns the first line containing off, end included.
func lineAt(lines []line, off int) (int, line) {
	for i, ln := range lines {
		if off >= ln.start && off <= ln.end {
			return i, ln
		}
	}
	last := len(lines) - 1
	return last, lines[last]
}

func cellXAt(ln line, off int) int {
	for _, c := range ln.cells {
		if c.off >= off {
			return c.x
		}
	}
	return ln.width
}

func (m *Model) lineCount() int {
	return strings.Count(m.buf.Text(), "\n") + 1
}

func (m *Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.lineCount()) + 1
}

func (m *Model) contentWidth() int {
	return m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth()
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	n := 1
	for lineCount >= 10 {
		lineCount /= 10
		n++
	}
	return n
}
