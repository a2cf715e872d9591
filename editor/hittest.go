package editor

// screenToOffset maps viewport-local mouse coordinates to a canonical offset
// on the decorated view.
//
// Coordinates are in terminal cells and are relative to the editor's viewport:
// (0,0) is the top-left of the visible content region.
//
// Mapping rules:
// - gutter clicks map to the start of the line
// - a click on any cell of a wide grapheme maps to that grapheme
// - clicks past the end of a line map to the line end
// - y is clamped into document bounds
func (m *Model) screenToOffset(x, y int) int {
	lines := layoutRuns(m.view, m.cfg.TabWidth)
	ln := lines[clampInt(m.viewport.YOffset+y, 0, len(lines)-1)]

	gw := m.gutterWidth()
	if x < gw {
		return ln.start
	}
	vx := x - gw + m.xOffset
	for _, c := range ln.cells {
		if vx < c.x+c.width {
			return c.off
		}
	}
	return ln.end
}

// offsetToScreen maps a canonical offset to viewport-local coordinates.
//
// ok is false when the mapped coordinate is outside the visible viewport.
func (m *Model) offsetToScreen(off int) (x, y int, ok bool) {
	lines := layoutRuns(m.view, m.cfg.TabWidth)
	row, ln := lineAt(lines, off)

	y = row - m.viewport.YOffset
	x = cellXAt(ln, off) - m.xOffset + m.gutterWidth()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if y < 0 || y >= h || x < m.gutterWidth() || x >= m.viewport.Width {
		return x, y, false
	}
	return x, y, true
}
