package buffer

// LineCount returns the number of logical lines ('\n'-separated). An empty
// document has one line.
func (b *Buffer) LineCount() int {
	return len(b.lineStarts())
}

// Line returns the text of row without its trailing newline.
func (b *Buffer) Line(row int) string {
	start, end, ok := b.lineBounds(row)
	if !ok {
		return ""
	}
	return string(b.text[start:end])
}

// PosFromOffset converts a canonical rune offset to a display Pos. The offset
// is clamped into the document first.
func (b *Buffer) PosFromOffset(off int) Pos {
	return PosFromOffset(b.text, off)
}

// OffsetFromPos converts a display Pos to a canonical rune offset, clamping
// the row into the document and the column into the row.
func (b *Buffer) OffsetFromPos(p Pos) int {
	starts := b.lineStarts()
	row := clampInt(p.Row, 0, len(starts)-1)
	start, end, _ := b.lineBounds(row)
	return start + clampInt(p.Col, 0, end-start)
}

// PosFromOffset converts a rune offset into text to a display Pos.
func PosFromOffset(text []rune, off int) Pos {
	off = ClampOffset(off, len(text))
	row, col := 0, 0
	for i := 0; i < off; i++ {
		if text[i] == '\n' {
			row++
			col = 0
			continue
		}
		col++
	}
	return Pos{Row: row, Col: col}
}

func (b *Buffer) lineStarts() []int {
	starts := []int{0}
	for i, r := range b.text {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineBounds returns the [start, end) rune offsets of row, excluding the newline.
func (b *Buffer) lineBounds(row int) (start, end int, ok bool) {
	starts := b.lineStarts()
	if row < 0 || row >= len(starts) {
		return 0, 0, false
	}
	start = starts[row]
	end = len(b.text)
	if row+1 < len(starts) {
		end = starts[row+1] - 1
	}
	return start, end, true
}
