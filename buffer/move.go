package buffer

import "github.com/iw2rmb/linkpad/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/focus; if false clears selection
}

// Move repositions the caret. Text and version are never affected.
func (b *Buffer) Move(m Move) {
	prev := b.cursor
	next := ClampOffset(b.moveCursor(prev, m), len(b.text))

	if !m.Extend {
		b.cursor = next
		b.sel = selectionState{}
		return
	}

	anchor := prev
	if raw, ok := b.SelectionRaw(); ok {
		anchor = raw.Start
	}
	b.SetSelection(anchor, next)
}

func (b *Buffer) moveCursor(off int, m Move) int {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(off, m.Dir)
	case MoveWord:
		return b.moveWord(off, m.Dir)
	case MoveLine:
		return b.moveLine(off, m.Dir)
	case MoveDoc:
		return b.moveDoc(off, m.Dir)
	default:
		return off
	}
}

func (b *Buffer) moveGrapheme(off int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		if off > 0 && b.text[off-1] == '\n' {
			return off - 1
		}
		return b.lineStartOf(off) + grapheme.Prev(b.lineRunesOf(off), off-b.lineStartOf(off))
	case DirRight:
		if off < len(b.text) && b.text[off] == '\n' {
			return off + 1
		}
		return b.lineStartOf(off) + grapheme.Next(b.lineRunesOf(off), off-b.lineStartOf(off))
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveWord(off int, dir MoveDir) int {
	start := b.lineStartOf(off)
	clusters := grapheme.Split(string(b.lineRunesOf(off)))
	col := clusterIndexAt(clusters, off-start)

	switch dir {
	case DirLeft:
		return start + runeLen(clusters[:prevWordBoundary(clusters, col)])
	case DirRight:
		return start + runeLen(clusters[:nextWordBoundary(clusters, col)])
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveLine(off int, dir MoveDir) int {
	p := b.PosFromOffset(off)

	switch dir {
	case DirHome:
		return b.OffsetFromPos(Pos{Row: p.Row, Col: 0})
	case DirEnd:
		_, end, _ := b.lineBounds(p.Row)
		return end
	case DirUp:
		if p.Row == 0 {
			return off
		}
		return b.OffsetFromPos(Pos{Row: p.Row - 1, Col: p.Col})
	case DirDown:
		if p.Row == b.LineCount()-1 {
			return off
		}
		return b.OffsetFromPos(Pos{Row: p.Row + 1, Col: p.Col})
	default:
		return off
	}
}

func (b *Buffer) moveDoc(off int, dir MoveDir) int {
	switch dir {
	case DirHome, DirUp:
		return 0
	case DirEnd, DirDown:
		return len(b.text)
	default:
		return off
	}
}

func (b *Buffer) lineStartOf(off int) int {
	off = ClampOffset(off, len(b.text))
	for i := off - 1; i >= 0; i-- {
		if b.text[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

func (b *Buffer) lineRunesOf(off int) []rune {
	start := b.lineStartOf(off)
	end := start
	for end < len(b.text) && b.text[end] != '\n' {
		end++
	}
	return b.text[start:end]
}

// clusterIndexAt maps a rune column to the index of the cluster starting at
// or containing it.
func clusterIndexAt(clusters []string, col int) int {
	n := 0
	for i, c := range clusters {
		if n >= col {
			return i
		}
		n += len([]rune(c))
	}
	return len(clusters)
}

func runeLen(clusters []string) int {
	n := 0
	for _, c := range clusters {
		n += len([]rune(c))
	}
	return n
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - newline is a hard boundary (so this operates on a single logical line)
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
