package buffer

// Range is a half-open span of canonical text in rune offsets: [Start, End).
type Range struct {
	Start int
	End   int
}

// TextEdit replaces the text in Range with Text (which may contain '\n').
type TextEdit struct {
	Range Range
	Text  string
}

// Pos is a display coordinate: 0-based logical line and rune column.
// Canonical offsets remain the source of truth; Pos is derived.
type Pos struct {
	Row int
	Col int
}

func NormalizeRange(r Range) Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func (r Range) Len() int {
	r = NormalizeRange(r)
	return r.End - r.Start
}

// Contains reports whether off lies in [Start, End).
func (r Range) Contains(off int) bool {
	r = NormalizeRange(r)
	return off >= r.Start && off < r.End
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampOffset clamps off into [0, n].
func ClampOffset(off, n int) int {
	return clampInt(off, 0, n)
}

func ClampRange(r Range, n int) Range {
	return Range{
		Start: ClampOffset(r.Start, n),
		End:   ClampOffset(r.End, n),
	}
}
