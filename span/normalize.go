package span

import "sort"

// Normalize returns spans sorted by Start with every malformed entry
// removed: empty or inverted ranges, ranges outside [0, n], unknown kinds,
// and spans overlapping an earlier kept span. The input is not modified.
func Normalize(spans []Span, n int) []Span {
	if len(spans) == 0 {
		return nil
	}

	out := make([]Span, 0, len(spans))
	for _, sp := range spans {
		if sp.Kind != Link && sp.Kind != CodeFence {
			continue
		}
		if sp.Start < 0 || sp.End > n || sp.Start >= sp.End {
			continue
		}
		out = append(out, sp)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})

	kept := out[:0]
	for _, sp := range out {
		if len(kept) > 0 && sp.Start < kept[len(kept)-1].End {
			continue
		}
		kept = append(kept, sp)
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// At returns the Link span targeted by a caret or pointer at off. A span
// containing off wins; otherwise a link ending exactly at off is returned so
// that a caret placed right after a URL still targets it.
func At(spans []Span, off int) (Span, bool) {
	var trailing Span
	found := false
	for _, sp := range spans {
		if sp.Kind != Link {
			continue
		}
		if off >= sp.Start && off < sp.End {
			return sp, true
		}
		if off == sp.End {
			trailing, found = sp, true
		}
	}
	return trailing, found
}

// Links filters spans down to Link spans.
func Links(spans []Span) []Span {
	var out []Span
	for _, sp := range spans {
		if sp.Kind == Link {
			out = append(out, sp)
		}
	}
	return out
}
