package span

import (
	"sort"
	"unicode"
)

// Kind tags a Span.
type Kind uint8

const (
	Link Kind = iota
	CodeFence
)

func (k Kind) String() string {
	switch k {
	case Link:
		return "link"
	case CodeFence:
		return "code-fence"
	default:
		return "unknown"
	}
}

// Span is a tagged half-open rune range [Start, End) over canonical text.
type Span struct {
	Kind  Kind
	Start int
	End   int
}

func (s Span) Len() int { return s.End - s.Start }

// Text returns the covered part of text. Out-of-range spans yield "".
func (s Span) Text(text string) string {
	runes := []rune(text)
	if s.Start < 0 || s.End > len(runes) || s.Start >= s.End {
		return ""
	}
	return string(runes[s.Start:s.End])
}

const fenceMarker = "```"

var schemes = []string{"http://", "https://"}

// Annotate returns the sorted, non-overlapping spans of text.
//
// Code fences are located first; an unterminated opening marker extends to
// the end of text. URL tokens are then found outside fences: a scheme prefix
// followed by at least one more non-whitespace rune, running to the first
// whitespace rune or end of text. A token that would reach into a fence is
// dropped whole.
func Annotate(text string) []Span {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	fences := findFences(runes)
	links := findLinks(runes, fences)
	if len(fences) == 0 && len(links) == 0 {
		return nil
	}

	out := make([]Span, 0, len(fences)+len(links))
	out = append(out, fences...)
	out = append(out, links...)
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

func findFences(runes []rune) []Span {
	marker := []rune(fenceMarker)
	var out []Span
	i := 0
	for i < len(runes) {
		open := indexRunes(runes, i, marker)
		if open < 0 {
			break
		}
		closing := indexRunes(runes, open+len(marker), marker)
		if closing < 0 {
			out = append(out, Span{Kind: CodeFence, Start: open, End: len(runes)})
			break
		}
		end := closing + len(marker)
		out = append(out, Span{Kind: CodeFence, Start: open, End: end})
		i = end
	}
	return out
}

func findLinks(runes []rune, fences []Span) []Span {
	var out []Span
	fi := 0
	i := 0
	for i < len(runes) {
		for fi < len(fences) && fences[fi].End <= i {
			fi++
		}
		if fi < len(fences) && fences[fi].Start <= i {
			i = fences[fi].End
			continue
		}

		n := schemeLen(runes, i)
		if n == 0 {
			i++
			continue
		}

		end := i + n
		for end < len(runes) && !unicode.IsSpace(runes[end]) {
			end++
		}
		if end == i+n {
			i = end
			continue
		}

		// A fence never starts with whitespace, so a token that reaches the
		// next fence overlaps it.
		if fi < len(fences) && fences[fi].Start < end {
			i = end
			continue
		}
		out = append(out, Span{Kind: Link, Start: i, End: end})
		i = end
	}
	return out
}

func schemeLen(runes []rune, at int) int {
	for _, s := range schemes {
		p := []rune(s)
		if hasPrefixAt(runes, at, p) {
			return len(p)
		}
	}
	return 0
}

func hasPrefixAt(runes []rune, at int, prefix []rune) bool {
	if at < 0 || at+len(prefix) > len(runes) {
		return false
	}
	for j, r := range prefix {
		if runes[at+j] != r {
			return false
		}
	}
	return true
}

func indexRunes(runes []rune, from int, needle []rune) int {
	for i := from; i+len(needle) <= len(runes); i++ {
		if hasPrefixAt(runes, i, needle) {
			return i
		}
	}
	return -1
}
