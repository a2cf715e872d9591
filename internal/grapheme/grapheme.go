package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Boundaries returns the rune offsets at which grapheme clusters of runes
// start, followed by len(runes). An empty input yields [0].
func Boundaries(runes []rune) []int {
	out := []int{0}
	if len(runes) == 0 {
		return out
	}
	g := uniseg.NewGraphemes(string(runes))
	off := 0
	for g.Next() {
		off += len(g.Runes())
		out = append(out, off)
	}
	return out
}

// Prev returns the rune offset of the cluster boundary strictly before off,
// or 0 when off is at or before the start.
func Prev(runes []rune, off int) int {
	if off <= 0 {
		return 0
	}
	prev := 0
	for _, b := range Boundaries(runes) {
		if b >= off {
			break
		}
		prev = b
	}
	return prev
}

// Next returns the rune offset of the cluster boundary strictly after off,
// or len(runes) when off is at or past the end.
func Next(runes []rune, off int) int {
	if off >= len(runes) {
		return len(runes)
	}
	for _, b := range Boundaries(runes) {
		if b > off {
			return b
		}
	}
	return len(runes)
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
