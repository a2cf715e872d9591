package notestore

import (
	"context"
	"strings"

	"github.com/agnivade/levenshtein"
)

// FuzzyThreshold is the largest edit distance at which a query word still
// matches a word of the note.
const FuzzyThreshold = 3

// Search returns the notes whose name or body matches query, most recently
// updated first. An empty query returns every note.
func (s *Store) Search(ctx context.Context, query string, strict bool) ([]Note, error) {
	notes, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return notes, nil
	}

	out := notes[:0]
	for _, n := range notes {
		if Match(n, query, strict) {
			out = append(out, n)
		}
	}
	return out, nil
}

// Match reports whether query matches the note's name or body. Both modes
// ignore case. Strict mode needs a substring; otherwise every query word
// must be within FuzzyThreshold edits of some word in the text.
func Match(n Note, query string, strict bool) bool {
	q := strings.ToLower(query)
	return matchText(strings.ToLower(n.Name), q, strict) ||
		matchText(strings.ToLower(n.Body), q, strict)
}

func matchText(text, query string, strict bool) bool {
	if strings.Contains(text, query) {
		return true
	}
	if strict {
		return false
	}

	words := strings.Fields(text)
	for _, qw := range strings.Fields(query) {
		found := false
		for _, w := range words {
			if levenshtein.ComputeDistance(w, qw) <= FuzzyThreshold {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
