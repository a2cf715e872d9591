// Package render projects canonical text plus spans into a decorated run
// list and inverts it back.
//
// Decoration is metadata attached to runs; run text is always a verbatim
// slice of the canonical text, so Invert(Project(t, s)) == t for every t.
package render
