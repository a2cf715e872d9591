// Package span scans canonical text for annotatable regions.
//
// Two kinds exist: Link (http:// and https:// tokens) and CodeFence
// (regions delimited by a pair of triple backticks). Offsets are rune
// offsets into the scanned text, half-open [Start, End). Annotation is a
// pure function of the text: it never changes the text itself.
package span
