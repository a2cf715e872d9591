// Package buffer implements the canonical plain-text document behind the
// linkpad editor.
//
// Offsets are 0-based rune offsets into the canonical text.
// Ranges are half-open: [Start, End).
// Version counts effective text mutations only.
package buffer
