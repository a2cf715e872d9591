// Package editor provides the Bubble Tea editing surface for linkpad notes.
//
// The model owns a canonical plain-text buffer and shows it decorated: URLs
// become link runs, code fences stay literal. Every input event follows the
// same cycle: capture the caret from the surface as canonical offsets,
// mutate the buffer, re-annotate and re-project the text, then restore the
// caret onto the fresh run list. While an input method composition is in
// progress the cycle is suspended and resumes once when it ends.
//
// Edits reach the host through OnChange immediately and through OnCommit
// after a trailing-edge quiet period.
package editor
