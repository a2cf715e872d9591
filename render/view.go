package render

import (
	"strings"

	"github.com/iw2rmb/linkpad/span"
)

// RunKind identifies how a run is decorated.
type RunKind uint8

const (
	// Literal runs are shown as-is. Code fences project to Literal runs.
	Literal RunKind = iota
	// Link runs wrap a detected URL.
	Link
)

func (k RunKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Link:
		return "link"
	default:
		return "unknown"
	}
}

// Run is one contiguous piece of the decorated view. Start and End are the
// canonical rune offsets the run was cut from.
type Run struct {
	Kind  RunKind
	Text  string
	Start int
	End   int
}

// Len returns the literal rune length of the run. Decoration adds nothing.
func (r Run) Len() int { return r.End - r.Start }

// Target returns the URL a Link run points at.
func (r Run) Target() (string, bool) {
	if r.Kind != Link {
		return "", false
	}
	return r.Text, true
}

// View is the ordered run list shown on an editing surface.
type View struct {
	Runs []Run
}

// Len returns the total literal rune length of the view.
func (v View) Len() int {
	if len(v.Runs) == 0 {
		return 0
	}
	return v.Runs[len(v.Runs)-1].End
}

// RunAt returns the index of the run covering off, preferring the run that
// starts at off over the one ending there. Returns -1 for an empty view.
func (v View) RunAt(off int) int {
	if len(v.Runs) == 0 {
		return -1
	}
	for i, r := range v.Runs {
		if off >= r.Start && off < r.End {
			return i
		}
	}
	return len(v.Runs) - 1
}

// Links returns the Link runs of the view.
func (v View) Links() []Run {
	var out []Run
	for _, r := range v.Runs {
		if r.Kind == Link {
			out = append(out, r)
		}
	}
	return out
}

// Project walks text left to right and emits Literal runs for uncovered
// ranges and code fences, and a Link run for each Link span. Malformed spans
// are discarded first, leaving their region literal.
func Project(text string, spans []span.Span) View {
	runes := []rune(text)
	if len(runes) == 0 {
		return View{}
	}

	spans = span.Normalize(spans, len(runes))

	var runs []Run
	literalStart := 0
	flush := func(end int) {
		if end > literalStart {
			runs = append(runs, Run{
				Kind:  Literal,
				Text:  string(runes[literalStart:end]),
				Start: literalStart,
				End:   end,
			})
		}
	}

	for _, sp := range spans {
		if sp.Kind != span.Link {
			continue
		}
		flush(sp.Start)
		runs = append(runs, Run{
			Kind:  Link,
			Text:  string(runes[sp.Start:sp.End]),
			Start: sp.Start,
			End:   sp.End,
		})
		literalStart = sp.End
	}
	flush(len(runes))

	return View{Runs: runs}
}

// Invert strips all decoration and returns the literal character sequence.
func Invert(v View) string {
	var sb strings.Builder
	for _, r := range v.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}
