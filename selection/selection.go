// Package selection maps caret and selection state between canonical text
// offsets and positions on a decorated run list.
//
// A surface addresses the caret natively as (run index, offset in run).
// Decoration contributes no length, so the mapping is a running sum of
// literal run lengths.
package selection

import "github.com/iw2rmb/linkpad/render"

// Point is a surface-native caret position: a run index in the decorated
// view and a rune offset inside that run.
type Point struct {
	Run    int
	Offset int
}

// Selection is an anchor/focus pair of canonical rune offsets. A collapsed
// selection (Anchor == Focus) is a plain caret.
type Selection struct {
	Anchor int
	Focus  int
}

// Caret returns a collapsed selection at off.
func Caret(off int) Selection { return Selection{Anchor: off, Focus: off} }

func (s Selection) Collapsed() bool { return s.Anchor == s.Focus }

// Bounds returns the selection as ordered [start, end).
func (s Selection) Bounds() (start, end int) {
	if s.Anchor <= s.Focus {
		return s.Anchor, s.Focus
	}
	return s.Focus, s.Anchor
}

// Clamp limits both offsets to [0, n].
func (s Selection) Clamp(n int) Selection {
	return Selection{Anchor: clamp(s.Anchor, 0, n), Focus: clamp(s.Focus, 0, n)}
}

// Surface is an editing surface showing a decorated view and holding a
// native selection over it.
type Surface interface {
	DecoratedView() render.View
	NativeSelection() (anchor, focus Point)
	SetNativeSelection(anchor, focus Point)
}

// Capture reads the surface selection as canonical offsets.
func Capture(s Surface) Selection {
	v := s.DecoratedView()
	anchor, focus := s.NativeSelection()
	return Selection{Anchor: OffsetOf(v, anchor), Focus: OffsetOf(v, focus)}
}

// Restore places sel onto the surface's current view. Offsets past the end
// of the view clamp to end-of-document. The selection actually applied is
// returned.
func Restore(s Surface, sel Selection) Selection {
	v := s.DecoratedView()
	sel = sel.Clamp(v.Len())
	s.SetNativeSelection(PointAt(v, sel.Anchor), PointAt(v, sel.Focus))
	return sel
}

// OffsetOf sums the literal lengths of the runs before p.Run and adds the
// in-run offset. Points outside the view are clamped onto it.
func OffsetOf(v render.View, p Point) int {
	if len(v.Runs) == 0 {
		return 0
	}
	if p.Run < 0 {
		return 0
	}
	if p.Run >= len(v.Runs) {
		return v.Len()
	}
	off := 0
	for i := 0; i < p.Run; i++ {
		off += v.Runs[i].Len()
	}
	return off + clamp(p.Offset, 0, v.Runs[p.Run].Len())
}

// PointAt walks the view accumulating literal length until off is reached.
// An offset on a run boundary maps to the start of the following run; the
// end of the document maps to the end of the last run.
func PointAt(v render.View, off int) Point {
	if len(v.Runs) == 0 {
		return Point{}
	}
	off = clamp(off, 0, v.Len())
	acc := 0
	for i, r := range v.Runs {
		n := r.Len()
		if off < acc+n {
			return Point{Run: i, Offset: off - acc}
		}
		acc += n
	}
	last := len(v.Runs) - 1
	return Point{Run: last, Offset: v.Runs[last].Len()}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
