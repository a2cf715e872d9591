package selection

import (
	"testing"

	"github.com/iw2rmb/linkpad/render"
	"github.com/iw2rmb/linkpad/span"
)

type testSurface struct {
	view          render.View
	anchor, focus Point
}

func (s *testSurface) DecoratedView() render.View { return s.view }

func (s *testSurface) NativeSelection() (Point, Point) { return s.anchor, s.focus }

func (s *testSurface) SetNativeSelection(anchor, focus Point) {
	s.anchor, s.focus = anchor, focus
}

func project(text string) render.View {
	return render.Project(text, span.Annotate(text))
}

func TestPointAt_OffsetOf_RoundTrip(t *testing.T) {
	v := project("see https://x.y now")
	for off := 0; off <= v.Len(); off++ {
		p := PointAt(v, off)
		if got := OffsetOf(v, p); got != off {
			t.Fatalf("OffsetOf(PointAt(%d))=%d (point %v)", off, got, p)
		}
	}
}

func TestPointAt_BoundariesAndClamp(t *testing.T) {
	v := project("see https://x.y now") // runs: [0,4) [4,15) [15,19)

	cases := []struct {
		off  int
		want Point
	}{
		{off: 0, want: Point{Run: 0, Offset: 0}},
		{off: 3, want: Point{Run: 0, Offset: 3}},
		{off: 4, want: Point{Run: 1, Offset: 0}},
		{off: 14, want: Point{Run: 1, Offset: 10}},
		{off: 15, want: Point{Run: 2, Offset: 0}},
		{off: 19, want: Point{Run: 2, Offset: 4}},
		{off: 99, want: Point{Run: 2, Offset: 4}},
		{off: -5, want: Point{Run: 0, Offset: 0}},
	}
	for _, tc := range cases {
		if got := PointAt(v, tc.off); got != tc.want {
			t.Fatalf("PointAt(%d)=%v, want %v", tc.off, got, tc.want)
		}
	}
}

func TestOffsetOf_ClampsOutOfRangePoints(t *testing.T) {
	v := project("ab https://x.y")

	cases := []struct {
		p    Point
		want int
	}{
		{p: Point{Run: -1, Offset: 3}, want: 0},
		{p: Point{Run: 0, Offset: 99}, want: 3},
		{p: Point{Run: 1, Offset: -2}, want: 3},
		{p: Point{Run: 7, Offset: 0}, want: 14},
	}
	for _, tc := range cases {
		if got := OffsetOf(v, tc.p); got != tc.want {
			t.Fatalf("OffsetOf(%v)=%d, want %d", tc.p, got, tc.want)
		}
	}
	if got := OffsetOf(render.View{}, Point{Run: 3, Offset: 3}); got != 0 {
		t.Fatalf("empty view offset=%d, want 0", got)
	}
}

func TestCaptureRestore_ExactCaretStability(t *testing.T) {
	text := "see https://x.y now and more"
	spans := span.Annotate(text)
	linkStart, linkEnd := spans[0].Start, spans[0].End

	for k := 0; k <= len([]rune(text)); k++ {
		if k > linkStart && k < linkEnd {
			continue
		}
		s := &testSurface{view: project(text)}
		Restore(s, Caret(k))

		// Type one rune at the captured caret, as a plain text field would.
		sel := Capture(s)
		if sel != Caret(k) {
			t.Fatalf("capture=%v, want caret %d", sel, k)
		}
		runes := []rune(text)
		next := string(runes[:k]) + "x" + string(runes[k:])

		s.view = project(next)
		got := Restore(s, Caret(k+1))
		if got != Caret(k+1) {
			t.Fatalf("restore=%v, want caret %d", got, k+1)
		}
		if after := Capture(s); after != Caret(k+1) {
			t.Fatalf("edit at %d: caret after render=%v, want %d", k, after, k+1)
		}
	}
}

func TestRestore_SelectionLostClampsToEnd(t *testing.T) {
	s := &testSurface{view: project("a long note https://x.y")}
	Restore(s, Selection{Anchor: 2, Focus: 20})

	s.view = project("short")
	got := Restore(s, Selection{Anchor: 2, Focus: 20})
	if want := (Selection{Anchor: 2, Focus: 5}); got != want {
		t.Fatalf("restore=%v, want %v", got, want)
	}
	if _, focus := s.NativeSelection(); focus != (Point{Run: 0, Offset: 5}) {
		t.Fatalf("native focus=%v", focus)
	}
}

func TestRestore_EmptyView(t *testing.T) {
	s := &testSurface{}
	got := Restore(s, Caret(4))
	if got != Caret(0) {
		t.Fatalf("restore on empty view=%v, want caret 0", got)
	}
	if a, f := s.NativeSelection(); a != (Point{}) || f != (Point{}) {
		t.Fatalf("native selection=%v,%v", a, f)
	}
}

func TestSelection_Helpers(t *testing.T) {
	s := Selection{Anchor: 7, Focus: 2}
	if s.Collapsed() {
		t.Fatalf("expected non-collapsed")
	}
	if start, end := s.Bounds(); start != 2 || end != 7 {
		t.Fatalf("bounds=%d,%d", start, end)
	}
	if got := s.Clamp(5); got != (Selection{Anchor: 5, Focus: 2}) {
		t.Fatalf("clamp=%v", got)
	}
	if !Caret(3).Collapsed() {
		t.Fatalf("caret must be collapsed")
	}
}
