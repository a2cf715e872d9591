package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHitTest_NoLineNums_ClampsAndYOffset(t *testing.T) {
	m := New(Config{Text: "abc\ndef\nghi"})
	m.viewport.YOffset = 1

	if got := m.screenToOffset(2, 0); got != 6 {
		t.Fatalf("offset at (2,0) with yoffset=1: got %d, want %d", got, 6)
	}

	// Clamp x past end of line.
	if got := m.screenToOffset(999, 0); got != 7 {
		t.Fatalf("offset at (999,0): got %d, want %d", got, 7)
	}

	// Clamp y past end of document.
	if got := m.screenToOffset(0, 99); got != 8 {
		t.Fatalf("offset at (0,99): got %d, want %d", got, 8)
	}
}

func TestHitTest_WithLineNums_GutterMapsToStartOfLine(t *testing.T) {
	m := New(Config{Text: "abcd\nefgh", ShowLineNums: true})

	// 2 lines => 1 digit + 1 gutter space => width 2.
	for _, x := range []int{0, 1} {
		if got := m.screenToOffset(x, 1); got != 5 {
			t.Fatalf("gutter click x=%d: got %d, want %d", x, got, 5)
		}
	}

	// First text cell is x=2.
	if got := m.screenToOffset(2, 0); got != 0 {
		t.Fatalf("first cell x=2: got %d, want %d", got, 0)
	}
	if got := m.screenToOffset(3, 0); got != 1 {
		t.Fatalf("second cell x=3: got %d, want %d", got, 1)
	}
}

func TestHitTest_WideGraphemesAndTabs(t *testing.T) {
	m := New(Config{Text: "日本\tx", TabWidth: 4})

	cases := []struct {
		x    int
		want int
	}{
		{0, 0}, {1, 0}, // 日 covers cells 0-1
		{2, 1}, {3, 1}, // 本 covers cells 2-3
		{4, 2}, {7, 2}, // tab advances to the next stop at 8
		{8, 3},
		{9, 4},
	}
	for _, tc := range cases {
		if got := m.screenToOffset(tc.x, 0); got != tc.want {
			t.Fatalf("offset at x=%d: got %d, want %d", tc.x, got, tc.want)
		}
	}
}

func TestHitTest_OffsetToScreenRoundTrip(t *testing.T) {
	m := New(Config{Text: "ab\ncd", ShowLineNums: true})
	m = m.SetSize(10, 2)

	x, y, ok := m.offsetToScreen(4)
	if !ok || x != 3 || y != 1 {
		t.Fatalf("offsetToScreen(4): got (%d,%d,%v), want (3,1,true)", x, y, ok)
	}
	if got := m.screenToOffset(x, y); got != 4 {
		t.Fatalf("round trip: got %d, want %d", got, 4)
	}

	m = m.SetSize(10, 1)
	if _, _, ok := m.offsetToScreen(4); ok {
		t.Fatalf("offset on a hidden row reported visible")
	}
}

func TestMouse_ClickPlacesCaretAndDragSelects(t *testing.T) {
	m := New(Config{Text: "hello world"})
	m = m.SetSize(20, 1)

	m, _ = m.Update(tea.MouseMsg{X: 3, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.Cursor(); got != 3 {
		t.Fatalf("cursor after click: got %d, want %d", got, 3)
	}

	m, _ = m.Update(tea.MouseMsg{X: 7, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 7, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	sel := m.Selection()
	if sel.Anchor != 3 || sel.Focus != 7 {
		t.Fatalf("selection after drag: got %+v, want anchor 3 focus 7", sel)
	}

	m, _ = m.Update(tea.MouseMsg{X: 9, Y: 0, Action: tea.MouseActionMotion})
	if got := m.Selection(); got != sel {
		t.Fatalf("motion after release changed selection: got %+v", got)
	}
}

func TestMouse_ShiftClickExtendsSelection(t *testing.T) {
	m := New(Config{Text: "hello world"})
	m = m.SetSize(20, 1)

	m, _ = m.Update(tea.MouseMsg{X: 2, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 2, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 8, Y: 0, Shift: true, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	sel := m.Selection()
	if sel.Anchor != 2 || sel.Focus != 8 {
		t.Fatalf("selection after shift-click: got %+v, want anchor 2 focus 8", sel)
	}
}

func TestMouse_CtrlClickOpensLink(t *testing.T) {
	var opened []string
	m := New(Config{
		Text:       "go https://a.b now",
		OnOpenLink: func(url string) { opened = append(opened, url) },
	})
	m = m.SetSize(30, 1)

	m, _ = m.Update(tea.MouseMsg{X: 5, Y: 0, Ctrl: true, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if len(opened) != 1 || opened[0] != "https://a.b" {
		t.Fatalf("opened: got %q, want [https://a.b]", opened)
	}
	if got := m.Cursor(); got != 0 {
		t.Fatalf("ctrl-click on a link moved the caret to %d", got)
	}

	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 0, Ctrl: true, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if len(opened) != 1 {
		t.Fatalf("ctrl-click on plain text opened %q", opened)
	}
	if got := m.Cursor(); got != 1 {
		t.Fatalf("ctrl-click on plain text: cursor got %d, want %d", got, 1)
	}
}

func TestMouse_IgnoredWhileComposing(t *testing.T) {
	m := New(Config{Text: "hello"})
	m = m.SetSize(20, 1)
	m, _ = m.Update(CompositionStartMsg{})

	m, _ = m.Update(tea.MouseMsg{X: 3, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.Cursor(); got != 0 {
		t.Fatalf("click while composing moved the caret to %d", got)
	}
}
