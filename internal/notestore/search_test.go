package notestore

import (
	"context"
	"reflect"
	"testing"
)

func TestMatch(t *testing.T) {
	n := Note{Name: "Groceries", Body: "buy Tomatoes and basil\nsee https://shop.example"}

	cases := []struct {
		name   string
		query  string
		strict bool
		want   bool
	}{
		{name: "strict substring ignores case", query: "TOMATO", strict: true, want: true},
		{name: "strict matches name", query: "grocer", strict: true, want: true},
		{name: "strict rejects typo", query: "tomatos and", strict: true, want: false},
		{name: "fuzzy accepts typo", query: "tomatos", want: true},
		{name: "fuzzy needs every word", query: "tomatos xylophonist", want: false},
		{name: "fuzzy rejects distant word", query: "refrigerator", want: false},
		{name: "fuzzy substring", query: "shop.example", want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Match(n, tc.query, tc.strict); got != tc.want {
				t.Fatalf("Match(%q, strict=%v): got %v, want %v", tc.query, tc.strict, got, tc.want)
			}
		})
	}
}

func TestStore_Search(t *testing.T) {
	s := openTestStore(t)
	s.now = fixedClock()
	ctx := context.Background()

	for _, n := range []struct{ name, body string }{
		{"alpha", "meeting notes"},
		{"beta", "shopping list"},
		{"gamma", "notes on meetings"},
	} {
		if _, err := s.Save(ctx, n.name, n.body); err != nil {
			t.Fatalf("Save %s: %v", n.name, err)
		}
	}

	names := func(notes []Note) []string {
		var out []string
		for _, n := range notes {
			out = append(out, n.Name)
		}
		return out
	}

	got, err := s.Search(ctx, "Meeting", true)
	if err != nil {
		t.Fatalf("Search strict: %v", err)
	}
	if want := []string{"gamma", "alpha"}; !reflect.DeepEqual(names(got), want) {
		t.Fatalf("strict: got %v, want %v", names(got), want)
	}

	got, err = s.Search(ctx, "shoping", false)
	if err != nil {
		t.Fatalf("Search fuzzy: %v", err)
	}
	if want := []string{"beta"}; !reflect.DeepEqual(names(got), want) {
		t.Fatalf("fuzzy: got %v, want %v", names(got), want)
	}

	got, err = s.Search(ctx, "  ", false)
	if err != nil {
		t.Fatalf("Search empty: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("empty query: got %d notes, want 3", len(got))
	}
}
