package knowledge

import (
	"reflect"
	"testing"
)

func TestQueryEmptyAndNoMatch(t *testing.T) {
	t.Parallel()
	store := NewDefaultStore()

	if got := store.Query("", 5); len(got) != 0 {
		t.Fatalf("Query(\"\") returned %d items, want 0", len(got))
	}
	if got := store.Query("zzzzzz_no_match", 5); len(got) != 0 {
		t.Fatalf("Query(no-match) returned %d items, want 0", len(got))
	}
	if got := store.Query("a b c", 5); len(got) != 0 {
		t.Fatalf("Query(short tokens only) returned %d items, want 0", len(got))
	}
}

func TestQueryLimit(t *testing.T) {
	t.Parallel()
	store := NewDefaultStore()

	got := store.Query("ai projects and blockchain", 2)
	if len(got) > 2 {
		t.Fatalf("Query returned %d items, want at most 2", len(got))
	}
	if len(got) == 0 {
		t.Fatal("Query returned no items for a matching query")
	}

	if got := store.Query("ai", 0); len(got) != 0 {
		t.Fatalf("Query with limit 0 returned %d items, want 0", len(got))
	}
}

func TestTitleSubstringBonus(t *testing.T) {
	t.Parallel()
	store := NewDefaultStore()

	got := store.Query("Carbon Calculator pricing", 3)
	if len(got) == 0 {
		t.Fatal("Query returned no items")
	}
	if got[0].ID != "carbon-calculator" {
		t.Fatalf("top item = %q, want carbon-calculator", got[0].ID)
	}
}

func TestKeywordBidirectionalMatch(t *testing.T) {
	t.Parallel()
	store := NewStore([]Item{
		{ID: "fixture", Kind: KindSkill, Title: "Fixture", Keywords: []string{"react"}},
	})

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "keyword substring of token", query: "reactjs", want: 1},
		{name: "token substring of keyword", query: "rea", want: 1},
		{name: "token dropped by length filter", query: "re", want: 0},
		{name: "no containment either way", query: "angular", want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := store.Query(tt.query, 3)
			if len(got) != tt.want {
				t.Fatalf("Query(%q) returned %d items, want %d", tt.query, len(got), tt.want)
			}
		})
	}
}

func TestKeywordMatchesEachToken(t *testing.T) {
	t.Parallel()
	// One keyword matching two tokens must outrank one keyword matching
	// a single token, all else equal.
	store := NewStore([]Item{
		{ID: "single", Kind: KindSkill, Title: "Single", Keywords: []string{"vue"}},
		{ID: "double", Kind: KindSkill, Title: "Double", Keywords: []string{"react"}},
	})

	got := store.Query("reactjs react vue", 2)
	if len(got) != 2 {
		t.Fatalf("Query returned %d items, want 2", len(got))
	}
	if got[0].ID != "double" {
		t.Fatalf("top item = %q, want double", got[0].ID)
	}
}

func TestStableTieOrder(t *testing.T) {
	t.Parallel()
	store := NewStore([]Item{
		{ID: "first", Kind: KindSkill, Title: "Alpha", Keywords: []string{"golang"}},
		{ID: "second", Kind: KindSkill, Title: "Beta", Keywords: []string{"golang"}},
	})

	got := store.Query("golang", 2)
	if len(got) != 2 {
		t.Fatalf("Query returned %d items, want 2", len(got))
	}
	if got[0].ID != "first" || got[1].ID != "second" {
		t.Fatalf("tie order = [%s %s], want catalog insertion order", got[0].ID, got[1].ID)
	}
}

func TestQueryDeterminism(t *testing.T) {
	t.Parallel()
	store := NewDefaultStore()

	first := store.Query("Tell me about your AI projects", 3)
	second := store.Query("Tell me about your AI projects", 3)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("Query is not deterministic for a fixed catalog and query")
	}
}

func TestQueryTopicalMatches(t *testing.T) {
	t.Parallel()
	store := NewDefaultStore()

	tests := []struct {
		name    string
		query   string
		wantTop string
	}{
		{name: "interview coaching", query: "interview practice feedback", wantTop: "ai-mock-interview"},
		{name: "blockchain work", query: "blockchain smart contracts", wantTop: "e-waste-management"},
		{name: "travel chatbot", query: "travel recommendations chatbot", wantTop: "deal-discover"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := store.Query(tt.query, 3)
			if len(got) == 0 {
				t.Fatalf("Query(%q) returned no items", tt.query)
			}
			if got[0].ID != tt.wantTop {
				t.Fatalf("Query(%q) top item = %q, want %q", tt.query, got[0].ID, tt.wantTop)
			}
		})
	}
}

// The token length filter drops the two-letter token "ai", so this
// query ranks the background document first through its content. The
// Email Reply Agent still surfaces because "tell" is a substring of
// "intelligent" in its description.
func TestQueryShortTokenDropped(t *testing.T) {
	t.Parallel()
	store := NewDefaultStore()

	got := store.Query("Tell me about your AI projects", 3)
	want := []string{"about-background", "deal-discover", "email-reply-agent"}
	if len(got) != len(want) {
		t.Fatalf("Query returned %d items, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("result[%d] = %q, want %q", i, got[i].ID, id)
		}
	}
}
