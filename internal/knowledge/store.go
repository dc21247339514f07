package knowledge

import (
	"sort"
	"strings"
)

// Scoring weights and the token length filter are tuning constants the
// rest of the system (and its tests) depend on. Do not adjust them.
const (
	titleMatchScore   = 10
	contentMatchScore = 2
	keywordMatchScore = 5
	minTokenLength    = 2
)

// Store answers relevance queries over an immutable in-memory catalog.
// Query is a pure function: no hidden state, no randomness, no errors.
type Store struct {
	items []Item
}

// NewStore builds a store over the given catalog. The items slice is
// copied so later mutation by the caller cannot leak into queries.
func NewStore(items []Item) *Store {
	copied := make([]Item, len(items))
	copy(copied, items)
	return &Store{items: copied}
}

// NewDefaultStore builds a store over the built-in catalog.
func NewDefaultStore() *Store {
	return NewStore(DefaultCatalog())
}

// Items returns a copy of the catalog in insertion order.
func (s *Store) Items() []Item {
	copied := make([]Item, len(s.items))
	copy(copied, s.items)
	return copied
}

// Query scores every catalog item against the free-text query and
// returns up to limit items, most relevant first. Ties keep catalog
// insertion order. Empty and no-match queries yield an empty result.
func (s *Store) Query(text string, limit int) []Item {
	if limit < 1 {
		return []Item{}
	}

	queryLower := strings.ToLower(text)
	tokens := qualifyingTokens(queryLower)

	scored := make([]scoredItem, 0, len(s.items))
	for _, item := range s.items {
		score := scoreItem(item, queryLower, tokens)
		if score > 0 {
			scored = append(scored, scoredItem{item: item, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	result := make([]Item, len(scored))
	for i, sc := range scored {
		result[i] = sc.item
	}
	return result
}

// qualifyingTokens splits the lowercased query on whitespace and drops
// short noise tokens. Duplicate tokens are kept: a token appearing
// twice in the query contributes twice.
func qualifyingTokens(queryLower string) []string {
	fields := strings.Fields(queryLower)
	tokens := fields[:0]
	for _, tok := range fields {
		if len(tok) > minTokenLength {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func scoreItem(item Item, queryLower string, tokens []string) int {
	score := 0

	// Whole-query substring match against the title.
	if strings.Contains(queryLower, strings.ToLower(item.Title)) {
		score += titleMatchScore
	}

	contentLower := strings.ToLower(item.Content)
	for _, tok := range tokens {
		if strings.Contains(contentLower, tok) {
			score += contentMatchScore
		}
	}

	// Bidirectional containment between keywords and tokens. A keyword
	// matching several tokens scores for each of them.
	for _, keyword := range item.Keywords {
		for _, tok := range tokens {
			if strings.Contains(tok, keyword) || strings.Contains(keyword, tok) {
				score += keywordMatchScore
			}
		}
	}

	return score
}
