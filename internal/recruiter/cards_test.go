package recruiter

import (
	"reflect"
	"testing"
)

func TestExtractCardDirective(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		raw       string
		wantClean string
		wantIDs   []string
	}{
		{
			name:      "round trip",
			raw:       "Here are my projects. [PROJECT_CARDS: carbon-calculator, e-waste]",
			wantClean: "Here are my projects.",
			wantIDs:   []string{"carbon-calculator", "e-waste"},
		},
		{
			name:      "case insensitive tag",
			raw:       "Sure! [project_cards: Carbon-Calculator]",
			wantClean: "Sure!",
			wantIDs:   []string{"carbon-calculator"},
		},
		{
			name:      "arbitrary internal whitespace",
			raw:       "Take a look. [PROJECT_CARDS:   deal-discover ,  e-waste  ]",
			wantClean: "Take a look.",
			wantIDs:   []string{"deal-discover", "e-waste"},
		},
		{
			name:      "tag in the middle of text",
			raw:       "Two highlights [PROJECT_CARDS: e-waste] worth a look.",
			wantClean: "Two highlights  worth a look.",
			wantIDs:   []string{"e-waste"},
		},
		{
			name:      "duplicates preserved",
			raw:       "[PROJECT_CARDS: e-waste, e-waste]",
			wantClean: "",
			wantIDs:   []string{"e-waste", "e-waste"},
		},
		{
			name:      "no directive passthrough",
			raw:       "Mohamed has built several applications.",
			wantClean: "Mohamed has built several applications.",
			wantIDs:   nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			clean, ids := extractCardDirective(tt.raw)
			if clean != tt.wantClean {
				t.Fatalf("clean text = %q, want %q", clean, tt.wantClean)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Fatalf("ids = %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}
