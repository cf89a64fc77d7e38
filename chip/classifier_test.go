package chip

import "testing"

// TestTraitMatchesSubstring verifies loose lowercase substring matching
func TestTraitMatchesSubstring(t *testing.T) {
	trait := Trait{ID: "coder", Label: "Coder", Keywords: []string{"code", "api"}}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"plain keyword", "Generate a code snippet", true},
		{"case folded", "Create an API key", true},
		{"inner substring", "Rapid prototyping", true}, // "api" inside "rapid"
		{"no keyword", "Show my balance", false},
		{"empty text", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trait.Matches(tt.text); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

// TestClassifierPriorityOrder verifies first-match-wins tier priority
func TestClassifierPriorityOrder(t *testing.T) {
	sets := TierSets{
		Bold:    map[string]struct{}{"alpha": {}},
		Popular: map[string]struct{}{"alpha": {}, "beta": {}},
		Pro:     map[string]struct{}{"gamma": {}},
		Demo:    map[string]struct{}{"gamma": {}, "delta": {}},
		Fun:     map[string]struct{}{"delta": {}, "epsilon": {}},
	}
	c := NewClassifier(sets)

	tokens := []Token{
		{Text: "alpha"},
		{Text: "beta"},
		{Text: "gamma"},
		{Text: "delta"},
		{Text: "epsilon"},
		{Text: "zeta"},
		{Text: "alpha", IsCategory: true, TraitID: "x"},
	}
	table := c.Classify(tokens, 1)

	want := []Badge{BadgeBold, BadgePopular, BadgePro, BadgeDemo, BadgeFun, BadgeNone, BadgeCategory}
	if len(table.Badges) != len(want) {
		t.Fatalf("table length = %d, want %d", len(table.Badges), len(want))
	}
	for i, w := range want {
		if table.Badges[i] != w {
			t.Errorf("token %d (%q): badge = %s, want %s", i, tokens[i].Text, table.Badges[i], w)
		}
	}
}

// TestClassifierMemoization verifies per-version caching
func TestClassifierMemoization(t *testing.T) {
	c := NewClassifier(TierSets{})
	tokens := []Token{{Text: "a"}, {Text: "b"}}

	first := c.Classify(tokens, 7)
	second := c.Classify(tokens, 7)
	if first != second {
		t.Error("same version must return the cached table")
	}

	third := c.Classify(tokens[:1], 8)
	if third == first {
		t.Error("version change must rebuild the table")
	}
	if len(third.Badges) != 1 {
		t.Errorf("rebuilt table length = %d, want 1", len(third.Badges))
	}
}

// TestTableBadgeBounds verifies out-of-range lookups degrade to BadgeNone
func TestTableBadgeBounds(t *testing.T) {
	table := &Table{Version: 1, Badges: []Badge{BadgeBold}}

	if got := table.Badge(0); got != BadgeBold {
		t.Errorf("Badge(0) = %s, want bold", got)
	}
	if got := table.Badge(-1); got != BadgeNone {
		t.Errorf("Badge(-1) = %s, want none", got)
	}
	if got := table.Badge(1); got != BadgeNone {
		t.Errorf("Badge(1) = %s, want none", got)
	}
	var nilTable *Table
	if got := nilTable.Badge(0); got != BadgeNone {
		t.Errorf("nil table Badge(0) = %s, want none", got)
	}
}
