package content

import "testing"

// TestTierPhrasesExistInCorpus guards the badge pools against phrase drift
func TestTierPhrasesExistInCorpus(t *testing.T) {
	known := make(map[string]struct{}, len(suggestions))
	for _, s := range suggestions {
		known[s] = struct{}{}
	}

	pools := map[string][]string{
		"bold":    boldPhrases,
		"popular": popularPhrases,
		"pro":     proPhrases,
		"demo":    demoPhrases,
		"fun":     funPhrases,
	}
	for name, pool := range pools {
		for _, phrase := range pool {
			if _, ok := known[phrase]; !ok {
				t.Errorf("%s phrase %q not present in corpus", name, phrase)
			}
		}
	}
}

// TestCorpusKeysUnique verifies every token gets a usable distinct key
func TestCorpusKeysUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, tok := range Corpus() {
		if tok.Key == "" {
			t.Errorf("token %q has empty key", tok.Text)
			continue
		}
		if prev, dup := seen[tok.Key]; dup {
			t.Errorf("key %q shared by %q and %q", tok.Key, prev, tok.Text)
		}
		seen[tok.Key] = tok.Text
	}
}

// TestCategoryTokensReferenceTraits verifies trait wiring of category chips
func TestCategoryTokensReferenceTraits(t *testing.T) {
	ids := make(map[string]struct{})
	for _, tr := range Traits() {
		if tr.ID == "" || tr.Label == "" || len(tr.Keywords) == 0 {
			t.Errorf("trait %q incomplete", tr.ID)
		}
		if _, dup := ids[tr.ID]; dup {
			t.Errorf("duplicate trait id %q", tr.ID)
		}
		ids[tr.ID] = struct{}{}
	}

	categories := 0
	for _, tok := range Corpus() {
		if !tok.IsCategory {
			if tok.TraitID != "" {
				t.Errorf("non-category token %q carries trait id %q", tok.Text, tok.TraitID)
			}
			continue
		}
		categories++
		if _, ok := ids[tok.TraitID]; !ok {
			t.Errorf("category token %q references unknown trait %q", tok.Text, tok.TraitID)
		}
	}
	if categories != len(Traits()) {
		t.Errorf("category token count = %d, want %d", categories, len(Traits()))
	}
}

// TestEveryTraitSurfacesPhrases keeps single-trait filters from rendering
// a near-empty field
func TestEveryTraitSurfacesPhrases(t *testing.T) {
	for _, tr := range Traits() {
		matched := 0
		for _, s := range suggestions {
			if tr.Matches(s) {
				matched++
			}
		}
		if matched < 5 {
			t.Errorf("trait %s matches only %d phrases", tr.ID, matched)
		}
	}
}

// TestSlug verifies key derivation
func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Start a new campaign", "start-a-new-campaign"},
		{"What can you do?", "what-can-you-do"},
		{"Create an API key", "create-an-api-key"},
		{"Analyze pledge drop-off", "analyze-pledge-drop-off"},
		{"What's new this week?", "what-s-new-this-week"},
	}
	for _, tt := range tests {
		if got := slug(tt.in); got != tt.want {
			t.Errorf("slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
