package chip

import "strings"

// Trait is a keyword-based filter category. A token matches when its
// lowercased text contains any keyword as a substring. Containment is
// deliberately loose ("art" matches "start"); tightening it would change
// which tokens each filter surfaces.
type Trait struct {
	ID       string
	Label    string
	Keywords []string
}

// Matches reports whether text satisfies the trait.
func (t Trait) Matches(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range t.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
