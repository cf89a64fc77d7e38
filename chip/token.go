// Package chip defines the token and trait value types of the suggestion
// field and the badge classifier that decorates them.
package chip

// Token is one selectable phrase in the field. Category tokens double as
// trait-selector controls; tapping one toggles its trait instead of
// emitting a suggestion. Tokens are built once and never mutated.
type Token struct {
	// Text is the display phrase
	Text string

	// Key is a stable identity for events and logs
	Key string

	// IsCategory marks trait-selector tokens
	IsCategory bool

	// TraitID names the trait a category token toggles, empty otherwise
	TraitID string
}

// Badge is the single decoration tier assigned to a token.
type Badge uint8

const (
	BadgeNone Badge = iota
	BadgeCategory
	BadgeBold
	BadgePopular
	BadgePro
	BadgeDemo
	BadgeFun
)

// String returns the badge name used in logs and the status bar.
func (b Badge) String() string {
	switch b {
	case BadgeCategory:
		return "category"
	case BadgeBold:
		return "bold"
	case BadgePopular:
		return "popular"
	case BadgePro:
		return "pro"
	case BadgeDemo:
		return "demo"
	case BadgeFun:
		return "fun"
	default:
		return "none"
	}
}
