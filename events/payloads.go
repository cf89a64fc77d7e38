package events

import "github.com/lixenwraith/chipfield/chip"

// ChipChosenPayload identifies the tapped suggestion
type ChipChosenPayload struct {
	Key   string
	Text  string
	Badge chip.Badge
}

// TraitToggledPayload captures the flip and the resulting list size
type TraitToggledPayload struct {
	ID         string
	Selected   bool
	WorkingLen int
}

// FieldShuffledPayload carries the jump target
type FieldShuffledPayload struct {
	OffsetX float64
	OffsetY float64
}

// FilterRebuiltPayload carries the new working-list identity
type FilterRebuiltPayload struct {
	Version uint64
	Len     int
}
