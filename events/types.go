// Package events carries the domain event bus: a lock-free MPSC ring queue
// drained once per frame by a generic router.
package events

import "time"

// Type discriminates domain events
type Type int

const (
	// TypeChipChosen signals a non-category token tap
	// Trigger: tap dispatch after drag disambiguation
	// Consumers: status bar, audio cues, log | Payload: *ChipChosenPayload
	TypeChipChosen Type = iota

	// TypeTraitToggled signals a trait selection flip
	// Trigger: category token tap or trait hotkey
	// Consumers: status bar, audio cues, log | Payload: *TraitToggledPayload
	TypeTraitToggled

	// TypeFieldShuffled signals a random viewport jump
	// Trigger: shuffle command | Payload: *FieldShuffledPayload
	TypeFieldShuffled

	// TypeZoomReset signals the scale snapping back to 1
	// Trigger: reset-zoom command | Payload: nil
	TypeZoomReset

	// TypeFilterRebuilt signals a new working list
	// Trigger: any trait-set change
	// Consumers: audio (empty-result buzz), log | Payload: *FilterRebuiltPayload
	TypeFilterRebuilt
)

// Event is a single domain event with frame metadata
type Event struct {
	Type      Type
	Payload   any
	Frame     int64
	Timestamp time.Time
}
