package audio

import "github.com/lixenwraith/chipfield/events"

// CueHandler maps domain events to sound cues. Generic over the router
// context, which it never touches.
type CueHandler[T any] struct {
	m *Manager
}

// NewCueHandler creates a handler playing cues through the manager.
func NewCueHandler[T any](m *Manager) *CueHandler[T] {
	return &CueHandler[T]{m: m}
}

func (h *CueHandler[T]) HandleEvent(_ T, ev events.Event) {
	switch ev.Type {
	case events.TypeChipChosen:
		h.m.PlayChipChosen()
	case events.TypeTraitToggled:
		if p, ok := ev.Payload.(*events.TraitToggledPayload); ok {
			h.m.PlayTraitToggle(p.Selected)
		}
	case events.TypeFieldShuffled:
		h.m.PlayShuffle()
	case events.TypeZoomReset:
		h.m.PlayZoomReset()
	case events.TypeFilterRebuilt:
		if p, ok := ev.Payload.(*events.FilterRebuiltPayload); ok && p.Len == 0 {
			h.m.PlayEmptyFilter()
		}
	}
}

func (h *CueHandler[T]) EventTypes() []events.Type {
	return []events.Type{
		events.TypeChipChosen,
		events.TypeTraitToggled,
		events.TypeFieldShuffled,
		events.TypeZoomReset,
		events.TypeFilterRebuilt,
	}
}
