// Package gesture translates pointer, touch, and wheel input into viewport
// transform updates on the latency-critical path, and disambiguates taps
// from drags.
package gesture

// DragState is the per-gesture drag lifecycle: Idle -> pointer-down ->
// Dragging -> (movement beyond the dead zone) -> Dragged -> pointer-up ->
// Idle. One Dragged flag covers the whole gesture; it is reset on every
// pointer-down and consulted exactly once on pointer-up.
//
// Only the controller mutates this state.
type DragState struct {
	// Dragging is true between pointer-down and pointer-up
	Dragging bool

	// Dragged latches once the pointer travels beyond the dead zone; a
	// latched gesture swallows the tap at pointer-up
	Dragged bool

	// AnchorX, AnchorY hold position - offset at pointer-down, so the
	// content point under the pointer stays under it during the drag
	AnchorX float64
	AnchorY float64

	// PressX, PressY hold the raw pointer-down position for the dead-zone
	// travel test
	PressX float64
	PressY float64
}
