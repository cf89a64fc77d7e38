// Package input parses tcell events into semantic intents for the field.
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Ctrl+C
	IntentEscape // ESC (closes help, otherwise quits)
	IntentResize // Terminal resize event

	// Pointer gestures (positions in pixels)
	IntentPointerDown
	IntentPointerMove
	IntentPointerUp
	IntentPinchMove // Ctrl+drag two-point simulation: anchor + cursor
	IntentPinchEnd

	// Wheel pan/zoom (deltas in pixels; Zoom true = Ctrl held)
	IntentWheel

	// Field commands
	IntentShuffle     // s
	IntentResetZoom   // 0
	IntentTraitHotkey // 1..9 toggle trait by display index
	IntentClearTraits // c
	IntentToggleHelp  // ?
	IntentToggleMute  // m
)

// Intent is a parsed semantic action. Pure data, no engine dependencies.
type Intent struct {
	Type IntentType

	// X, Y is the pointer position for gesture intents
	X, Y float64

	// AnchorX, AnchorY is the synthetic second touch point of a pinch
	AnchorX, AnchorY float64

	// DX, DY are wheel deltas; Zoom selects zoom over pan
	DX, DY float64
	Zoom   bool

	// Index is the trait display index for hotkeys
	Index int

	// Cols, Rows carry the new terminal size on resize
	Cols, Rows int
}
