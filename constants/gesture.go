package constants

// Zoom Bounds & Speeds
const (
	// MinScale is the lower zoom clamp
	MinScale = 0.3

	// MaxScale is the upper zoom clamp
	MaxScale = 3.0

	// PinchZoomSpeed converts pinch distance deltas (px) to scale deltas
	PinchZoomSpeed = 0.012

	// WheelZoomSpeed converts wheel deltas (px) to scale deltas
	WheelZoomSpeed = 0.008
)

// Gesture Thresholds
const (
	// DragDeadZonePx is the pointer travel below which a gesture still
	// counts as a click
	DragDeadZonePx = 4.0

	// ShuffleSpanXPx bounds the random jump window, x in [-1000, 1000]
	ShuffleSpanXPx = 1000.0

	// ShuffleSpanYPx bounds the random jump window, y in [-500, 500]
	ShuffleSpanYPx = 500.0
)

// Input Step Sizes
const (
	// WheelPanStepPx is the pan distance of one wheel tick
	WheelPanStepPx = 32.0

	// KeyPanStepPx is the pan distance of one keyboard nudge
	KeyPanStepPx = 48.0

	// KeyZoomTicks is the synthetic wheel tick count of one keyboard zoom step
	KeyZoomTicks = 3
)
