package constants

import "time"

// Frame Timing
const (
	// FrameUpdateInterval is the default render frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MinFPS and MaxFPS bound the configurable frame rate
	MinFPS = 10
	MaxFPS = 240
)

// Terminal Cell Metrics
//
// The engine works in abstract pixels; the host maps cells to pixels with
// these fixed metrics. 8x16 matches the classic VGA glyph box.
const (
	// CellWidthPx is the assumed pixel width of one terminal cell
	CellWidthPx = 8.0

	// CellHeightPx is the assumed pixel height of one terminal cell
	CellHeightPx = 16.0
)

// Event Bus Sizing
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo (EventQueueSize - 1)
	EventBufferMask = EventQueueSize - 1
)

// UI Layout
const (
	// StatusBarRows is the height of the bottom status bar in cells
	StatusBarRows = 1
)
