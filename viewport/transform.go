// Package viewport carries the pan/zoom transform, its frame-synced store,
// and the visibility culler.
//
// Screen mapping is center-origin: screen = content*scale + offset +
// container/2. Offsets are screen pixels, scale is unitless.
package viewport

import "github.com/lixenwraith/chipfield/constants"

// Transform is one pan/zoom state. Two copies exist at runtime: the live
// copy the gesture controller mutates on every input event, and the synced
// copy in Store refreshed at most once per frame.
type Transform struct {
	OffsetX float64
	OffsetY float64
	Scale   float64
}

// Identity returns the default transform: origin offset, scale 1.
func Identity() Transform {
	return Transform{Scale: 1}
}

// ClampScale bounds s to the legal zoom range. Out-of-range values clamp,
// never reject.
func ClampScale(s float64) float64 {
	if s < constants.MinScale {
		return constants.MinScale
	}
	if s > constants.MaxScale {
		return constants.MaxScale
	}
	return s
}
