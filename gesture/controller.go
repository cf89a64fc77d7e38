package gesture

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/chipfield/constants"
	"github.com/lixenwraith/chipfield/frame"
	"github.com/lixenwraith/chipfield/viewport"
)

// Surface receives live transform updates on the direct channel, bypassing
// the render cycle. The canvas renderer implements it.
type Surface interface {
	ApplyTransform(t viewport.Transform)
}

// TapFunc receives the pointer position of a clean tap (no drag travel).
type TapFunc func(xPx, yPx float64)

// Controller owns the live transform and all gesture state. Every input
// event mutates the live copy and pushes it to the surface immediately;
// the synced store refresh rides the frame scheduler so expensive culling
// work never runs at input frequency.
//
// All methods run on the main goroutine. There are no error paths: scale
// always clamps and every input is valid by construction.
type Controller struct {
	live  viewport.Transform
	drag  DragState
	store *viewport.Store
	sched *frame.Scheduler
	rng   *rand.Rand

	surface Surface
	onTap   TapFunc

	// pinchDist is the last two-point distance, negative when unset so a
	// new pinch always starts from a relative reference
	pinchDist float64
	pinching  bool

	syncHandle *frame.Handle
}

// NewController returns a controller at the identity transform. The seed
// feeds only the shuffle jump target.
func NewController(store *viewport.Store, sched *frame.Scheduler, seed int64) *Controller {
	return &Controller{
		live:      viewport.Identity(),
		store:     store,
		sched:     sched,
		rng:       rand.New(rand.NewSource(seed)),
		pinchDist: -1,
	}
}

// SetSurface wires the visual surface. A nil surface is legal (tests).
func (c *Controller) SetSurface(s Surface) {
	c.surface = s
}

// SetTapHandler wires the tap callback invoked on drag-free pointer-up.
func (c *Controller) SetTapHandler(fn TapFunc) {
	c.onTap = fn
}

// Live returns the live transform.
func (c *Controller) Live() viewport.Transform {
	return c.live
}

// Drag returns a copy of the current drag state.
func (c *Controller) Drag() DragState {
	return c.drag
}

// PointerDown starts a gesture: the anchor keeps the grabbed content point
// under the pointer, and the drag flags reset for the new lifecycle.
func (c *Controller) PointerDown(xPx, yPx float64) {
	c.drag = DragState{
		Dragging: true,
		AnchorX:  xPx - c.live.OffsetX,
		AnchorY:  yPx - c.live.OffsetY,
		PressX:   xPx,
		PressY:   yPx,
	}
}

// PointerMove pans while dragging. Travel inside the dead zone neither pans
// nor latches the drag flag, so a slightly shaky tap still clicks.
func (c *Controller) PointerMove(xPx, yPx float64) {
	if !c.drag.Dragging || c.pinching {
		return
	}
	if !c.drag.Dragged {
		dx := xPx - c.drag.PressX
		dy := yPx - c.drag.PressY
		if math.Hypot(dx, dy) < constants.DragDeadZonePx {
			return
		}
		c.drag.Dragged = true
	}
	c.live.OffsetX = xPx - c.drag.AnchorX
	c.live.OffsetY = yPx - c.drag.AnchorY
	c.apply()
	c.scheduleSync()
}

// PointerUp ends the gesture with one unconditional store flush, then fires
// the tap callback if no drag travel latched. The Dragged flag is consumed
// here and reset by the next PointerDown.
func (c *Controller) PointerUp(xPx, yPx float64) {
	tapped := c.drag.Dragging && !c.drag.Dragged
	c.drag.Dragging = false
	c.forceSync()
	if tapped && c.onTap != nil {
		c.onTap(xPx, yPx)
	}
}

// TouchMove handles a two-point touch. The first sample only records the
// distance; subsequent samples zoom by the distance delta. An active
// pointer drag is suspended and its tap suppressed.
func (c *Controller) TouchMove(ax, ay, bx, by float64) {
	c.pinching = true
	c.drag.Dragging = false
	c.drag.Dragged = true

	dist := math.Hypot(bx-ax, by-ay)
	if c.pinchDist < 0 {
		c.pinchDist = dist
		return
	}
	delta := (dist - c.pinchDist) * constants.PinchZoomSpeed
	c.pinchDist = dist
	c.live.Scale = viewport.ClampScale(c.live.Scale + delta)
	c.apply()
	c.scheduleSync()
}

// TouchEnd resets the pinch reference to unset and flushes the store, so a
// future pinch starts relative, never absolute.
func (c *Controller) TouchEnd() {
	c.pinchDist = -1
	c.pinching = false
	c.drag.Dragging = false
	c.forceSync()
}

// Wheel pans by the wheel deltas, or zooms when the zoom modifier is held.
// Pan syncs are debounced: a still-pending sync is canceled and a fresh one
// scheduled, so fast continuous scrolling coalesces to one rebuild.
func (c *Controller) Wheel(dxPx, dyPx float64, zoom bool) {
	if zoom {
		c.live.Scale = viewport.ClampScale(c.live.Scale - dyPx*constants.WheelZoomSpeed)
		c.apply()
		c.scheduleSync()
		return
	}
	c.live.OffsetX -= dxPx
	c.live.OffsetY -= dyPx
	c.apply()
	c.debounceSync()
}

// Shuffle jumps to a uniformly random point inside the fixed window,
// x in [-1000, 1000], y in [-500, 500].
func (c *Controller) Shuffle() {
	c.live.OffsetX = (c.rng.Float64()*2 - 1) * constants.ShuffleSpanXPx
	c.live.OffsetY = (c.rng.Float64()*2 - 1) * constants.ShuffleSpanYPx
	c.apply()
	c.forceSync()
}

// ResetZoom restores scale to exactly 1.
func (c *Controller) ResetZoom() {
	c.live.Scale = 1.0
	c.apply()
	c.forceSync()
}

// Release cancels any pending sync so no callback outlives the surface.
func (c *Controller) Release() {
	if c.syncHandle != nil {
		c.syncHandle.Cancel()
		c.syncHandle = nil
	}
}

func (c *Controller) apply() {
	if c.surface != nil {
		c.surface.ApplyTransform(c.live)
	}
}

// scheduleSync requests one store refresh at the next frame. A no-op while
// a sync is already pending: at most one callback in flight.
func (c *Controller) scheduleSync() {
	if c.syncHandle != nil && c.syncHandle.Pending() {
		return
	}
	c.syncHandle = c.sched.Schedule(c.syncNow)
}

// debounceSync cancels a pending sync and schedules a fresh one.
func (c *Controller) debounceSync() {
	if c.syncHandle != nil {
		c.syncHandle.Cancel()
	}
	c.syncHandle = c.sched.Schedule(c.syncNow)
}

// forceSync flushes the store immediately, canceling any pending callback.
func (c *Controller) forceSync() {
	if c.syncHandle != nil {
		c.syncHandle.Cancel()
		c.syncHandle = nil
	}
	c.syncNow()
}

func (c *Controller) syncNow() {
	c.store.SyncFrom(c.live)
}
