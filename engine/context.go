// Package engine wires the field components into one application context
// and owns the terminal event pump.
package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/chipfield/audio"
	"github.com/lixenwraith/chipfield/chip"
	"github.com/lixenwraith/chipfield/config"
	"github.com/lixenwraith/chipfield/constants"
	"github.com/lixenwraith/chipfield/content"
	"github.com/lixenwraith/chipfield/events"
	"github.com/lixenwraith/chipfield/filter"
	"github.com/lixenwraith/chipfield/frame"
	"github.com/lixenwraith/chipfield/gesture"
	"github.com/lixenwraith/chipfield/layout"
	"github.com/lixenwraith/chipfield/viewport"
)

// HitTester resolves a tap position to the chip under it. The canvas
// renderer implements it; the interface keeps engine free of render deps.
type HitTester interface {
	HitTest(xPx, yPx float64) (chip.Token, bool)
}

// Context is the shared application state: every component, the screen,
// and the frame counter. Single main-goroutine ownership; the only other
// writers are event-queue producers, which the queue absorbs.
type Context struct {
	Screen tcell.Screen
	Cfg    *config.Config
	Log    *zap.Logger

	Filter     *filter.Engine
	Builder    *layout.Builder
	Classifier *chip.Classifier
	Store      *viewport.Store
	Culler     *viewport.Culler
	Sched      *frame.Scheduler
	Controller *gesture.Controller
	Queue      *events.Queue
	Router     *events.Router[*Context]
	Audio      *audio.Manager

	// WidthCells, HeightCells track the terminal size; the canvas is the
	// full width above the status bar
	WidthCells  int
	HeightCells int

	// HelpVisible toggles the key-binding overlay
	HelpVisible bool

	hit         HitTester
	frameNumber int64
}

// NewContext builds and wires every component. The screen must be
// initialized; seed 0 derives one from the clock.
func NewContext(screen tcell.Screen, cfg *config.Config, log *zap.Logger) *Context {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx := &Context{
		Screen:     screen,
		Cfg:        cfg,
		Log:        log,
		Filter:     filter.NewEngine(content.Corpus(), content.Traits(), seed),
		Builder:    layout.NewBuilder(),
		Classifier: chip.NewClassifier(content.Tiers()),
		Store:      viewport.NewStore(),
		Culler:     viewport.NewCuller(),
		Sched:      frame.NewScheduler(),
		Queue:      events.NewQueue(),
		Audio:      audio.NewManager(),
	}
	ctx.Router = events.NewRouter[*Context](ctx.Queue)
	ctx.Controller = gesture.NewController(ctx.Store, ctx.Sched, seed+1)
	ctx.Controller.SetTapHandler(ctx.tapAt)

	wl := ctx.Filter.Working()
	ctx.Builder.Rebuild(wl)
	ctx.Classifier.Classify(wl.Tokens, wl.Version)

	cols, rows := screen.Size()
	ctx.HandleResize(cols, rows)

	log.Info("context ready",
		zap.Int("corpus", ctx.Filter.CorpusLen()),
		zap.Int64("seed", seed),
	)
	return ctx
}

// SetHitTester wires the canvas hit map for tap resolution.
func (ctx *Context) SetHitTester(h HitTester) {
	ctx.hit = h
}

// HandleResize records the new terminal size and updates the culler's
// container: full width, the rows above the status bar.
func (ctx *Context) HandleResize(cols, rows int) {
	ctx.WidthCells = cols
	ctx.HeightCells = rows
	canvasRows := rows - constants.StatusBarRows
	if canvasRows < 0 {
		canvasRows = 0
	}
	ctx.Culler.SetContainer(
		float64(cols)*constants.CellWidthPx,
		float64(canvasRows)*constants.CellHeightPx,
	)
}

// BeginFrame advances and returns the frame number.
func (ctx *Context) BeginFrame() int64 {
	ctx.frameNumber++
	return ctx.frameNumber
}

// FrameNumber returns the current frame number.
func (ctx *Context) FrameNumber() int64 {
	return ctx.frameNumber
}

// Emit pushes a domain event stamped with the current frame.
func (ctx *Context) Emit(t events.Type, payload any) {
	ctx.Queue.Push(events.Event{
		Type:      t,
		Payload:   payload,
		Frame:     ctx.frameNumber,
		Timestamp: time.Now(),
	})
}

// ToggleTrait flips a trait, rebuilds the derived state, and emits the
// toggle and rebuild events.
func (ctx *Context) ToggleTrait(id string) {
	selected := ctx.Filter.Toggle(id)
	ctx.refresh()
	ctx.Emit(events.TypeTraitToggled, &events.TraitToggledPayload{
		ID:         id,
		Selected:   selected,
		WorkingLen: ctx.Filter.Len(),
	})
}

// ClearTraits deselects everything and rebuilds.
func (ctx *Context) ClearTraits() {
	ctx.Filter.Clear()
	ctx.refresh()
}

// ShuffleField jumps the viewport to a random point.
func (ctx *Context) ShuffleField() {
	ctx.Controller.Shuffle()
	live := ctx.Controller.Live()
	ctx.Emit(events.TypeFieldShuffled, &events.FieldShuffledPayload{
		OffsetX: live.OffsetX,
		OffsetY: live.OffsetY,
	})
}

// ResetZoom snaps the scale back to 1.
func (ctx *Context) ResetZoom() {
	ctx.Controller.ResetZoom()
	ctx.Emit(events.TypeZoomReset, nil)
}

// Teardown releases the scheduler, silences audio, and flushes the log.
// Pending frame callbacks must not outlive the screen.
func (ctx *Context) Teardown() {
	ctx.Controller.Release()
	ctx.Sched.Release()
	ctx.Audio.Cleanup()
	_ = ctx.Log.Sync()
}

// tapAt resolves a drag-free tap: category chips toggle their trait,
// suggestion chips emit a chosen event.
func (ctx *Context) tapAt(xPx, yPx float64) {
	if ctx.hit == nil {
		return
	}
	tok, ok := ctx.hit.HitTest(xPx, yPx)
	if !ok {
		return
	}
	if tok.IsCategory {
		ctx.ToggleTrait(tok.TraitID)
		return
	}
	wl := ctx.Filter.Working()
	table := ctx.Classifier.Classify(wl.Tokens, wl.Version)
	badge := chip.BadgeNone
	for i, w := range wl.Tokens {
		if w.Key == tok.Key {
			badge = table.Badge(i)
			break
		}
	}
	ctx.Emit(events.TypeChipChosen, &events.ChipChosenPayload{
		Key:   tok.Key,
		Text:  tok.Text,
		Badge: badge,
	})
	ctx.Log.Info("chip chosen", zap.String("key", tok.Key))
}

func (ctx *Context) refresh() {
	wl := ctx.Filter.Working()
	ctx.Builder.Rebuild(wl)
	ctx.Classifier.Classify(wl.Tokens, wl.Version)
	ctx.Emit(events.TypeFilterRebuilt, &events.FilterRebuiltPayload{
		Version: wl.Version,
		Len:     len(wl.Tokens),
	})
	ctx.Log.Debug("filter rebuilt",
		zap.Uint64("version", wl.Version),
		zap.Int("len", len(wl.Tokens)),
	)
}
