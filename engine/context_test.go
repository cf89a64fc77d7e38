package engine

import (
	"testing"

	"go.uber.org/zap"

	"github.com/lixenwraith/chipfield/chip"
	"github.com/lixenwraith/chipfield/config"
	"github.com/lixenwraith/chipfield/constants"
	"github.com/lixenwraith/chipfield/events"
	"github.com/lixenwraith/chipfield/input"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	screen := newSimScreen(t)
	t.Cleanup(screen.Fini)
	cfg := &config.Config{FPS: 60, Seed: 7}
	ctx := NewContext(screen, cfg, zap.NewNop())
	t.Cleanup(ctx.Teardown)
	return ctx
}

func TestResizeSetsCanvasContainer(t *testing.T) {
	ctx := newTestContext(t)

	ctx.HandleResize(100, 40)
	w, h := ctx.Culler.Container()
	wantW := 100 * constants.CellWidthPx
	wantH := float64(40-constants.StatusBarRows) * constants.CellHeightPx
	if w != wantW || h != wantH {
		t.Fatalf("container = (%v, %v), want (%v, %v)", w, h, wantW, wantH)
	}
}

func TestToggleTraitRebuildsAndEmits(t *testing.T) {
	ctx := newTestContext(t)
	v0 := ctx.Filter.Working().Version
	ctx.Queue.Consume() // drop startup events

	tr, ok := ctx.Filter.TraitByIndex(0)
	if !ok {
		t.Fatal("no traits defined")
	}
	ctx.ToggleTrait(tr.ID)

	wl := ctx.Filter.Working()
	if wl.Version == v0 {
		t.Fatal("working list version did not advance")
	}
	if ctx.Builder.Version() != wl.Version {
		t.Fatal("layout not rebuilt for the new working list")
	}

	got := ctx.Queue.Consume()
	var sawToggle, sawRebuilt bool
	for _, ev := range got {
		switch ev.Type {
		case events.TypeTraitToggled:
			p := ev.Payload.(*events.TraitToggledPayload)
			if p.ID != tr.ID || !p.Selected {
				t.Fatalf("toggle payload %+v", p)
			}
			sawToggle = true
		case events.TypeFilterRebuilt:
			sawRebuilt = true
		}
	}
	if !sawToggle || !sawRebuilt {
		t.Fatalf("events = %v, want toggle and rebuild", got)
	}
}

func TestDispatchQuitAndEscape(t *testing.T) {
	ctx := newTestContext(t)

	if ctx.Dispatch(&input.Intent{Type: input.IntentQuit}) {
		t.Fatal("quit intent did not stop the loop")
	}

	ctx.HelpVisible = true
	if !ctx.Dispatch(&input.Intent{Type: input.IntentEscape}) {
		t.Fatal("escape with help open should not quit")
	}
	if ctx.HelpVisible {
		t.Fatal("escape did not close help")
	}
	if ctx.Dispatch(&input.Intent{Type: input.IntentEscape}) {
		t.Fatal("escape with help closed should quit")
	}
}

func TestDispatchGestureReachesController(t *testing.T) {
	ctx := newTestContext(t)

	ctx.Dispatch(&input.Intent{Type: input.IntentPointerDown, X: 100, Y: 100})
	ctx.Dispatch(&input.Intent{Type: input.IntentPointerMove, X: 180, Y: 140})
	live := ctx.Controller.Live()
	if live.OffsetX != 80 || live.OffsetY != 40 {
		t.Fatalf("live offset = (%v, %v), want (80, 40)", live.OffsetX, live.OffsetY)
	}
	ctx.Dispatch(&input.Intent{Type: input.IntentPointerUp, X: 180, Y: 140})

	synced, _ := ctx.Store.Get()
	if synced != live {
		t.Fatal("pointer-up did not flush the store")
	}
}

type fakeHit struct {
	tok chip.Token
	ok  bool
}

func (f fakeHit) HitTest(x, y float64) (chip.Token, bool) { return f.tok, f.ok }

func TestTapEmitsChipChosen(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Queue.Consume()
	ctx.SetHitTester(fakeHit{tok: chip.Token{Text: "Back this campaign", Key: "back-this-campaign"}, ok: true})

	ctx.Dispatch(&input.Intent{Type: input.IntentPointerDown, X: 50, Y: 50})
	ctx.Dispatch(&input.Intent{Type: input.IntentPointerUp, X: 50, Y: 50})

	got := ctx.Queue.Consume()
	if len(got) != 1 || got[0].Type != events.TypeChipChosen {
		t.Fatalf("events = %+v, want one chip chosen", got)
	}
	p := got[0].Payload.(*events.ChipChosenPayload)
	if p.Key != "back-this-campaign" {
		t.Fatalf("payload key = %q", p.Key)
	}
}

func TestTapOnCategoryTogglesTrait(t *testing.T) {
	ctx := newTestContext(t)
	tr, _ := ctx.Filter.TraitByIndex(0)
	ctx.SetHitTester(fakeHit{tok: chip.Token{Text: tr.Label, IsCategory: true, TraitID: tr.ID}, ok: true})

	ctx.Dispatch(&input.Intent{Type: input.IntentPointerDown, X: 50, Y: 50})
	ctx.Dispatch(&input.Intent{Type: input.IntentPointerUp, X: 50, Y: 50})

	if !ctx.Filter.IsSelected(tr.ID) {
		t.Fatal("category tap did not select the trait")
	}
}

func TestDraggedTapDoesNotChoose(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Queue.Consume()
	ctx.SetHitTester(fakeHit{tok: chip.Token{Text: "x", Key: "x"}, ok: true})

	ctx.Dispatch(&input.Intent{Type: input.IntentPointerDown, X: 50, Y: 50})
	ctx.Dispatch(&input.Intent{Type: input.IntentPointerMove, X: 120, Y: 50})
	ctx.Dispatch(&input.Intent{Type: input.IntentPointerUp, X: 120, Y: 50})

	for _, ev := range ctx.Queue.Consume() {
		if ev.Type == events.TypeChipChosen {
			t.Fatal("drag fired a chip-chosen event")
		}
	}
}
