package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chipfield/constants"
)

func mouse(x, y int, buttons tcell.ButtonMask, mods tcell.ModMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, mods)
}

func TestPointerEdges(t *testing.T) {
	m := NewMachine()

	in := m.Process(mouse(10, 5, tcell.Button1, 0))
	if in == nil || in.Type != IntentPointerDown {
		t.Fatalf("press parsed as %+v, want pointer down", in)
	}
	wantX, wantY := CellToPx(10, 5)
	if in.X != wantX || in.Y != wantY {
		t.Fatalf("press at (%v, %v), want cell center (%v, %v)", in.X, in.Y, wantX, wantY)
	}

	in = m.Process(mouse(12, 5, tcell.Button1, 0))
	if in == nil || in.Type != IntentPointerMove {
		t.Fatalf("held motion parsed as %+v, want pointer move", in)
	}

	in = m.Process(mouse(12, 5, tcell.ButtonNone, 0))
	if in == nil || in.Type != IntentPointerUp {
		t.Fatalf("release parsed as %+v, want pointer up", in)
	}

	// Motion with no button held carries no action
	if in = m.Process(mouse(13, 6, tcell.ButtonNone, 0)); in != nil {
		t.Fatalf("buttonless motion parsed as %+v, want nil", in)
	}
}

func TestCtrlDragBecomesPinch(t *testing.T) {
	m := NewMachine()

	in := m.Process(mouse(10, 10, tcell.Button1, tcell.ModCtrl))
	if in == nil || in.Type != IntentPointerDown {
		t.Fatalf("ctrl press parsed as %+v", in)
	}
	anchorX, anchorY := CellToPx(10, 10)

	in = m.Process(mouse(20, 10, tcell.Button1, tcell.ModCtrl))
	if in == nil || in.Type != IntentPinchMove {
		t.Fatalf("ctrl drag parsed as %+v, want pinch move", in)
	}
	if in.AnchorX != anchorX || in.AnchorY != anchorY {
		t.Fatalf("pinch anchor (%v, %v), want press point (%v, %v)", in.AnchorX, in.AnchorY, anchorX, anchorY)
	}

	in = m.Process(mouse(20, 10, tcell.ButtonNone, 0))
	if in == nil || in.Type != IntentPinchEnd {
		t.Fatalf("ctrl release parsed as %+v, want pinch end", in)
	}

	// The next plain gesture is an ordinary drag again
	m.Process(mouse(5, 5, tcell.Button1, 0))
	in = m.Process(mouse(6, 5, tcell.Button1, 0))
	if in == nil || in.Type != IntentPointerMove {
		t.Fatalf("post-pinch drag parsed as %+v, want pointer move", in)
	}
}

func TestWheelPanAndZoom(t *testing.T) {
	m := NewMachine()

	in := m.Process(mouse(0, 0, tcell.WheelDown, 0))
	if in == nil || in.Type != IntentWheel || in.Zoom {
		t.Fatalf("wheel down parsed as %+v, want pan wheel", in)
	}
	if in.DY != constants.WheelPanStepPx {
		t.Fatalf("wheel down dy = %v, want %v", in.DY, constants.WheelPanStepPx)
	}

	in = m.Process(mouse(0, 0, tcell.WheelUp, tcell.ModCtrl))
	if in == nil || !in.Zoom {
		t.Fatalf("ctrl wheel parsed as %+v, want zoom", in)
	}
	if in.DY != -constants.WheelPanStepPx {
		t.Fatalf("ctrl wheel up dy = %v, want %v", in.DY, -constants.WheelPanStepPx)
	}

	// Wheel bits must not pollute button edge detection
	in = m.Process(mouse(0, 0, tcell.Button1, 0))
	if in == nil || in.Type != IntentPointerDown {
		t.Fatalf("press after wheel parsed as %+v, want pointer down", in)
	}
}

func TestKeyIntents(t *testing.T) {
	m := NewMachine()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want IntentType
	}{
		{"quit rune", tcell.NewEventKey(tcell.KeyRune, 'q', 0), IntentQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, 0), IntentEscape},
		{"shuffle", tcell.NewEventKey(tcell.KeyRune, 's', 0), IntentShuffle},
		{"reset zoom", tcell.NewEventKey(tcell.KeyRune, '0', 0), IntentResetZoom},
		{"clear traits", tcell.NewEventKey(tcell.KeyRune, 'c', 0), IntentClearTraits},
		{"mute", tcell.NewEventKey(tcell.KeyRune, 'm', 0), IntentToggleMute},
		{"help", tcell.NewEventKey(tcell.KeyRune, '?', 0), IntentToggleHelp},
		{"pan left", tcell.NewEventKey(tcell.KeyRune, 'h', 0), IntentWheel},
		{"pan arrow", tcell.NewEventKey(tcell.KeyDown, 0, 0), IntentWheel},
		{"zoom in", tcell.NewEventKey(tcell.KeyRune, '+', 0), IntentWheel},
	}
	for _, tc := range tests {
		in := m.Process(tc.ev)
		if in == nil || in.Type != tc.want {
			t.Errorf("%s parsed as %+v, want type %d", tc.name, in, tc.want)
		}
	}

	// Unbound rune carries no action
	if in := m.Process(tcell.NewEventKey(tcell.KeyRune, 'z', 0)); in != nil {
		t.Errorf("unbound rune parsed as %+v, want nil", in)
	}
}

func TestTraitHotkeys(t *testing.T) {
	m := NewMachine()
	for r := '1'; r <= '9'; r++ {
		in := m.Process(tcell.NewEventKey(tcell.KeyRune, r, 0))
		if in == nil || in.Type != IntentTraitHotkey {
			t.Fatalf("rune %c parsed as %+v, want trait hotkey", r, in)
		}
		if in.Index != int(r-'1') {
			t.Fatalf("rune %c index = %d, want %d", r, in.Index, int(r-'1'))
		}
	}
}

func TestKeyboardZoomTicks(t *testing.T) {
	m := NewMachine()
	in := m.Process(tcell.NewEventKey(tcell.KeyRune, '-', 0))
	if in == nil || !in.Zoom {
		t.Fatalf("minus parsed as %+v, want zoom wheel", in)
	}
	want := float64(constants.KeyZoomTicks) * constants.WheelPanStepPx
	if in.DY != want {
		t.Fatalf("zoom-out dy = %v, want %v", in.DY, want)
	}
}

func TestResize(t *testing.T) {
	m := NewMachine()
	in := m.Process(tcell.NewEventResize(120, 40))
	if in == nil || in.Type != IntentResize || in.Cols != 120 || in.Rows != 40 {
		t.Fatalf("resize parsed as %+v, want 120x40", in)
	}
}
