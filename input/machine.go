package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chipfield/constants"
)

// Machine parses tcell events into semantic intents. Mouse button edges
// are detected against the previous button mask; a Ctrl-modified press
// turns the gesture into a two-point pinch simulation anchored at the
// press position.
type Machine struct {
	prevButtons tcell.ButtonMask

	// pinch simulation state for the current button-held gesture
	pinching bool
	anchorX  float64
	anchorY  float64
}

// NewMachine creates an input machine.
func NewMachine() *Machine {
	return &Machine{}
}

// Process parses one event and returns an intent, or nil when the event
// carries no action (e.g. pointer motion with no button held).
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch e := ev.(type) {
	case *tcell.EventResize:
		cols, rows := e.Size()
		return &Intent{Type: IntentResize, Cols: cols, Rows: rows}
	case *tcell.EventKey:
		return m.processKey(e)
	case *tcell.EventMouse:
		return m.processMouse(e)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyEscape:
		return &Intent{Type: IntentEscape}
	case tcell.KeyLeft:
		return panIntent(-constants.KeyPanStepPx, 0)
	case tcell.KeyRight:
		return panIntent(constants.KeyPanStepPx, 0)
	case tcell.KeyUp:
		return panIntent(0, -constants.KeyPanStepPx)
	case tcell.KeyDown:
		return panIntent(0, constants.KeyPanStepPx)
	case tcell.KeyRune:
		return m.processRune(ev.Rune())
	}
	return nil
}

func (m *Machine) processRune(r rune) *Intent {
	switch r {
	case 'q':
		return &Intent{Type: IntentQuit}
	case 's':
		return &Intent{Type: IntentShuffle}
	case '0':
		return &Intent{Type: IntentResetZoom}
	case 'c':
		return &Intent{Type: IntentClearTraits}
	case 'm':
		return &Intent{Type: IntentToggleMute}
	case '?':
		return &Intent{Type: IntentToggleHelp}
	case '+', '=':
		return zoomIntent(-constants.KeyZoomTicks * constants.WheelPanStepPx)
	case '-':
		return zoomIntent(constants.KeyZoomTicks * constants.WheelPanStepPx)
	case 'h':
		return panIntent(-constants.KeyPanStepPx, 0)
	case 'l':
		return panIntent(constants.KeyPanStepPx, 0)
	case 'k':
		return panIntent(0, -constants.KeyPanStepPx)
	case 'j':
		return panIntent(0, constants.KeyPanStepPx)
	}
	if r >= '1' && r <= '9' {
		return &Intent{Type: IntentTraitHotkey, Index: int(r - '1')}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	px, py := CellToPx(x, y)
	buttons := ev.Buttons()
	prev := m.prevButtons
	m.prevButtons = buttons &^ wheelMask

	if dx, dy, ok := wheelDelta(buttons); ok {
		return &Intent{
			Type: IntentWheel,
			DX:   dx, DY: dy,
			Zoom: ev.Modifiers()&tcell.ModCtrl != 0,
		}
	}

	held := buttons&tcell.Button1 != 0
	wasHeld := prev&tcell.Button1 != 0

	switch {
	case held && !wasHeld:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			m.pinching = true
			m.anchorX, m.anchorY = px, py
		}
		return &Intent{Type: IntentPointerDown, X: px, Y: py}
	case held && wasHeld:
		if m.pinching {
			return &Intent{Type: IntentPinchMove, X: px, Y: py, AnchorX: m.anchorX, AnchorY: m.anchorY}
		}
		return &Intent{Type: IntentPointerMove, X: px, Y: py}
	case !held && wasHeld:
		if m.pinching {
			m.pinching = false
			return &Intent{Type: IntentPinchEnd, X: px, Y: py}
		}
		return &Intent{Type: IntentPointerUp, X: px, Y: py}
	}
	return nil
}

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// wheelDelta converts wheel bits in the button mask to pixel deltas, one
// tick per event.
func wheelDelta(mask tcell.ButtonMask) (dx, dy float64, ok bool) {
	if mask&tcell.WheelUp != 0 {
		dy -= constants.WheelPanStepPx
	}
	if mask&tcell.WheelDown != 0 {
		dy += constants.WheelPanStepPx
	}
	if mask&tcell.WheelLeft != 0 {
		dx -= constants.WheelPanStepPx
	}
	if mask&tcell.WheelRight != 0 {
		dx += constants.WheelPanStepPx
	}
	return dx, dy, dx != 0 || dy != 0
}

// CellToPx maps a cell coordinate to the pixel at the cell center.
func CellToPx(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * constants.CellWidthPx,
		(float64(y) + 0.5) * constants.CellHeightPx
}

func panIntent(dx, dy float64) *Intent {
	return &Intent{Type: IntentWheel, DX: dx, DY: dy}
}

func zoomIntent(dy float64) *Intent {
	return &Intent{Type: IntentWheel, DY: dy, Zoom: true}
}
