package engine

import "github.com/lixenwraith/chipfield/input"

// Dispatch applies one parsed intent. Gesture intents hit the controller
// synchronously with no layout or culling work on the path. Returns false
// when the application should exit.
func (ctx *Context) Dispatch(in *input.Intent) bool {
	if in == nil {
		return true
	}
	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentEscape:
		if ctx.HelpVisible {
			ctx.HelpVisible = false
			return true
		}
		return false
	case input.IntentResize:
		ctx.HandleResize(in.Cols, in.Rows)

	case input.IntentPointerDown:
		ctx.Controller.PointerDown(in.X, in.Y)
	case input.IntentPointerMove:
		ctx.Controller.PointerMove(in.X, in.Y)
	case input.IntentPointerUp:
		ctx.Controller.PointerUp(in.X, in.Y)
	case input.IntentPinchMove:
		ctx.Controller.TouchMove(in.AnchorX, in.AnchorY, in.X, in.Y)
	case input.IntentPinchEnd:
		ctx.Controller.TouchEnd()
	case input.IntentWheel:
		ctx.Controller.Wheel(in.DX, in.DY, in.Zoom)

	case input.IntentShuffle:
		ctx.ShuffleField()
	case input.IntentResetZoom:
		ctx.ResetZoom()
	case input.IntentTraitHotkey:
		if tr, ok := ctx.Filter.TraitByIndex(in.Index); ok {
			ctx.ToggleTrait(tr.ID)
		}
	case input.IntentClearTraits:
		ctx.ClearTraits()
	case input.IntentToggleHelp:
		ctx.HelpVisible = !ctx.HelpVisible
	case input.IntentToggleMute:
		ctx.Audio.ToggleMute()
	}
	return true
}
