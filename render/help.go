package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/chipfield/engine"
)

var helpLines = []string{
	"chipfield",
	"",
	"drag          pan",
	"ctrl+drag     pinch zoom",
	"wheel         pan",
	"ctrl+wheel    zoom",
	"h j k l  ←↓↑→ pan one step",
	"+ / -         zoom in / out",
	"0             reset zoom",
	"s             shuffle viewport",
	"1..9          toggle trait",
	"c             clear traits",
	"m             mute audio",
	"?             toggle this help",
	"q / esc       quit",
}

// HelpRenderer paints the centered key-binding overlay when toggled on.
type HelpRenderer struct {
	ctx *engine.Context
}

// NewHelpRenderer creates the overlay over the context.
func NewHelpRenderer(ctx *engine.Context) *HelpRenderer {
	return &HelpRenderer{ctx: ctx}
}

// IsVisible reports whether the overlay should paint this frame.
func (h *HelpRenderer) IsVisible() bool {
	return h.ctx.HelpVisible
}

func (h *HelpRenderer) Render(buf *Buffer) {
	width, height := buf.Size()

	boxW := 0
	for _, line := range helpLines {
		if w := runewidth.StringWidth(line); w > boxW {
			boxW = w
		}
	}
	boxW += 4
	boxH := len(helpLines) + 2
	x0 := (width - boxW) / 2
	y0 := (height - boxH) / 2

	style := tcell.StyleDefault.Reverse(true)
	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			buf.Set(x, y, ' ', style)
		}
	}
	for i, line := range helpLines {
		buf.SetText(x0+2, y0+1+i, line, style)
	}
}
