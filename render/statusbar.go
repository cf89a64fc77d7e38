package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chipfield/engine"
	"github.com/lixenwraith/chipfield/events"
)

// StatusBarRenderer paints the bottom line: list sizes, active traits,
// zoom, offset, measured FPS, mute flag, and the last chosen chip. It
// listens on the event router for chip selections.
type StatusBarRenderer struct {
	ctx *engine.Context

	lastFrame time.Time
	fps       float64

	lastChosen string
}

// NewStatusBarRenderer creates the status bar over the context.
func NewStatusBarRenderer(ctx *engine.Context) *StatusBarRenderer {
	return &StatusBarRenderer{ctx: ctx}
}

func (s *StatusBarRenderer) Render(buf *Buffer) {
	now := time.Now()
	if !s.lastFrame.IsZero() {
		if dt := now.Sub(s.lastFrame).Seconds(); dt > 0 {
			// Exponential smoothing keeps the readout steady
			s.fps = s.fps*0.9 + (1/dt)*0.1
		}
	}
	s.lastFrame = now

	width, height := buf.Size()
	if height == 0 {
		return
	}
	y := height - 1

	live := s.ctx.Controller.Live()
	traits := strings.Join(s.ctx.Filter.Selected(), ",")
	if traits == "" {
		traits = "-"
	}

	var b strings.Builder
	fmt.Fprintf(&b, " %d/%d chips │ traits %s │ zoom %.0f%% │ (%.0f,%.0f) │ %.0f fps",
		s.ctx.Filter.Len(), s.ctx.Filter.CorpusLen(),
		traits,
		live.Scale*100,
		live.OffsetX, live.OffsetY,
		s.fps,
	)
	if s.ctx.Audio.Muted() {
		b.WriteString(" │ muted")
	}
	if s.lastChosen != "" {
		fmt.Fprintf(&b, " │ %s", s.lastChosen)
	}

	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		buf.Set(x, y, ' ', style)
	}
	buf.SetText(0, y, b.String(), style)
}

func (s *StatusBarRenderer) HandleEvent(_ *engine.Context, ev events.Event) {
	if p, ok := ev.Payload.(*events.ChipChosenPayload); ok {
		s.lastChosen = p.Text
	}
}

func (s *StatusBarRenderer) EventTypes() []events.Type {
	return []events.Type{events.TypeChipChosen}
}
