package render

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/chipfield/chip"
	"github.com/lixenwraith/chipfield/constants"
	"github.com/lixenwraith/chipfield/engine"
	"github.com/lixenwraith/chipfield/layout"
	"github.com/lixenwraith/chipfield/viewport"
)

// hitRegion is one painted chip's screen rectangle in pixels.
type hitRegion struct {
	x0, y0, x1, y1 float64
	tok            chip.Token
}

// CanvasRenderer paints the chip field. It is both the gesture surface
// (receiving live transforms on the direct channel) and the hit tester for
// tap resolution.
//
// The draw list rebuilds only when the synced transform version, the
// layout version, or the container changes. Every frame paints the cached
// list shifted by the live-synced offset delta, so pans track the pointer
// between syncs at O(drawn chips) with no culling work.
type CanvasRenderer struct {
	ctx *engine.Context

	placements    []viewport.Placement
	synced        viewport.Transform
	syncedVersion uint64
	layoutVersion uint64
	lastW, lastH  float64

	live viewport.Transform
	hits []hitRegion
}

// NewCanvasRenderer creates the canvas over the context.
func NewCanvasRenderer(ctx *engine.Context) *CanvasRenderer {
	return &CanvasRenderer{
		ctx:  ctx,
		live: viewport.Identity(),
	}
}

// ApplyTransform receives the live transform. Direct channel: no culling,
// no allocation, just a copy.
func (c *CanvasRenderer) ApplyTransform(t viewport.Transform) {
	c.live = t
}

// Render rebuilds the draw list if the synced state moved, then paints it
// through the live offset delta.
func (c *CanvasRenderer) Render(buf *Buffer) {
	t, version := c.ctx.Store.Get()
	w, h := c.ctx.Culler.Container()
	lv := c.ctx.Builder.Version()
	if version != c.syncedVersion || lv != c.layoutVersion || w != c.lastW || h != c.lastH {
		c.placements = c.ctx.Culler.Visible(t, c.ctx.Builder.Rows())
		c.synced = t
		c.syncedVersion = version
		c.layoutVersion = lv
		c.lastW, c.lastH = w, h
	}

	dx := c.live.OffsetX - c.synced.OffsetX
	dy := c.live.OffsetY - c.synced.OffsetY
	scale := c.synced.Scale

	wl := c.ctx.Filter.Working()
	table := c.ctx.Classifier.Classify(wl.Tokens, wl.Version)
	rows := c.ctx.Builder.Rows()

	c.hits = c.hits[:0]
	for _, p := range c.placements {
		row := &rows[p.Row]
		for i, tok := range row.Tokens {
			x := p.X + row.StartPx[i]*scale + dx
			y := p.Y + dy
			c.paintChip(buf, tok, table.Badge(row.Indices[i]), x, y, scale)
		}
	}
}

// paintChip draws one chip as a padded label run. Labels truncate as the
// scale shrinks rather than scaling glyphs; a terminal has one glyph size.
func (c *CanvasRenderer) paintChip(buf *Buffer, tok chip.Token, badge chip.Badge, xPx, yPx, scale float64) {
	cellX := int(math.Round(xPx / constants.CellWidthPx))
	cellY := int(math.Round(yPx / constants.CellHeightPx))

	bufW, bufH := buf.Size()
	wCells := int(math.Round(float64(layout.BoxCells(tok)) * scale))
	if wCells < 1 {
		wCells = 1
	}
	if cellX+wCells < 0 || cellX >= bufW || cellY < 0 || cellY >= bufH {
		return
	}

	text := runewidth.FillRight(runewidth.Truncate(" "+tok.Text+" ", wCells, "…"), wCells)
	style := BadgeStyle(badge, scale)
	buf.SetText(cellX, cellY, text, style)

	c.hits = append(c.hits, hitRegion{
		x0:  float64(cellX) * constants.CellWidthPx,
		y0:  float64(cellY) * constants.CellHeightPx,
		x1:  float64(cellX+wCells) * constants.CellWidthPx,
		y1:  float64(cellY+1) * constants.CellHeightPx,
		tok: tok,
	})
}

// HitTest resolves a pixel position to the chip painted there in the last
// frame. Later paints win overlaps, so the scan runs newest-first.
func (c *CanvasRenderer) HitTest(xPx, yPx float64) (chip.Token, bool) {
	for i := len(c.hits) - 1; i >= 0; i-- {
		h := c.hits[i]
		if xPx >= h.x0 && xPx < h.x1 && yPx >= h.y0 && yPx < h.y1 {
			return h.tok, true
		}
	}
	return chip.Token{}, false
}
