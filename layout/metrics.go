// Package layout builds the fixed row grid over the working list and the
// per-row pixel metrics the culler and the canvas consume.
package layout

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/chipfield/chip"
	"github.com/lixenwraith/chipfield/constants"
)

// LabelCells returns the display width of a token label in cells.
func LabelCells(tok chip.Token) int {
	return runewidth.StringWidth(tok.Text)
}

// BoxCells returns the full chip box width in cells, padding included.
func BoxCells(tok chip.Token) int {
	return LabelCells(tok) + 2*constants.ChipPadCells
}

// AdvancePx returns the horizontal advance of one chip in content pixels:
// box plus inter-chip gap. Advance depends only on the token text, so row
// periods survive badge or style changes.
func AdvancePx(tok chip.Token) float64 {
	return float64(BoxCells(tok)+constants.ChipGapCells) * constants.CellWidthPx
}
