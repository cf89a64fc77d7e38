// Package render implements the cell-buffer pipeline: a priority-ordered
// orchestrator over renderers that paint into a shared buffer flushed to
// the screen once per frame.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one buffered screen cell.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is a width x height cell buffer. All writes are bounds-checked;
// out-of-range cells are silently dropped, which is what tile culling edge
// cases want.
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer creates a cleared buffer.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions and clears. Capacity is kept when shrinking.
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b.width = width
	b.height = height
	need := width * height
	if cap(b.cells) < need {
		b.cells = make([]Cell, need)
	} else {
		b.cells = b.cells[:need]
	}
	b.Clear()
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Clear resets every cell to a blank default-styled space.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Style: tcell.StyleDefault}
	}
}

// Set writes one cell, dropping out-of-range coordinates.
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at (x, y), or a blank cell out of range.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{Rune: ' ', Style: tcell.StyleDefault}
	}
	return b.cells[y*b.width+x]
}

// SetText writes a string starting at (x, y), advancing by display width.
// Wide runes occupy their full width; the continuation cell stays blank.
func (b *Buffer) SetText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		b.Set(x, y, r, style)
		x += runewidth.RuneWidth(r)
	}
}

// Flush pushes the buffer to the screen and shows it.
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	screen.Show()
}
