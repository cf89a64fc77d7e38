package viewport

import (
	"math"

	"github.com/lixenwraith/chipfield/constants"
	"github.com/lixenwraith/chipfield/layout"
)

// Placement is one draw instruction: a horizontal copy of one row at a
// screen position under the synced transform. X is the left edge of the
// copy origin, Y the row top, both in screen pixels.
type Placement struct {
	Row   int
	TileX int
	TileY int
	X     float64
	Y     float64
}

// MaxTiles returns the vertical repetition bound for a zoom level. Tuned
// values: zoomed out, each copy shows more rows, so fewer copies are kept.
// The first bucket sits below the scale clamp and is retained as observed.
func MaxTiles(scale float64) int {
	switch {
	case scale < 0.3:
		return 1
	case scale < 0.5:
		return 2
	case scale < 0.8:
		return 3
	default:
		return 4
	}
}

// Culler computes the placements whose bounds intersect the container.
// Output carries no state; it is discarded and recomputed on every synced
// transform or layout change.
type Culler struct {
	width  float64
	height float64
}

// NewCuller returns a culler with no container yet; Visible returns nothing
// until SetContainer is called with a real size.
func NewCuller() *Culler {
	return &Culler{}
}

// SetContainer updates the container size in pixels.
func (c *Culler) SetContainer(widthPx, heightPx float64) {
	c.width = widthPx
	c.height = heightPx
}

// Container returns the current container size in pixels.
func (c *Culler) Container() (float64, float64) {
	return c.width, c.height
}

// Visible returns the draw instructions for the given transform and rows.
//
// Vertical copy ty covers content Y in [ty*tileH - tileH/2,
// (ty+1)*tileH - tileH/2), which makes the floor/ceil window below exact.
// Rows with a zero period (empty working list) are skipped.
func (c *Culler) Visible(t Transform, rows []layout.Row) []Placement {
	out := make([]Placement, 0, 128)
	if c.width <= 0 || c.height <= 0 {
		return out
	}

	scale := ClampScale(t.Scale)
	const tileH = float64(constants.TileHeightPx)

	viewTop := -t.OffsetY/scale - c.height/(2*scale)
	viewBottom := -t.OffsetY/scale + c.height/(2*scale)

	minTy := int(math.Floor((viewTop + tileH/2) / tileH))
	maxTy := int(math.Ceil((viewBottom + tileH/2) / tileH))

	bound := MaxTiles(scale)
	if minTy < -bound {
		minTy = -bound
	}
	if maxTy > bound {
		maxTy = bound
	}

	for ty := minTy; ty <= maxTy; ty++ {
		copyTop := float64(ty)*tileH - tileH/2
		for i := range rows {
			row := &rows[i]
			if row.PeriodPx <= 0 {
				continue
			}

			screenY := (copyTop+float64(row.Index)*constants.ChipHeightPx)*scale + t.OffsetY + c.height/2
			rowH := constants.ChipHeightPx * scale
			if screenY+rowH < -constants.RowCullMarginPx || screenY > c.height+constants.RowCullMarginPx {
				continue
			}

			period := row.PeriodPx * scale
			baseX := positiveMod(t.OffsetX, period) + row.StaggerPx*scale
			for tx := 0; tx < constants.HorizontalCopies; tx++ {
				out = append(out, Placement{
					Row:   row.Index,
					TileX: tx,
					TileY: ty,
					X:     baseX + float64(tx-constants.HorizontalCopies/2)*period,
					Y:     screenY,
				})
			}
		}
	}
	return out
}

// positiveMod wraps v into [0, m) for m > 0.
func positiveMod(v, m float64) float64 {
	if m <= 0 {
		return 0
	}
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}
