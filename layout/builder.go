package layout

import (
	"math"

	"github.com/lixenwraith/chipfield/chip"
	"github.com/lixenwraith/chipfield/constants"
	"github.com/lixenwraith/chipfield/filter"
)

// Row is one fixed-width cyclic window into the working list.
//
// StartPx[i] is the offset of chip i from the row origin in content pixels
// (prefix sum of advances); PeriodPx is the full row advance, i.e. the
// horizontal tiling period. StaggerPx is the per-row horizontal jitter in
// [-200, 200), independent of the vertical golden-ratio start dispersion.
type Row struct {
	Index     int
	Tokens    []chip.Token
	Indices   []int // working-list index per chip, for badge lookup
	StartPx   []float64
	PeriodPx  float64
	StaggerPx float64
}

// Builder produces the RowCount rows of the field.
//
// Rows are a pure function of the working list: they rebuild when its
// version changes and never on viewport motion. An empty list yields
// RowCount empty rows (PeriodPx 0), which downstream code skips.
type Builder struct {
	rows    []Row
	version uint64
	built   bool
}

// NewBuilder returns a builder with no rows yet; call Rebuild before Rows.
func NewBuilder() *Builder {
	return &Builder{rows: make([]Row, constants.RowCount)}
}

// Rebuild recomputes every row for the given list. Rebuilding the version
// already built is a no-op.
func (b *Builder) Rebuild(list filter.WorkingList) {
	if b.built && b.version == list.Version {
		return
	}

	n := len(list.Tokens)
	for r := 0; r < constants.RowCount; r++ {
		row := Row{
			Index:     r,
			StaggerPx: rowStagger(r),
		}
		if n > 0 {
			start := int(math.Floor(float64(r)*constants.GoldenFraction*float64(n))) % n
			row.Tokens = make([]chip.Token, constants.ChipsPerRow)
			row.Indices = make([]int, constants.ChipsPerRow)
			row.StartPx = make([]float64, constants.ChipsPerRow)
			x := 0.0
			for i := 0; i < constants.ChipsPerRow; i++ {
				idx := (start + i) % n
				row.Tokens[i] = list.Tokens[idx]
				row.Indices[i] = idx
				row.StartPx[i] = x
				x += AdvancePx(list.Tokens[idx])
			}
			row.PeriodPx = x
		}
		b.rows[r] = row
	}
	b.version = list.Version
	b.built = true
}

// Rows returns the current row set. The slice is reused across rebuilds.
func (b *Builder) Rows() []Row {
	return b.rows
}

// Version returns the working-list version the rows were built from.
func (b *Builder) Version() uint64 {
	return b.version
}

// StartIndex returns the cyclic window start for a row over n tokens.
// Exposed for tests; Rebuild inlines the same formula.
func StartIndex(rowIndex, n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Floor(float64(rowIndex)*constants.GoldenFraction*float64(n))) % n
}

func rowStagger(rowIndex int) float64 {
	v := math.Mod(float64(rowIndex)*constants.GoldenFraction*constants.RowStaggerStepPx, constants.RowStaggerSpanPx)
	return v - constants.RowStaggerSpanPx/2
}
