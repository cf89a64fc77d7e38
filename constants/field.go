package constants

// Chip Field Geometry
const (
	// RowCount is the number of precomputed layout rows
	RowCount = 80

	// ChipsPerRow is the fixed token count of every row window
	ChipsPerRow = 40

	// GoldenFraction is the fractional golden ratio driving row-start and
	// stagger dispersion
	GoldenFraction = 0.618033988749

	// ChipHeightPx is the vertical pitch of one chip row in content pixels
	ChipHeightPx = 48.0

	// TileHeightPx is the vertical extent of one full tiling period
	TileHeightPx = RowCount * ChipHeightPx

	// HorizontalCopies is the fixed per-row horizontal repetition count
	HorizontalCopies = 5

	// RowStaggerStepPx scales the golden-ratio row index before the
	// stagger modulo
	RowStaggerStepPx = 200.0

	// RowStaggerSpanPx is the stagger modulo span; stagger values fall in
	// [-RowStaggerSpanPx/2, RowStaggerSpanPx/2)
	RowStaggerSpanPx = 400.0

	// RowCullMarginPx pads row bounds during visibility tests so edge rows
	// are not dropped mid-glyph
	RowCullMarginPx = 32.0
)

// Chip Cell Metrics
const (
	// ChipPadCells is the horizontal padding inside a chip, per side
	ChipPadCells = 1

	// ChipGapCells is the gap between adjacent chips in a row
	ChipGapCells = 1
)
