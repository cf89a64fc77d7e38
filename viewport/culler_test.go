package viewport

import (
	"testing"

	"github.com/lixenwraith/chipfield/chip"
	"github.com/lixenwraith/chipfield/constants"
	"github.com/lixenwraith/chipfield/filter"
	"github.com/lixenwraith/chipfield/layout"
)

func testRows(t *testing.T, n int) []layout.Row {
	t.Helper()
	tokens := make([]chip.Token, n)
	for i := range tokens {
		tokens[i] = chip.Token{Text: "chip", Key: "chip"}
	}
	b := layout.NewBuilder()
	b.Rebuild(filter.WorkingList{Tokens: tokens, Version: 1})
	return b.Rows()
}

func TestDefaultViewportNeverEmpty(t *testing.T) {
	c := NewCuller()
	c.SetContainer(800, 600)
	rows := testRows(t, 100)

	got := c.Visible(Transform{Scale: 1}, rows)
	if len(got) == 0 {
		t.Fatal("default viewport produced no placements")
	}
}

func TestVerticalCopiesBounded(t *testing.T) {
	c := NewCuller()
	c.SetContainer(800, 600)
	rows := testRows(t, 100)

	tests := []struct {
		scale float64
		bound int
	}{
		{0.3, 2},
		{0.45, 2},
		{0.6, 3},
		{1.0, 4},
		{3.0, 4},
	}
	for _, tc := range tests {
		got := c.Visible(Transform{Scale: tc.scale}, rows)
		seen := map[int]struct{}{}
		for _, p := range got {
			seen[p.TileY] = struct{}{}
			if p.TileY < -tc.bound || p.TileY > tc.bound {
				t.Fatalf("scale %v: tile y %d outside ±%d", tc.scale, p.TileY, tc.bound)
			}
		}
		if len(seen) == 0 {
			t.Fatalf("scale %v: no vertical copies", tc.scale)
		}
	}
}

func TestMaxTilesTable(t *testing.T) {
	tests := []struct {
		scale float64
		want  int
	}{
		{0.1, 1}, // below the clamp, kept as observed
		{0.3, 2},
		{0.49, 2},
		{0.5, 3},
		{0.79, 3},
		{0.8, 4},
		{3.0, 4},
	}
	for _, tc := range tests {
		if got := MaxTiles(tc.scale); got != tc.want {
			t.Errorf("MaxTiles(%v) = %d, want %d", tc.scale, got, tc.want)
		}
	}
}

func TestFiveHorizontalCopiesPerRow(t *testing.T) {
	c := NewCuller()
	c.SetContainer(800, 600)
	rows := testRows(t, 100)

	got := c.Visible(Transform{Scale: 1}, rows)
	perRow := map[[2]int]int{}
	for _, p := range got {
		perRow[[2]int{p.Row, p.TileY}]++
	}
	for key, n := range perRow {
		if n != constants.HorizontalCopies {
			t.Fatalf("row %d tile %d drew %d horizontal copies, want %d",
				key[0], key[1], n, constants.HorizontalCopies)
		}
	}
}

func TestEmptyWorkingListCullsToNothing(t *testing.T) {
	c := NewCuller()
	c.SetContainer(800, 600)
	rows := testRows(t, 0)

	if got := c.Visible(Transform{Scale: 1}, rows); len(got) != 0 {
		t.Fatalf("empty list produced %d placements", len(got))
	}
}

func TestZeroContainerCullsToNothing(t *testing.T) {
	c := NewCuller()
	rows := testRows(t, 100)
	if got := c.Visible(Transform{Scale: 1}, rows); len(got) != 0 {
		t.Fatalf("unsized container produced %d placements", len(got))
	}
}

func TestOnlyIntersectingRowsSurvive(t *testing.T) {
	c := NewCuller()
	c.SetContainer(800, 600)
	rows := testRows(t, 100)

	for _, tr := range []Transform{
		{Scale: 1},
		{OffsetX: 12345, OffsetY: -6789, Scale: 0.5},
		{OffsetX: -99999, OffsetY: 99999, Scale: 2.5},
	} {
		for _, p := range c.Visible(tr, rows) {
			h := constants.ChipHeightPx * tr.Scale
			if p.Y+h < -constants.RowCullMarginPx || p.Y > 600+constants.RowCullMarginPx {
				t.Fatalf("placement at y %v outside container margin (transform %+v)", p.Y, tr)
			}
		}
	}
}
