package boxgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A 2x2 grid where every cell is its own region renders a plain box with
// every internal edge drawn.
func TestAllDistinctRegionsDrawsFullGrid(t *testing.T) {
	g := Grid{
		Rows: 2, Cols: 2,
		Same:     func(r1, c1, r2, c2 int) bool { return false },
		CellText: func(r, c int) string { return " " },
	}
	lines := g.Lines()
	assert.Len(t, lines, 5)
	assert.Equal(t, "┌─┬─┐", lines[0])
	assert.Equal(t, "├─┼─┤", lines[2])
	assert.Equal(t, "└─┴─┘", lines[4])
}

// A 1x2 grid whose two cells share one region merges the edge between
// them into a space, with no interior junction at all.
func TestSameRegionMergesInteriorEdge(t *testing.T) {
	g := Grid{
		Rows: 1, Cols: 2,
		Same:     func(r1, c1, r2, c2 int) bool { return true },
		CellText: func(r, c int) string { return "x" },
	}
	lines := g.Lines()
	require := assert.New(t)
	require.Equal("┌───┐", lines[0])
	require.Equal("│x x│", lines[1])
	require.Equal("└───┘", lines[2])
}
