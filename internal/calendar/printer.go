package calendar

import (
	"fmt"
	"strings"

	"github.com/halden/dlxsolver/internal/boxgrid"
)

// Print renders a decoded grid as a box-drawn board, merging borders
// between cells belonging to the same piece. Hole cells print blank.
func Print(grid [][]int) {
	for _, line := range Lines(grid) {
		fmt.Println(line)
	}
}

// Lines renders a decoded grid the same way Print does, without writing
// to stdout, for use in tests and other callers that want the text.
func Lines(grid [][]int) []string {
	g := boxgrid.Grid{
		Rows: BoardRows, Cols: BoardCols,
		Same: func(r1, c1, r2, c2 int) bool {
			return grid[r1][c1] == grid[r2][c2]
		},
		CellText: func(r, c int) string {
			if grid[r][c] < 0 {
				return "   "
			}
			return fmt.Sprintf(" %s ", pieceGlyph(grid[r][c]))
		},
	}
	return g.Lines()
}

func pieceGlyph(piece int) string {
	const glyphs = "123456789"
	if piece < 0 || piece >= len(glyphs) {
		return "?"
	}
	return string(glyphs[piece])
}

// String renders the grid as Lines joined with newlines.
func String(grid [][]int) string {
	return strings.Join(Lines(grid), "\n")
}
