package sudoku

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/halden/dlxsolver/internal/boxgrid"
)

var (
	givenColor  = color.New(color.Bold, color.FgHiBlue)
	solvedColor = color.New(color.FgHiGreen)
	blankColor  = color.New(color.FgHiBlack)
)

// Print renders the board as a box-drawn grid, merging borders between
// cells in the same box. given, when non-nil, marks which cells were part
// of the original input (rendered in a different color than cells filled
// in by the solver).
func (b *Board) Print(given *Board) {
	n := b.Size.N()
	g := boxgrid.Grid{
		Rows: n, Cols: n,
		Same: func(r1, c1, r2, c2 int) bool {
			return b.Box(r1, c1) == b.Box(r2, c2)
		},
		CellText: func(r, c int) string {
			return " " + b.glyph(given, r, c) + " "
		},
	}
	for _, line := range g.Lines() {
		fmt.Println(line)
	}
}

func (b *Board) glyph(given *Board, r, c int) string {
	d := b.Cells[r][c]
	if d < 0 {
		return blankColor.Sprint("·")
	}
	text := string(b.Alphabet[d])
	if given != nil && given.Cells[r][c] >= 0 {
		return givenColor.Sprint(text)
	}
	return solvedColor.Sprint(text)
}

// String renders the board back into the single-line glyph format accepted
// by ParseLine, with '.' for blanks.
func (b *Board) String() string {
	n := b.Size.N()
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			d := b.Cells[r][c]
			if d < 0 {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(b.Alphabet[d])
		}
	}
	return sb.String()
}
