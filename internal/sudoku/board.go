package sudoku

import (
	"fmt"

	"github.com/halden/dlxsolver/internal/dlx"
)

// Board is a parsed Sudoku of the given Size: a grid of digit indices into
// the alphabet, 0-based, with -1 marking a blank cell.
type Board struct {
	Size     Size
	Alphabet string
	Cells    [][]int // Cells[row][col], digit index or -1
}

// NewBoard returns an all-blank board of the given size.
func NewBoard(size Size, alphabet string) *Board {
	n := size.N()
	cells := make([][]int, n)
	for r := range cells {
		cells[r] = make([]int, n)
		for c := range cells[r] {
			cells[r][c] = -1
		}
	}
	return &Board{Size: size, Alphabet: alphabet, Cells: cells}
}

// ParseLine fills a board of the given size from a single line of N*N
// glyphs. Any glyph not found in the alphabet (including '.', space, '0')
// means blank.
func ParseLine(size Size, alphabet, line string) (*Board, error) {
	n := size.N()
	if len(line) != n*n {
		return nil, fmt.Errorf("board string has length %d, want %d", len(line), n*n)
	}
	b := NewBoard(size, alphabet)
	for i, ch := range line {
		row, col := i/n, i%n
		for d, a := range alphabet {
			if a == ch {
				b.Cells[row][col] = d
				break
			}
		}
	}
	return b, nil
}

// rowID encodes the (row, col, digit) candidate as the dlx row identifier
// used by BuildMatrix: cell-major, digit varying fastest.
func rowID(n, row, col, digit int) int {
	return (row*n+col)*n + digit
}

// BuildMatrix constructs the exact-cover matrix for a board of this size:
// one add_rows(N) per cell (the cell-identity column enforces exactly one
// digit per cell), then row-digit, column-digit and box-digit Unique
// columns.
func BuildMatrix(size Size) *dlx.Solver {
	n := size.N()
	s := dlx.New()
	for i := 0; i < n*n; i++ {
		s.AddRows(n)
	}

	for row := 0; row < n; row++ {
		for d := 0; d < n; d++ {
			ids := make([]int, n)
			for col := 0; col < n; col++ {
				ids[col] = rowID(n, row, col, d)
			}
			s.AddColumn(ids)
		}
	}
	for col := 0; col < n; col++ {
		for d := 0; d < n; d++ {
			ids := make([]int, n)
			for row := 0; row < n; row++ {
				ids[row] = rowID(n, row, col, d)
			}
			s.AddColumn(ids)
		}
	}
	for box := 0; box < n; box++ {
		baseRow := (box / size.R) * size.R
		baseCol := (box % size.R) * size.C
		for d := 0; d < n; d++ {
			ids := make([]int, 0, n)
			for r := 0; r < size.R; r++ {
				for c := 0; c < size.C; c++ {
					ids = append(ids, rowID(n, baseRow+r, baseCol+c, d))
				}
			}
			s.AddColumn(ids)
		}
	}

	return s
}

// SelectGivens pre-commits every filled cell in b as a SelectRow call.
func SelectGivens(s *dlx.Solver, b *Board) {
	n := b.Size.N()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if d := b.Cells[row][col]; d >= 0 {
				s.SelectRow(rowID(n, row, col, d))
			}
		}
	}
}

// DecodeSolution expands a dlx solution (a set of chosen (cell,digit) row
// ids) into a board of the given size and alphabet.
func DecodeSolution(size Size, alphabet string, solution []int) *Board {
	n := size.N()
	b := NewBoard(size, alphabet)
	for _, id := range solution {
		digit := id % n
		cell := id / n
		row, col := cell/n, cell%n
		b.Cells[row][col] = digit
	}
	return b
}

// Box returns the index of the box containing (row, col).
func (b *Board) Box(row, col int) int {
	return (row/b.Size.R)*b.Size.R + col/b.Size.C
}
