package calendar

import (
	"github.com/halden/dlxsolver/internal/dlx"
	"github.com/halden/dlxsolver/internal/set"
)

const (
	BoardRows = 9
	BoardCols = 6
)

func inBounds(col, row int) bool {
	return col >= 0 && col < BoardCols && row >= 0 && row < BoardRows
}

// placement is one way to lay a piece down: its orientation's points,
// translated by (col, row), plus which piece it belongs to.
type placement struct {
	piece int
	cells []Cell
}

func (p placement) fits(holes *set.Set[Cell]) bool {
	for _, c := range p.cells {
		if !inBounds(c.Col, c.Row) || holes.Contains(c) {
			return false
		}
	}
	return true
}

// supported reports whether at least one cell of the placement has
// something to rest on directly below it: the board's bottom edge, or an
// on-board cell that is not a hole. Cells directly above another cell of
// the same placement are ignored. Gravity rejects a placement only when ALL
// of its cells would have nothing beneath them.
func (p placement) supported(holes *set.Set[Cell]) bool {
	occupied := set.NewSet(p.cells...)
	for _, c := range p.cells {
		below := Cell{Col: c.Col, Row: c.Row + 1}
		if occupied.Contains(below) {
			continue
		}
		if !inBounds(below.Col, below.Row) {
			return true
		}
		if !holes.Contains(below) {
			return true
		}
	}
	return false
}

func allPlacements(piece int, tile Tile, holes *set.Set[Cell], gravity bool) []placement {
	var out []placement
	for _, o := range orientations(tile) {
		maxX, maxY := 0, 0
		for _, p := range o.Points {
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
		for dy := 0; dy <= BoardRows-1-maxY; dy++ {
			for dx := 0; dx <= BoardCols-1-maxX; dx++ {
				cells := make([]Cell, len(o.Points))
				for i, p := range o.Points {
					cells[i] = Cell{Col: p.X + dx, Row: p.Y + dy}
				}
				pl := placement{piece: piece, cells: cells}
				if !pl.fits(holes) {
					continue
				}
				if gravity && !pl.supported(holes) {
					continue
				}
				out = append(out, pl)
			}
		}
	}
	return out
}

// Matrix is the exact-cover reduction of a calendar packing problem: the
// dlx solver plus enough bookkeeping to turn a solution's chosen rows back
// into a grid of piece indices.
type Matrix struct {
	Solver     *dlx.Solver
	rowToPlace map[int]placement
	Holes      Holes
}

// BuildMatrix constructs the packing matrix for the given holes. Each of
// the nine pieces gets add_rows(k) for its k valid placements; each board
// cell (other than a hole) gets a Unique column listing every placement
// row that covers it.
func BuildMatrix(holes Holes, gravity bool) *Matrix {
	holeSet := set.NewSet(holes.Month, holes.Day, holes.Weekday)

	s := dlx.New()
	rowToPlace := make(map[int]placement)
	cellRows := make(map[Cell][]int)

	for piece, tile := range basicTiles {
		placements := allPlacements(piece, tile, holeSet, gravity)
		if len(placements) == 0 {
			continue
		}
		first := s.AddRows(len(placements))
		for i, pl := range placements {
			rowID := first + i
			rowToPlace[rowID] = pl
			for _, c := range pl.cells {
				cellRows[c] = append(cellRows[c], rowID)
			}
		}
	}

	for row := 0; row < BoardRows; row++ {
		for col := 0; col < BoardCols; col++ {
			c := Cell{Col: col, Row: row}
			if holeSet.Contains(c) {
				continue
			}
			rows := cellRows[c]
			s.AddColumn(rows)
		}
	}

	return &Matrix{Solver: s, rowToPlace: rowToPlace, Holes: holes}
}

// Decode expands a dlx solution into a 9x6 grid of piece indices, with -1
// marking a hole.
func (m *Matrix) Decode(solution []int) [][]int {
	grid := make([][]int, BoardRows)
	for r := range grid {
		grid[r] = make([]int, BoardCols)
		for c := range grid[r] {
			grid[r][c] = -1
		}
	}
	for _, rowID := range solution {
		pl := m.rowToPlace[rowID]
		for _, c := range pl.cells {
			grid[c.Row][c.Col] = pl.piece
		}
	}
	return grid
}
