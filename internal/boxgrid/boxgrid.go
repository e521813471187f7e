// Package boxgrid renders a rectangular board as box-drawing lines, merging
// the border between two adjacent cells whenever the caller says they
// belong to the same visual region (a polyomino piece on the calendar
// board, a box on a Sudoku board). It generalizes the equality-driven ASCII
// border merge used by the original renderer (compare neighbouring cell
// values, print a dash/bar or a space) into the box-drawing glyph set
// ┌┬┐├┼┤└┴┘─│ plus space.
package boxgrid

import "strings"

const (
	// Horizontal is the box-drawing glyph for a plain horizontal segment.
	Horizontal = '─'
	// Vertical is the box-drawing glyph for a plain vertical segment.
	Vertical = '│'
)

// SameRegion reports whether the cells (r1,c1) and (r2,c2) — always exactly
// one row or one column apart — belong to the same visual region, so the
// border between them should be omitted. It is never called with
// out-of-board coordinates; those are treated as always a different region.
type SameRegion func(r1, c1, r2, c2 int) bool

// Grid describes a Rows x Cols board to render. CellText returns the
// already-padded display text for cell (r,c); every call must return a
// string of the same printable width.
type Grid struct {
	Rows, Cols int
	Same       SameRegion
	CellText   func(r, c int) string
}

func (g Grid) valid(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

// sameSafe extends Same across the board edge: two off-board cells count as
// the same (no segment reaches past the border), and an off-board cell
// paired with an on-board one always counts as different (the border
// itself is always drawn).
func (g Grid) sameSafe(r1, c1, r2, c2 int) bool {
	v1, v2 := g.valid(r1, c1), g.valid(r2, c2)
	if v1 != v2 {
		return false
	}
	if !v1 {
		return true
	}
	return g.Same(r1, c1, r2, c2)
}

// junction picks the box-drawing glyph joining the line segments present
// at one grid intersection.
func junction(up, down, left, right bool) rune {
	switch {
	case up && down && left && right:
		return '┼'
	case !up && down && left && right:
		return '┬'
	case up && !down && left && right:
		return '┴'
	case up && down && !left && right:
		return '├'
	case up && down && left && !right:
		return '┤'
	case !up && down && !left && right:
		return '┌'
	case !up && down && left && !right:
		return '┐'
	case up && !down && !left && right:
		return '└'
	case up && !down && left && !right:
		return '┘'
	case !up && !down && left && right:
		return Horizontal
	case up && down && !left && !right:
		return Vertical
	default:
		return ' '
	}
}

// horizontalLine renders the border at boundary row br (0..Rows inclusive),
// the line above row br's cells and below row br-1's cells.
func (g Grid) horizontalLine(br int) string {
	var b strings.Builder
	for cb := 0; cb <= g.Cols; cb++ {
		up := g.sameSafe(br-1, cb-1, br-1, cb)
		down := g.sameSafe(br, cb-1, br, cb)
		left := g.sameSafe(br-1, cb-1, br, cb-1)
		right := g.sameSafe(br-1, cb, br, cb)
		b.WriteRune(junction(!up, !down, !left, !right))
		if cb < g.Cols {
			if right {
				b.WriteRune(' ')
			} else {
				b.WriteRune(Horizontal)
			}
		}
	}
	return b.String()
}

// contentLine renders row r's cell text with vertical separators merged
// wherever two side-by-side cells share a region.
func (g Grid) contentLine(r int) string {
	var b strings.Builder
	for c := 0; c <= g.Cols; c++ {
		if g.sameSafe(r, c-1, r, c) {
			b.WriteRune(' ')
		} else {
			b.WriteRune(Vertical)
		}
		if c < g.Cols {
			b.WriteString(g.CellText(r, c))
		}
	}
	return b.String()
}

// Lines renders the full grid: one border line, then one content line per
// row, then a final border line, for a total of 2*Rows+1 lines.
func (g Grid) Lines() []string {
	lines := make([]string, 0, 2*g.Rows+1)
	for r := 0; r <= g.Rows; r++ {
		lines = append(lines, g.horizontalLine(r))
		if r < g.Rows {
			lines = append(lines, g.contentLine(r))
		}
	}
	return lines
}
