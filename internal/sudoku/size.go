package sudoku

import (
	"fmt"
	"strconv"
	"strings"
)

// Size describes the box dimensions of a generalized Sudoku: R rows by C
// columns per box, giving a board of N = R*C cells on a side.
type Size struct {
	R, C int
}

// N returns the board's side length.
func (s Size) N() int { return s.R * s.C }

// ParseSize accepts the shorthand sizes "4", "9", "16", "25" or an explicit
// "RxC" box specification (e.g. "2x3" for a 6x6 board with 2-row, 3-column
// boxes).
func ParseSize(spec string) (Size, error) {
	switch spec {
	case "4":
		return Size{2, 2}, nil
	case "9":
		return Size{3, 3}, nil
	case "16":
		return Size{4, 4}, nil
	case "25":
		return Size{5, 5}, nil
	}
	parts := strings.SplitN(strings.ToLower(spec), "x", 2)
	if len(parts) != 2 {
		return Size{}, fmt.Errorf("invalid size %q", spec)
	}
	r, errR := strconv.Atoi(parts[0])
	c, errC := strconv.Atoi(parts[1])
	if errR != nil || errC != nil || r <= 0 || c <= 0 {
		return Size{}, fmt.Errorf("invalid size %q", spec)
	}
	return Size{r, c}, nil
}

// DefaultAlphabet returns "123456789" truncated to n for boards whose side
// length n is 9 or less, and a truncated run of uppercase letters
// otherwise. n must not exceed 26.
func DefaultAlphabet(n int) (string, error) {
	if n <= 9 {
		return "123456789"[:n], nil
	}
	if n > 26 {
		return "", fmt.Errorf("no default alphabet for board size %d; pass --alphabet explicitly", n)
	}
	return "ABCDEFGHIJKLMNOPQRSTUVWXYZ"[:n], nil
}
