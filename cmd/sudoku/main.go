package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/halden/dlxsolver/internal/sudoku"
	"github.com/mattn/go-isatty"
)

func main() {
	sizeSpec := flag.String("size", "9", "board size: 4|9|16|25 or RxC box dimensions")
	alphabet := flag.String("alphabet", "", "glyph alphabet, defaults by size")
	all := flag.Bool("all", false, "print every solution instead of just the first")
	count := flag.Bool("count", false, "also print the total number of solutions")
	flag.Parse()

	size, err := sudoku.ParseSize(*sizeSpec)
	if err != nil {
		fatalError("invalid size", err.Error())
	}

	alpha := *alphabet
	if alpha == "" {
		alpha, err = sudoku.DefaultAlphabet(size.N())
		if err != nil {
			fatalError("invalid size", err.Error())
		}
	}

	if isStdinTTY() {
		fmt.Printf("Enter board as one line of %d characters (alphabet %q, anything else is blank):\n", size.N()*size.N(), alpha)
	}

	given, err := sudoku.ReadBoard(os.Stdin, size, alpha)
	if err != nil {
		var readErr *sudoku.ReadError
		if errors.As(err, &readErr) {
			fmt.Fprintf(os.Stderr, "error: %s\n", readErr)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "error: invalid board: %s\n", err)
		return
	}

	s := sudoku.BuildMatrix(size)
	sudoku.SelectGivens(s, given)

	exhaust := *all || *count
	found := 0
	for sol := range s.Solve() {
		found++
		if found == 1 || *all {
			board := sudoku.DecodeSolution(size, alpha, sol)
			color.HiWhite("\nSolution %d:", found)
			board.Print(given)
		}
		if !exhaust {
			break
		}
	}

	if found == 0 {
		fmt.Println("\nNo solution found!")
	}
	if *count {
		fmt.Printf("\n%d solution(s) found.\n", found)
	}
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func fatalError(msgs ...string) {
	msg := msgs[0]
	for _, m := range msgs[1:] {
		msg = msg + ": " + m
	}
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	os.Exit(1)
}
