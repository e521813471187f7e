package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/halden/dlxsolver/internal/calendar"
)

func main() {
	all := flag.Bool("all", false, "print every solution instead of just the first")
	count := flag.Bool("count", false, "also print the total number of solutions")
	noGravity := flag.Bool("no-gravity", false, "disable the gravity support filter")
	flag.Parse()

	date := time.Now()
	if flag.NArg() > 0 {
		parsed, err := calendar.ParseDate(flag.Arg(0))
		if err != nil {
			fatalError("invalid date", err.Error())
		}
		date = parsed
	}

	holes := calendar.HolesFor(date)
	m := calendar.BuildMatrix(holes, !*noGravity)

	exhaust := *all || *count
	found := 0
	for sol := range m.Solver.Solve() {
		found++
		if found == 1 || *all {
			grid := m.Decode(sol)
			color.HiWhite("\nSolution %d:", found)
			calendar.Print(grid)
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

func fatalError(msgs ...string) {
	msg := msgs[0]
	for _, m := range msgs[1:] {
		msg = msg + ": " + m
	}
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	os.Exit(1)
}
