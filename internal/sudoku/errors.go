package sudoku

import (
	"fmt"
	"os"
	"strings"
)

func fatalError(msgs ...string) {
	msg := strings.Join(msgs, ": ")
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	os.Exit(1)
}

func inputError(msg string) {
	fatalError("invalid input", msg)
}
