package dlx

import (
	"errors"
	"fmt"
)

// Sentinel errors describing programmer contract violations. The solver
// cannot fail at runtime once construction is correct — these only ever
// surface through a panic raised during matrix construction or row
// selection, never from the search itself.
var (
	ErrRowOutOfRange    = errors.New("dlx: row id out of range")
	ErrUnknownGroup     = errors.New("dlx: unknown conditional group")
	ErrEmptyRowSet      = errors.New("dlx: column/constraint row set must be non-empty")
	ErrAlreadySolving   = errors.New("dlx: matrix mutated after solving began")
	ErrRowAlreadyChosen = errors.New("dlx: row already selected or deselected")
)

func contractf(base error, format string, args ...any) {
	panic(fmt.Errorf("%w: %s", base, fmt.Sprintf(format, args...)))
}
