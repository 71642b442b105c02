package geom

import (
	"errors"
	"math"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrDomain         = errors.New("domain error")
	ErrDegenerate     = errors.New("degenerate transform")
)

// Error records the operation that failed. Algebra failures are programming
// or data errors, so operations panic with *Error instead of returning it;
// callers at a boundary may recover and inspect it with errors.Is.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return "geom: " + e.Op + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

func fail(op string, err error) { panic(&Error{op, err}) }

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
