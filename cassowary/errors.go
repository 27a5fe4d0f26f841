// Package cassowary: sentinel error set.
// All public operations return these sentinels and tests check them via
// errors.Is. Context is added by wrapping with fmt.Errorf("...: %w", ErrX) at
// the point of detection; callers still match with errors.Is.

package cassowary

import "errors"

var (
	// ErrUnsatisfiableConstraint is returned by AddConstraint when a required
	// constraint reduces to a dummy-only row with a non-zero constant. The add
	// is refused before any basis mutation, so the tableau is unchanged.
	ErrUnsatisfiableConstraint = errors.New("cassowary: required constraint cannot be satisfied")

	// ErrUnknownConstraint is returned by RemoveConstraint when the handle was
	// never issued by this solver or was already removed.
	ErrUnknownConstraint = errors.New("cassowary: constraint is not in the solver")

	// ErrInternal signals a violated algorithmic invariant: an unbounded
	// objective during optimization, or an artificial variable that could not
	// be driven out of the basis. Partially completed pivots are not rolled
	// back; treat the Solver as unusable after this error.
	ErrInternal = errors.New("cassowary: internal solver error")
)
