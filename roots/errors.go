// SPDX-License-Identifier: MIT
// Package roots: sentinel errors and the typed non-convergence error.
// Every finder wraps a sentinel with its operation tag so callers can use
// errors.Is / errors.As without parsing messages.

package roots

import (
	"errors"
	"fmt"
)

var (
	// ErrNilFunc is returned when a required callable is nil.
	ErrNilFunc = errors.New("roots: nil function")

	// ErrNoBracket is returned when f(x1)·f(x2) > 0 or an endpoint is not finite.
	ErrNoBracket = errors.New("roots: no sign change in bracket")

	// ErrSingularJacobian is returned when |det J| falls to the singular tolerance.
	ErrSingularJacobian = errors.New("roots: singular jacobian")

	// ErrDiverged is returned when an iterate or a function value stops being finite.
	ErrDiverged = errors.New("roots: iteration diverged")

	// ErrNotConverged is matched by every *NotConvergedError.
	ErrNotConverged = errors.New("roots: iteration ceiling reached")
)

// Operation tags.
const (
	opBisect        = "Bisect"
	opNewton2D      = "Newton2D"
	opNewtonComplex = "NewtonComplex"
)

func rootsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NotConvergedError reports that a finder hit its ceiling while the residual
// was still above the tolerance. Point holds the last iterate (one coordinate
// for Bisect, two for Newton2D).
type NotConvergedError struct {
	Method     string
	Iterations int
	Residual   float64
	Point      []float64
}

// Error implements error.
func (e *NotConvergedError) Error() string {
	return fmt.Sprintf("%s: %d iterations, residual %g at %v: %v",
		e.Method, e.Iterations, e.Residual, e.Point, ErrNotConverged)
}

// Unwrap lets errors.Is(err, ErrNotConverged) succeed.
func (e *NotConvergedError) Unwrap() error { return ErrNotConverged }
