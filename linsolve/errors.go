// SPDX-License-Identifier: MIT
// Package linsolve: sentinel error set and the typed non-convergence error.
// All solvers wrap these sentinels with an operation tag; callers match
// them through errors.Is / errors.As. Shape violations surface as the
// matrix package sentinels (ErrNonSquare, ErrDimensionMismatch, ErrNilMatrix).

package linsolve

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroPivot is returned when elimination or an iterative splitting meets
	// a zero diagonal entry. No solver in this package pivots (SolveSparse aside).
	ErrZeroPivot = errors.New("linsolve: zero pivot")

	// ErrNotConverged is matched by every *NotConvergedError.
	ErrNotConverged = errors.New("linsolve: iteration ceiling reached")

	// ErrDiverged is returned when an iterative sweep produces NaN or ±Inf.
	ErrDiverged = errors.New("linsolve: iteration diverged")

	// ErrSparseFactor wraps a factorization failure reported by the sparse backend.
	ErrSparseFactor = errors.New("linsolve: sparse factorization failed")
)

// Operation tags.
const (
	opGaussJordan = "GaussJordan"
	opDecompose   = "Decompose"
	opSolve       = "LU.Solve"
	opJacobi      = "Jacobi"
	opGaussSeidel = "GaussSeidel"
	opSparse      = "SolveSparse"
	opResidual    = "Residual"
)

// linsolveErrorf wraps err with an operation tag, preserving it via %w.
func linsolveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NotConvergedError reports that an iterative solver hit its ceiling while
// ‖x_{k+1} − x_k‖₂ was still above the tolerance. X holds the last iterate.
type NotConvergedError struct {
	Method     string
	Iterations int
	Delta      float64
	X          []float64
}

// Error implements error.
func (e *NotConvergedError) Error() string {
	return fmt.Sprintf("%s: %d iterations, last step %g: %v", e.Method, e.Iterations, e.Delta, ErrNotConverged)
}

// Unwrap lets errors.Is(err, ErrNotConverged) succeed.
func (e *NotConvergedError) Unwrap() error { return ErrNotConverged }
