// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense kernels and the solvers.
// This file intentionally contains ONLY domain-facing types (the Matrix
// interface and the Triangle tag). Errors and options live in dedicated
// files (errors.go, options.go) per the package conventions.
package matrix

import "strconv"

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Triangle tags which half of a square matrix carries the non-zero entries.
// Callers state it explicitly; kernels never infer it from the data.
type Triangle int

const (
	// Lower marks a lower-triangular matrix: a[i,j] == 0 for j > i.
	Lower Triangle = iota

	// Upper marks an upper-triangular matrix: a[i,j] == 0 for j < i.
	Upper
)

// String returns "lower" or "upper" (or "triangle(n)" for unknown values).
func (t Triangle) String() string {
	switch t {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return "triangle(" + strconv.Itoa(int(t)) + ")"
	}
}
