// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/symmetry/triangle checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their own operation tag.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; they allocate only to materialize a non-*Dense input.
//  - Symmetry and triangle checks run O(n²) over one strict half only.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Structure).

package matrix

import (
	"fmt"
	"math"
)

// zeroTol is the lower bound for tolerances; negative values are folded to |tol|.
const zeroTol = 0.0

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // we reuse the existing sentinel for "nil argument"
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSystem – Composite: Square(a) → VecLen(b, a.Rows()).
// The standard precondition of every solver of A·x = b.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSystem(a Matrix, b []float64) error {
	if err := ValidateSquare(a); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: Combines ErrNilMatrix and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks A is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Complexity: O(n^2) where n = Rows(A). Space: O(1).
// Returns ErrNilMatrix/ErrNonSquare on structural issues, ErrNaNInf on bad tol,
// ErrAsymmetry on violation, and the At error of a non-*Dense m.
// AI-Hints: Run before Eigen; Jacobi rotations assume exact symmetry.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf) // invalid tolerance is a numeric policy violation
	}
	if tol < zeroTol {
		tol = -tol
	}

	d, err := denseOf(m)
	if err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}

	n := d.r
	var i, j int
	for i = 0; i < n; i++ { // fixed row loop
		for j = i + 1; j < n; j++ { // scan only upper triangle
			if math.Abs(d.data[i*n+j]-d.data[j*n+i]) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateTriangular checks that m is square and that every entry on the
// declared-empty side of the diagonal satisfies |a[i,j]| ≤ eps.
//
// Implementation:
//   - Stage 1: ValidateSquare; reject unknown Triangle values.
//   - Stage 2: scan the strict upper half for Lower, the strict lower half for Upper.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrUnknownTriangle, ErrNotTriangular,
// or the At error of a non-*Dense m.
// Complexity: O(n^2) time, O(1) space.
// AI-Hints: Diagonal zeros are NOT checked here; substitution reports them as ErrSingular.
func ValidateTriangular(m Matrix, tri Triangle, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateTriangular", err)
	}
	if tri != Lower && tri != Upper {
		return validatorErrorf("ValidateTriangular", ErrUnknownTriangle)
	}

	d, err := denseOf(m)
	if err != nil {
		return validatorErrorf("ValidateTriangular", err)
	}

	n := d.r
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if (tri == Lower && j <= i) || (tri == Upper && j >= i) {
				continue // allowed side, including the diagonal
			}
			v = d.data[i*n+j]
			if math.Abs(v) > eps {
				return validatorErrorf("ValidateTriangular",
					fmt.Errorf("%s entry (%d,%d)=%g: %w", tri, i, j, v, ErrNotTriangular))
			}
		}
	}

	return nil
}
