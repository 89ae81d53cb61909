// SPDX-License-Identifier: MIT

// Package matrix - triangular systems with an explicitly declared triangle.
//
// Purpose:
//   - Solve T·x = b by forward (Lower) or backward (Upper) substitution.
//   - Invert T column by column through unit-vector solves.
//   - Offer DetectTriangle as a separate opt-in helper; the kernels never guess.
//
// Contract:
//   - The declared-empty side must hold |a| ≤ eps (WithEpsilon, default 0),
//     otherwise ErrNotTriangular. A zero diagonal entry is ErrSingular.

package matrix

import (
	"fmt"
	"math"
)

const (
	opSolveTriangular   = "SolveTriangular"
	opInverseTriangular = "InverseTriangular"
	opDetectTriangle    = "DetectTriangle"
)

// SolveTriangular solves T·x = b where tri names the non-zero half of T.
// Implementation:
//   - Stage 1: ValidateTriangular(m, tri, eps) and len(b) == n.
//   - Stage 2: Lower runs i = 0..n-1, Upper runs i = n-1..0;
//     x[i] = (b[i] − Σ a[i,j]·x[j]) / a[i,i] over the already-solved j.
//
// Inputs:
//   - m: square triangular matrix.
//   - tri: Lower or Upper.
//   - b: right-hand side, len(b) == m.Rows(); not modified.
//
// Returns:
//   - []float64: fresh solution vector.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrUnknownTriangle, ErrNotTriangular,
//     ErrDimensionMismatch, ErrSingular (a[i,i] == 0).
//
// Complexity:
//   - Time O(n^2), Space O(n).
func SolveTriangular(m Matrix, tri Triangle, b []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	if err := ValidateTriangular(m, tri, o.eps); err != nil {
		return nil, matrixErrorf(opSolveTriangular, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opSolveTriangular, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opSolveTriangular, err)
	}

	n := d.r
	x := make([]float64, n)
	var i, j, base int
	var sum, diag float64
	if tri == Lower {
		for i = 0; i < n; i++ {
			base = i * n
			sum = ZeroSum
			for j = 0; j < i; j++ {
				sum += d.data[base+j] * x[j]
			}
			if diag = d.data[base+i]; diag == ZeroPivot {
				return nil, matrixErrorf(opSolveTriangular, fmt.Errorf("diagonal %d: %w", i, ErrSingular))
			}
			x[i] = (b[i] - sum) / diag
		}

		return x, nil
	}

	for i = n - 1; i >= 0; i-- {
		base = i * n
		sum = ZeroSum
		for j = i + 1; j < n; j++ {
			sum += d.data[base+j] * x[j]
		}
		if diag = d.data[base+i]; diag == ZeroPivot {
			return nil, matrixErrorf(opSolveTriangular, fmt.Errorf("diagonal %d: %w", i, ErrSingular))
		}
		x[i] = (b[i] - sum) / diag
	}

	return x, nil
}

// InverseTriangular returns T⁻¹ for a triangular T, solving T·x = e_k for
// every unit vector e_k and storing x as column k. The inverse keeps the triangle.
//
// Errors: as SolveTriangular.
// Complexity: Time O(n^3), Space O(n^2).
func InverseTriangular(m Matrix, tri Triangle, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)
	if err := ValidateTriangular(m, tri, o.eps); err != nil {
		return nil, matrixErrorf(opInverseTriangular, err)
	}

	n := m.Rows()
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverseTriangular, err)
	}
	e := make([]float64, n)
	var col []float64
	for k := 0; k < n; k++ {
		for i := range e {
			e[i] = 0
		}
		e[k] = 1
		if col, err = SolveTriangular(m, tri, e, opts...); err != nil {
			return nil, matrixErrorf(opInverseTriangular, err)
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+k] = col[i]
		}
	}

	return inv, nil
}

// DetectTriangle reports which triangle m has, checking Lower first.
// A diagonal matrix is reported as Lower.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotTriangular when both strict halves
// carry entries above eps.
//
// AI-Hints:
//   - Only for inputs of unknown provenance (e.g. a file); code that builds its own
//     factors already knows the triangle and should pass it to SolveTriangular.
func DetectTriangle(m Matrix, opts ...Option) (Triangle, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDetectTriangle, err)
	}
	if ValidateTriangular(m, Lower, o.eps) == nil {
		return Lower, nil
	}
	if ValidateTriangular(m, Upper, o.eps) == nil {
		return Upper, nil
	}

	return 0, matrixErrorf(opDetectTriangle, ErrNotTriangular)
}

// IsFinite reports whether every entry of m is neither NaN nor ±Inf.
// Complexity: O(r*c).
func IsFinite(m Matrix) bool {
	d, err := denseOf(m)
	if err != nil {
		return false
	}
	finite := true
	d.Do(func(_, _ int, v float64) bool {
		finite = !math.IsNaN(v) && !math.IsInf(v, 0)

		return finite
	})

	return finite
}
