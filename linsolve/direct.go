// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"

	"github.com/katalvlaran/numkit/matrix"
)

// rowsOf validates the system and copies a into row slices the solver may mutate.
// Non-finite entries in a or b are rejected with matrix.ErrNaNInf.
func rowsOf(a matrix.Matrix, b []float64) ([][]float64, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, err
	}
	n := a.Rows()
	var rows [][]float64
	if d, ok := a.(*matrix.Dense); ok {
		rows = d.ToRows()
	} else {
		rows = make([][]float64, n)
		var err error
		for i := 0; i < n; i++ {
			rows[i] = make([]float64, n)
			for j := 0; j < n; j++ {
				if rows[i][j], err = a.At(i, j); err != nil {
					return nil, err
				}
			}
		}
	}
	if !matrix.IsFinite(a) || !finite(b) {
		return nil, fmt.Errorf("system: %w", matrix.ErrNaNInf)
	}

	return rows, nil
}

// GaussJordan solves A·x = b by reducing A to the identity in one pass,
// applying every row operation to a copy of b.
//
// Implementation:
//   - Stage 1: for each i, divide row i and x[i] by the pivot A[i,i].
//   - Stage 2: eliminate column i from every other row j ≠ i.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch,
//     matrix.ErrNaNInf.
//   - ErrZeroPivot when A[i,i] is zero at step i (no pivoting is attempted).
//
// Complexity: Time O(n^3), Space O(n^2). Neither a nor b is modified.
func GaussJordan(a matrix.Matrix, b []float64) ([]float64, error) {
	rows, err := rowsOf(a, b)
	if err != nil {
		return nil, linsolveErrorf(opGaussJordan, err)
	}
	n := len(rows)
	x := make([]float64, n)
	copy(x, b)

	var i, j, k int
	var pivot, f float64
	for i = 0; i < n; i++ {
		pivot = rows[i][i]
		if pivot == 0 {
			return nil, linsolveErrorf(opGaussJordan, fmt.Errorf("step %d: %w", i, ErrZeroPivot))
		}
		x[i] /= pivot
		for k = i; k < n; k++ { // entries left of i are already zero
			rows[i][k] /= pivot
		}
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			f = rows[j][i]
			if f == 0 {
				continue
			}
			x[j] -= x[i] * f
			for k = i; k < n; k++ {
				rows[j][k] -= rows[i][k] * f
			}
		}
	}

	return x, nil
}
