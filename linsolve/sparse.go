// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"

	"github.com/edp1096/sparse"
	"github.com/katalvlaran/numkit/matrix"
)

// sparseConfig mirrors the real-valued setup of a circuit matrix; the backend
// indexes rows, columns and vectors from 1.
func sparseConfig() *sparse.Configuration {
	return &sparse.Configuration{
		Real:           true,
		Complex:        false,
		Expandable:     true,
		ModifiedNodal:  true,
		TiesMultiplier: 5,
		PrinterWidth:   140,
		Annotate:       0,
	}
}

// SolveSparse solves A·x = b with Markowitz-pivoted sparse LU. Unlike the
// other direct solvers it handles zero diagonals, e.g. [[0,1],[1,0]].
// Only nonzero entries of A are loaded.
//
// Errors: matrix shape sentinels; ErrSparseFactor when the backend cannot factor A.
func SolveSparse(a matrix.Matrix, b []float64) ([]float64, error) {
	rows, err := rowsOf(a, b)
	if err != nil {
		return nil, linsolveErrorf(opSparse, err)
	}
	n := len(rows)

	m, err := sparse.Create(int64(n), sparseConfig())
	if err != nil {
		return nil, linsolveErrorf(opSparse, err)
	}
	defer m.Destroy()

	for i := range rows {
		for j, v := range rows[i] {
			if v != 0 {
				m.GetElement(int64(i+1), int64(j+1)).Real += v
			}
		}
	}
	if err = m.Factor(); err != nil {
		return nil, linsolveErrorf(opSparse, fmt.Errorf("%w: %v", ErrSparseFactor, err))
	}

	rhs := make([]float64, n+1)
	copy(rhs[1:], b)
	sol, err := m.Solve(rhs)
	if err != nil {
		return nil, linsolveErrorf(opSparse, fmt.Errorf("%w: %v", ErrSparseFactor, err))
	}
	if len(sol) < n+1 {
		return nil, linsolveErrorf(opSparse, fmt.Errorf("solution length %d: %w", len(sol), matrix.ErrDimensionMismatch))
	}
	x := make([]float64, n)
	copy(x, sol[1:n+1])

	return x, nil
}
