// SPDX-License-Identifier: MIT

package linsolve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numkit/matrix"
)

// LU holds a compact Doolittle factorization of a square matrix: the strict
// lower part of the packed matrix is L (unit diagonal implied), the rest is U.
type LU struct {
	packed *matrix.Dense
	l, u   matrix.Matrix
}

// Decompose factors a through matrix.LU and keeps both the separate factors
// and their packed L\U form
//
//	packed[i,j] = L[i,j] for j < i, U[i,j] for j ≥ i
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf, ErrZeroPivot.
// Complexity: Time O(n^3), Space O(n^2).
func Decompose(a matrix.Matrix) (*LU, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, linsolveErrorf(opDecompose, err)
	}
	l, u, err := matrix.LU(a)
	if errors.Is(err, matrix.ErrSingular) {
		return nil, linsolveErrorf(opDecompose, fmt.Errorf("%w: %v", ErrZeroPivot, err))
	}
	if err != nil {
		return nil, linsolveErrorf(opDecompose, err)
	}
	if !matrix.IsFinite(a) {
		return nil, linsolveErrorf(opDecompose, matrix.ErrNaNInf)
	}

	packed, err := packFactors(l, u)
	if err != nil {
		return nil, linsolveErrorf(opDecompose, err)
	}

	return &LU{packed: packed, l: l, u: u}, nil
}

// packFactors merges the strict lower part of l and the upper part of u.
func packFactors(l, u matrix.Matrix) (*matrix.Dense, error) {
	n := l.Rows()
	rows := make([][]float64, n)
	var err error
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			src := u
			if j < i {
				src = l
			}
			if rows[i][j], err = src.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return matrix.NewDenseFrom(rows)
}

// Packed returns a copy of the compact L\U matrix.
func (f *LU) Packed() matrix.Matrix { return f.packed.Clone() }

// Split returns copies of L (unit lower) and U (upper).
func (f *LU) Split() (l, u matrix.Matrix) { return f.l.Clone(), f.u.Clone() }

// Solve computes x from L·y = b (forward) and U·x = y (backward).
// Errors: matrix.ErrDimensionMismatch when len(b) differs from the order.
func (f *LU) Solve(b []float64) ([]float64, error) {
	y, err := matrix.SolveTriangular(f.l, matrix.Lower, b)
	if err != nil {
		return nil, linsolveErrorf(opSolve, err)
	}
	x, err := matrix.SolveTriangular(f.u, matrix.Upper, y)
	if err != nil {
		return nil, linsolveErrorf(opSolve, err)
	}

	return x, nil
}

// SolveLU is Decompose followed by Solve.
func SolveLU(a matrix.Matrix, b []float64) ([]float64, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, linsolveErrorf(opDecompose, err)
	}
	f, err := Decompose(a)
	if err != nil {
		return nil, err
	}

	return f.Solve(b)
}
