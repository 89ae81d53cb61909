// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numkit/matrix"
	"gonum.org/v1/gonum/floats"
)

// Result is the outcome of a converged iterative solve.
type Result struct {
	X          []float64 // final iterate
	Iterations int       // sweeps performed after the initial guess
	Delta      float64   // ‖x_k − x_{k−1}‖₂ of the last sweep
}

// sweep maps the previous iterate to the next one.
type sweep func(prev []float64) ([]float64, error)

// iterate runs next from x0 = b/diag(A) against the zero vector, until the
// step norm drops to tol or the ceiling is reached.
//
// A sweep producing NaN or ±Inf stops the run with ErrDiverged; the returned
// Result then holds the last finite iterate and the sweep count that led to it.
// The loop is written so that a NaN step can never read as convergence.
func iterate(method string, x0 []float64, next sweep, o Options) (Result, error) {
	if !finite(x0) {
		return Result{}, fmt.Errorf("initial guess: %w", ErrDiverged)
	}
	xnew := x0
	xold := make([]float64, len(x0))
	delta := floats.Distance(xnew, xold, 2)

	var err error
	k := 0
	for !(delta <= o.tol) {
		if k == o.maxIter {
			return Result{X: xnew, Iterations: k, Delta: delta},
				&NotConvergedError{Method: method, Iterations: k, Delta: delta, X: xnew}
		}
		xold = xnew
		if xnew, err = next(xold); err != nil {
			return Result{}, err
		}
		step := floats.Distance(xnew, xold, 2)
		if !finite(xnew) || math.IsNaN(step) || math.IsInf(step, 0) {
			return Result{X: xold, Iterations: k, Delta: delta},
				fmt.Errorf("sweep %d: %w", k+1, ErrDiverged)
		}
		delta = step
		k++
	}

	return Result{X: xnew, Iterations: k, Delta: delta}, nil
}

// finite reports whether no entry of x is NaN or ±Inf.
func finite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// diagonalGuess checks diag(A) for zeros and returns x0 with x0_i = b_i / a_ii.
func diagonalGuess(rows [][]float64, b []float64) ([]float64, error) {
	x0 := make([]float64, len(b))
	for i := range rows {
		if rows[i][i] == 0 {
			return nil, fmt.Errorf("diagonal %d: %w", i, ErrZeroPivot)
		}
		x0[i] = b[i] / rows[i][i]
	}

	return x0, nil
}

// Jacobi solves A·x = b with the splitting A = D + R:
// x_{k+1} = D⁻¹(b − R·x_k).
//
// Convergence is guaranteed for strictly diagonally dominant A; otherwise the
// ceiling bounds the work and a *NotConvergedError carries the last iterate.
//
// Errors: matrix shape sentinels, ErrNaNInf, ErrZeroPivot, *NotConvergedError,
// ErrDiverged. On the last two the Result still carries the last finite iterate.
// Complexity: O(n^2) per sweep.
func Jacobi(a matrix.Matrix, b []float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	rows, err := rowsOf(a, b)
	if err != nil {
		return Result{}, linsolveErrorf(opJacobi, err)
	}
	x0, err := diagonalGuess(rows, b)
	if err != nil {
		return Result{}, linsolveErrorf(opJacobi, err)
	}

	n := len(rows)
	dinv := make([]float64, n)
	for i := range rows {
		dinv[i] = 1 / rows[i][i]
		rows[i][i] = 0 // rows now holds R
	}
	r, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return Result{}, linsolveErrorf(opJacobi, err)
	}

	res, err := iterate(opJacobi, x0, func(prev []float64) ([]float64, error) {
		rx, err := matrix.MatVec(r, prev)
		if err != nil {
			return nil, err
		}
		floats.SubTo(rx, b, rx)
		floats.Mul(rx, dinv)

		return rx, nil
	}, o)
	if err != nil {
		return res, linsolveErrorf(opJacobi, err)
	}

	return res, nil
}

// GaussSeidel solves A·x = b with A = L + U, L lower including the diagonal and
// U strictly upper: x_{k+1} = L⁻¹(b − U·x_k). L⁻¹ is formed once through
// matrix.InverseTriangular.
//
// Errors: as Jacobi.
// Complexity: O(n^3) setup, O(n^2) per sweep.
func GaussSeidel(a matrix.Matrix, b []float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	rows, err := rowsOf(a, b)
	if err != nil {
		return Result{}, linsolveErrorf(opGaussSeidel, err)
	}
	x0, err := diagonalGuess(rows, b)
	if err != nil {
		return Result{}, linsolveErrorf(opGaussSeidel, err)
	}

	n := len(rows)
	lr := make([][]float64, n)
	for i := range rows {
		lr[i] = make([]float64, n)
		copy(lr[i][:i+1], rows[i][:i+1])
		for j := 0; j <= i; j++ {
			rows[i][j] = 0 // rows now holds U
		}
	}
	l, err := matrix.NewDenseFrom(lr)
	if err != nil {
		return Result{}, linsolveErrorf(opGaussSeidel, err)
	}
	u, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return Result{}, linsolveErrorf(opGaussSeidel, err)
	}
	linv, err := matrix.InverseTriangular(l, matrix.Lower)
	if err != nil {
		return Result{}, linsolveErrorf(opGaussSeidel, err)
	}

	res, err := iterate(opGaussSeidel, x0, func(prev []float64) ([]float64, error) {
		ux, err := matrix.MatVec(u, prev)
		if err != nil {
			return nil, err
		}
		floats.SubTo(ux, b, ux)

		return matrix.MatVec(linv, ux)
	}, o)
	if err != nil {
		return res, linsolveErrorf(opGaussSeidel, err)
	}

	return res, nil
}

// Residual returns ‖b − A·x‖₂.
func Residual(a matrix.Matrix, x, b []float64) (float64, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return 0, linsolveErrorf(opResidual, err)
	}
	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return 0, linsolveErrorf(opResidual, err)
	}

	return floats.Distance(ax, b, 2), nil
}
