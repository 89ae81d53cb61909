// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/numkit/linsolve"
	"github.com/katalvlaran/numkit/matrix"
	"gonum.org/v1/gonum/mat"
)

type linearCase struct {
	name string
	a    [][]float64
	b    []float64
}

var (
	nearSingular = [][]float64{{1.01, 0.99}, {0.99, 1.01}}

	directCases = []linearCase{
		{"1", [][]float64{{4, -2, 1}, {-3, -1, 4}, {1, -1, 3}}, []float64{15, 8, 13}},
		{"2", [][]float64{{2, 2, 3, 2}, {0, 2, 0, 1}, {4, -3, 0, 1}, {6, 1, -6, -5}}, []float64{-2, 0, -7, 6}},
		{"3", nearSingular, []float64{2, 2}},
		{"3alt", nearSingular, []float64{1.98, 2.02}},
	}

	iterativeCases = []linearCase{
		{"1", nearSingular, []float64{2, 2}},
		{"2", [][]float64{{1.5, 0.5}, {0.5, 1.5}}, []float64{2, 2}},
		{"3", [][]float64{{1, 2}, {2, 1}}, []float64{3, 4}},
	}
)

type directSolver struct {
	name  string
	solve func(a matrix.Matrix, b []float64) ([]float64, error)
}

var directSolvers = []directSolver{
	{"gauss-jordan", linsolve.GaussJordan},
	{"lu", linsolve.SolveLU},
	{"sparse", linsolve.SolveSparse},
	{"inverse", inverseSolve},
	{"gonum", gonumSolve},
}

// inverseSolve forms A⁻¹ explicitly and returns A⁻¹·b.
func inverseSolve(a matrix.Matrix, b []float64) ([]float64, error) {
	inv, err := matrix.Inverse(a)
	if err != nil {
		return nil, err
	}

	return matrix.MatVec(inv, b)
}

// gonumSolve is the pivoted reference the other solvers are read against.
func gonumSolve(a matrix.Matrix, b []float64) ([]float64, error) {
	g, err := matrix.ToGonum(a)
	if err != nil {
		return nil, err
	}
	var x mat.VecDense
	if err := x.SolveVec(g, mat.NewVecDense(len(b), b)); err != nil {
		return nil, err
	}

	return x.RawVector().Data, nil
}

func runLinsolve(args []string) error {
	fs := newFlagSet("linsolve")
	tol := fs.Float64("tol", 1e-4, "iterate step norm at which Jacobi and Gauss-Seidel stop")
	maxIter := fs.Int("maxiter", linsolve.DefaultMaxIterations, "sweep ceiling of the iterative solvers")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *tol <= 0 || *maxIter < 1 {
		return fmt.Errorf("tol=%g maxiter=%d: both must be positive", *tol, *maxIter)
	}

	section("direct solvers")
	t := newTable(os.Stdout, "case", "solver", "x", "‖Ax - b‖₂")
	for _, c := range directCases {
		a, err := matrix.NewDenseFrom(c.a)
		if err != nil {
			return err
		}
		for _, s := range directSolvers {
			x, err := s.solve(a, c.b)
			if err != nil {
				t.row(c.name, s.name, err, "")
				continue
			}
			r, err := linsolve.Residual(a, x, c.b)
			if err != nil {
				return err
			}
			t.row(c.name, s.name, vec(x), fmt.Sprintf("%.2e", r))
		}
	}
	if err := t.flush(); err != nil {
		return err
	}

	section(fmt.Sprintf("iterative solvers (tol %g)", *tol))
	opts := []linsolve.Option{linsolve.WithTolerance(*tol), linsolve.WithMaxIterations(*maxIter)}
	iterative := []struct {
		name  string
		solve func(matrix.Matrix, []float64, ...linsolve.Option) (linsolve.Result, error)
	}{
		{"jacobi", linsolve.Jacobi},
		{"gauss-seidel", linsolve.GaussSeidel},
	}
	t = newTable(os.Stdout, "case", "solver", "x", "iterations", "last step")
	for _, c := range iterativeCases {
		a, err := matrix.NewDenseFrom(c.a)
		if err != nil {
			return err
		}
		for _, s := range iterative {
			res, err := s.solve(a, c.b, opts...)
			var nc *linsolve.NotConvergedError
			switch {
			case errors.As(err, &nc):
				t.row(c.name, s.name, vec(nc.X), nc.Iterations, fmt.Sprintf("%.2e (not converged)", nc.Delta))
			case errors.Is(err, linsolve.ErrDiverged):
				t.row(c.name, s.name, vec(res.X), res.Iterations, fmt.Sprintf("%.2e (diverged)", res.Delta))
			case err != nil:
				t.row(c.name, s.name, err, "", "")
			default:
				t.row(c.name, s.name, vec(res.X), res.Iterations, fmt.Sprintf("%.2e", res.Delta))
			}
		}
	}
	if err := t.flush(); err != nil {
		return err
	}

	return triangularDemo()
}

func triangularDemo() error {
	l, err := matrix.NewDenseFrom([][]float64{{9, 0, 0}, {-4, 2, 0}, {1, 0, 5}})
	if err != nil {
		return err
	}
	tri, err := matrix.DetectTriangle(l)
	if err != nil {
		return err
	}
	inv, err := matrix.InverseTriangular(l, tri)
	if err != nil {
		return err
	}

	prod, err := matrix.Mul(l, inv)
	if err != nil {
		return err
	}
	id, err := matrix.NewIdentity(l.Rows())
	if err != nil {
		return err
	}
	ok, err := matrix.AllClose(prod, id, 0, 1e-12)
	if err != nil {
		return err
	}
	diff, err := matrix.Sub(prod, id)
	if err != nil {
		return err
	}
	worst, err := matrix.MaxAbs(diff)
	if err != nil {
		return err
	}

	section(fmt.Sprintf("%s triangular matrix and its inverse", tri))
	fmt.Println(l)
	fmt.Println(inv)
	fmt.Printf("L·L⁻¹ = I within 1e-12: %t (max |L·L⁻¹ - I| = %.1e)\n", ok, worst)

	t := newTable(os.Stdout, "b", "substitution", "inverse · b")
	for _, b := range [][]float64{{1, 2, 3}, {1, 1, 1}, {7, 2, 8}} {
		xs, err := matrix.SolveTriangular(l, tri, b)
		if err != nil {
			return err
		}
		xi, err := matrix.MatVec(inv, b)
		if err != nil {
			return err
		}
		t.row(vec(b), vec(xs), vec(xi))
	}

	return t.flush()
}

func vec(v []float64) string {
	return fmt.Sprintf("%.6g", v)
}
