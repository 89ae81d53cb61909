// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/katalvlaran/numkit/roots"
)

var bisectFuncs = []struct {
	name string
	f    roots.Func
}{
	{"3x + sin x - e^x", func(x float64) float64 { return 3*x + math.Sin(x) - math.Exp(x) }},
	{"x³", func(x float64) float64 { return x * x * x }},
	{"sin(1/(x + 0.01))", func(x float64) float64 { return math.Sin(1 / (x + 0.01)) }},
	{"1/(x - 0.5)", func(x float64) float64 { return 1 / (x - 0.5) }},
}

func runRoots(args []string) error {
	fs := newFlagSet("roots")
	maxIter := fs.Int("maxiter", 25, "iteration ceiling of every finder")
	newtonTol := fs.Float64("newton-tol", 1e-3, "residual tolerance of Newton-Raphson")
	trace := fs.Bool("trace", false, "print the bisection error |x_k - x_last| per iteration")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *maxIter < 1 || *newtonTol < 0 {
		return fmt.Errorf("maxiter=%d newton-tol=%g: out of range", *maxIter, *newtonTol)
	}

	section(fmt.Sprintf("bisection on [0, 1], at most %d halvings", *maxIter))
	t := newTable(os.Stdout, "f", "tol", "root", "f(root)", "iterations", "status")
	for _, bf := range bisectFuncs {
		for _, tol := range []float64{1e-3, 1e-6, 1e-9} {
			res, err := roots.Bisect(bf.f, 0, 1, roots.WithTolerance(tol), roots.WithMaxIterations(*maxIter))
			t.row(bf.name, tol, fmt.Sprintf("%.12f", res.Root), fmt.Sprintf("%.3e", res.Value), res.Iterations, status(err))
		}
	}
	if err := t.flush(); err != nil {
		return err
	}

	if *trace {
		if err := bisectTrace(*maxIter); err != nil {
			return err
		}
	}

	section(fmt.Sprintf("Newton-Raphson on z³ - 1 = 0 (tol %g)", *newtonTol))
	g := func(z complex128) complex128 { return z*z*z - 1 }
	dg := func(z complex128) complex128 { return 3 * z * z }
	opts := []roots.Option{roots.WithTolerance(*newtonTol), roots.WithMaxIterations(*maxIter)}
	t = newTable(os.Stdout, "start", "jacobian", "root", "iterations", "status")
	for _, z0 := range []complex128{complex(1.5, 0.5), complex(-1, 1), complex(-1, -1), 0} {
		for _, numeric := range []bool{false, true} {
			d, kind := dg, "analytic"
			if numeric {
				d, kind = nil, "central differences"
			}
			res, err := roots.NewtonComplex(g, d, z0, opts...)
			t.row(fmt.Sprintf("%g", z0), kind, fmt.Sprintf("%.9f", res.Complex()), res.Iterations, status(err))
		}
	}

	return t.flush()
}

// bisectTrace records 25 midpoints per function with a zero tolerance and
// prints how far each lies from the last one.
func bisectTrace(maxIter int) error {
	section("bisection error against the last midpoint")
	header := []any{"k"}
	var traces [][]float64
	for _, bf := range bisectFuncs[:3] {
		res, err := roots.Bisect(bf.f, 0, 1, roots.WithTolerance(0), roots.WithMaxIterations(maxIter), roots.WithTrace())
		if err != nil && !errors.Is(err, roots.ErrNotConverged) {
			return err
		}
		header = append(header, bf.name)
		traces = append(traces, res.Trace)
	}

	t := newTable(os.Stdout, header...)
	for k := 0; k < maxIter; k++ {
		cells := []any{k + 1}
		for _, tr := range traces {
			if k >= len(tr) {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, fmt.Sprintf("%.3e", tr[k]-tr[len(tr)-1]))
		}
		t.row(cells...)
	}

	return t.flush()
}

func status(err error) string {
	var nc *roots.NotConvergedError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &nc):
		return fmt.Sprintf("not converged, residual %.2e", nc.Residual)
	case errors.Is(err, roots.ErrSingularJacobian):
		return "singular jacobian"
	case errors.Is(err, roots.ErrDiverged):
		return "diverged"
	default:
		return err.Error()
	}
}
