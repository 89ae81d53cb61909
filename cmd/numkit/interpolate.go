// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"

	"github.com/katalvlaran/numkit/convergence"
	"github.com/katalvlaran/numkit/interp"
	"gonum.org/v1/gonum/floats"
)

func runInterp1D(args []string) error {
	fs := newFlagSet("interp1d")
	lo := fs.Float64("min", -2, "left end of the interval")
	hi := fs.Float64("max", 2, "right end of the interval")
	res := fs.Int("res", 1000, "evaluation points")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fx := func(x float64) float64 { return math.Abs(math.Sin(x)) }
	xq := floats.Span(make([]float64, *res), *lo, *hi)
	want := make([]float64, len(xq))
	for i, x := range xq {
		want[i] = fx(x)
	}

	t := newTable(os.Stdout, "support", "RMSE lagrange", "RMSE spline")
	for _, n := range []int{3, 5, 7, 9} {
		xs := floats.Span(make([]float64, n), *lo, *hi)
		ys := make([]float64, n)
		for i, x := range xs {
			ys[i] = fx(x)
		}

		lag, err := interp.LagrangeEval(xq, xs, ys)
		if err != nil {
			return err
		}
		sp, err := interp.NewSpline(xs, ys)
		if err != nil {
			return err
		}
		spl := make([]float64, len(xq))
		for i, x := range xq {
			if spl[i], err = sp.At(x); err != nil {
				return err
			}
		}

		eL, err := convergence.RMSE(lag, want)
		if err != nil {
			return err
		}
		eS, err := convergence.RMSE(spl, want)
		if err != nil {
			return err
		}
		t.row(n, fmt.Sprintf("%.5f", eL), fmt.Sprintf("%.5f", eS))
	}

	return t.flush()
}

func runInterp2D(args []string) error {
	fs := newFlagSet("interp2d")
	nrand := fs.Int("nrand", 100, "random query positions per axis")
	seed := fs.Int64("seed", 1, "seed of the query positions")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *nrand < 2 {
		return fmt.Errorf("nrand=%d: need at least two positions", *nrand)
	}

	ff := func(x, y float64) float64 {
		c := math.Cos(math.Hypot(x, y))
		return c * c
	}
	lo, hi := -math.Pi/2, math.Pi/2

	rng := rand.New(rand.NewSource(*seed))
	queries := func() []float64 {
		q := make([]float64, *nrand)
		for i := range q {
			q[i] = lo + (hi-lo)*rng.Float64()
		}
		sort.Float64s(q)
		q[0], q[len(q)-1] = lo, hi
		return q
	}
	xq, yq := queries(), queries()
	want := make([]float64, 0, len(xq)*len(yq))
	for _, x := range xq {
		for _, y := range yq {
			want = append(want, ff(x, y))
		}
	}

	resolutions := []int{4, 8, 16, 32, 64, 128}
	methods := []interp.Method{interp.Nearest, interp.Bilinear}
	hs := make([]float64, len(resolutions))
	rmse := make([][]float64, len(methods))

	t := newTable(os.Stdout, "grid", "RMSE nearest", "RMSE bilinear")
	for r, n := range resolutions {
		axis := floats.Span(make([]float64, n), lo, hi)
		hs[r] = (hi - lo) / float64(n-1)
		g, err := interp.GridFunc(axis, axis, ff)
		if err != nil {
			return err
		}
		cells := []any{fmt.Sprintf("%dx%d", n, n)}
		for m, method := range methods {
			out, err := g.Interpolate(xq, yq, method)
			if err != nil {
				return err
			}
			got := make([]float64, 0, len(want))
			for _, row := range out {
				got = append(got, row...)
			}
			e, err := convergence.RMSE(got, want)
			if err != nil {
				return err
			}
			rmse[m] = append(rmse[m], e)
			cells = append(cells, fmt.Sprintf("%.3e", e))
		}
		t.row(cells...)
	}
	if err := t.flush(); err != nil {
		return err
	}

	section("log-log slope of RMSE against grid spacing")
	t = newTable(os.Stdout, "method", "slope")
	for m, method := range methods {
		slope, err := convergence.LogLogSlope(hs, rmse[m])
		if err != nil {
			return err
		}
		t.row(method, fmt.Sprintf("%.3f", slope))
	}

	return t.flush()
}
