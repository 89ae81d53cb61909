// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/numkit/convergence"
	"github.com/katalvlaran/numkit/ode"
	"github.com/katalvlaran/numkit/quadrature"
)

func runODE(args []string) error {
	fs := newFlagSet("ode")
	x1 := fs.Float64("x1", 3, "end of the integration interval (start is 0)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// y' = -2x - y, y(0) = -1 has y = -3e^{-x} - 2x + 2.
	f := func(x, y float64) float64 { return -2*x - y }
	exact := func(x float64) float64 { return -3*math.Exp(-x) - 2*x + 2 }
	steps := []int{10, 100, 1000, 10000}

	t := newTable(os.Stdout, "method", "steps", "y(x1)", "relative RMSE")
	slopes := make(map[ode.Method]float64)
	for _, m := range []ode.Method{ode.Euler, ode.RK2, ode.RK4} {
		hs := make([]float64, 0, len(steps))
		errs := make([]float64, 0, len(steps))
		for _, n := range steps {
			sol, err := ode.Integrate(f, 0, -1, *x1, n, m)
			if err != nil {
				return err
			}
			want := make([]float64, len(sol.X))
			for i, x := range sol.X {
				want[i] = exact(x)
			}
			rmse, err := convergence.RelativeRMSE(sol.Y, want)
			if err != nil {
				return err
			}
			t.row(m, n, fmt.Sprintf("%.10f", sol.Y[n]), fmt.Sprintf("%.3e", rmse))
			hs = append(hs, *x1/float64(n))
			errs = append(errs, rmse)
		}
		// RK4 hits round-off at the finest grid
		fit := len(steps)
		if m == ode.RK4 {
			fit--
		}
		slope, err := convergence.LogLogSlope(hs[:fit], errs[:fit])
		if err != nil {
			return err
		}
		slopes[m] = slope
	}
	if err := t.flush(); err != nil {
		return err
	}

	section("observed order (log-log slope of RMSE against h)")
	t = newTable(os.Stdout, "method", "expected", "observed")
	for _, m := range []ode.Method{ode.Euler, ode.RK2, ode.RK4} {
		t.row(m, m.Order(), fmt.Sprintf("%.3f", slopes[m]))
	}

	return t.flush()
}

func runQuad(args []string) error {
	fs := newFlagSet("quad")
	base := fs.Int("base", 10, "panel count of the first estimate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f := func(x float64) float64 {
		if x == 0 {
			return 1
		}
		return math.Log1p(x) / x
	}
	exact := math.Pi * math.Pi / 12
	panels := []int{100, 1000, 10000, 100000}
	rules := []quadrature.Rule{quadrature.Trapezoidal, quadrature.Simpson13, quadrature.Simpson38}

	t := newTable(os.Stdout, "rule", "panels", "estimate", "|I - pi²/12|", "|I_k - I_k-1|")
	hs := make([]float64, len(panels))
	for i, n := range panels {
		hs[i] = 1 / float64(n)
	}
	slopes := make([]float64, len(rules))
	for r, rule := range rules {
		diffs, err := quadrature.SuccessiveDifferences(f, 0, 1, rule, *base, panels)
		if err != nil {
			return err
		}
		for i, n := range panels {
			v, err := quadrature.NewtonCotes(f, 0, 1, n, rule)
			if err != nil {
				return err
			}
			t.row(rule, n, fmt.Sprintf("%.15f", v), fmt.Sprintf("%.3e", math.Abs(v-exact)), fmt.Sprintf("%.3e", diffs[i]))
		}
		// the fourth-order rules reach round-off after three resolutions
		fit := len(panels)
		if rule.Order() > 2 {
			fit = 3
		}
		if slopes[r], err = convergence.LogLogSlope(hs[:fit], diffs[:fit]); err != nil {
			return err
		}
	}
	if err := t.flush(); err != nil {
		return err
	}

	section("observed order (log-log slope of successive differences against H)")
	t = newTable(os.Stdout, "rule", "expected", "observed")
	for r, rule := range rules {
		t.row(rule, rule.Order(), fmt.Sprintf("%.3f", slopes[r]))
	}

	return t.flush()
}

func runHermite(args []string) error {
	fs := newFlagSet("hermite")
	dir := fs.String("tables", "", "read HermiteXWnn.dat tables from this directory instead of computing them")
	write := fs.String("write", "", "write the computed tables into this directory and exit")
	list := fs.String("points", "2,3,5,10,15,20,25,30,35,40,45,50", "comma-separated point counts")
	if err := fs.Parse(args); err != nil {
		return err
	}
	points, err := parseInts(*list)
	if err != nil {
		return err
	}

	if *write != "" {
		return writeHermiteTables(*write, points)
	}

	var provider quadrature.TableProvider = quadrature.GolubWelsch{}
	if *dir != "" {
		provider = quadrature.FileProvider{Dir: *dir}
	}

	ks := []float64{6.0, 6.2, 6.4, 6.6, 6.8}
	header := []any{"points"}
	for _, k := range ks {
		header = append(header, fmt.Sprintf("k=%.1f", k))
	}
	t := newTable(os.Stdout, header...)
	exact := []any{"exact"}
	for _, k := range ks {
		// ∫ e^{-x²} sin²(kx) dx = √π/2 · (1 − e^{−k²})
		exact = append(exact, fmt.Sprintf("%.12f", math.Sqrt(math.Pi)/2*(1-math.Exp(-k*k))))
	}
	for _, n := range points {
		cells := []any{n}
		for _, k := range ks {
			f := func(x float64) float64 {
				s := math.Sin(k * x)
				return s * s
			}
			v, err := quadrature.GaussHermite(f, n, provider)
			if err != nil {
				return err
			}
			cells = append(cells, fmt.Sprintf("%.12f", v))
		}
		t.row(cells...)
	}
	t.row(exact...)

	return t.flush()
}

func writeHermiteTables(dir string, points []int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, n := range points {
		tab, err := quadrature.GolubWelsch{}.HermiteTable(n)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, quadrature.TableFileName(n))
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := quadrature.WriteTable(f, tab); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Println(path)
	}

	return nil
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		var n int
		if _, err := fmt.Sscan(strings.TrimSpace(field), &n); err != nil {
			return nil, fmt.Errorf("bad point count %q: %w", field, err)
		}
		out = append(out, n)
	}

	return out, nil
}
