// SPDX-License-Identifier: MIT

package ode

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSteps is returned for a step count below one.
	ErrInvalidSteps = errors.New("ode: number of steps must be >= 1")

	// ErrUnknownMethod is returned for a Method outside Euler, RK2, RK4.
	ErrUnknownMethod = errors.New("ode: unknown method")

	// ErrNilFunc is returned when no right-hand side is given.
	ErrNilFunc = errors.New("ode: nil right-hand side")

	// ErrEmptyState is returned by IntegrateSystem for a zero-length initial state.
	ErrEmptyState = errors.New("ode: empty initial state")
)

func odeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Solution holds the n+1 grid points of a scalar integration.
type Solution struct {
	X []float64
	Y []float64
}

// grid returns x0 + i·h for i = 0..n with the last point pinned to x1.
func grid(x0, x1 float64, n int) ([]float64, float64) {
	h := (x1 - x0) / float64(n)
	xs := make([]float64, n+1)
	for i := 0; i < n; i++ {
		xs[i] = x0 + float64(i)*h
	}
	xs[n] = x1

	return xs, h
}

// Integrate advances y' = f(x, y), y(x0) = y0 to x1 in n equal steps.
// Y[0] is y0 and Y[i+1] = step(f, X[i], Y[i], h) with h = (x1 − x0)/n.
//
// Errors: ErrNilFunc, ErrInvalidSteps, ErrUnknownMethod.
func Integrate(f Func, x0, y0, x1 float64, n int, method Method) (Solution, error) {
	if f == nil {
		return Solution{}, odeErrorf("Integrate", ErrNilFunc)
	}
	if n < 1 {
		return Solution{}, odeErrorf("Integrate", fmt.Errorf("n=%d: %w", n, ErrInvalidSteps))
	}
	step, err := method.Stepper()
	if err != nil {
		return Solution{}, odeErrorf("Integrate", err)
	}

	xs, h := grid(x0, x1, n)
	ys := make([]float64, n+1)
	ys[0] = y0
	for i := 0; i < n; i++ {
		ys[i+1] = step(f, xs[i], ys[i], h)
	}

	return Solution{X: xs, Y: ys}, nil
}

// SystemFunc writes dy = f(x, y) for a first-order system; it must not retain y or dy.
type SystemFunc func(x float64, y, dy []float64)

// SystemSolution holds the grid and one state vector per grid point.
type SystemSolution struct {
	X []float64
	Y [][]float64
}

// IntegrateSystem is Integrate for y' = f(x, y) with y ∈ ℝᵈ, running the
// explicit tableau of method. y0 is copied.
//
// Errors: ErrNilFunc, ErrInvalidSteps, ErrUnknownMethod, ErrEmptyState.
func IntegrateSystem(f SystemFunc, x0 float64, y0 []float64, x1 float64, n int, method Method) (SystemSolution, error) {
	const tag = "IntegrateSystem"
	if f == nil {
		return SystemSolution{}, odeErrorf(tag, ErrNilFunc)
	}
	if n < 1 {
		return SystemSolution{}, odeErrorf(tag, fmt.Errorf("n=%d: %w", n, ErrInvalidSteps))
	}
	if !method.valid() {
		return SystemSolution{}, odeErrorf(tag, ErrUnknownMethod)
	}
	if len(y0) == 0 {
		return SystemSolution{}, odeErrorf(tag, ErrEmptyState)
	}

	tab := methods[method]
	d, stages := len(y0), len(tab.b)
	ks := make([][]float64, stages)
	for s := range ks {
		ks[s] = make([]float64, d)
	}
	ytmp := make([]float64, d)

	xs, h := grid(x0, x1, n)
	ys := make([][]float64, n+1)
	ys[0] = append([]float64(nil), y0...)

	var s, j, id int
	for i := 0; i < n; i++ {
		y := ys[i]
		for s = 0; s < stages; s++ {
			copy(ytmp, y)
			for j = 0; j < s; j++ {
				if tab.a[s][j] == 0 {
					continue
				}
				for id = 0; id < d; id++ {
					ytmp[id] += h * tab.a[s][j] * ks[j][id]
				}
			}
			f(xs[i]+tab.c[s]*h, ytmp, ks[s])
		}
		next := append([]float64(nil), y...)
		for s = 0; s < stages; s++ {
			for id = 0; id < d; id++ {
				next[id] += h * tab.b[s] * ks[s][id]
			}
		}
		ys[i+1] = next
	}

	return SystemSolution{X: xs, Y: ys}, nil
}
