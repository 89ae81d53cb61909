// SPDX-License-Identifier: MIT

package linsolve

import "math"

const (
	// DefaultTolerance bounds ‖x_{k+1} − x_k‖₂ at which Jacobi/GaussSeidel stop.
	DefaultTolerance = 1e-8

	// DefaultMaxIterations is the mandatory sweep ceiling of the iterative solvers.
	DefaultMaxIterations = 10_000
)

const (
	panicToleranceInvalid = "linsolve: WithTolerance: tol must be finite and > 0"
	panicMaxIterInvalid   = "linsolve: WithMaxIterations: n must be >= 1"
)

// Option configures the iterative solvers.
type Option func(*Options)

// Options is the resolved configuration of one solver call.
type Options struct {
	tol     float64
	maxIter int
}

// WithTolerance sets the stopping threshold on the iterate step norm.
// Panics when tol is not a finite positive number.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations sets the sweep ceiling. Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

func gatherOptions(user ...Option) Options {
	o := Options{tol: DefaultTolerance, maxIter: DefaultMaxIterations}
	for _, set := range user {
		set(&o)
	}

	return o
}
