// SPDX-License-Identifier: MIT

package roots

import "math"

const (
	// DefaultTolerance is the residual bound |f| (or max(|g1|,|g2|)) that stops a finder.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations caps bisection halvings and Newton updates alike.
	DefaultMaxIterations = 100

	// DefaultSingularTolerance is the |det J| at or below which Newton2D gives up.
	DefaultSingularTolerance = 1e-12
)

const (
	panicToleranceInvalid = "roots: WithTolerance: tol must be finite and >= 0"
	panicMaxIterInvalid   = "roots: WithMaxIterations: n must be >= 1"
	panicSingularInvalid  = "roots: WithSingularTolerance: eps must be finite and >= 0"
)

// Option configures a root finder.
type Option func(*Options)

// Options is the resolved configuration of one finder call.
type Options struct {
	tol      float64
	maxIter  int
	singular float64
	trace    bool
}

// WithTolerance sets the residual threshold. A zero tolerance runs to the
// ceiling unless an exact root is met. Panics on negative or non-finite tol.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations sets the iteration ceiling. Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithSingularTolerance sets the determinant floor used by Newton2D.
func WithSingularTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicSingularInvalid)
	}

	return func(o *Options) { o.singular = eps }
}

// WithTrace makes the finder record every iterate in Result.Trace / Result2D.Trace.
func WithTrace() Option {
	return func(o *Options) { o.trace = true }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		tol:      DefaultTolerance,
		maxIter:  DefaultMaxIterations,
		singular: DefaultSingularTolerance,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
