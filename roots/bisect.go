// SPDX-License-Identifier: MIT

package roots

import "math"

// Func is a real function of one variable.
type Func func(x float64) float64

// Result is the outcome of Bisect.
//
// Root is the last midpoint, Value is f(Root) and Iterations counts the
// halvings performed. Trace lists every midpoint in order when WithTrace
// was given.
type Result struct {
	Root       float64
	Value      float64
	Iterations int
	Trace      []float64
}

// Bisect finds a root of f inside [x1, x2].
//
// Implementation:
//   - Stage 1: require f(x1)·f(x2) ≤ 0 with both values finite.
//   - Stage 2: take x = (x1+x2)/2; if f(x)·f(x1) > 0 the root lies right of
//     x and x1 moves, otherwise x2 moves.
//   - Stage 3: stop once |f(x)| ≤ tol.
//
// On the ceiling Bisect returns the populated Result together with a
// *NotConvergedError, so a trace recorded for error analysis is never lost.
//
// Errors: ErrNilFunc, ErrNoBracket, ErrDiverged (f is not finite at a
// midpoint, typically a pole inside the bracket), *NotConvergedError.
//
// Complexity: one evaluation of f per iteration; the bracket halves each time.
func Bisect(f Func, x1, x2 float64, opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, rootsErrorf(opBisect, ErrNilFunc)
	}
	o := gatherOptions(opts...)

	f1, f2 := f(x1), f(x2)
	if !finite(x1, x2, f1, f2) || f1*f2 > 0 {
		return Result{}, rootsErrorf(opBisect, ErrNoBracket)
	}

	var res Result
	if o.trace {
		res.Trace = make([]float64, 0, o.maxIter)
	}
	for i := 1; i <= o.maxIter; i++ {
		x := (x1 + x2) / 2
		fx := f(x)
		res.Root, res.Value, res.Iterations = x, fx, i
		if o.trace {
			res.Trace = append(res.Trace, x)
		}
		if !finite(fx) {
			return res, rootsErrorf(opBisect, ErrDiverged)
		}
		if fx*f1 > 0 {
			x1, f1 = x, fx
		} else {
			x2 = x
		}
		if math.Abs(fx) <= o.tol {
			return res, nil
		}
	}

	return res, &NotConvergedError{
		Method:     opBisect,
		Iterations: res.Iterations,
		Residual:   math.Abs(res.Value),
		Point:      []float64{res.Root},
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
