// SPDX-License-Identifier: MIT

package roots

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// Func2 is a real function of two variables.
type Func2 func(x, y float64) float64

// System is the 2×2 nonlinear system g1(x,y) = 0, g2(x,y) = 0.
//
// G1 and G2 are required. The four partials are optional as a group: when
// any of them is nil the whole Jacobian is estimated with central finite
// differences.
type System struct {
	G1, G2             Func2
	G1x, G1y, G2x, G2y Func2
}

func (s System) analytic() bool {
	return s.G1x != nil && s.G1y != nil && s.G2x != nil && s.G2y != nil
}

// Result2D is the outcome of Newton2D. With WithTrace, Trace starts at the
// initial guess and gains one point per update.
type Result2D struct {
	X, Y       float64
	G1, G2     float64 // residuals at (X, Y)
	Iterations int     // Newton updates applied
	Trace      [][2]float64
}

// Complex returns the solution as X + iY, the natural reading for NewtonComplex.
func (r Result2D) Complex() complex128 { return complex(r.X, r.Y) }

// Newton2D solves sys from (x0, y0) with the closed-form 2×2 Newton update
//
//	det = g1x·g2y − g1y·g2x
//	dx  = −(g2y·g1 − g1y·g2) / det
//	dy  = −(g1x·g2 − g2x·g1) / det
//
// with every term evaluated at the current iterate before either coordinate
// moves. Iteration stops once |g1| ≤ tol and |g2| ≤ tol.
//
// Errors: ErrNilFunc, ErrSingularJacobian (|det| ≤ singular tolerance),
// ErrDiverged (a residual or iterate is not finite), *NotConvergedError.
// On every error past validation the returned Result2D holds the last iterate.
func Newton2D(sys System, x0, y0 float64, opts ...Option) (Result2D, error) {
	return newton2D(opNewton2D, sys, x0, y0, gatherOptions(opts...))
}

// NewtonComplex finds a zero of the holomorphic g starting at z0 by running
// Newton2D on u = Re g and v = Im g. When dg is given the Jacobian follows
// from the Cauchy-Riemann equations (u_x = v_y = Re g', v_x = −u_y = Im g');
// a nil dg falls back to finite differences.
func NewtonComplex(g, dg func(complex128) complex128, z0 complex128, opts ...Option) (Result2D, error) {
	if g == nil {
		return Result2D{}, rootsErrorf(opNewtonComplex, ErrNilFunc)
	}
	sys := System{
		G1: func(x, y float64) float64 { return real(g(complex(x, y))) },
		G2: func(x, y float64) float64 { return imag(g(complex(x, y))) },
	}
	if dg != nil {
		re := func(x, y float64) float64 { return real(dg(complex(x, y))) }
		im := func(x, y float64) float64 { return imag(dg(complex(x, y))) }
		sys.G1x, sys.G2y = re, re
		sys.G2x = im
		sys.G1y = func(x, y float64) float64 { return -im(x, y) }
	}

	return newton2D(opNewtonComplex, sys, real(z0), imag(z0), gatherOptions(opts...))
}

func newton2D(tag string, sys System, x, y float64, o Options) (Result2D, error) {
	if sys.G1 == nil || sys.G2 == nil {
		return Result2D{}, rootsErrorf(tag, ErrNilFunc)
	}
	jac := jacobianOf(sys)

	res := Result2D{X: x, Y: y}
	if o.trace {
		res.Trace = append(res.Trace, [2]float64{x, y})
	}
	for i := 0; ; i++ {
		g1, g2 := sys.G1(x, y), sys.G2(x, y)
		res.X, res.Y, res.G1, res.G2, res.Iterations = x, y, g1, g2, i
		if !finite(x, y, g1, g2) {
			return res, rootsErrorf(tag, ErrDiverged)
		}
		if math.Abs(g1) <= o.tol && math.Abs(g2) <= o.tol {
			return res, nil
		}
		if i == o.maxIter {
			break
		}

		g1x, g1y, g2x, g2y := jac(x, y)
		det := g1x*g2y - g1y*g2x
		if math.IsNaN(det) || math.Abs(det) <= o.singular {
			return res, rootsErrorf(tag, ErrSingularJacobian)
		}
		dx := -(g2y*g1 - g1y*g2) / det
		dy := -(g1x*g2 - g2x*g1) / det
		x, y = x+dx, y+dy
		if o.trace {
			res.Trace = append(res.Trace, [2]float64{x, y})
		}
	}

	return res, &NotConvergedError{
		Method:     tag,
		Iterations: res.Iterations,
		Residual:   math.Max(math.Abs(res.G1), math.Abs(res.G2)),
		Point:      []float64{res.X, res.Y},
	}
}

// jacobianOf returns the partials of sys at a point, in the order
// g1x, g1y, g2x, g2y.
func jacobianOf(sys System) func(x, y float64) (float64, float64, float64, float64) {
	if sys.analytic() {
		return func(x, y float64) (float64, float64, float64, float64) {
			return sys.G1x(x, y), sys.G1y(x, y), sys.G2x(x, y), sys.G2y(x, y)
		}
	}

	g := func(dst, p []float64) {
		dst[0] = sys.G1(p[0], p[1])
		dst[1] = sys.G2(p[0], p[1])
	}
	settings := &fd.JacobianSettings{Formula: fd.Central}
	j := mat.NewDense(2, 2, nil)
	p := make([]float64, 2)

	return func(x, y float64) (float64, float64, float64, float64) {
		p[0], p[1] = x, y
		fd.Jacobian(j, g, p, settings)

		return j.At(0, 0), j.At(0, 1), j.At(1, 0), j.At(1, 1)
	}
}
