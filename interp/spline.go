// SPDX-License-Identifier: MIT

package interp

import "sort"

// Spline is a natural cubic spline: C² through the support points with zero
// second derivative at both ends.
type Spline struct {
	xs, ys []float64
	m      []float64 // second derivatives at the support points
}

// NewSpline fits a natural cubic spline through (xs, ys); inputs are copied.
//
// The second derivatives solve the tridiagonal system
//
//	h_{i−1}·m_{i−1} + 2(h_{i−1}+h_i)·m_i + h_i·m_{i+1} = 6(d_i − d_{i−1}),
//
// d_i being the slope of interval i, with the Thomas algorithm.
//
// Errors: ErrTooFewPoints (< 3), ErrLengthMismatch, ErrNotIncreasing.
func NewSpline(xs, ys []float64) (*Spline, error) {
	if err := checkSupport(xs, ys, 3); err != nil {
		return nil, interpErrorf("NewSpline", err)
	}
	n := len(xs)
	s := &Spline{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
		m:  make([]float64, n),
	}

	h := make([]float64, n-1)
	d := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = xs[i+1] - xs[i]
		d[i] = (ys[i+1] - ys[i]) / h[i]
	}

	// Interior unknowns m_1..m_{n−2}; forward sweep then back substitution.
	k := n - 2
	diag := make([]float64, k)
	rhs := make([]float64, k)
	for i := 0; i < k; i++ {
		diag[i] = 2 * (h[i] + h[i+1])
		rhs[i] = 6 * (d[i+1] - d[i])
	}
	for i := 1; i < k; i++ {
		w := h[i] / diag[i-1]
		diag[i] -= w * h[i]
		rhs[i] -= w * rhs[i-1]
	}
	s.m[k] = rhs[k-1] / diag[k-1]
	for i := k - 2; i >= 0; i-- {
		s.m[i+1] = (rhs[i] - h[i+1]*s.m[i+2]) / diag[i]
	}

	return s, nil
}

// At evaluates the spline at x.
// Errors: ErrOutOfSpan for x outside [xs[0], xs[n−1]].
func (s *Spline) At(x float64) (float64, error) {
	n := len(s.xs)
	if !(x >= s.xs[0] && x <= s.xs[n-1]) {
		return 0, interpErrorf("Spline.At", ErrOutOfSpan)
	}
	i := bracket(s.xs, x)
	h := s.xs[i+1] - s.xs[i]
	a := (s.xs[i+1] - x) / h
	b := (x - s.xs[i]) / h

	return a*s.ys[i] + b*s.ys[i+1] +
		((a*a*a-a)*s.m[i]+(b*b*b-b)*s.m[i+1])*h*h/6, nil
}

// bracket returns the largest k with axis[k] < q, clamped to [0, len(axis)−2].
func bracket(axis []float64, q float64) int {
	k := sort.SearchFloat64s(axis, q) - 1
	if k < 0 {
		return 0
	}
	if k > len(axis)-2 {
		return len(axis) - 2
	}

	return k
}
