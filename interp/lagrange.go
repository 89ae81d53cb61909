// SPDX-License-Identifier: MIT

package interp

// LagrangeBasis returns L_i(x) = Π_{j≠i} (x − xs[j]) / (xs[i] − xs[j]).
// The caller guarantees distinct positions and 0 ≤ i < len(xs).
func LagrangeBasis(x float64, xs []float64, i int) float64 {
	l := 1.0
	for j, xj := range xs {
		if j != i {
			l *= (x - xj) / (xs[i] - xj)
		}
	}

	return l
}

// Lagrange evaluates at x the polynomial of degree len(xs)−1 through (xs, ys).
//
// Errors: ErrTooFewPoints (no points), ErrLengthMismatch, ErrNotIncreasing.
// Complexity: O(n²).
func Lagrange(x float64, xs, ys []float64) (float64, error) {
	if err := checkSupport(xs, ys, 1); err != nil {
		return 0, interpErrorf("Lagrange", err)
	}

	return lagrange(x, xs, ys), nil
}

func lagrange(x float64, xs, ys []float64) float64 {
	y := 0.0
	for i, yi := range ys {
		y += yi * LagrangeBasis(x, xs, i)
	}

	return y
}

// LagrangeEval evaluates the interpolating polynomial at every query point.
// Queries may lie outside the support span (extrapolation).
func LagrangeEval(xq, xs, ys []float64) ([]float64, error) {
	if err := checkSupport(xs, ys, 1); err != nil {
		return nil, interpErrorf("LagrangeEval", err)
	}
	out := make([]float64, len(xq))
	for k, x := range xq {
		out[k] = lagrange(x, xs, ys)
	}

	return out, nil
}
