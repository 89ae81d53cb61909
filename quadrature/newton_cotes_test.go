// SPDX-License-Identifier: MIT
package quadrature_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numkit/convergence"
	"github.com/katalvlaran/numkit/quadrature"
)

func TestNewtonCotes_ExactForLowDegree(t *testing.T) {
	t.Parallel()

	line := func(x float64) float64 { return 3*x + 1 }
	cubic := func(x float64) float64 { return x*x*x - 2*x*x + 1 }
	// ∫_0^2 (3x+1) = 8, ∫_0^2 (x³−2x²+1) = 4 − 16/3 + 2 = 2/3
	for _, r := range []quadrature.Rule{quadrature.Trapezoidal, quadrature.Simpson13, quadrature.Simpson38} {
		v, err := quadrature.NewtonCotes(line, 0, 2, 3, r)
		require.NoError(t, err)
		require.InDelta(t, 8, v, 1e-13, r.String())
	}
	for _, r := range []quadrature.Rule{quadrature.Simpson13, quadrature.Simpson38} {
		v, err := quadrature.NewtonCotes(cubic, 0, 2, 1, r)
		require.NoError(t, err)
		require.InDelta(t, 2.0/3, v, 1e-13, r.String())
	}
}

func TestNewtonCotes_ObservedOrder(t *testing.T) {
	t.Parallel()

	// ∫_0^1 eˣ = e − 1
	want := math.E - 1
	panels := []int{4, 8, 16, 32}
	for _, r := range []quadrature.Rule{quadrature.Trapezoidal, quadrature.Simpson13, quadrature.Simpson38} {
		hs := make([]float64, len(panels))
		errs := make([]float64, len(panels))
		for i, n := range panels {
			v, err := quadrature.NewtonCotes(math.Exp, 0, 1, n, r)
			require.NoError(t, err)
			hs[i] = 1 / float64(n)
			errs[i] = math.Abs(v - want)
		}
		p, err := convergence.LogLogSlope(hs, errs)
		require.NoError(t, err)
		require.InDelta(t, float64(r.Order()), p, 0.1, r.String())
	}
}

func TestSuccessiveDifferences_Shrink(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 {
		if x == 0 {
			return 1
		}
		return math.Log1p(x) / x
	}
	d, err := quadrature.SuccessiveDifferences(f, 0, 1, quadrature.Trapezoidal, 10, []int{100, 1000, 10000})
	require.NoError(t, err)
	require.Len(t, d, 3)
	for i := 1; i < len(d); i++ {
		require.Less(t, d[i], d[i-1])
	}
	// trapezoid: a tenfold refinement cuts the difference about a hundredfold
	require.InDelta(t, 100, d[1]/d[2], 5)
}

func TestNewtonCotes_Errors(t *testing.T) {
	t.Parallel()

	_, err := quadrature.NewtonCotes(nil, 0, 1, 1, quadrature.Trapezoidal)
	require.ErrorIs(t, err, quadrature.ErrNilFunc)
	_, err = quadrature.NewtonCotes(math.Sin, 0, 1, 0, quadrature.Trapezoidal)
	require.ErrorIs(t, err, quadrature.ErrInvalidPanels)
	_, err = quadrature.NewtonCotes(math.Sin, 0, 1, 1, quadrature.Rule(5))
	require.ErrorIs(t, err, quadrature.ErrUnknownRule)
	_, err = quadrature.SuccessiveDifferences(math.Sin, 0, 1, quadrature.Simpson13, 0, []int{4})
	require.ErrorIs(t, err, quadrature.ErrInvalidPanels)
}
