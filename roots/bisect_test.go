// SPDX-License-Identifier: MIT
package roots_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numkit/roots"
	"github.com/stretchr/testify/require"
)

func cube(x float64) float64 { return x * x * x }

func f1(x float64) float64 { return 3*x + math.Sin(x) - math.Exp(x) }

func f3(x float64) float64 { return math.Sin(1 / (x + 0.01)) }

func TestBisect_CubeWithinHalvingBound(t *testing.T) {
	t.Parallel()

	for _, br := range [][2]float64{{-1, 1}, {-1, 2}} {
		for _, tol := range []float64{1e-3, 1e-6, 1e-9, 1e-12} {
			res, err := roots.Bisect(cube, br[0], br[1], roots.WithTolerance(tol))
			require.NoError(t, err)
			require.LessOrEqual(t, math.Abs(res.Value), tol)
			bound := int(math.Ceil(math.Log2((br[1] - br[0]) / tol)))
			require.LessOrEqual(t, res.Iterations, bound, "bracket %v tol %g", br, tol)
		}
	}

	// the first midpoint of [-1,1] is the exact root
	res, err := roots.Bisect(cube, -1, 1)
	require.NoError(t, err)
	require.Equal(t, 1, res.Iterations)
	require.Zero(t, res.Root)
}

func TestBisect_Sqrt2(t *testing.T) {
	t.Parallel()

	res, err := roots.Bisect(func(x float64) float64 { return x*x - 2 }, 0, 2, roots.WithTolerance(1e-12))
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt2, res.Root, 1e-12)
	require.Equal(t, 39, res.Iterations)
}

func TestBisect_CeilingKeepsLastIterate(t *testing.T) {
	t.Parallel()

	// 25 halvings of [0,1] leave |f1| near 4e-8
	res, err := roots.Bisect(f1, 0, 1, roots.WithTolerance(1e-6), roots.WithMaxIterations(25))
	require.NoError(t, err)
	require.Equal(t, 21, res.Iterations)
	require.InDelta(t, 0.3604217, res.Root, 1e-6)

	res, err = roots.Bisect(f1, 0, 1, roots.WithTolerance(1e-9), roots.WithMaxIterations(25))
	require.ErrorIs(t, err, roots.ErrNotConverged)
	var nc *roots.NotConvergedError
	require.ErrorAs(t, err, &nc)
	require.Equal(t, 25, nc.Iterations)
	require.Equal(t, []float64{res.Root}, nc.Point)
	require.InDelta(t, 0.36042168736, res.Root, 1e-9)
	require.Greater(t, nc.Residual, 1e-9)
}

func TestBisect_OscillatingFunction(t *testing.T) {
	t.Parallel()

	res, err := roots.Bisect(f3, 0, 1, roots.WithTolerance(1e-6), roots.WithMaxIterations(25))
	require.NoError(t, err)
	require.Equal(t, 22, res.Iterations)
	require.InDelta(t, 0.3083098, res.Root, 1e-6)
	require.InDelta(t, 0, f3(res.Root), 1e-6)
}

func TestBisect_TraceConvergesToLastMidpoint(t *testing.T) {
	t.Parallel()

	res, err := roots.Bisect(f1, 0, 1, roots.WithTolerance(0), roots.WithMaxIterations(25), roots.WithTrace())
	require.ErrorIs(t, err, roots.ErrNotConverged)
	require.Len(t, res.Trace, 25)
	require.Equal(t, 0.5, res.Trace[0])
	require.Equal(t, res.Root, res.Trace[24])

	// |x_k − x_25| is bounded by the remaining bracket width 2^-k
	for k, x := range res.Trace[:24] {
		require.LessOrEqual(t, math.Abs(x-res.Root), math.Ldexp(1, -(k+1)))
	}
}

func TestBisect_Errors(t *testing.T) {
	t.Parallel()

	_, err := roots.Bisect(nil, 0, 1)
	require.ErrorIs(t, err, roots.ErrNilFunc)

	_, err = roots.Bisect(cube, 1, 2)
	require.ErrorIs(t, err, roots.ErrNoBracket)

	_, err = roots.Bisect(cube, math.NaN(), 1)
	require.ErrorIs(t, err, roots.ErrNoBracket)

	// a pole is a sign change, not a root
	pole := func(x float64) float64 { return 1 / (x - 0.5) }
	res, err := roots.Bisect(pole, 0, 1)
	require.ErrorIs(t, err, roots.ErrDiverged)
	require.Equal(t, 0.5, res.Root)
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { roots.WithTolerance(-1) })
	require.Panics(t, func() { roots.WithTolerance(math.Inf(1)) })
	require.Panics(t, func() { roots.WithMaxIterations(0) })
	require.Panics(t, func() { roots.WithSingularTolerance(math.NaN()) })
	require.NotPanics(t, func() { roots.WithTolerance(0) })
}
