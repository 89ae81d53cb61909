// SPDX-License-Identifier: MIT
package interp_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numkit/convergence"
	"github.com/katalvlaran/numkit/interp"
)

func bowl(x, y float64) float64 {
	c := math.Cos(math.Hypot(x, y))
	return c * c
}

func TestGrid_NearestTieGoesLow(t *testing.T) {
	t.Parallel()

	g, err := interp.NewGrid([]float64{0, 1}, []float64{0, 1}, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	v, err := g.At(0.5, 0.5, interp.Nearest)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	v, err = g.At(0.51, 0.49, interp.Nearest)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
	v, err = g.At(1, 1, interp.Nearest)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
}

func TestGrid_BilinearExactForBilinearFunction(t *testing.T) {
	t.Parallel()

	f := func(x, y float64) float64 { return 1 + 2*x - y + 0.5*x*y }
	g, err := interp.GridFunc([]float64{-1, 0, 2}, []float64{0, 1, 3, 4}, f)
	require.NoError(t, err)

	xq := []float64{1.7, -1, 0.25, 2}
	yq := []float64{3.5, 0, 0.9}
	out, err := g.Interpolate(xq, yq, interp.Bilinear)
	require.NoError(t, err)
	require.Len(t, out, len(xq))
	for a, x := range xq {
		require.Len(t, out[a], len(yq))
		for b, y := range yq {
			require.InDelta(t, f(x, y), out[a][b], 1e-13)
		}
	}
}

func TestGrid_Errors(t *testing.T) {
	t.Parallel()

	_, err := interp.NewGrid([]float64{0}, []float64{0, 1}, [][]float64{{1, 2}})
	require.ErrorIs(t, err, interp.ErrTooFewPoints)
	_, err = interp.NewGrid([]float64{0, 1}, []float64{1, 0}, [][]float64{{1, 2}, {3, 4}})
	require.ErrorIs(t, err, interp.ErrNotIncreasing)
	_, err = interp.NewGrid([]float64{0, 1}, []float64{0, 1}, [][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, interp.ErrLengthMismatch)

	g, err := interp.NewGrid([]float64{0, 1}, []float64{0, 1}, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	_, err = g.Interpolate([]float64{1.01}, []float64{0}, interp.Bilinear)
	require.ErrorIs(t, err, interp.ErrOutOfSpan)
	_, err = g.Interpolate([]float64{0}, []float64{math.NaN()}, interp.Nearest)
	require.ErrorIs(t, err, interp.ErrOutOfSpan)
	_, err = g.Interpolate([]float64{0}, []float64{0}, interp.Method(3))
	require.ErrorIs(t, err, interp.ErrUnknownMethod)
}

// Refining cos²(r) on [−π/2, π/2]²: nearest converges at first order,
// bilinear at second order and is never worse.
func TestGrid_ConvergenceSlopes(t *testing.T) {
	t.Parallel()

	lo, hi := -math.Pi/2, math.Pi/2
	rng := rand.New(rand.NewSource(7))
	const nq = 100
	xq := make([]float64, nq)
	yq := make([]float64, nq)
	for i := range xq {
		xq[i] = lo + (hi-lo)*rng.Float64()
		yq[i] = lo + (hi-lo)*rng.Float64()
	}
	sort.Float64s(xq)
	sort.Float64s(yq)
	xq[0], xq[nq-1], yq[0], yq[nq-1] = lo, hi, lo, hi

	exact := make([]float64, 0, nq*nq)
	for _, x := range xq {
		for _, y := range yq {
			exact = append(exact, bowl(x, y))
		}
	}

	res := []int{4, 8, 16, 32, 64, 128}
	hs := make([]float64, len(res))
	errN := make([]float64, len(res))
	errB := make([]float64, len(res))
	for r, n := range res {
		axis := span(n, lo, hi)
		g, err := interp.GridFunc(axis, axis, bowl)
		require.NoError(t, err)
		hs[r] = (hi - lo) / float64(n-1)
		for m, dst := range map[interp.Method][]float64{interp.Nearest: errN, interp.Bilinear: errB} {
			out, err := g.Interpolate(xq, yq, m)
			require.NoError(t, err)
			flat := make([]float64, 0, nq*nq)
			for _, row := range out {
				flat = append(flat, row...)
			}
			dst[r], err = convergence.RMSE(flat, exact)
			require.NoError(t, err)
		}
		require.LessOrEqual(t, errB[r], errN[r], "n=%d", n)
	}

	pn, err := convergence.LogLogSlope(hs, errN)
	require.NoError(t, err)
	pb, err := convergence.LogLogSlope(hs, errB)
	require.NoError(t, err)
	require.Greater(t, pn, 0.0)
	require.Greater(t, pb, 0.0)
	require.InDelta(t, 1, pn, 0.4)
	require.InDelta(t, 2, pb, 0.5)
}
