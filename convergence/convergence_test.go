// SPDX-License-Identifier: MIT
package convergence_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numkit/convergence"
)

func TestRMSE(t *testing.T) {
	t.Parallel()

	r, err := convergence.RMSE([]float64{1, 2, 3, 4}, []float64{1, 2, 3, 6})
	require.NoError(t, err)
	require.InDelta(t, 1.0, r, 1e-15)

	r, err = convergence.RelativeRMSE([]float64{1.1, 1.8}, []float64{1, 2})
	require.NoError(t, err)
	require.InDelta(t, 0.1, r, 1e-12)

	_, err = convergence.RMSE([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, convergence.ErrLengthMismatch)
	_, err = convergence.RMSE(nil, nil)
	require.ErrorIs(t, err, convergence.ErrTooFewPoints)
	_, err = convergence.RelativeRMSE([]float64{1}, []float64{0})
	require.ErrorIs(t, err, convergence.ErrNonPositive)
}

func TestLogLogSlope_RecoversPower(t *testing.T) {
	t.Parallel()

	h := []float64{0.1, 0.05, 0.025, 0.0125}
	for _, p := range []float64{1, 2, 4} {
		e := make([]float64, len(h))
		for i := range h {
			e[i] = 3 * math.Pow(h[i], p)
		}
		slope, err := convergence.LogLogSlope(h, e)
		require.NoError(t, err)
		require.InDelta(t, p, slope, 1e-9)
	}

	_, err := convergence.LogLogSlope([]float64{1}, []float64{1})
	require.ErrorIs(t, err, convergence.ErrTooFewPoints)
	_, err = convergence.LogLogSlope([]float64{1, 0.5}, []float64{1, 0})
	require.ErrorIs(t, err, convergence.ErrNonPositive)
}

func TestSuccessiveDifferences(t *testing.T) {
	t.Parallel()

	require.Equal(t, []float64{1, 0.5, 0.25}, convergence.SuccessiveDifferences([]float64{0, 1, 0.5, 0.75}))
	require.Nil(t, convergence.SuccessiveDifferences([]float64{1}))
}
