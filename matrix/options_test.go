// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numkit/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies that NewMatrixOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewMatrixOptions()
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

// TestNewMatrixOptions_LastWriterWins ensures setters apply in order.
func TestNewMatrixOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewMatrixOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf())

	o = matrix.NewMatrixOptions(matrix.WithEpsilon(1e-3), matrix.WithEpsilon(1e-9))
	require.Equal(t, 1e-9, o.Epsilon())
}

// TestWithEpsilon_PanicsOnInvalid guards the programmer-error contract.
func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { matrix.WithEpsilon(eps) })
	}
}
