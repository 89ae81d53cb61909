// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/numkit/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSystem covers the solver precondition A square, len(b) == n.
func TestValidateSystem(t *testing.T) {
	t.Parallel()

	a := MustDenseFrom(t, sysA)
	rect := MustDenseFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	require.NoError(t, matrix.ValidateSystem(a, sysB))
	require.ErrorIs(t, matrix.ValidateSystem(nil, sysB), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSystem(rect, []float64{1, 2}), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSystem(a, []float64{1, 2}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSystem(a, nil), matrix.ErrNilMatrix)
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := MustDenseFrom(t, [][]float64{{2, 1}, {1, 3}})
	near := MustDenseFrom(t, [][]float64{{2, 1}, {1 + 1e-10, 3}})

	require.NoError(t, matrix.ValidateSymmetric(sym, 0))
	require.NoError(t, matrix.ValidateSymmetric(near, 1e-9))
	require.ErrorIs(t, matrix.ValidateSymmetric(near, 0), matrix.ErrAsymmetry)
}

func TestValidateTriangular(t *testing.T) {
	t.Parallel()

	lower := MustDenseFrom(t, [][]float64{{9, 0, 0}, {-4, 2, 0}, {1, 0, 5}})

	require.NoError(t, matrix.ValidateTriangular(lower, matrix.Lower, 0))
	err := matrix.ValidateTriangular(lower, matrix.Upper, 0)
	require.ErrorIs(t, err, matrix.ErrNotTriangular)
	require.Contains(t, err.Error(), "upper entry (1,0)")
	require.ErrorIs(t, matrix.ValidateTriangular(lower, matrix.Triangle(7), 0), matrix.ErrUnknownTriangle)
}

// TestValidators_PropagateAtError checks that a failing At surfaces instead of
// being read as zero and passing the structural check.
func TestValidators_PropagateAtError(t *testing.T) {
	t.Parallel()

	// All-zero entries would pass both checks if At errors were dropped.
	m := brokenAt{MustDenseFrom(t, [][]float64{{1, 2}, {3, 4}})}

	require.ErrorIs(t, matrix.ValidateSymmetric(m, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateTriangular(m, matrix.Lower, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateTriangular(m, matrix.Upper, 0), matrix.ErrOutOfRange)
}
