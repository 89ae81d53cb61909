// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the dense linear-algebra kernels.
package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/numkit/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMul_And_MatVec(t *testing.T) {
	t.Parallel()

	a := MustDenseFrom(t, sysA)
	y, err := matrix.MatVec(a, sysX)
	require.NoError(t, err)
	require.InDeltaSlice(t, sysB, y, 1e-12)

	// fallback path must agree with the flat path
	y2, err := matrix.MatVec(hide{a}, sysX)
	require.NoError(t, err)
	require.Equal(t, y, y2)

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	p, err := matrix.Mul(a, id)
	require.NoError(t, err)
	RequireClose(t, p, a, 0)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(a, MustDenseFrom(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	m := MustDenseFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr, err := matrix.Transpose(hide{m})
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr.(*matrix.Dense).ToRows())
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	ref := MustDenseFrom(t, [][]float64{{1, 100}, {0, -2}})
	near := MustDenseFrom(t, [][]float64{{1 + 1e-10, 100.001}, {1e-12, -2}})

	ok, err := matrix.AllClose(near, ref, 0, 1e-9)
	require.NoError(t, err)
	require.False(t, ok, "100.001 misses an absolute 1e-9")

	ok, err = matrix.AllClose(near, ref, 1e-5, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	nan, err := matrix.NewDenseFrom([][]float64{{math.NaN(), 100}, {0, -2}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	ok, err = matrix.AllClose(hide{nan}, ref, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(near, ref, -1, 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(near, MustDenseFrom(t, [][]float64{{1, 2}}), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestLU_Reconstructs(t *testing.T) {
	t.Parallel()

	for _, seed := range []int64{1, 2, 3} {
		a := RandDiagDominant(t, 6, seed)
		l, u, err := matrix.LU(a)
		require.NoError(t, err)
		require.NoError(t, matrix.ValidateTriangular(l, matrix.Lower, 0))
		require.NoError(t, matrix.ValidateTriangular(u, matrix.Upper, 0))
		lu, err := matrix.Mul(l, u)
		require.NoError(t, err)
		RequireClose(t, lu, a, 1e-12)
	}
}

func TestLU_ZeroPivot(t *testing.T) {
	t.Parallel()

	a := MustDenseFrom(t, [][]float64{{0, 1}, {1, 0}})
	_, _, err := matrix.LU(a)
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(a)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse_Identity(t *testing.T) {
	t.Parallel()

	a := MustDenseFrom(t, sysA)
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	p, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	RequireClose(t, p, id, 1e-12)
}

func TestEigen_AgreesWithGonum(t *testing.T) {
	t.Parallel()

	rows := [][]float64{
		{4, 1, -2, 2},
		{1, 2, 0, 1},
		{-2, 0, 3, -2},
		{2, 1, -2, -1},
	}
	a := MustDenseFrom(t, rows)
	vals, q, err := matrix.Eigen(a, 1e-12, 1000)
	require.NoError(t, err)

	// A·q_k = λ_k·q_k column by column
	for k, lambda := range vals {
		col := make([]float64, 4)
		for i := range col {
			col[i] = MustAt(t, q, i, k)
		}
		aq, err := matrix.MatVec(a, col)
		require.NoError(t, err)
		for i := range col {
			require.InDelta(t, lambda*col[i], aq[i], 1e-9)
		}
	}

	var es mat.EigenSym
	flat := make([]float64, 0, 16)
	for _, r := range rows {
		flat = append(flat, r...)
	}
	require.True(t, es.Factorize(mat.NewSymDense(4, flat), false))
	want := es.Values(nil)
	sort.Float64s(vals)
	require.InDeltaSlice(t, want, vals, 1e-9)
}

func TestEigen_Errors(t *testing.T) {
	t.Parallel()

	asym := MustDenseFrom(t, [][]float64{{1, 2}, {3, 4}})
	_, _, err := matrix.Eigen(asym, 1e-12, 10)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	sym := MustDenseFrom(t, [][]float64{{1, 2, 3}, {2, 4, 5}, {3, 5, 6}})
	_, _, err = matrix.Eigen(sym, 1e-12, 1)
	require.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)
}

func BenchmarkLU(b *testing.B) {
	a := RandDiagDominant(b, 64, 1337)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := matrix.LU(a); err != nil {
			b.Fatal(err)
		}
	}
}
