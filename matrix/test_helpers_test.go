// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/numkit/matrix"
	"github.com/stretchr/testify/require"
)

// Classic 3×3 system with solution (2, -2, 3).
var (
	sysA = [][]float64{{4, -2, 1}, {-3, -1, 4}, {1, -1, 3}}
	sysB = []float64{15, 8, 13}
	sysX = []float64{2, -2, 3}
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the non-*Dense materialization path of a kernel.
//
// AI-Hints:
//   - Wrap ONLY the operand under test; keep the other one *Dense.
type hide struct{ matrix.Matrix }

// brokenAt reports the right shape but fails every At call.
type brokenAt struct{ matrix.Matrix }

func (brokenAt) At(int, int) (float64, error) { return 0, matrix.ErrOutOfRange }

// MustDenseFrom builds a *Dense from literal rows or fails the test.
func MustDenseFrom(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireClose asserts max|a-b| ≤ atol through Sub and MaxAbs.
func RequireClose(t testing.TB, a, b matrix.Matrix, atol float64) {
	t.Helper()
	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	worst, err := matrix.MaxAbs(diff)
	require.NoError(t, err)
	require.LessOrEqualf(t, worst, atol, "max |a-b| = %g", worst)
}

// RandDiagDominant returns an n×n matrix with U(-1,1) entries and a diagonal
// lifted to n+1, so every no-pivot kernel runs on it.
func RandDiagDominant(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
		rows[i][i] += float64(n + 1)
	}

	return MustDenseFrom(t, rows)
}
