// SPDX-License-Identifier: MIT
package quadrature_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numkit/quadrature"
)

func TestGolubWelsch_TwoPoints(t *testing.T) {
	t.Parallel()

	tab, err := quadrature.GolubWelsch{}.HermiteTable(2)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{-math.Sqrt2 / 2, math.Sqrt2 / 2}, tab.Nodes(), 1e-14)
	require.InDeltaSlice(t, []float64{math.SqrtPi / 2, math.SqrtPi / 2}, tab.Weights(), 1e-14)
}

func TestGolubWelsch_TableShape(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 3, 5, 10, 20} {
		tab, err := quadrature.GolubWelsch{}.HermiteTable(n)
		require.NoError(t, err)
		require.Equal(t, n, tab.Len())
		nodes, weights := tab.Nodes(), tab.Weights()
		sum := 0.0
		for i := range nodes {
			require.InDelta(t, -nodes[n-1-i], nodes[i], 1e-10, "nodes are symmetric")
			require.Greater(t, weights[i], 0.0)
			if i > 0 {
				require.Greater(t, nodes[i], nodes[i-1])
			}
			sum += weights[i]
		}
		require.InDelta(t, math.SqrtPi, sum, 1e-12)
	}
}

func TestGaussHermite_ExactForPolynomials(t *testing.T) {
	t.Parallel()

	// ∫ x^{2k} e^{−x²} = Γ(k + 1/2); n points are exact through degree 2n−1
	gw := quadrature.GolubWelsch{}
	for k := 0; k <= 4; k++ {
		k := k
		f := func(x float64) float64 { return math.Pow(x, float64(2*k)) }
		v, err := quadrature.GaussHermite(f, 5, gw)
		require.NoError(t, err)
		require.InDelta(t, math.Gamma(float64(k)+0.5), v, 1e-10, "x^%d", 2*k)
	}
	odd, err := quadrature.GaussHermite(func(x float64) float64 { return x * x * x }, 4, gw)
	require.NoError(t, err)
	require.InDelta(t, 0, odd, 1e-12)
}

func TestGaussHermite_SinSquared(t *testing.T) {
	t.Parallel()

	// ∫ sin²(x) e^{−x²} = √π/2·(1 − e^{−1})
	want := math.SqrtPi / 2 * (1 - math.Exp(-1))
	f := func(x float64) float64 { s := math.Sin(x); return s * s }
	for _, n := range []int{15, 20} {
		v, err := quadrature.GaussHermite(f, n, quadrature.GolubWelsch{})
		require.NoError(t, err)
		require.InDelta(t, want, v, 1e-8, "n=%d", n)
	}
}

func TestFileProvider_ReadsWrittenTable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src, err := quadrature.GolubWelsch{}.HermiteTable(5)
	require.NoError(t, err)
	fh, err := os.Create(filepath.Join(dir, quadrature.TableFileName(5)))
	require.NoError(t, err)
	require.NoError(t, quadrature.WriteTable(fh, src))
	require.NoError(t, fh.Close())

	got, err := quadrature.FileProvider{Dir: dir}.HermiteTable(5)
	require.NoError(t, err)
	require.Equal(t, src.Nodes(), got.Nodes())
	require.Equal(t, src.Weights(), got.Weights())

	v, err := quadrature.GaussHermite(func(x float64) float64 { return x * x }, 5, quadrature.FileProvider{Dir: dir})
	require.NoError(t, err)
	require.InDelta(t, math.SqrtPi/2, v, 1e-12)
}

func TestFileProvider_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := quadrature.FileProvider{Dir: dir}
	_, err := p.HermiteTable(7)
	require.ErrorIs(t, err, quadrature.ErrTableNotFound)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "HermiteXW03.dat"), []byte("0 1\n1 2\n"), 0o600))
	_, err = p.HermiteTable(3)
	require.ErrorIs(t, err, quadrature.ErrMalformedTable)

	_, err = quadrature.GaussHermite(math.Cos, 7, p)
	require.ErrorIs(t, err, quadrature.ErrTableNotFound)
	_, err = quadrature.GaussHermite(math.Cos, 7, nil)
	require.ErrorIs(t, err, quadrature.ErrNilProvider)
	require.Equal(t, "HermiteXW07.dat", quadrature.TableFileName(7))
}

func TestParseTable(t *testing.T) {
	t.Parallel()

	tab, err := quadrature.ParseTable(strings.NewReader("\n-1.5  0.25\n\n1.5\t0.25\n"))
	require.NoError(t, err)
	require.Equal(t, []float64{-1.5, 1.5}, tab.Nodes())
	require.Equal(t, []float64{0.25, 0.25}, tab.Weights())

	for _, bad := range []string{"", "1 2 3\n", "x 1\n", "1 y\n", "NaN 1\n"} {
		_, err = quadrature.ParseTable(strings.NewReader(bad))
		require.ErrorIs(t, err, quadrature.ErrMalformedTable, "%q", bad)
	}
}

func TestTable_ImmutableCopies(t *testing.T) {
	t.Parallel()

	nodes := []float64{0}
	tab, err := quadrature.NewTable(nodes, []float64{math.SqrtPi})
	require.NoError(t, err)
	nodes[0] = 9
	got := tab.Nodes()
	got[0] = 7
	require.Equal(t, []float64{0}, tab.Nodes())
}
