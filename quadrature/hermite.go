// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/numkit/matrix"
)

const (
	// eigenTolerance bounds the off-diagonal residue of the Jacobi matrix.
	eigenTolerance = 1e-13
	// eigenRotationsPerEntry caps Jacobi rotations at this multiple of n².
	eigenRotationsPerEntry = 100
)

// GolubWelsch computes Gauss-Hermite tables on demand: the nodes are the
// eigenvalues of the symmetric tridiagonal Jacobi matrix of the Hermite
// recurrence (off-diagonal sqrt(k/2)) and each weight is √π times the squared
// first component of the matching unit eigenvector. Nothing is cached.
type GolubWelsch struct{}

// HermiteTable implements TableProvider. Nodes come out ascending.
func (GolubWelsch) HermiteTable(points int) (Table, error) {
	if points < 1 {
		return Table{}, quadErrorf("GolubWelsch", ErrInvalidPoints)
	}
	j, err := matrix.NewDense(points, points)
	if err != nil {
		return Table{}, quadErrorf("GolubWelsch", err)
	}
	for k := 1; k < points; k++ {
		b := math.Sqrt(float64(k) / 2)
		if err = j.Set(k-1, k, b); err != nil {
			return Table{}, quadErrorf("GolubWelsch", err)
		}
		if err = j.Set(k, k-1, b); err != nil {
			return Table{}, quadErrorf("GolubWelsch", err)
		}
	}

	vals, vecs, err := matrix.Eigen(j, eigenTolerance, eigenRotationsPerEntry*points*points)
	if err != nil {
		return Table{}, quadErrorf("GolubWelsch", err)
	}

	order := make([]int, points)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return vals[order[a]] < vals[order[b]] })

	nodes := make([]float64, points)
	weights := make([]float64, points)
	var v0 float64
	for i, k := range order {
		if v0, err = vecs.At(0, k); err != nil {
			return Table{}, quadErrorf("GolubWelsch", err)
		}
		nodes[i] = vals[k]
		weights[i] = math.SqrtPi * v0 * v0
	}

	return NewTable(nodes, weights)
}

// GaussHermite approximates ∫_{−∞}^{∞} e^{−x²}·f(x) dx as Σ w_i·f(x_i) over the
// table provider returns for points.
//
// Errors: ErrNilFunc, ErrNilProvider, ErrInvalidPoints and provider errors
// (ErrTableNotFound, ErrMalformedTable).
func GaussHermite(f func(float64) float64, points int, provider TableProvider) (float64, error) {
	if f == nil {
		return 0, quadErrorf("GaussHermite", ErrNilFunc)
	}
	if provider == nil {
		return 0, quadErrorf("GaussHermite", ErrNilProvider)
	}
	if points < 1 {
		return 0, quadErrorf("GaussHermite", fmt.Errorf("points=%d: %w", points, ErrInvalidPoints))
	}
	t, err := provider.HermiteTable(points)
	if err != nil {
		return 0, quadErrorf("GaussHermite", err)
	}

	sum := 0.0
	for i := range t.nodes {
		sum += t.weights[i] * f(t.nodes[i])
	}

	return sum, nil
}
