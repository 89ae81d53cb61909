// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a *mat.Dense so results can be checked against
// gonum's pivoted factorizations and eigen solvers.
// Errors: ErrNilMatrix, At failures of a foreign Matrix.
// Complexity: Time O(r*c), Space O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewDense(d.r, d.c, buf), nil
}

// FromGonum copies any gonum matrix into a fresh *Dense under the default
// numeric policy (non-finite values are rejected with ErrNaNInf).
// Complexity: Time O(r*c), Space O(r*c).
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := g.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			rows[i][j] = g.At(i, j)
		}
	}
	d, err := NewDenseFrom(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}

	return d, nil
}
