// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"
	"strconv"
)

// Method selects the 2D interpolation scheme.
type Method int

const (
	Nearest  Method = iota // value of the closest support node per axis
	Bilinear               // two blends along x, then one along y
)

// String returns "nearest" or "bilinear".
func (m Method) String() string {
	switch m {
	case Nearest:
		return "nearest"
	case Bilinear:
		return "bilinear"
	default:
		return "Method(" + strconv.Itoa(int(m)) + ")"
	}
}

// Grid holds samples f[i][j] = f(x[i], y[j]) on a rectilinear grid.
type Grid struct {
	x, y []float64
	f    [][]float64
}

// NewGrid copies the axes and the len(xs)×len(ys) sample table.
// Errors: ErrTooFewPoints (an axis below 2 points), ErrNotIncreasing,
// ErrLengthMismatch (f shape differs from the axes).
func NewGrid(xs, ys []float64, f [][]float64) (*Grid, error) {
	if err := checkAxis(xs, 2); err != nil {
		return nil, interpErrorf("NewGrid: x", err)
	}
	if err := checkAxis(ys, 2); err != nil {
		return nil, interpErrorf("NewGrid: y", err)
	}
	if len(f) != len(xs) {
		return nil, interpErrorf("NewGrid", fmt.Errorf("%d rows for %d x nodes: %w", len(f), len(xs), ErrLengthMismatch))
	}
	g := &Grid{
		x: append([]float64(nil), xs...),
		y: append([]float64(nil), ys...),
		f: make([][]float64, len(f)),
	}
	for i, row := range f {
		if len(row) != len(ys) {
			return nil, interpErrorf("NewGrid", fmt.Errorf("row %d has %d values for %d y nodes: %w", i, len(row), len(ys), ErrLengthMismatch))
		}
		g.f[i] = append([]float64(nil), row...)
	}

	return g, nil
}

// GridFunc samples fn on the outer product of xs and ys.
func GridFunc(xs, ys []float64, fn func(x, y float64) float64) (*Grid, error) {
	f := make([][]float64, len(xs))
	for i, x := range xs {
		f[i] = make([]float64, len(ys))
		for j, y := range ys {
			f[i][j] = fn(x, y)
		}
	}

	return NewGrid(xs, ys, f)
}

// axisPos is a query bracketed on one axis: the cell index and the distances
// to its lower and upper node.
type axisPos struct {
	k         int
	low, high float64
}

func locate(axis []float64, q float64) (axisPos, error) {
	if !(q >= axis[0] && q <= axis[len(axis)-1]) {
		return axisPos{}, fmt.Errorf("%g not in [%g, %g]: %w", q, axis[0], axis[len(axis)-1], ErrOutOfSpan)
	}
	k := bracket(axis, q)

	return axisPos{k: k, low: q - axis[k], high: axis[k+1] - q}, nil
}

// nearest returns the index of the closer bracketing node. A query exactly
// halfway between two nodes resolves to the lower one, k. This differs from
// the strict lDist < rDist comparison, which sends the tie to k+1.
func (p axisPos) nearest() int {
	if p.low <= p.high {
		return p.k
	}

	return p.k + 1
}

// Interpolate evaluates the grid at every pair (xq[a], yq[b]); the result has
// len(xq) rows of len(yq) values. Queries need not be sorted.
//
// Errors: ErrOutOfSpan, ErrUnknownMethod.
// Complexity: O((len(xq) + len(yq))·log n + len(xq)·len(yq)).
func (g *Grid) Interpolate(xq, yq []float64, method Method) ([][]float64, error) {
	if method != Nearest && method != Bilinear {
		return nil, interpErrorf("Interpolate", ErrUnknownMethod)
	}
	px := make([]axisPos, len(xq))
	py := make([]axisPos, len(yq))
	var err error
	for a, x := range xq {
		if px[a], err = locate(g.x, x); err != nil {
			return nil, interpErrorf("Interpolate: x", err)
		}
	}
	for b, y := range yq {
		if py[b], err = locate(g.y, y); err != nil {
			return nil, interpErrorf("Interpolate: y", err)
		}
	}

	out := make([][]float64, len(xq))
	for a, p := range px {
		out[a] = make([]float64, len(yq))
		for b, q := range py {
			if method == Nearest {
				out[a][b] = g.f[p.nearest()][q.nearest()]
				continue
			}
			wx := p.low + p.high
			lo := (p.high*g.f[p.k][q.k] + p.low*g.f[p.k+1][q.k]) / wx
			hi := (p.high*g.f[p.k][q.k+1] + p.low*g.f[p.k+1][q.k+1]) / wx
			out[a][b] = (q.high*lo + q.low*hi) / (q.low + q.high)
		}
	}

	return out, nil
}

// At interpolates a single point.
func (g *Grid) At(x, y float64, method Method) (float64, error) {
	v, err := g.Interpolate([]float64{x}, []float64{y}, method)
	if err != nil {
		return 0, err
	}

	return v[0][0], nil
}
