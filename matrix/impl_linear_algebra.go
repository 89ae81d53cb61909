// SPDX-License-Identifier: MIT
// Package matrix provides the dense linear-algebra kernels shared by the
// solvers: matrix-vector and matrix-matrix products, difference, Doolittle LU,
// LU-based inversion and Jacobi-rotation eigen decomposition. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches and zero pivots.
//
// Notes:
//   - Every kernel runs on the flat *Dense buffer. Other Matrix implementations
//     are first materialized through denseOf (one O(r*c) copy), which keeps a
//     single loop nest per kernel instead of an At/Set fallback per kernel.
//   - No pivoting anywhere: a zero pivot is a reported ErrSingular.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opEigen     = "Eigen"
	opInverse   = "Inverse"
	opLU        = "LU"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseOf returns m itself when it is a *Dense, otherwise a *Dense copy of it.
// Implementation:
//   - Stage 1: type-assert the fast path.
//   - Stage 2: copy through At in fixed i→j order (policy off: values were already accepted by m).
//
// Errors:
//   - Propagates At errors from a misbehaving Matrix implementation.
//
// Complexity:
//   - Time O(1) for *Dense, O(r*c) otherwise.
//
// AI-Hints:
//   - Callers must Clone() the result before mutating it: for *Dense it aliases m.
func denseOf(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	d.validateNaNInf = false

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			d.data[i*cols+j] = v
		}
	}

	return d, nil
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: single flat loop over both buffers.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Pair with MaxAbs to assert reconstructions such as L·U − A ≈ 0 in tests.
func Sub(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = da.data[idx] - db.data[idx]
	}

	return res, nil
}

// MaxAbs returns max |m[i,j]| (0 for an all-zero matrix).
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(1) for *Dense.
func MaxAbs(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, err
	}
	d, err := denseOf(m)
	if err != nil {
		return 0, err
	}
	best := NormZero
	for _, v := range d.data {
		if a := math.Abs(v); a > best {
			best = a
		}
	}

	return best, nil
}

// AllClose reports whether |a[i,j] − b[i,j]| ≤ atol + rtol·|b[i,j]| holds for
// every entry. NaN compares unequal to everything.
//
// Errors:
//   - ErrNaNInf for a non-finite or negative tolerance.
//   - ErrNilMatrix, ErrDimensionMismatch from shape validation.
//
// Complexity:
//   - Time O(r*c), Space O(1) for *Dense operands; early exit on the first miss.
//
// AI-Hints:
//   - Read b as the reference: the relative term scales with |b| only.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if !(rtol >= 0 && atol >= 0) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx, bv := range db.data {
		// negated form so that NaN on either side fails
		if !(math.Abs(da.data[idx]-bv) <= atol+rtol*math.Abs(bv)) {
			return false, nil
		}
	}

	return true, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides, skipping zero A[i,k].
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed i→k→j loop order.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] pays off on triangular factors.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix Aᵀ with shape (c × r).
// Errors: ErrNilMatrix.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
//
// AI-Hints:
//   - Iterative solvers call this once per sweep; keep the operator as *Dense
//     so no copy happens per call.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r) // allocate exactly rows outputs
	var i, j, base int
	var acc float64
	for i = 0; i < d.r; i++ { // iterate rows deterministically
		acc = ZeroSum  // reset accumulator per row
		base = i * d.c // flat base offset for row i
		for j = 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j] // accumulate a(i,j)*x(j)
		}
		y[i] = acc
	}

	return y, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate Dense L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U, guard the pivot, then column i of L.
//
// Returns:
//   - Matrix: L (unit lower triangular).
//   - Matrix: U (upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (if U[i,i]==0 during factorization).
//
// Determinism:
//   - Fixed i→{j≥i} for U, then {j>i}→i for L.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Produces separate factors; linsolve.Decompose packs them into the L\U form.
func LU(m Matrix) (Matrix, Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a, err := denseOf(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := a.r
	l, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	u, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	var i, j, k, baseI, baseJ int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		baseI = i * n
		// Row i of U: U[i][j] = A[i][j] − Σ_k<i L[i][k]·U[k][j], j ≥ i.
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[baseI+k] * u.data[k*n+j]
			}
			u.data[baseI+j] = a.data[baseI+j] - sum
		}

		pivot = u.data[baseI+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: %w", i, ErrSingular))
		}

		// Column i of L: L[j][i] = (A[j][i] − Σ_k<i L[j][k]·U[k][i]) / U[i][i], j > i.
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += l.data[baseJ+k] * u.data[k*n+i]
			}
			l.data[baseJ+i] = (a.data[baseJ+i] - sum) / pivot
		}
	}

	return l, u, nil
}

// Inverse computes A^{-1} using Doolittle LU factorization without pivoting.
// Implementation:
//   - Stage 1: LU(m).
//   - Stage 2: for each basis vector e_col solve L·y = e_col and U·x = y
//     (SolveTriangular), writing x into column col.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - Solving A·x = b directly (linsolve) is cheaper than forming A^{-1}·b.
func Inverse(m Matrix) (Matrix, error) {
	l, u, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := l.Rows()
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	e := make([]float64, n)
	var y, x []float64
	for col := 0; col < n; col++ {
		for i := range e {
			e[i] = 0
		}
		e[col] = 1
		if y, err = SolveTriangular(l, Lower, e); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		if x, err = SolveTriangular(u, Upper, y); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
// Implementation:
//   - Stage 1: Validate symmetric square input within tol.
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order and
//     apply a Jacobi rotation to A and accumulate it into Q.
//
// Inputs:
//   - m: symmetric Matrix (within tol); n := m.Rows().
//   - tol: convergence threshold on the largest off-diagonal magnitude.
//   - maxIter: safety cap on the number of rotations.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix, unsorted).
//   - Matrix: Q whose columns are the matching unit eigenvectors.
//
// Errors:
//   - ErrNonSquare, ErrAsymmetry, ErrMatrixEigenFailed (max off-diagonal ≥ tol after maxIter).
//
// Determinism:
//   - Fixed i→j pivot search and fixed update order produce stable results.
//
// Complexity:
//   - Time O(maxIter * n^2), Space O(n^2).
//
// AI-Hints:
//   - One rotation per iteration: budget on the order of 10·n² rotations.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	src, err := denseOf(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	a := src.Clone().(*Dense) // working copy; input stays untouched
	n := a.r
	q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	var (
		iter, i, p, qq int
		maxOff, off    float64
		app, aqq, apq  float64
		aip, aiq       float64
		qip, qiq       float64
		theta, t, c, s float64
		newIP, newIQ   float64
		converged      bool
	)
	for iter = 0; iter < maxIter; iter++ {
		// Pivot search over the strict upper triangle.
		maxOff, p, qq = NormZero, 0, 0
		for i = 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if off = math.Abs(a.data[i*n+j]); off > maxOff {
					maxOff, p, qq = off, i, j
				}
			}
		}
		if maxOff < tol {
			converged = true
			break
		}

		app, aqq, apq = a.data[p*n+p], a.data[qq*n+qq], a.data[p*n+qq]
		// t = tan φ, the smaller root of t² + 2θt − 1 = 0.
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == qq {
				continue
			}
			aip, aiq = a.data[i*n+p], a.data[i*n+qq]
			newIP = c*aip - s*aiq
			newIQ = s*aip + c*aiq
			a.data[i*n+p], a.data[p*n+i] = newIP, newIP
			a.data[i*n+qq], a.data[qq*n+i] = newIQ, newIQ
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[qq*n+qq] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+qq], a.data[qq*n+p] = 0, 0

		for i = 0; i < n; i++ {
			qip, qiq = q.data[i*n+p], q.data[i*n+qq]
			q.data[i*n+p] = c*qip - s*qiq
			q.data[i*n+qq] = s*qip + c*qiq
		}
	}
	if !converged {
		// The cap may land exactly on the last needed rotation.
		maxOff = NormZero
		for i = 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				maxOff = math.Max(maxOff, math.Abs(a.data[i*n+j]))
			}
		}
		if maxOff >= tol {
			return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
		}
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}
