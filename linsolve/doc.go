// SPDX-License-Identifier: MIT

// Package linsolve solves square linear systems A·x = b.
//
// Direct solvers:
//
//   - GaussJordan reduces A to the identity in one pass.
//   - Decompose packs the Doolittle factors of matrix.LU into L\U; (*LU).Solve
//     runs forward and back substitution and may be reused for many right-hand
//     sides.
//   - SolveSparse factors with pivoting through a sparse backend and accepts
//     systems with zero diagonal entries.
//
// Iterative solvers (Jacobi, GaussSeidel) start from x_i = b_i / a_ii, stop once
// ‖x_{k+1} − x_k‖₂ ≤ tol and never run past a mandatory ceiling; exhausting it
// returns a *NotConvergedError holding the last iterate. A sweep that overflows
// to NaN or ±Inf stops with ErrDiverged, and the Result keeps the last finite
// iterate.
//
// Apart from SolveSparse nothing pivots: a zero pivot is ErrZeroPivot.
package linsolve
