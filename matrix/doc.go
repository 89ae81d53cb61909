// Package matrix offers the dense storage and kernels the numkit solvers share.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix whose accessors return errors instead of panicking.
//   - Products (Mul, MatVec), Transpose, Sub and MaxAbs for residual checks.
//   - Doolittle LU, LU-based Inverse and Jacobi-rotation Eigen for symmetric input.
//   - SolveTriangular and InverseTriangular for a caller-declared Triangle;
//     DetectTriangle is an opt-in helper and never runs implicitly.
//   - ToGonum/FromGonum to cross-check results against gonum's pivoted routines.
//
// No routine pivots. A zero pivot or a zero diagonal is reported as ErrSingular.
package matrix
