// Package numkit is a small collection of classic numerical kernels, each
// written to be read next to the textbook formula it implements.
//
// What is in the box?
//
//	• ODEs: fixed-step Euler, RK2 and RK4, scalar or system form
//	• Fourier: the direct O(N²) discrete transform and its inverse
//	• Quadrature: trapezoidal and Simpson rules, Gauss-Hermite tables
//	• Interpolation: Lagrange, natural cubic spline, nearest/bilinear grids
//	• Linear systems: Gauss-Jordan, LU, Jacobi, Gauss-Seidel, triangular solves
//	• Roots: bisection and 2D / complex Newton-Raphson
//
// Every kernel validates its input, returns sentinel errors matched with
// errors.Is, and bounds every iteration with a mandatory ceiling.
//
// Subpackages:
//
//	convergence/  RMSE and log-log slopes used to measure observed order
//	fourier/      DFT, Transform, PowerSpectrum
//	interp/       Lagrange, Spline, Grid
//	linsolve/     direct, iterative and sparse solvers over matrix.Matrix
//	matrix/       dense storage, products, LU, Eigen, triangular kernels
//	ode/          Integrate, IntegrateSystem and the single-step functions
//	quadrature/   NewtonCotes, GaussHermite and node/weight table providers
//	roots/        Bisect, Newton2D, NewtonComplex
//
// The numkit command (cmd/numkit) runs each kernel on its demonstration
// problem:
//
//	go run ./cmd/numkit ode
package numkit
