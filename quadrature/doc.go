// Package quadrature approximates definite integrals.
//
// NewtonCotes integrates over a finite interval with the composite trapezoidal,
// Simpson 1/3 or Simpson 3/8 rule. GaussHermite integrates e^{−x²}·f(x) over the
// real line with node/weight tables from a TableProvider: FileProvider reads the
// HermiteXWnn.dat files, GolubWelsch computes them from an eigen decomposition.
package quadrature
