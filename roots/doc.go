// Package roots locates zeros of real and complex functions.
//
// Bisect halves a sign-changing bracket until |f| drops to the tolerance.
// Newton2D applies the 2×2 Newton update to a pair of real equations, using
// caller-supplied partials or central differences from gonum's diff/fd.
// NewtonComplex reduces a holomorphic g(z) = 0 to that pair.
//
// Every finder carries a mandatory iteration ceiling. Hitting it yields a
// *NotConvergedError together with the last iterate; a singular Jacobian
// or a non-finite value is reported as its own sentinel rather than
// propagated as NaN.
package roots
