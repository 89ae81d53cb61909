// Package interp interpolates tabulated functions.
//
// In one dimension it offers the Lagrange polynomial through all support points
// and a natural cubic spline. In two dimensions a Grid of samples on a
// rectilinear mesh is evaluated by nearest-node or bilinear interpolation.
// Support positions must be strictly increasing; grid queries outside the
// support span are rejected with ErrOutOfSpan.
package interp
