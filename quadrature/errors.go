// SPDX-License-Identifier: MIT

package quadrature

import (
	"errors"
	"fmt"
)

var (
	// ErrNilFunc is returned when no integrand is given.
	ErrNilFunc = errors.New("quadrature: nil integrand")

	// ErrInvalidPanels is returned for a panel count below one.
	ErrInvalidPanels = errors.New("quadrature: number of panels must be >= 1")

	// ErrUnknownRule is returned for a Rule outside Trapezoidal, Simpson13, Simpson38.
	ErrUnknownRule = errors.New("quadrature: unknown rule")

	// ErrInvalidPoints is returned for a Gauss-Hermite point count below one.
	ErrInvalidPoints = errors.New("quadrature: number of points must be >= 1")

	// ErrNilProvider is returned when GaussHermite gets no TableProvider.
	ErrNilProvider = errors.New("quadrature: nil table provider")

	// ErrTableNotFound is returned when a provider has no table for the point count.
	ErrTableNotFound = errors.New("quadrature: node/weight table not found")

	// ErrMalformedTable is returned for unparsable or inconsistent node/weight data.
	ErrMalformedTable = errors.New("quadrature: malformed node/weight table")
)

func quadErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
