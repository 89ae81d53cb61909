// SPDX-License-Identifier: MIT

package interp

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewPoints is returned when there are not enough support points.
	ErrTooFewPoints = errors.New("interp: too few support points")

	// ErrLengthMismatch is returned when positions and values differ in length.
	ErrLengthMismatch = errors.New("interp: length mismatch")

	// ErrNotIncreasing is returned when support positions are not strictly increasing.
	ErrNotIncreasing = errors.New("interp: support positions not strictly increasing")

	// ErrOutOfSpan is returned for a query outside [first, last] support position.
	ErrOutOfSpan = errors.New("interp: query outside support span")

	// ErrUnknownMethod is returned for a Method outside Nearest, Bilinear.
	ErrUnknownMethod = errors.New("interp: unknown method")
)

func interpErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// checkSupport validates positions and values: equal lengths, at least min
// points, strictly increasing positions.
func checkSupport(xs, ys []float64, min int) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%d positions, %d values: %w", len(xs), len(ys), ErrLengthMismatch)
	}
	if err := checkAxis(xs, min); err != nil {
		return err
	}

	return nil
}

func checkAxis(xs []float64, min int) error {
	if len(xs) < min {
		return fmt.Errorf("need %d, got %d: %w", min, len(xs), ErrTooFewPoints)
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return fmt.Errorf("position %d: %g after %g: %w", i, xs[i], xs[i-1], ErrNotIncreasing)
		}
	}

	return nil
}
