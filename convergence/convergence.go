// SPDX-License-Identifier: MIT

// Package convergence measures how fast a discretization error shrinks:
// root-mean-square errors against a reference, successive differences of a
// refinement sequence and the log-log slope that estimates the order.
package convergence

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrLengthMismatch is returned when paired slices differ in length.
	ErrLengthMismatch = errors.New("convergence: length mismatch")

	// ErrTooFewPoints is returned when a statistic needs more samples.
	ErrTooFewPoints = errors.New("convergence: too few points")

	// ErrNonPositive is returned when a logarithm would be taken of a value ≤ 0.
	ErrNonPositive = errors.New("convergence: non-positive value")
)

func checkPair(a, b []float64, min int) error {
	if len(a) != len(b) {
		return fmt.Errorf("%d vs %d: %w", len(a), len(b), ErrLengthMismatch)
	}
	if len(a) < min {
		return fmt.Errorf("need %d, got %d: %w", min, len(a), ErrTooFewPoints)
	}

	return nil
}

// RMSE returns sqrt(Σ(approx_i − exact_i)² / n).
func RMSE(approx, exact []float64) (float64, error) {
	if err := checkPair(approx, exact, 1); err != nil {
		return 0, fmt.Errorf("RMSE: %w", err)
	}

	return floats.Distance(approx, exact, 2) / math.Sqrt(float64(len(approx))), nil
}

// RelativeRMSE returns sqrt(Σ((approx_i − exact_i)/exact_i)² / n).
// An exact value of zero makes the statistic ErrNonPositive-undefined.
func RelativeRMSE(approx, exact []float64) (float64, error) {
	if err := checkPair(approx, exact, 1); err != nil {
		return 0, fmt.Errorf("RelativeRMSE: %w", err)
	}
	rel := make([]float64, len(approx))
	for i, e := range exact {
		if e == 0 {
			return 0, fmt.Errorf("RelativeRMSE: exact[%d] is zero: %w", i, ErrNonPositive)
		}
		rel[i] = (approx[i] - e) / e
	}

	return floats.Norm(rel, 2) / math.Sqrt(float64(len(rel))), nil
}

// SuccessiveDifferences returns |v[i+1] − v[i]| for i = 0..len(v)−2, the
// error proxy of a refinement sequence without a known exact answer.
func SuccessiveDifferences(v []float64) []float64 {
	if len(v) < 2 {
		return nil
	}
	out := make([]float64, len(v)-1)
	floats.SubTo(out, v[1:], v[:len(v)-1])
	for i := range out {
		out[i] = math.Abs(out[i])
	}

	return out
}

// LogLogSlope fits log(err) = α + p·log(h) by least squares and returns p,
// the observed order when h is the step size.
//
// Errors: ErrLengthMismatch, ErrTooFewPoints (fewer than two points),
// ErrNonPositive (any h or err ≤ 0).
func LogLogSlope(h, err []float64) (float64, error) {
	if e := checkPair(h, err, 2); e != nil {
		return 0, fmt.Errorf("LogLogSlope: %w", e)
	}
	lx := make([]float64, len(h))
	ly := make([]float64, len(err))
	for i := range h {
		if h[i] <= 0 || err[i] <= 0 {
			return 0, fmt.Errorf("LogLogSlope: point %d: %w", i, ErrNonPositive)
		}
		lx[i] = math.Log(h[i])
		ly[i] = math.Log(err[i])
	}
	_, slope := stat.LinearRegression(lx, ly, nil, false)

	return slope, nil
}
