// SPDX-License-Identifier: MIT

// Package fourier computes the discrete Fourier transform of a finite complex
// sequence by the direct O(N²) sum.
//
// Convention: Forward is X_k = Σ_j x_j·e^{−2πi·jk/N} (unscaled); Inverse uses
// e^{+2πi·jk/N} and divides by N, so Inverse(Forward(x)) = x up to rounding.
package fourier

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Direction selects the transform sign and scaling.
type Direction int

const (
	Forward Direction = 1  // e^{−iθ}, no scaling
	Inverse Direction = -1 // e^{+iθ}, scaled by 1/N
)

// String returns "forward" or "inverse".
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
}

var (
	// ErrEmptyInput is returned for a zero-length sequence.
	ErrEmptyInput = errors.New("fourier: empty input")

	// ErrLengthMismatch is returned when the real and imaginary parts differ in length.
	ErrLengthMismatch = errors.New("fourier: real and imaginary parts differ in length")

	// ErrUnknownDirection is returned for a Direction other than Forward or Inverse.
	ErrUnknownDirection = errors.New("fourier: unknown direction")
)

func validate(n, m int, dir Direction) error {
	if dir != Forward && dir != Inverse {
		return ErrUnknownDirection
	}
	if n != m {
		return fmt.Errorf("%d vs %d: %w", n, m, ErrLengthMismatch)
	}
	if n == 0 {
		return ErrEmptyInput
	}

	return nil
}

// DFT transforms the sequence re + i·im in direction dir. The inputs are not
// modified; both outputs have the input length.
//
// For each k: θ = 2π·d·k·j/N and
//
//	outRe[k] = Σ re[j]·cos θ + im[j]·sin θ
//	outIm[k] = Σ im[j]·cos θ − re[j]·sin θ
//
// Errors: ErrUnknownDirection, ErrLengthMismatch, ErrEmptyInput.
// Complexity: Time O(N²), Space O(N).
func DFT(re, im []float64, dir Direction) (outRe, outIm []float64, err error) {
	if err = validate(len(re), len(im), dir); err != nil {
		return nil, nil, fmt.Errorf("DFT: %w", err)
	}
	n := len(re)
	outRe = make([]float64, n)
	outIm = make([]float64, n)

	// k·j is reduced mod N so the angle stays in [0, 2π) for large N.
	step := 2 * math.Pi * float64(dir) / float64(n)
	var k, j int
	var sin, cos float64
	for k = 0; k < n; k++ {
		for j = 0; j < n; j++ {
			sin, cos = math.Sincos(step * float64((k*j)%n))
			outRe[k] += re[j]*cos + im[j]*sin
			outIm[k] += im[j]*cos - re[j]*sin
		}
	}
	if dir == Inverse {
		scale := 1 / float64(n)
		for k = range outRe {
			outRe[k] *= scale
			outIm[k] *= scale
		}
	}

	return outRe, outIm, nil
}

// Transform is DFT on a []complex128.
func Transform(x []complex128, dir Direction) ([]complex128, error) {
	re := make([]float64, len(x))
	im := make([]float64, len(x))
	for i, v := range x {
		re[i], im[i] = real(v), imag(v)
	}
	outRe, outIm, err := DFT(re, im, dir)
	if err != nil {
		return nil, err
	}
	out := make([]complex128, len(x))
	for i := range out {
		out[i] = complex(outRe[i], outIm[i])
	}

	return out, nil
}

// PowerSpectrum returns |X_k|² = re_k² + im_k² for a transformed sequence.
// The shorter input bounds the output length.
func PowerSpectrum(re, im []float64) []float64 {
	n := len(re)
	if len(im) < n {
		n = len(im)
	}
	p := make([]float64, n)
	for k := 0; k < n; k++ {
		p[k] = re[k]*re[k] + im[k]*im[k]
	}

	return p
}
