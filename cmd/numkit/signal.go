// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"math/cmplx"
	"os"

	"github.com/katalvlaran/numkit/fourier"
	gfourier "gonum.org/v1/gonum/dsp/fourier"
)

func runDFT(args []string) error {
	fs := newFlagSet("dft")
	n := fs.Int("n", 128, "number of samples")
	freq := fs.Int("freq", 2, "cycles of the sine across the window")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n < 1 {
		return fmt.Errorf("n=%d: need at least one sample", *n)
	}

	re := make([]float64, *n)
	im := make([]float64, *n)
	for j := range re {
		re[j] = math.Sin(2 * math.Pi * float64(*freq) * float64(j) / float64(*n))
	}

	fre, fim, err := fourier.DFT(re, im, fourier.Forward)
	if err != nil {
		return err
	}
	bre, bim, err := fourier.DFT(fre, fim, fourier.Inverse)
	if err != nil {
		return err
	}
	var roundTrip float64
	for j := range re {
		roundTrip = math.Max(roundTrip, math.Hypot(bre[j]-re[j], bim[j]-im[j]))
	}

	// gonum's FFT computes the same unnormalized forward sum
	seq := make([]complex128, *n)
	for j := range seq {
		seq[j] = complex(re[j], 0)
	}
	ref := gfourier.NewCmplxFFT(*n).Coefficients(nil, seq)
	var vsFFT float64
	for k := range ref {
		vsFFT = math.Max(vsFFT, cmplx.Abs(ref[k]-complex(fre[k], fim[k])))
	}

	fmt.Printf("samples %d, round-trip max error %.3e, max deviation from FFT %.3e\n", *n, roundTrip, vsFFT)

	section("bins holding at least 1% of the peak power")
	power := fourier.PowerSpectrum(fre, fim)
	var peak float64
	for _, p := range power {
		peak = math.Max(peak, p)
	}
	t := newTable(os.Stdout, "k", "Re F(k)", "Im F(k)", "|F(k)|²")
	for k, p := range power {
		if p >= peak/100 {
			t.row(k, fmt.Sprintf("%.6f", fre[k]), fmt.Sprintf("%.6f", fim[k]), fmt.Sprintf("%.6f", p))
		}
	}

	return t.flush()
}
