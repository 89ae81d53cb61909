// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/numkit/convergence"
)

// Rule selects a composite closed Newton-Cotes formula.
type Rule int

const (
	Trapezoidal Rule = iota // error O(H²)
	Simpson13               // Simpson's 1/3, error O(H⁴)
	Simpson38               // Simpson's 3/8, error O(H⁴)
	numberOfRules
)

// ruleInfo lists the interior offsets sampled in every panel (as fractions of
// the panel width, excluding the panel end) with their coefficients, and the
// final scale as a fraction of the panel width.
type ruleInfo struct {
	name    string
	order   int
	offsets []float64
	coeffs  []float64
	scale   float64
}

var rules = [numberOfRules]ruleInfo{
	Trapezoidal: {name: "Trapezoidal", order: 2, scale: 1.0 / 2},
	Simpson13:   {name: "Simpson 1/3", order: 4, offsets: []float64{0.5}, coeffs: []float64{4}, scale: 1.0 / 6},
	Simpson38:   {name: "Simpson 3/8", order: 4, offsets: []float64{1.0 / 3, 2.0 / 3}, coeffs: []float64{3, 3}, scale: 1.0 / 8},
}

func (r Rule) valid() bool { return r >= 0 && r < numberOfRules }

// String returns the rule name.
func (r Rule) String() string {
	if !r.valid() {
		return "Rule(" + strconv.Itoa(int(r)) + ")"
	}

	return rules[r].name
}

// Order returns the exponent p of the composite error O(Hᵖ), 0 when unknown.
func (r Rule) Order() int {
	if !r.valid() {
		return 0
	}

	return rules[r].order
}

// NewtonCotes approximates ∫_a^b f with n panels of width H = (b−a)/n.
//
// Every panel contributes its right end point with coefficient 2 while a and
// b enter once. Simpson 1/3 adds the midpoint with coefficient 4, Simpson
// 3/8 adds the two third-points with coefficient 3. The sum is scaled by s/2,
// s/3 or 3s/8 where s is the spacing between samples (H, H/2, H/3).
//
// Errors: ErrNilFunc, ErrInvalidPanels, ErrUnknownRule.
// Complexity: n·(1 + interior points) evaluations of f.
func NewtonCotes(f func(float64) float64, a, b float64, n int, rule Rule) (float64, error) {
	if f == nil {
		return 0, quadErrorf("NewtonCotes", ErrNilFunc)
	}
	if n < 1 {
		return 0, quadErrorf("NewtonCotes", fmt.Errorf("n=%d: %w", n, ErrInvalidPanels))
	}
	if !rule.valid() {
		return 0, quadErrorf("NewtonCotes", ErrUnknownRule)
	}

	ri := rules[rule]
	h := (b - a) / float64(n)
	sum := f(a) - f(b)
	var left float64
	for i := 0; i < n; i++ {
		left = a + float64(i)*h
		for k, off := range ri.offsets {
			sum += ri.coeffs[k] * f(left+off*h)
		}
		sum += 2 * f(a+float64(i+1)*h)
	}

	return sum * h * ri.scale, nil
}

// SuccessiveDifferences integrates with base panels and then with each entry of
// panels, returning |I_{k+1} − I_k| for consecutive estimates. It measures the
// convergence of a rule when the exact integral is unknown.
func SuccessiveDifferences(f func(float64) float64, a, b float64, rule Rule, base int, panels []int) ([]float64, error) {
	est := make([]float64, 0, len(panels)+1)
	for _, n := range append([]int{base}, panels...) {
		v, err := NewtonCotes(f, a, b, n, rule)
		if err != nil {
			return nil, quadErrorf("SuccessiveDifferences", err)
		}
		est = append(est, v)
	}

	return convergence.SuccessiveDifferences(est), nil
}
