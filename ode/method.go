// SPDX-License-Identifier: MIT

package ode

import "strconv"

// Method selects a fixed-step explicit integrator.
type Method int

const (
	Euler Method = iota // first order
	RK2                 // midpoint rule, second order
	RK4                 // classical Runge-Kutta, fourth order
	numberOfMethods
)

// Func is the right-hand side of the scalar equation y' = f(x, y).
type Func func(x, y float64) float64

// Stepper advances y at x by one step of length h.
type Stepper func(f Func, x, y, h float64) float64

// info describes one method: the scalar stepper and the Butcher tableau the
// system driver runs.
type info struct {
	name  string
	order int
	step  Stepper
	a     [][]float64
	b, c  []float64
}

var methods = [numberOfMethods]info{
	Euler: {
		name:  "Euler",
		order: 1,
		step:  EulerStep,
		a:     [][]float64{{}},
		b:     []float64{1},
		c:     []float64{0},
	},
	RK2: {
		name:  "RK2",
		order: 2,
		step:  RK2Step,
		a:     [][]float64{{}, {0.5}},
		b:     []float64{0, 1},
		c:     []float64{0, 0.5},
	},
	RK4: {
		name:  "RK4",
		order: 4,
		step:  RK4Step,
		a:     [][]float64{{}, {0.5}, {0, 0.5}, {0, 0, 1}},
		b:     []float64{1.0 / 6, 1.0 / 3, 1.0 / 3, 1.0 / 6},
		c:     []float64{0, 0.5, 0.5, 1},
	},
}

func (m Method) valid() bool { return m >= 0 && m < numberOfMethods }

// String returns the method name.
func (m Method) String() string {
	if !m.valid() {
		return "Method(" + strconv.Itoa(int(m)) + ")"
	}

	return methods[m].name
}

// Order returns the global convergence order, or 0 for an unknown method.
func (m Method) Order() int {
	if !m.valid() {
		return 0
	}

	return methods[m].order
}

// Stepper returns the scalar single-step function of m.
func (m Method) Stepper() (Stepper, error) {
	if !m.valid() {
		return nil, odeErrorf("Stepper", ErrUnknownMethod)
	}

	return methods[m].step, nil
}

// EulerStep returns y + h·f(x, y).
func EulerStep(f Func, x, y, h float64) float64 {
	return y + h*f(x, y)
}

// RK2Step advances with the slope at the midpoint predicted by an Euler half step.
func RK2Step(f Func, x, y, h float64) float64 {
	k1 := f(x, y)
	k2 := f(x+h/2, y+h/2*k1)

	return y + h*k2
}

// RK4Step is the classical four-stage step with weights 1, 2, 2, 1 over 6.
func RK4Step(f Func, x, y, h float64) float64 {
	k1 := f(x, y)
	k2 := f(x+h/2, y+h/2*k1)
	k3 := f(x+h/2, y+h/2*k2)
	k4 := f(x+h, y+h*k3)

	return y + h/6*(k1+2*k2+2*k3+k4)
}
