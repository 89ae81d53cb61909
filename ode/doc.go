// Package ode integrates initial value problems with fixed-step explicit
// Runge-Kutta methods (Euler, RK2, RK4). Step sizes are never adapted: the
// caller picks the number of steps and the driver returns every grid point.
package ode
