// Package quad implements composite Newton-Cotes quadrature over float64.
//
// A Rule estimates the area under a function on a single sub-interval;
// Integrate sums a rule over an equal-width partition of the full interval.
// The four classic rules are provided as ready-made functions, and arbitrary
// Newton-Cotes rules can be generated from a coefficient descriptor.
package quad

import (
	"errors"
)

// Func is a real function of one real variable, evaluable at any point of
// the integration domain. A Func that panics aborts the whole composite sum:
// the engine never recovers panics raised by user code.
type Func func(x float64) (y float64)

// Rule maps a function and a sub-interval [a, b] to an estimate of the area
// under f over that sub-interval. Rules are stateless: two calls with
// identical arguments return identical results.
type Rule func(f Func, a, b float64) (area float64)

// ErrInvalidArgument is wrapped by all errors reporting arguments from which
// no rule or integral can be computed.
var ErrInvalidArgument = errors.New("invalid argument")

// Midpoint estimates the area as (b-a) * f((a+b)/2).
// Open rule, exact for polynomials of degree <= 1.
func Midpoint(f Func, a, b float64) float64 {
	return (b - a) * f((a+b)/2)
}

// Trapezoid estimates the area as (b-a)/2 * (f(a) + f(b)).
// Closed rule, exact for polynomials of degree <= 1.
func Trapezoid(f Func, a, b float64) float64 {
	return (b - a) / 2 * (f(a) + f(b))
}

// Simpson estimates the area as (b-a)/6 * (f(a) + 4f((a+b)/2) + f(b)).
// Closed rule, exact for polynomials of degree <= 3.
func Simpson(f Func, a, b float64) float64 {
	return (b - a) / 6 * (f(a) + 4*f((a+b)/2) + f(b))
}

// Boole estimates the area from five equally spaced samples weighted
// 7, 32, 12, 32, 7 and scaled by (b-a)/90.
// Closed rule, exact for polynomials of degree <= 5.
func Boole(f Func, a, b float64) float64 {
	h := (b - a) / 4
	return (b - a) / 90 * (7*f(a) + 32*f(a+h) + 12*f(a+2*h) + 32*f(a+3*h) + 7*f(b))
}
