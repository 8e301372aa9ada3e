package quad

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// NewtonCotes describes a quadrature rule by its ordered sequence of weights
// over equally spaced sample points. Open rules exclude the sub-interval
// endpoints from sampling (the midpoint family); closed rules sample them.
//
// The classic rules are instances of this descriptor:
//
//	Midpoint:  NewtonCotes{Coefficients: []float64{1}, Open: true}
//	Trapezoid: NewtonCotes{Coefficients: []float64{1, 1}}
//	Simpson:   NewtonCotes{Coefficients: []float64{1, 4, 1}}
//	Boole:     NewtonCotes{Coefficients: []float64{7, 32, 12, 32, 7}}
type NewtonCotes struct {
	Coefficients []float64
	Open         bool
}

// Equal returns true if the two descriptors generate the same rule.
func (nc NewtonCotes) Equal(other NewtonCotes) bool {
	return nc.Open == other.Open && cmp.Equal(nc.Coefficients, other.Coefficients)
}

// Rule generates the quadrature rule described by nc. The coefficients and
// the open flag are captured once; the returned Rule is reusable across
// arbitrary (f, a, b) triples and immutable for its lifetime.
//
// A closed rule with k coefficients samples a + i*(b-a)/(k-1) for
// i = 0..k-1; an open rule samples a + (i+1)*(b-a)/(k+1), so it never
// touches the interval boundary. The weighted sum of samples is scaled by
// (b-a)/sum(coefficients), which makes every generated rule integrate
// constants exactly and carry the sign of the interval orientation.
//
// Returns an error wrapping ErrInvalidArgument when the coefficients are
// empty, sum to zero, or describe a closed rule with a single point (its
// sample spacing would be a division by zero).
func (nc NewtonCotes) Rule() (Rule, error) {

	k := len(nc.Coefficients)

	if k == 0 {
		return nil, fmt.Errorf("cannot generate Rule: empty coefficients: %w", ErrInvalidArgument)
	}

	if !nc.Open && k < 2 {
		return nil, fmt.Errorf("cannot generate Rule: a closed rule requires at least two coefficients: %w", ErrInvalidArgument)
	}

	coeffs := make([]float64, k)
	copy(coeffs, nc.Coefficients)

	var total float64
	for _, c := range coeffs {
		total += c
	}

	if total == 0 {
		return nil, fmt.Errorf("cannot generate Rule: coefficients sum to zero: %w", ErrInvalidArgument)
	}

	steps := k + 1
	offset := 1
	if !nc.Open {
		steps = k - 1
		offset = 0
	}

	return func(f Func, a, b float64) float64 {
		h := (b - a) / float64(steps)
		var sum float64
		for i, c := range coeffs {
			sum += c * f(a+float64(i+offset)*h)
		}
		return (b - a) / total * sum
	}, nil
}

// NewNewtonCotesRule generates the rule described by the given coefficients
// and open flag. It is shorthand for NewtonCotes{coefficients, open}.Rule().
func NewNewtonCotesRule(coefficients []float64, open bool) (Rule, error) {
	return NewtonCotes{Coefficients: coefficients, Open: open}.Rule()
}
