// Package bignum mirrors the quad package over math/big.Float operands,
// letting callers run the same composite Newton-Cotes quadrature at
// arbitrary precision. All operations take their working precision from the
// interval endpoint a.
package bignum

import (
	"math/big"
)

// Func is a real function of one real variable over big.Float operands.
// Implementations must not mutate x.
type Func func(x *big.Float) (y *big.Float)

// Rule maps a function and a sub-interval [a, b] to an estimate of the area
// under f over that sub-interval, at the precision of a.
type Rule func(f Func, a, b *big.Float) (area *big.Float)

// NewFloat returns a new big.Float set to x with prec bits of precision.
func NewFloat(x float64, prec uint) (y *big.Float) {
	return new(big.Float).SetPrec(prec).SetFloat64(x)
}

// Midpoint estimates the area as (b-a) * f((a+b)/2).
func Midpoint(f Func, a, b *big.Float) *big.Float {

	prec := a.Prec()

	mid := new(big.Float).SetPrec(prec).Add(a, b)
	mid.Quo(mid, NewFloat(2, prec))

	area := new(big.Float).SetPrec(prec).Sub(b, a)
	return area.Mul(area, f(mid))
}

// Trapezoid estimates the area as (b-a)/2 * (f(a) + f(b)).
func Trapezoid(f Func, a, b *big.Float) *big.Float {

	prec := a.Prec()

	sum := new(big.Float).SetPrec(prec).Add(f(a), f(b))

	area := new(big.Float).SetPrec(prec).Sub(b, a)
	area.Quo(area, NewFloat(2, prec))
	return area.Mul(area, sum)
}

// Simpson estimates the area as (b-a)/6 * (f(a) + 4f((a+b)/2) + f(b)).
func Simpson(f Func, a, b *big.Float) *big.Float {

	prec := a.Prec()

	mid := new(big.Float).SetPrec(prec).Add(a, b)
	mid.Quo(mid, NewFloat(2, prec))

	sum := new(big.Float).SetPrec(prec).Mul(f(mid), NewFloat(4, prec))
	sum.Add(sum, f(a))
	sum.Add(sum, f(b))

	area := new(big.Float).SetPrec(prec).Sub(b, a)
	area.Quo(area, NewFloat(6, prec))
	return area.Mul(area, sum)
}

// Boole estimates the area from five equally spaced samples weighted
// 7, 32, 12, 32, 7 and scaled by (b-a)/90.
func Boole(f Func, a, b *big.Float) *big.Float {

	prec := a.Prec()

	h := new(big.Float).SetPrec(prec).Sub(b, a)
	h.Quo(h, NewFloat(4, prec))

	weights := []float64{7, 32, 12, 32, 7}

	sum := new(big.Float).SetPrec(prec)
	x := new(big.Float).SetPrec(prec)
	term := new(big.Float).SetPrec(prec)
	for i, w := range weights {
		x.Mul(h, NewFloat(float64(i), prec))
		x.Add(x, a)
		term.Mul(f(x), NewFloat(w, prec))
		sum.Add(sum, term)
	}

	area := new(big.Float).SetPrec(prec).Sub(b, a)
	area.Quo(area, NewFloat(90, prec))
	return area.Mul(area, sum)
}
