package bignum

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/quadrature/quad"
)

// NewNewtonCotesRule generates the Newton-Cotes rule with the given weights
// over big.Float operands. Semantics match quad.NewNewtonCotesRule: a closed
// rule with k coefficients samples a + i*(b-a)/(k-1), an open rule samples
// a + (i+1)*(b-a)/(k+1), and the weighted sum is scaled by
// (b-a)/sum(coefficients). The coefficients are copied once at construction.
func NewNewtonCotesRule(coefficients []float64, open bool) (Rule, error) {

	k := len(coefficients)

	if k == 0 {
		return nil, fmt.Errorf("cannot generate Rule: empty coefficients: %w", quad.ErrInvalidArgument)
	}

	if !open && k < 2 {
		return nil, fmt.Errorf("cannot generate Rule: a closed rule requires at least two coefficients: %w", quad.ErrInvalidArgument)
	}

	coeffs := make([]float64, k)
	copy(coeffs, coefficients)

	var total float64
	for _, c := range coeffs {
		total += c
	}

	if total == 0 {
		return nil, fmt.Errorf("cannot generate Rule: coefficients sum to zero: %w", quad.ErrInvalidArgument)
	}

	steps := k + 1
	offset := 1
	if !open {
		steps = k - 1
		offset = 0
	}

	return func(f Func, a, b *big.Float) *big.Float {

		prec := a.Prec()

		h := new(big.Float).SetPrec(prec).Sub(b, a)
		h.Quo(h, NewFloat(float64(steps), prec))

		sum := new(big.Float).SetPrec(prec)
		x := new(big.Float).SetPrec(prec)
		term := new(big.Float).SetPrec(prec)
		for i, c := range coeffs {
			x.Mul(h, NewFloat(float64(i+offset), prec))
			x.Add(x, a)
			term.Mul(f(x), NewFloat(c, prec))
			sum.Add(sum, term)
		}

		area := new(big.Float).SetPrec(prec).Sub(b, a)
		area.Quo(area, NewFloat(total, prec))
		return area.Mul(area, sum)
	}, nil
}
