package bignum

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/quadrature/quad"
)

// Integrate approximates the definite integral of f over [a, b] by summing
// the rule estimate over n equal-width sub-intervals, at the precision of a.
//
// Same contract as quad.Integrate, including the sign convention for
// reversed intervals and the error on n < 1.
func Integrate(f Func, a, b *big.Float, n int, rule Rule) (*big.Float, error) {

	if n < 1 {
		return nil, fmt.Errorf("cannot Integrate: n must be at least 1 but is %d: %w", n, quad.ErrInvalidArgument)
	}

	prec := a.Prec()

	h := new(big.Float).SetPrec(prec).Sub(b, a)
	h.Quo(h, NewFloat(float64(n), prec))

	sum := new(big.Float).SetPrec(prec)
	lo := new(big.Float).SetPrec(prec)
	hi := new(big.Float).SetPrec(prec)
	for i := 0; i < n; i++ {
		lo.Mul(h, NewFloat(float64(i), prec))
		lo.Add(lo, a)
		hi.Mul(h, NewFloat(float64(i+1), prec))
		hi.Add(hi, a)
		sum.Add(sum, rule(f, lo, hi))
	}

	return sum, nil
}
