package quad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/quadrature/utils"
	"github.com/tuneinsight/quadrature/utils/sampling"
)

var primitiveRules = []struct {
	name string
	rule Rule
}{
	{"Midpoint", Midpoint},
	{"Trapezoid", Trapezoid},
	{"Simpson", Simpson},
	{"Boole", Boole},
}

func TestRulesIntegrateConstantsExactly(t *testing.T) {
	for _, tc := range primitiveRules {
		t.Run(tc.name, func(t *testing.T) {
			c := utils.RandFloat64(-10, 10)
			a := utils.RandFloat64(-5, 5)
			b := a + utils.RandFloat64(0.1, 5)

			got := tc.rule(func(x float64) float64 { return c }, a, b)

			require.InDelta(t, c*(b-a), got, 1e-12)
		})
	}
}

func TestRulesCarrySignOfInterval(t *testing.T) {
	for _, tc := range primitiveRules {
		t.Run(tc.name, func(t *testing.T) {
			forward := tc.rule(math.Exp, -1, 2)
			backward := tc.rule(math.Exp, 2, -1)
			require.InEpsilon(t, -forward, backward, 1e-14)
		})
	}
}

func TestRulesAreIdempotent(t *testing.T) {
	for _, tc := range primitiveRules {
		t.Run(tc.name, func(t *testing.T) {
			a := utils.RandFloat64(-3, 0)
			b := utils.RandFloat64(1, 4)
			require.Equal(t, tc.rule(math.Sin, a, b), tc.rule(math.Sin, a, b))
		})
	}
}

func TestRulePolynomialExactness(t *testing.T) {
	testPolynomialExactness(t, "Midpoint", Midpoint, 1)
	testPolynomialExactness(t, "Trapezoid", Trapezoid, 1)
	testPolynomialExactness(t, "Simpson", Simpson, 3)
	testPolynomialExactness(t, "Boole", Boole, 5)
}

// testPolynomialExactness checks that the rule integrates random
// polynomials up to the given degree against the closed-form
// antiderivative. Coefficients are drawn from a keyed PRNG so a failure
// replays identically.
func testPolynomialExactness(t *testing.T, name string, rule Rule, degree int) {
	t.Run(name, func(t *testing.T) {

		prng, err := sampling.NewKeyedPRNG([]byte(name))
		require.NoError(t, err)

		for trial := 0; trial < 16; trial++ {

			coeffs := make([]float64, degree+1)
			for i := range coeffs {
				coeffs[i] = prng.Float64(-1, 1)
			}

			a := prng.Float64(-2, 0)
			b := a + prng.Float64(0.5, 2)

			got := rule(func(x float64) float64 { return polyEval(coeffs, x) }, a, b)
			want := polyIntegral(coeffs, a, b)

			require.InDelta(t, want, got, 1e-9*(1+math.Abs(want)))
		}
	})
}

// polyEval evaluates sum coeffs[i] * x^i by Horner's scheme.
func polyEval(coeffs []float64, x float64) (y float64) {
	for i := len(coeffs) - 1; i >= 0; i-- {
		y = y*x + coeffs[i]
	}
	return
}

// polyIntegral returns the exact integral of the polynomial over [a, b]
// from its closed-form antiderivative.
func polyIntegral(coeffs []float64, a, b float64) (area float64) {
	for i := len(coeffs) - 1; i >= 0; i-- {
		area += coeffs[i] / float64(i+1) * (math.Pow(b, float64(i+1)) - math.Pow(a, float64(i+1)))
	}
	return
}
