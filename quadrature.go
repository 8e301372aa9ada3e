/*
Package quadrature provides composite Newton-Cotes numerical integration of
one-dimensional real functions. The core engine lives in the quad package,
with an arbitrary-precision variant over math/big.Float in quad/bignum and
empirical convergence diagnostics in analysis.
*/
package quadrature
