// Package field abstracts the scalar arithmetic used to construct
// quadrature rules, so that every orbit formula and scheme recipe is
// written once and evaluated either in float64 or in exact rational
// arithmetic.
package field

import "math/big"

// Arith is the field capability required by rule constructors. T is the
// scalar type: float64 for the fast path, *big.Rat for the exact path.
//
// Implementations must be stateless value types safe for concurrent use,
// and must never mutate their arguments.
type Arith[T any] interface {
	// FromInt returns the exact rational num/den. den must be nonzero.
	FromInt(num, den int64) T

	// FromRat converts an exact rational, e.g. a Newton-Cotes weight.
	// The argument is not retained.
	FromRat(r *big.Rat) T

	// FromDecimal parses a decimal literal such as "0.1381966011250105".
	// Published tables carry more digits than float64 holds; the exact
	// field keeps all of them. Panics on a malformed literal, since every
	// call site is a compiled-in table constant.
	FromDecimal(s string) T

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	Neg(a T) T

	// Sqrt returns the square root of a. a must be non-negative.
	Sqrt(a T) T

	// CosPi and SinPi return cos(a*pi) and sin(a*pi). Taking the factor
	// of pi as the argument keeps the exact field's argument reduction
	// rational.
	CosPi(a T) T
	SinPi(a T) T

	// Float rounds a to the nearest float64.
	Float(a T) float64
}
