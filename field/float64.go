package field

import (
	"math"
	"math/big"
	"strconv"
)

// Float64 evaluates rule formulas in ordinary float64 arithmetic.
type Float64 struct{}

func (Float64) FromInt(num, den int64) float64 {
	if den == 0 {
		panic("field: zero denominator")
	}
	return float64(num) / float64(den)
}

func (Float64) FromRat(r *big.Rat) float64 {
	v, _ := r.Float64()
	return v
}

func (Float64) FromDecimal(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic("field: malformed decimal literal " + strconv.Quote(s))
	}
	return v
}

func (Float64) Add(a, b float64) float64 { return a + b }
func (Float64) Sub(a, b float64) float64 { return a - b }
func (Float64) Mul(a, b float64) float64 { return a * b }
func (Float64) Div(a, b float64) float64 { return a / b }
func (Float64) Neg(a float64) float64    { return -a }

func (Float64) Sqrt(a float64) float64 { return math.Sqrt(a) }

func (Float64) CosPi(a float64) float64 { return math.Cos(a * math.Pi) }
func (Float64) SinPi(a float64) float64 { return math.Sin(a * math.Pi) }

func (Float64) Float(a float64) float64 { return a }
