package field

import (
	"math/big"
)

// defaultPrec is the binary precision used for the irrational helpers
// (Sqrt, CosPi, SinPi) of the exact field. Rational operations are always
// exact regardless of precision.
const defaultPrec = 256

// Rat evaluates rule formulas in exact rational arithmetic (*big.Rat).
// Field operations are exact; square roots and trigonometric values are
// computed to prec bits with big.Float and rounded back to a rational, so
// "exact mode" is exact wherever the closed form is rational and
// arbitrarily precise elsewhere.
type Rat struct {
	prec uint
}

// NewRat returns the exact field at the default precision.
func NewRat() Rat { return Rat{prec: defaultPrec} }

// NewRatPrec returns the exact field with prec bits for irrational helpers.
func NewRatPrec(prec uint) Rat {
	if prec < 64 {
		prec = 64
	}
	return Rat{prec: prec}
}

func (r Rat) FromInt(num, den int64) *big.Rat {
	if den == 0 {
		panic("field: zero denominator")
	}
	return big.NewRat(num, den)
}

func (r Rat) FromRat(x *big.Rat) *big.Rat {
	return new(big.Rat).Set(x)
}

func (r Rat) FromDecimal(s string) *big.Rat {
	// big.Rat parses decimal point notation exactly.
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("field: malformed decimal literal " + s)
	}
	return v
}

func (r Rat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (r Rat) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (r Rat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (r Rat) Div(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }
func (r Rat) Neg(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(a) }

func (r Rat) Sqrt(a *big.Rat) *big.Rat {
	f := new(big.Float).SetPrec(r.prec).SetRat(a)
	f.Sqrt(f)
	v, _ := f.Rat(nil)
	return v
}

// CosPi returns cos(a*pi) to the field's precision. The reduction of a
// modulo 2 happens in exact rational arithmetic, so large multiples of pi
// lose no accuracy before the series evaluation.
func (r Rat) CosPi(a *big.Rat) *big.Rat {
	x := r.radians(a)
	return cosSeries(x, r.prec)
}

// SinPi returns sin(a*pi) to the field's precision.
func (r Rat) SinPi(a *big.Rat) *big.Rat {
	x := r.radians(a)
	return sinSeries(x, r.prec)
}

func (r Rat) Float(a *big.Rat) float64 {
	v, _ := a.Float64()
	return v
}

// radians reduces a into [-1, 1) exactly and returns a*pi as a big.Float,
// so |result| <= pi and the Taylor series below converge quickly.
func (r Rat) radians(a *big.Rat) *big.Float {
	red := reduceMod2(a)
	prec := r.prec + 32
	x := new(big.Float).SetPrec(prec).SetRat(red)
	return x.Mul(x, pi(prec))
}

// reduceMod2 returns a - 2*floor(a/2) shifted into [-1, 1).
func reduceMod2(a *big.Rat) *big.Rat {
	half := new(big.Rat).Quo(a, big.NewRat(2, 1))
	fl := new(big.Int).Div(half.Num(), half.Denom()) // floor for positive denom
	out := new(big.Rat).Sub(a, new(big.Rat).SetInt(fl.Mul(fl, big.NewInt(2))))
	if out.Cmp(big.NewRat(1, 1)) >= 0 {
		out.Sub(out, big.NewRat(2, 1))
	}
	return out
}

// pi computes pi to prec bits with the Machin formula
// pi = 16*atan(1/5) - 4*atan(1/239).
func pi(prec uint) *big.Float {
	p := prec + 16
	a := atanInv(5, p)
	b := atanInv(239, p)
	a.Mul(a, big.NewFloat(16).SetPrec(p))
	b.Mul(b, big.NewFloat(4).SetPrec(p))
	return a.Sub(a, b).SetPrec(prec)
}

// atanInv computes atan(1/m) by its Taylor series.
func atanInv(m int64, prec uint) *big.Float {
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	x := new(big.Float).SetPrec(prec).Quo(one, new(big.Float).SetPrec(prec).SetInt64(m))
	xx := new(big.Float).SetPrec(prec).Mul(x, x)

	sum := new(big.Float).SetPrec(prec).Set(x)
	term := new(big.Float).SetPrec(prec).Set(x)
	tmp := new(big.Float).SetPrec(prec)
	for k := int64(1); ; k++ {
		term.Mul(term, xx)
		tmp.Quo(term, new(big.Float).SetPrec(prec).SetInt64(2*k+1))
		if k%2 == 1 {
			sum.Sub(sum, tmp)
		} else {
			sum.Add(sum, tmp)
		}
		if negligible(tmp, prec) {
			return sum
		}
	}
}

// cosSeries sums the Maclaurin series of cos at x, |x| <= pi.
func cosSeries(x *big.Float, prec uint) *big.Rat {
	p := prec + 32
	xx := new(big.Float).SetPrec(p).Mul(x, x)
	sum := new(big.Float).SetPrec(p).SetInt64(1)
	term := new(big.Float).SetPrec(p).SetInt64(1)
	for k := int64(1); ; k++ {
		term.Mul(term, xx)
		term.Quo(term, new(big.Float).SetPrec(p).SetInt64((2*k-1)*(2*k)))
		term.Neg(term)
		sum.Add(sum, term)
		if negligible(term, prec) {
			break
		}
	}
	v, _ := sum.Rat(nil)
	return v
}

// sinSeries sums the Maclaurin series of sin at x, |x| <= pi.
func sinSeries(x *big.Float, prec uint) *big.Rat {
	p := prec + 32
	xx := new(big.Float).SetPrec(p).Mul(x, x)
	sum := new(big.Float).SetPrec(p).Set(x)
	term := new(big.Float).SetPrec(p).Set(x)
	for k := int64(1); ; k++ {
		term.Mul(term, xx)
		term.Quo(term, new(big.Float).SetPrec(p).SetInt64((2*k)*(2*k+1)))
		term.Neg(term)
		sum.Add(sum, term)
		if negligible(term, prec) {
			break
		}
	}
	v, _ := sum.Rat(nil)
	return v
}

// negligible reports whether |t| < 2^-(prec+8), i.e. below the rounding
// granularity of the requested precision.
func negligible(t *big.Float, prec uint) bool {
	if t.Sign() == 0 {
		return true
	}
	return t.MantExp(nil) < -int(prec+8)
}
