package field

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64Basics(t *testing.T) {
	f := Float64{}
	assert.Equal(t, 0.5, f.FromInt(1, 2))
	assert.Equal(t, 0.25, f.FromRat(big.NewRat(1, 4)))
	assert.Equal(t, 0.1381966011250105, f.FromDecimal("0.1381966011250105"))
	assert.Equal(t, 7.0, f.Add(3, 4))
	assert.Equal(t, -1.0, f.Sub(3, 4))
	assert.Equal(t, 12.0, f.Mul(3, 4))
	assert.Equal(t, 0.75, f.Div(3, 4))
	assert.Equal(t, -3.0, f.Neg(3))
	assert.Equal(t, 3.0, f.Sqrt(9))
	assert.InDelta(t, -1.0, f.CosPi(1), 1e-15)
	assert.InDelta(t, 1.0, f.SinPi(0.5), 1e-15)
	assert.Equal(t, 2.5, f.Float(2.5))
}

func TestRatExactOps(t *testing.T) {
	f := NewRat()

	a := f.FromInt(1, 3)
	b := f.FromInt(1, 6)
	require.Equal(t, 0, f.Add(a, b).Cmp(big.NewRat(1, 2)))
	require.Equal(t, 0, f.Sub(a, b).Cmp(big.NewRat(1, 6)))
	require.Equal(t, 0, f.Mul(a, b).Cmp(big.NewRat(1, 18)))
	require.Equal(t, 0, f.Div(a, b).Cmp(big.NewRat(2, 1)))
	require.Equal(t, 0, f.Neg(a).Cmp(big.NewRat(-1, 3)))

	// Decimal literals parse exactly, not via float64.
	d := f.FromDecimal("0.1")
	require.Equal(t, 0, d.Cmp(big.NewRat(1, 10)))

	// Inputs are never mutated.
	require.Equal(t, 0, a.Cmp(big.NewRat(1, 3)))
	require.Equal(t, 0, b.Cmp(big.NewRat(1, 6)))
}

func TestRatSqrt(t *testing.T) {
	f := NewRat()
	s := f.Sqrt(f.FromInt(5, 1))
	// s^2 recovers 5 to well beyond float64 resolution.
	err := new(big.Rat).Mul(s, s)
	err.Sub(err, big.NewRat(5, 1))
	ef, _ := err.Float64()
	assert.Less(t, math.Abs(ef), 1e-60)
}

func TestRatTrig(t *testing.T) {
	f := NewRat()

	cases := []struct {
		num, den int64
		cos, sin float64
	}{
		{0, 1, 1, 0},
		{1, 1, -1, 0},
		{1, 2, 0, 1},
		{1, 3, 0.5, math.Sqrt(3) / 2},
		{1, 6, math.Sqrt(3) / 2, 0.5},
		{-1, 2, 0, -1},
		{7, 3, 0.5, math.Sqrt(3) / 2}, // reduces mod 2 to 1/3
		{5, 4, -math.Sqrt2 / 2, -math.Sqrt2 / 2},
	}
	for _, c := range cases {
		a := f.FromInt(c.num, c.den)
		assert.InDelta(t, c.cos, f.Float(f.CosPi(a)), 1e-14, "cos(%d/%d pi)", c.num, c.den)
		assert.InDelta(t, c.sin, f.Float(f.SinPi(a)), 1e-14, "sin(%d/%d pi)", c.num, c.den)
	}
}

func TestRatTrigMatchesMath(t *testing.T) {
	f := NewRat()
	for i := -12; i <= 12; i++ {
		a := f.FromInt(int64(i), 7)
		x := float64(i) / 7 * math.Pi
		assert.InDelta(t, math.Cos(x), f.Float(f.CosPi(a)), 1e-13)
		assert.InDelta(t, math.Sin(x), f.Float(f.SinPi(a)), 1e-13)
	}
}
