package ncube

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/mshgrid/cubature/field"
	"github.com/mshgrid/cubature/scheme"
	"github.com/mshgrid/cubature/utils"
)

// unitCubeVerts returns the 2^n vertices of [-1,1]^n in bit order.
func unitCubeVerts(n int) *mat.Dense {
	verts := mat.NewDense(1<<n, n, nil)
	for c := 0; c < 1<<n; c++ {
		for k := 0; k < n; k++ {
			if c>>k&1 == 1 {
				verts.Set(c, k, 1)
			} else {
				verts.Set(c, k, -1)
			}
		}
	}
	return verts
}

// exactCubeMonomial is the closed form for prod x_k^{e_k} over [-1,1]^n:
// zero if any exponent is odd, else prod 2/(e_k+1).
func exactCubeMonomial(exps []int) float64 {
	v := 1.0
	for _, e := range exps {
		if e%2 == 1 {
			return 0
		}
		v *= 2 / float64(e+1)
	}
	return v
}

func monomialN(exps []int) Integrand {
	return func(x *mat.Dense) []float64 {
		r, _ := x.Dims()
		v := make([]float64, r)
		for i := range v {
			p := 1.0
			for k, e := range exps {
				p *= math.Pow(x.At(i, k), float64(e))
			}
			v[i] = p
		}
		return v
	}
}

// forEachMonomial calls fn with every exponent vector of length n and
// total degree <= max.
func forEachMonomial(n, max int, fn func(exps []int)) {
	exps := make([]int, n)
	var rec func(k, left int)
	rec = func(k, left int) {
		if k == n {
			fn(exps)
			return
		}
		for e := 0; e <= left; e++ {
			exps[k] = e
			rec(k+1, left-e)
		}
	}
	rec(0, max)
}

func TestStroudWeightSums(t *testing.T) {
	f := field.Float64{}
	for n := 1; n <= 6; n++ {
		vol := float64(int(1) << n)

		s2, err := NewStroud2(f, n)
		require.NoError(t, err)
		assert.Len(t, s2.Points, 2*n+1)
		assert.InDelta(t, vol, utils.SumCompensated(s2.Weights), 1e-12, "1957-2 n=%d", n)

		s3, err := NewStroud3(f, n)
		require.NoError(t, err)
		assert.Len(t, s3.Points, 2*n)
		assert.InDelta(t, vol, utils.SumCompensated(s3.Weights), 1e-12, "1957-3 n=%d", n)
	}
}

func TestStroudDegreeOfExactness(t *testing.T) {
	f := field.Float64{}
	for n := 1; n <= 5; n++ {
		verts := unitCubeVerts(n)

		for _, build := range []func(field.Arith[float64], int) (scheme.Scheme[float64], error){
			NewStroud2[float64], NewStroud3[float64],
		} {
			s, err := build(f, n)
			require.NoError(t, err)
			forEachMonomial(n, s.Degree, func(exps []int) {
				got := Integrate(monomialN(exps), verts, s)
				want := exactCubeMonomial(exps)
				assert.InDelta(t, want, got, 1e-12, "%s n=%d exps=%v", s.Name, n, exps)
			})
		}
	}
}

func TestStroud3OddDimensionDiagonalRow(t *testing.T) {
	// For odd n the last coordinate of every point alternates +-1/sqrt(3);
	// for even n no such coordinate exists and all points sit at radius
	// sqrt(2/3) in their plane pair.
	f := field.Float64{}
	inv := 1 / math.Sqrt(3)

	s, err := NewStroud3(f, 3)
	require.NoError(t, err)
	for i, p := range s.Points {
		want := inv
		if i%2 == 1 {
			want = -inv
		}
		assert.InDelta(t, want, p[2], 1e-15, "point %d", i)
	}

	s, err = NewStroud3(f, 2)
	require.NoError(t, err)
	for _, p := range s.Points {
		assert.InDelta(t, 2.0/3.0, p[0]*p[0]+p[1]*p[1], 1e-14)
	}
}

func TestStroud3OneDimensionIsGauss(t *testing.T) {
	// n = 1 degenerates to the two-point Gauss rule at +-1/sqrt(3).
	s, err := NewStroud3(field.Float64{}, 1)
	require.NoError(t, err)
	require.Len(t, s.Points, 2)
	assert.InDelta(t, 1/math.Sqrt(3), s.Points[0][0], 1e-15)
	assert.InDelta(t, -1/math.Sqrt(3), s.Points[1][0], 1e-15)
	assert.InDelta(t, 1.0, s.Weights[0], 1e-15)
	assert.InDelta(t, 1.0, s.Weights[1], 1e-15)
}

func TestStroudInvalidDimension(t *testing.T) {
	for _, build := range []func(field.Arith[float64], int) (scheme.Scheme[float64], error){
		NewStroud2[float64], NewStroud3[float64],
	} {
		_, err := build(field.Float64{}, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, scheme.ErrInvalidSchemeIndex))
	}
}

func TestStroudExactFieldAgreesWithFloat(t *testing.T) {
	// The exact field evaluates the trigonometric parameterization through
	// big-precision series; both fields must land on the same points.
	rat := field.NewRat()
	for n := 2; n <= 5; n++ {
		sf, err := NewStroud3(field.Float64{}, n)
		require.NoError(t, err)
		sr, err := NewStroud3(rat, n)
		require.NoError(t, err)

		sx := scheme.ToFloat64[*big.Rat](rat, sr)
		require.Equal(t, len(sf.Points), len(sx.Points))
		for i := range sf.Points {
			for j := range sf.Points[i] {
				assert.InDelta(t, sx.Points[i][j], sf.Points[i][j], 1e-14, "n=%d point %d", n, i)
			}
			assert.InDelta(t, sx.Weights[i], sf.Weights[i], 1e-14)
		}
	}
}

func TestIntegrateScaledBox(t *testing.T) {
	// Box [0,2] x [1,4]: area 6; integral of x over it is area * 1 = 6.
	s, err := NewStroud3(field.Float64{}, 2)
	require.NoError(t, err)

	verts := mat.NewDense(4, 2, []float64{
		0, 1,
		2, 1,
		0, 4,
		2, 4,
	})
	one := func(x *mat.Dense) []float64 {
		r, _ := x.Dims()
		v := make([]float64, r)
		for i := range v {
			v[i] = 1
		}
		return v
	}
	fx := monomialN([]int{1, 0})

	assert.InDelta(t, 6.0, SignedVolume(verts), 1e-14)
	assert.InDelta(t, 6.0, Integrate(one, verts, s), 1e-13)
	assert.InDelta(t, 6.0, Integrate(fx, verts, s), 1e-13)
}

func TestIntegrateParallelotope(t *testing.T) {
	// A sheared parallelogram: covariance under a non-axis-aligned affine
	// map. Edges (2,0) and (1,3) from origin: area 6.
	s, err := NewStroud2(field.Float64{}, 2)
	require.NoError(t, err)

	verts := mat.NewDense(4, 2, []float64{
		0, 0,
		2, 0,
		1, 3,
		3, 3,
	})
	one := func(x *mat.Dense) []float64 {
		r, _ := x.Dims()
		v := make([]float64, r)
		for i := range v {
			v[i] = 1
		}
		return v
	}
	assert.InDelta(t, 6.0, SignedVolume(verts), 1e-14)
	assert.InDelta(t, 6.0, Integrate(one, verts, s), 1e-13)
}

func TestSignedVolumeOrientation(t *testing.T) {
	// Swapping the roles of the two axes reverses orientation.
	verts := mat.NewDense(4, 2, []float64{
		-1, -1,
		-1, 1,
		1, -1,
		1, 1,
	})
	assert.InDelta(t, -4.0, SignedVolume(verts), 1e-14)
}

func TestIntegrateDegenerateBox(t *testing.T) {
	// A box collapsed to a line: silently integrates to zero.
	s, err := NewStroud2(field.Float64{}, 2)
	require.NoError(t, err)

	verts := mat.NewDense(4, 2, []float64{
		0, 0,
		1, 0,
		0, 0,
		1, 0,
	})
	one := func(x *mat.Dense) []float64 {
		r, _ := x.Dims()
		v := make([]float64, r)
		for i := range v {
			v[i] = 1
		}
		return v
	}
	assert.InDelta(t, 0.0, SignedVolume(verts), 1e-15)
	assert.InDelta(t, 0.0, Integrate(one, verts, s), 1e-15)
}
