package tet

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/mshgrid/cubature/scheme"
	"github.com/mshgrid/cubature/utils"
)

// Integrand evaluates a function at a batch of points: x has one mapped
// point per row (npts x 3) and the result carries one value per row.
// Evaluations must be free of cross-point side effects.
type Integrand func(x *mat.Dense) []float64

// SignedVolume returns the signed volume of the tetrahedron whose four
// vertex rows form verts (4x3): det[v1-v0, v2-v0, v3-v0] / 6. The sign is
// negative for left-handed vertex orderings and near zero for degenerate
// tetrahedra; neither is treated as an error.
func SignedVolume(verts mat.Matrix) float64 {
	j := mat.NewDense(3, 3, nil)
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			j.Set(r, c, verts.At(c+1, r)-verts.At(0, r))
		}
	}
	return mat.Det(j) / 6
}

// Integrate estimates the integral of fn over the tetrahedron verts (4x3
// vertex rows) with the given reference scheme. Points are mapped by the
// affine combination X = B*V of the vertices, where row i of B holds the
// four barycentric coordinates of scheme point i, and the weighted sum is
// accumulated with compensated summation.
//
// A degenerate tetrahedron is not detected; it yields an integral near
// zero. Callers that care inspect SignedVolume themselves.
func Integrate(fn Integrand, verts mat.Matrix, s scheme.Scheme[float64]) float64 {
	npts := len(s.Points)
	b := mat.NewDense(npts, 4, nil)
	for i, p := range s.Points {
		b.Set(i, 0, p[0])
		b.Set(i, 1, p[1])
		b.Set(i, 2, p[2])
		b.Set(i, 3, 1-p[0]-p[1]-p[2])
	}

	var x mat.Dense
	x.Mul(b, verts)

	vals := fn(&x)
	if len(vals) != npts {
		panic("tet: integrand value count does not match point count")
	}
	return math.Abs(SignedVolume(verts)) * utils.SumProductCompensated(s.Weights, vals)
}
