package ncube

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/mshgrid/cubature/scheme"
	"github.com/mshgrid/cubature/utils"
)

// Integrand evaluates a function at a batch of points: x has one mapped
// point per row (npts x n) and the result carries one value per row.
type Integrand func(x *mat.Dense) []float64

// SignedVolume returns the signed volume of the parallelotope spanned by
// the 2^n vertex rows of verts: det of the edge matrix whose column k is
// vertex(2^k) - vertex(0). Bit k of a vertex's row index selects the high
// end of axis k, so row 0 is the image of (-1,...,-1) and row 2^n - 1 of
// (+1,...,+1). Negative for orientation-reversing vertex orderings.
func SignedVolume(verts mat.Matrix) float64 {
	return mat.Det(edgeMatrix(verts))
}

// edgeMatrix extracts the n x n matrix of edge vectors out of vertex 0.
func edgeMatrix(verts mat.Matrix) *mat.Dense {
	rows, n := verts.Dims()
	if rows != 1<<n {
		panic(fmt.Sprintf("ncube: %d vertices for dimension %d, want %d", rows, n, 1<<n))
	}
	e := mat.NewDense(n, n, nil)
	for k := 0; k < n; k++ {
		for r := 0; r < n; r++ {
			e.Set(r, k, verts.At(1<<k, r)-verts.At(0, r))
		}
	}
	return e
}

// Integrate estimates the integral of fn over the affine image of
// [-1,1]^n described by the 2^n x n vertex matrix, using the given
// reference scheme. Reference points map through
// x = v0 + E*(xi+1)/2 with E the edge matrix; the scaling factor is
// SignedVolume / 2^n (the Jacobian determinant of the affine map), and the
// weighted sum is accumulated with compensated summation.
//
// A degenerate (collapsed) domain is not detected and yields an integral
// near zero.
func Integrate(fn Integrand, verts mat.Matrix, s scheme.Scheme[float64]) float64 {
	n := s.Dim
	npts := len(s.Points)

	// Rows of b hold (xi+1)/2 per reference point.
	b := mat.NewDense(npts, n, nil)
	for i, p := range s.Points {
		for j, c := range p {
			b.Set(i, j, (c+1)/2)
		}
	}

	var x mat.Dense
	x.Mul(b, edgeMatrix(verts).T())
	for i := 0; i < npts; i++ {
		for j := 0; j < n; j++ {
			x.Set(i, j, x.At(i, j)+verts.At(0, j))
		}
	}

	vals := fn(&x)
	if len(vals) != npts {
		panic("ncube: integrand value count does not match point count")
	}
	scale := SignedVolume(verts) / float64(int(1)<<n)
	return math.Abs(scale) * utils.SumProductCompensated(s.Weights, vals)
}
