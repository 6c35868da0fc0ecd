// Package ncube constructs quadrature schemes on the reference n-cube
// [-1,1]^n and integrates functions over affine images of it.
package ncube

import (
	"fmt"

	"github.com/mshgrid/cubature/field"
	"github.com/mshgrid/cubature/orbit"
	"github.com/mshgrid/cubature/scheme"
)

var stroudCitation = scheme.Citation{
	Authors: []string{"A.H. Stroud"},
	Title:   "Remarks on the Disposition of Points in Numerical Integration Formulas",
	Journal: "Mathematical Tables and Other Aids to Computation",
	Volume:  "11",
	Number:  "60",
	Month:   "oct",
	Year:    "1957",
	Pages:   "257-261",
	URL:     "https://doi.org/10.2307/2001945",
}

// NewStroud2 returns the degree-2 Stroud 1957 rule on [-1,1]^n: a center
// point shifted along the diagonal plus two axis-reflection batches with
// weights +-r, r = sqrt(3)/6. One batch carries a negative weight, so some
// points sit on the cube boundary with no range check.
func NewStroud2[T any](f field.Arith[T], n int) (scheme.Scheme[T], error) {
	if n < 1 {
		return scheme.Scheme[T]{}, fmt.Errorf("stroud 1957-2: dimension %d: %w", n, scheme.ErrInvalidSchemeIndex)
	}
	q := f.FromInt
	r := f.Div(f.Sqrt(q(3, 1)), q(6, 1))

	groups := []scheme.Group[T]{
		scheme.Broadcast(q(1, 1), orbit.Full(f, n, f.Mul(q(2, 1), r))),
		scheme.Broadcast(r, orbit.Axis(f, n, q(-1, 1), r)),
		scheme.Broadcast(f.Neg(r), orbit.Axis(f, n, q(1, 1), r)),
	}
	return assemble(f, "Stroud 1957-2", n, 2, groups)
}

// NewStroud3 returns the degree-3 Stroud 1957 rule on [-1,1]^n: 2n equal-
// weight points built from floor(n/2) cosine/sine plane pairs at radius
// sqrt(2/3), plus, for odd n, one final row alternating +-1/sqrt(3) to
// fill the leftover coordinate.
func NewStroud3[T any](f field.Arith[T], n int) (scheme.Scheme[T], error) {
	if n < 1 {
		return scheme.Scheme[T]{}, fmt.Errorf("stroud 1957-3: dimension %d: %w", n, scheme.ErrInvalidSchemeIndex)
	}
	q := f.FromInt

	// Coordinate rows; transposed below into 2n points of dimension n.
	rows := make([][]T, 0, n)
	radius := f.Sqrt(q(2, 3))
	for k := 1; k <= n/2; k++ {
		cosRow := make([]T, 2*n)
		sinRow := make([]T, 2*n)
		for i := 1; i <= 2*n; i++ {
			arg := q(int64(2*k-1)*int64(i), int64(n))
			cosRow[i-1] = f.Mul(radius, f.CosPi(arg))
			sinRow[i-1] = f.Mul(radius, f.SinPi(arg))
		}
		rows = append(rows, cosRow, sinRow)
	}
	if n%2 == 1 {
		inv := f.Div(q(1, 1), f.Sqrt(q(3, 1)))
		last := make([]T, 2*n)
		for i := range last {
			if i%2 == 1 {
				last[i] = f.Neg(inv)
			} else {
				last[i] = inv
			}
		}
		rows = append(rows, last)
	}

	points := make([][]T, 2*n)
	for i := range points {
		p := make([]T, n)
		for j := 0; j < n; j++ {
			p[j] = rows[j][i]
		}
		points[i] = p
	}

	groups := []scheme.Group[T]{
		scheme.Broadcast(q(1, int64(2*n)), points),
	}
	return assemble(f, "Stroud 1957-3", n, 3, groups)
}

// assemble flattens the groups and rescales the weights by the reference
// volume 2^n.
func assemble[T any](f field.Arith[T], name string, n, degree int, groups []scheme.Group[T]) (scheme.Scheme[T], error) {
	points, weights, err := scheme.Untangle(groups)
	if err != nil {
		return scheme.Scheme[T]{}, fmt.Errorf("%s: %w", name, err)
	}
	vol := f.FromInt(1, 1)
	two := f.FromInt(2, 1)
	for i := 0; i < n; i++ {
		vol = f.Mul(vol, two)
	}
	for i := range weights {
		weights[i] = f.Mul(weights[i], vol)
	}
	return scheme.Scheme[T]{
		Name:     name,
		Dim:      n,
		Degree:   degree,
		Weights:  weights,
		Points:   points,
		Citation: stroudCitation,
	}, nil
}
