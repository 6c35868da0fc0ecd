package tet

import (
	"fmt"

	"github.com/mshgrid/cubature/field"
	"github.com/mshgrid/cubature/orbit"
	"github.com/mshgrid/cubature/scheme"
)

var hammerMarloweStroudCitation = scheme.Citation{
	Authors: []string{"P.C. Hammer", "O.J. Marlowe", "A.H. Stroud"},
	Title:   "Numerical Integration Over Simplexes and Cones",
	Journal: "Mathematical Tables and Other Aids to Computation",
	Volume:  "10",
	Number:  "55",
	Month:   "jul",
	Year:    "1956",
	Pages:   "130-137",
	URL:     "https://doi.org/10.1090/S0025-5718-1956-0086389-6",
}

// NewHammerMarloweStroud returns the Hammer-Marlowe-Stroud rule with the
// given index (1-3). The points sit on the medians at radial distance r
// from the centroid, with r = +/- 1/sqrt(5) for the degree-2 rules.
func NewHammerMarloweStroud[T any](f field.Arith[T], index int) (scheme.Scheme[T], error) {
	q := f.FromInt

	var (
		groups []scheme.Group[T]
		degree int
	)
	switch index {
	case 1:
		r := f.Div(q(1, 1), f.Sqrt(q(5, 1)))
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(1, 4), orbit.S31(f, radial(f, r))),
		}
		degree = 2
	case 2:
		r := f.Neg(f.Div(q(1, 1), f.Sqrt(q(5, 1))))
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(1, 4), orbit.S31(f, radial(f, r))),
		}
		degree = 2
	case 3:
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(-4, 5), orbit.S4(f)),
			scheme.Broadcast(q(9, 20), orbit.S31(f, radial(f, q(1, 3)))),
		}
		degree = 3
	default:
		return scheme.Scheme[T]{}, badIndex("hammer-marlowe-stroud", index)
	}
	return assemble(fmt.Sprintf("Hammer-Marlowe-Stroud %d", index), degree, groups, hammerMarloweStroudCitation)
}
