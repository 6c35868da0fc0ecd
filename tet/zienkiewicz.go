package tet

import (
	"fmt"

	"github.com/mshgrid/cubature/field"
	"github.com/mshgrid/cubature/orbit"
	"github.com/mshgrid/cubature/scheme"
)

var zienkiewiczCitation = scheme.Citation{
	Authors: []string{"Olgierd Zienkiewicz"},
	Title:   "The Finite Element Method, Sixth Edition",
	Journal: "Butterworth-Heinemann",
	Year:    "2005",
	URL:     "http://www.sciencedirect.com/science/book/9780750664318",
}

// NewZienkiewicz returns the textbook rule with the given point count,
// 4 (degree 2) or 5 (degree 3).
func NewZienkiewicz[T any](f field.Arith[T], index int) (scheme.Scheme[T], error) {
	q, d := f.FromInt, f.FromDecimal

	var (
		groups []scheme.Group[T]
		degree int
	)
	switch index {
	case 4:
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(1, 4), orbit.S31(f, d("0.1381966011250105"))),
		}
		degree = 2
	case 5:
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(-4, 5), orbit.S4(f)),
			scheme.Broadcast(q(9, 20), orbit.S31(f, q(1, 6))),
		}
		degree = 3
	default:
		return scheme.Scheme[T]{}, badIndex("zienkiewicz", index)
	}
	return assemble(fmt.Sprintf("Zienkiewicz %d", index), degree, groups, zienkiewiczCitation)
}
