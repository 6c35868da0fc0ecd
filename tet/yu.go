package tet

import (
	"fmt"

	"github.com/mshgrid/cubature/field"
	"github.com/mshgrid/cubature/orbit"
	"github.com/mshgrid/cubature/scheme"
)

var yuCitation = scheme.Citation{
	Authors: []string{"Yu Jinyun"},
	Title:   "Symmetric Gaussian quadrature formulae for tetrahedronal regions",
	Journal: "Computer Methods in Applied Mechanics and Engineering",
	Volume:  "43",
	Year:    "1984",
	Pages:   "349-353",
	URL:     "https://dx.doi.org/10.1016/0045-7825(84)90072-0",
}

// NewYu returns the Yu rule with the given index (1-5), degrees 2 to 6.
func NewYu[T any](f field.Arith[T], index int) (scheme.Scheme[T], error) {
	q, d := f.FromInt, f.FromDecimal

	var (
		groups []scheme.Group[T]
		degree int
	)
	switch index {
	case 1:
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(1, 4), orbit.S31(f, d("0.138196601125015"))),
		}
		degree = 2
	case 2:
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(-4, 5), orbit.S4(f)),
			scheme.Broadcast(q(9, 20), orbit.S31(f, q(1, 6))),
		}
		degree = 3
	case 3:
		groups = []scheme.Group[T]{
			scheme.Broadcast(d("0.05037379410012282"), orbit.S31(f, d("0.07611903264425430"))),
			scheme.Broadcast(d("0.06654206863329239"), orbit.S211(f, d("0.4042339134672644"), d("0.1197005277978019"))),
		}
		degree = 4
	case 4:
		groups = []scheme.Group[T]{
			scheme.Broadcast(d("0.1884185567365411"), orbit.S4(f)),
			scheme.Broadcast(d("0.06703858372604275"), orbit.S31(f, d("0.08945436401412733"))),
			scheme.Broadcast(d("0.04528559236327399"), orbit.S211(f, d("0.4214394310662522"), d("0.1325810999384657"))),
		}
		degree = 5
	case 5:
		groups = []scheme.Group[T]{
			scheme.Broadcast(d("0.09040129046014750"), orbit.S4(f)),
			scheme.Broadcast(d("0.01911983427899124"), orbit.S31(f, d("0.05742691731735682"))),
			scheme.Broadcast(d("0.04361493840666568"), orbit.S211(f, d("0.2312985436519147"), d("0.05135188412556341"))),
			scheme.Broadcast(d("0.02581167596199161"), orbit.S211(f, d("0.04756909881472290"), d("0.2967538129690260"))),
		}
		degree = 6
	default:
		return scheme.Scheme[T]{}, badIndex("yu", index)
	}
	return assemble(fmt.Sprintf("Yu %d", index), degree, groups, yuCitation)
}
