package tet

import (
	"fmt"

	"github.com/mshgrid/cubature/field"
	"github.com/mshgrid/cubature/orbit"
	"github.com/mshgrid/cubature/scheme"
)

var liuVinokurCitation = scheme.Citation{
	Authors: []string{"Y. Liu", "M. Vinokur"},
	Title:   "Exact Integrations of Polynomials and Symmetric Quadrature Formulas over Arbitrary Polyhedral Grids",
	Journal: "Journal of Computational Physics",
	Volume:  "140",
	Year:    "1998",
	Pages:   "122-147",
	URL:     "https://dx.doi.org/10.1006/jcph.1998.5884",
}

// liuVinokurLambda is the root near 5.978 of the cubic the article derives
// for its degree-5 rule, 4u^3 - 3u = 67*sqrt(79)/24964 with
// u = (27*lambda/4 - 71)/(4*sqrt(79)). Stored as a decimal so the exact
// field keeps far more digits than float64.
const liuVinokurLambda = "5.9781817848530193225762468430424540621631776086872957301251"

// NewLiuVinokur returns the Liu-Vinokur rule with the given index (1-14),
// degrees 1 to 5. Several rules place points on vertices or outside the
// simplex (alpha = 1 or negative alpha); no range check applies.
func NewLiuVinokur[T any](f field.Arith[T], index int) (scheme.Scheme[T], error) {
	q, d := f.FromInt, f.FromDecimal
	one := q(1, 1)

	// The article parameterizes orbits radially from the centroid.
	rAlpha := func(alpha T) [][]T {
		return orbit.S31(f, radial(f, alpha))
	}
	rBeta := func(beta T) [][]T {
		// repeated pair coordinate (1+2*beta)/4
		a := f.Div(f.Add(one, f.Mul(q(2, 1), beta)), q(4, 1))
		return orbit.S22(f, a)
	}
	rGammaDelta := func(gamma, delta T) [][]T {
		a := f.Div(f.Sub(one, f.Add(gamma, delta)), q(4, 1))
		b := f.Div(f.Sub(f.Add(one, f.Mul(q(3, 1), gamma)), delta), q(4, 1))
		return orbit.S211(f, a, b)
	}

	var (
		groups []scheme.Group[T]
		degree int
	)
	switch index {
	case 1:
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(1, 1), orbit.S4(f)),
		}
		degree = 1
	case 2:
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(1, 4), rAlpha(one)),
		}
		degree = 1
	case 3:
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(1, 4), rAlpha(f.Div(one, f.Sqrt(q(5, 1))))),
		}
		degree = 2
	case 4:
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(4, 5), orbit.S4(f)),
			scheme.Broadcast(q(1, 20), rAlpha(one)),
		}
		degree = 2
	case 5:
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(-4, 5), orbit.S4(f)),
			scheme.Broadcast(q(9, 20), rAlpha(q(1, 3))),
		}
		degree = 3
	case 6:
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(1, 40), rAlpha(one)),
			scheme.Broadcast(q(9, 40), rAlpha(q(-1, 3))),
		}
		degree = 3
	case 7:
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(-148, 1875), orbit.S4(f)),
			scheme.Broadcast(q(343, 7500), rAlpha(q(5, 7))),
			scheme.Broadcast(q(56, 375), rBeta(f.Div(f.Sqrt(q(70, 1)), q(28, 1)))),
		}
		degree = 4
	case 8:
		// alpha_{1,2} = (+-sqrt(65944 - 19446*sqrt(11)) + 51*sqrt(11) - 154)/89
		root := f.Sqrt(f.Sub(q(65944, 1), f.Mul(q(19446, 1), f.Sqrt(q(11, 1)))))
		base := f.Sub(f.Mul(q(51, 1), f.Sqrt(q(11, 1))), q(154, 1))
		alpha1 := f.Div(f.Add(root, base), q(89, 1))
		alpha2 := f.Div(f.Sub(base, root), q(89, 1))
		w1, w2 := liuVinokurPairWeights(f, q(17, 1), alpha1, alpha2)
		groups = []scheme.Group[T]{
			scheme.Broadcast(w1, rAlpha(alpha1)),
			scheme.Broadcast(w2, rAlpha(alpha2)),
			scheme.Broadcast(q(2, 105), rBeta(q(1, 2))),
		}
		degree = 4
	case 9:
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(-32, 15), orbit.S4(f)),
			scheme.Broadcast(q(3, 280), rAlpha(one)),
			scheme.Broadcast(q(125, 168), rAlpha(q(1, 5))),
			scheme.Broadcast(q(2, 105), rBeta(q(1, 2))),
		}
		degree = 4
	case 10:
		sqrt2 := f.Sqrt(q(2, 1))
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(32, 105), orbit.S4(f)),
			scheme.Broadcast(q(-31, 840), rAlpha(one)),
			scheme.Broadcast(q(27, 280), rAlpha(q(-1, 3))),
			scheme.Broadcast(q(4, 105), rGammaDelta(
				f.Div(f.Add(q(2, 1), sqrt2), q(4, 1)),
				f.Div(f.Sub(q(2, 1), sqrt2), q(4, 1)),
			)),
		}
		degree = 4
	case 11:
		sqrt2 := f.Sqrt(q(2, 1))
		groups = []scheme.Group[T]{
			scheme.Broadcast(f.Div(f.Sub(q(11, 1), f.Mul(q(4, 1), sqrt2)), q(840, 1)), rAlpha(one)),
			scheme.Broadcast(f.Div(f.Sub(q(243, 1), f.Mul(q(108, 1), sqrt2)), q(1960, 1)), rAlpha(q(-1, 3))),
			scheme.Broadcast(f.Div(f.Add(q(62, 1), f.Mul(q(44, 1), sqrt2)), q(735, 1)), rAlpha(f.Sub(sqrt2, one))),
			scheme.Broadcast(q(2, 105), rBeta(q(1, 2))),
		}
		degree = 4
	case 12:
		lambda := d(liuVinokurLambda)
		// alpha_{1,2} = (+-sqrt(9l^2 - 248l + 1680) + 28 - 3l)/(112 - 10l)
		root := f.Sqrt(f.Add(f.Sub(f.Mul(q(9, 1), f.Mul(lambda, lambda)), f.Mul(q(248, 1), lambda)), q(1680, 1)))
		base := f.Sub(q(28, 1), f.Mul(q(3, 1), lambda))
		den := f.Sub(q(112, 1), f.Mul(q(10, 1), lambda))
		alpha1 := f.Div(f.Add(base, root), den)
		alpha2 := f.Div(f.Sub(base, root), den)
		w1, w2 := liuVinokurPairWeights(f, f.Sub(q(21, 1), lambda), alpha1, alpha2)
		groups = []scheme.Group[T]{
			scheme.Broadcast(w1, rAlpha(alpha1)),
			scheme.Broadcast(w2, rAlpha(alpha2)),
			scheme.Broadcast(f.Div(f.Mul(lambda, lambda), q(840, 1)), rBeta(f.Div(one, f.Sqrt(lambda)))),
		}
		degree = 5
	case 13:
		sqrt13 := f.Sqrt(q(13, 1))
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(-16, 21), orbit.S4(f)),
			scheme.Broadcast(f.Div(f.Sub(q(2249, 1), f.Mul(q(391, 1), sqrt13)), q(10920, 1)), rAlpha(f.Div(f.Add(q(2, 1), sqrt13), q(9, 1)))),
			scheme.Broadcast(f.Div(f.Add(q(2249, 1), f.Mul(q(391, 1), sqrt13)), q(10920, 1)), rAlpha(f.Div(f.Sub(q(2, 1), sqrt13), q(9, 1)))),
			scheme.Broadcast(q(2, 105), rBeta(q(1, 2))),
		}
		degree = 5
	case 14:
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(16, 105), orbit.S4(f)),
			scheme.Broadcast(q(1, 280), rAlpha(one)),
			scheme.Broadcast(q(81, 1400), rAlpha(q(-1, 3))),
			scheme.Broadcast(q(64, 525), rAlpha(q(1, 2))),
			scheme.Broadcast(q(2, 105), rBeta(q(1, 2))),
		}
		degree = 5
	default:
		return scheme.Scheme[T]{}, badIndex("liu-vinokur", index)
	}
	return assemble(fmt.Sprintf("Liu-Vinokur %d", index), degree, groups, liuVinokurCitation)
}

// liuVinokurPairWeights solves the moment conditions the article reduces
// to for a pair of radial orbits:
//
//	w1 = (c*a2 - 7) / (420 * a1^2 * (a2 - a1))
//	w2 = (c*a1 - 7) / (420 * a2^2 * (a1 - a2))
//
// with c = 17 for the degree-4 rule and c = 21 - lambda for degree 5.
func liuVinokurPairWeights[T any](f field.Arith[T], c, a1, a2 T) (w1, w2 T) {
	seven := f.FromInt(7, 1)
	k := f.FromInt(420, 1)
	w1 = f.Div(
		f.Sub(f.Mul(c, a2), seven),
		f.Mul(k, f.Mul(f.Mul(a1, a1), f.Sub(a2, a1))),
	)
	w2 = f.Div(
		f.Sub(f.Mul(c, a1), seven),
		f.Mul(k, f.Mul(f.Mul(a2, a2), f.Sub(a1, a2))),
	)
	return w1, w2
}
