package tet

import (
	"fmt"

	"github.com/mshgrid/cubature/field"
	"github.com/mshgrid/cubature/orbit"
	"github.com/mshgrid/cubature/scheme"
)

var keastCitation = scheme.Citation{
	Authors: []string{"P. Keast"},
	Title:   "Moderate degree tetrahedral quadrature formulas",
	Journal: "Computer Methods in Applied Mechanics and Engineering",
	Volume:  "55",
	Year:    "1986",
	Pages:   "339-348",
	URL:     "https://dx.doi.org/10.1016/0045-7825(86)90059-9",
}

// NewKeast returns the Keast rule with the given index (0-10), degrees 1
// to 8. Indices 0-3 predate the article but circulate under Keast's name.
func NewKeast[T any](f field.Arith[T], index int) (scheme.Scheme[T], error) {
	q, d := f.FromInt, f.FromDecimal

	var (
		groups []scheme.Group[T]
		degree int
	)
	switch index {
	case 0:
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(1, 1), orbit.S4(f)),
		}
		degree = 1
	case 1:
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(1, 4), orbit.S31(f, d("0.1381966011250105"))),
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
			scheme.Broadcast(d("0.2177650698804054"), orbit.S31(f, d("0.1438564719343852"))),
			scheme.Broadcast(d("0.0214899534130631"), orbit.S22(f, q(1, 2))),
		}
		degree = 3
	case 4:
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(-148, 1875), orbit.S4(f)),
			scheme.Broadcast(q(343, 7500), orbit.S31(f, q(1, 14))),
			scheme.Broadcast(q(56, 375), orbit.S22(f, d("0.3994035761667992"))),
		}
		degree = 4
	case 5:
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(2, 105), orbit.S22(f, q(1, 2))),
			scheme.Broadcast(d("0.0885898247429807"), orbit.S31(f, d("0.1005267652252045"))),
			scheme.Broadcast(d("0.1328387466855907"), orbit.S31(f, d("0.3143728734931922"))),
		}
		degree = 4
	case 6:
		groups = []scheme.Group[T]{
			scheme.Broadcast(q(6544, 36015), orbit.S4(f)),
			scheme.Broadcast(q(81, 2240), orbit.S31(f, q(1, 3))),
			scheme.Broadcast(q(161051, 2304960), orbit.S31(f, q(1, 11))),
			scheme.Broadcast(q(338, 5145), orbit.S22(f, d("0.0665501535736643"))),
		}
		degree = 5
	case 7:
		groups = []scheme.Group[T]{
			scheme.Broadcast(d("0.0399227502581679"), orbit.S31(f, d("0.2146028712591517"))),
			scheme.Broadcast(d("0.0100772110553207"), orbit.S31(f, d("0.0406739585346113"))),
			scheme.Broadcast(d("0.0553571815436544"), orbit.S31(f, d("0.3223378901422757"))),
			scheme.Broadcast(q(27, 560), orbit.S211(f, d("0.0636610018750175"), d("0.2696723314583159"))),
		}
		degree = 6
	case 8:
		groups = []scheme.Group[T]{
			scheme.Broadcast(d("0.1095853407966528"), orbit.S4(f)),
			scheme.Broadcast(d("0.0635996491464850"), orbit.S31(f, d("0.0782131923303186"))),
			scheme.Broadcast(d("-0.3751064406859797"), orbit.S31(f, d("0.1218432166639044"))),
			scheme.Broadcast(d("0.0293485515784412"), orbit.S31(f, d("0.3325391644464206"))),
			scheme.Broadcast(d("0.0058201058201058"), orbit.S22(f, q(1, 2))),
			scheme.Broadcast(d("0.1653439153439105"), orbit.S211(f, q(1, 10), q(1, 5))),
		}
		degree = 7
	case 9:
		groups = []scheme.Group[T]{
			scheme.Broadcast(d("-0.2359620398477557"), orbit.S4(f)),
			scheme.Broadcast(d("0.0244878963560562"), orbit.S31(f, d("0.1274709365666390"))),
			scheme.Broadcast(d("0.0039485206398261"), orbit.S31(f, d("0.0320788303926323"))),
			scheme.Broadcast(d("0.0263055529507371"), orbit.S22(f, d("0.0497770956432810"))),
			scheme.Broadcast(d("0.0829803830550589"), orbit.S22(f, d("0.1837304473985499"))),
			scheme.Broadcast(d("0.0254426245481023"), orbit.S211(f, d("0.2319010893971509"), d("0.5132800333608811"))),
			scheme.Broadcast(d("0.0134324384376852"), orbit.S211(f, d("0.0379700484718286"), d("0.1937464752488044"))),
		}
		degree = 7
	case 10:
		// The article's tables are scaled by the reference volume 1/6 and
		// misprint the sign of the first weight; both are corrected here.
		six := q(6, 1)
		w := func(s string) T { return f.Mul(six, d(s)) }
		groups = []scheme.Group[T]{
			scheme.Broadcast(w("-0.0393270066412926145"), orbit.S4(f)),
			scheme.Broadcast(w("0.00408131605934270525"), orbit.S31(f, d("0.127470936566639015"))),
			scheme.Broadcast(w("0.000658086773304341943"), orbit.S31(f, d("0.0320788303926322960"))),
			scheme.Broadcast(w("0.00438425882512284693"), orbit.S22(f, d("0.0497770956432810185"))),
			scheme.Broadcast(w("0.0138300638425098166"), orbit.S22(f, d("0.183730447398549945"))),
			scheme.Broadcast(w("0.00424043742468372453"), orbit.S211(f, d("0.231901089397150906"), d("0.0229177878448171174"))),
			scheme.Broadcast(w("0.00223873973961420164"), orbit.S211(f, d("0.0379700484718286102"), d("0.730313427807538396"))),
		}
		degree = 8
	default:
		return scheme.Scheme[T]{}, badIndex("keast", index)
	}
	return assemble(fmt.Sprintf("Keast %d", index), degree, groups, keastCitation)
}
