package tet

import (
	"fmt"

	"github.com/mshgrid/cubature/field"
	"github.com/mshgrid/cubature/orbit"
	"github.com/mshgrid/cubature/scheme"
)

var shunnHamCitation = scheme.Citation{
	Authors: []string{"Lee Shunn", "Frank Ham"},
	Title:   "Symmetric quadrature rules for tetrahedra based on a cubic close-packed lattice arrangement",
	Journal: "Journal of Computational and Applied Mathematics",
	Year:    "2012",
	URL:     "https://dx.doi.org/10.1016/j.cam.2012.03.032",
}

// NewShunnHam returns the Shunn-Ham rule with the given index (1-6):
// 1, 4, 10, 20, 35 and 56 points on the cubic close-packed lattice,
// degrees 1 to 7, all weights positive.
func NewShunnHam[T any](f field.Arith[T], index int) (scheme.Scheme[T], error) {
	q, d := f.FromInt, f.FromDecimal

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
			scheme.Broadcast(q(1, 4), orbit.S31(f, d("0.1381966011250110"))),
		}
		degree = 2
	case 3:
		groups = []scheme.Group[T]{
			scheme.Broadcast(d("0.0476331348432089"), orbit.S31(f, d("0.0738349017262234"))),
			scheme.Broadcast(d("0.1349112434378610"), orbit.S22(f, d("0.0937556561159491"))),
		}
		degree = 3
	case 4:
		groups = []scheme.Group[T]{
			scheme.Broadcast(d("0.0070670747944695"), orbit.S31(f, d("0.0323525947272439"))),
			scheme.Broadcast(d("0.0469986689718877"), orbit.S211(f, d("0.0603604415251421"), d("0.2626825838877790"))),
			scheme.Broadcast(d("0.1019369182898680"), orbit.S31(f, d("0.3097693042728620"))),
		}
		degree = 5
	case 5:
		groups = []scheme.Group[T]{
			scheme.Broadcast(d("0.0021900463965388"), orbit.S31(f, d("0.0267367755543735"))),
			scheme.Broadcast(d("0.0143395670177665"), orbit.S211(f, d("0.0391022406356488"), d("0.7477598884818090"))),
			scheme.Broadcast(d("0.0250305395686746"), orbit.S22(f, d("0.0452454000155172"))),
			scheme.Broadcast(d("0.0479839333057554"), orbit.S211(f, d("0.2232010379623150"), d("0.0504792790607720"))),
			scheme.Broadcast(d("0.0931745731195340"), orbit.S4(f)),
		}
		degree = 6
	case 6:
		groups = []scheme.Group[T]{
			scheme.Broadcast(d("0.0010373112336140"), orbit.S31(f, d("0.0149520651530592"))),
			scheme.Broadcast(d("0.0096016645399480"), orbit.S211(f, d("0.0340960211962615"), d("0.1518319491659370"))),
			scheme.Broadcast(d("0.0164493976798232"), orbit.S211(f, d("0.0462051504150017"), d("0.5526556431060170"))),
			scheme.Broadcast(d("0.0153747766513310"), orbit.S211(f, d("0.2281904610687610"), d("0.0055147549744775"))),
			scheme.Broadcast(d("0.0293520118375230"), orbit.S211(f, d("0.3523052600879940"), d("0.0992057202494530"))),
			scheme.Broadcast(d("0.0366291366405108"), orbit.S31(f, d("0.1344783347929940"))),
		}
		degree = 7
	default:
		return scheme.Scheme[T]{}, badIndex("shunn-ham", index)
	}
	return assemble(fmt.Sprintf("Shunn-Ham %d", index), degree, groups, shunnHamCitation)
}
