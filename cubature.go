package cubature

import (
	"fmt"

	"github.com/mshgrid/cubature/field"
	"github.com/mshgrid/cubature/ncube"
	"github.com/mshgrid/cubature/scheme"
	"github.com/mshgrid/cubature/tet"
)

// Family identifies a published scheme family on the tetrahedron.
type Family string

const (
	HammerMarloweStroud Family = "hammer-marlowe-stroud"
	Yu                  Family = "yu"
	Keast               Family = "keast"
	LiuVinokur          Family = "liu-vinokur"
	Zienkiewicz         Family = "zienkiewicz"
	ZhangCuiLiu         Family = "zhang-cui-liu"
	ShunnHam            Family = "shunn-ham"
	NewtonCotesClosed   Family = "newton-cotes-closed"
	NewtonCotesOpen     Family = "newton-cotes-open"
)

// New builds the tetrahedron scheme selected by family and index. For the
// Newton-Cotes families the index is the order. Unknown families and
// indices report scheme.ErrInvalidSchemeIndex.
func New[T any](f field.Arith[T], family Family, index int) (scheme.Scheme[T], error) {
	switch family {
	case HammerMarloweStroud:
		return tet.NewHammerMarloweStroud(f, index)
	case Yu:
		return tet.NewYu(f, index)
	case Keast:
		return tet.NewKeast(f, index)
	case LiuVinokur:
		return tet.NewLiuVinokur(f, index)
	case Zienkiewicz:
		return tet.NewZienkiewicz(f, index)
	case ZhangCuiLiu:
		return tet.NewZhangCuiLiu(f, index)
	case ShunnHam:
		return tet.NewShunnHam(f, index)
	case NewtonCotesClosed:
		return tet.NewNewtonCotes(f, index, tet.Closed)
	case NewtonCotesOpen:
		return tet.NewNewtonCotes(f, index, tet.Open)
	}
	return scheme.Scheme[T]{}, fmt.Errorf("cubature: family %q: %w", family, scheme.ErrInvalidSchemeIndex)
}

// NCube builds the n-cube scheme of the given Stroud variant (its degree,
// 2 or 3) in dimension n.
func NCube[T any](f field.Arith[T], n, variant int) (scheme.Scheme[T], error) {
	switch variant {
	case 2:
		return ncube.NewStroud2(f, n)
	case 3:
		return ncube.NewStroud3(f, n)
	}
	return scheme.Scheme[T]{}, fmt.Errorf("cubature: n-cube variant %d: %w", variant, scheme.ErrInvalidSchemeIndex)
}
