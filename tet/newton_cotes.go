package tet

import (
	"fmt"
	"math/big"

	"github.com/mshgrid/cubature/field"
	"github.com/mshgrid/cubature/scheme"
)

var newtonCotesCitation = scheme.Citation{
	Authors: []string{"P. Silvester"},
	Title:   "Symmetric quadrature formulae for simplexes",
	Journal: "Mathematics of Computation",
	Volume:  "24",
	Year:    "1970",
	Pages:   "95-100",
	URL:     "https://doi.org/10.1090/S0025-5718-1970-0258283-6",
}

// NewtonCotesVariant selects the lattice node placement.
type NewtonCotesVariant uint8

const (
	// Closed places nodes at k/n, including the simplex boundary.
	Closed NewtonCotesVariant = iota
	// Open places nodes at (k+1)/(n+4), strictly interior.
	Open
)

func (v NewtonCotesVariant) String() string {
	if v == Open {
		return "open"
	}
	return "closed"
}

// NewNewtonCotes returns the Newton-Cotes rule of order n >= 0 on the
// tetrahedron, with degree of exactness n. Points are the lattice
// multi-indices (i,j,k,l), i+j+k+l = n, mapped through the variant's node
// function; the weight of each point is the exact integral of the product
// of the four 1-D Lagrange basis polynomials attached to its barycentric
// indices. All polynomial algebra runs in big.Rat; high orders therefore
// lose nothing to cancellation, even though several weights are negative
// and large.
func NewNewtonCotes[T any](f field.Arith[T], n int, variant NewtonCotesVariant) (scheme.Scheme[T], error) {
	if n < 0 {
		return scheme.Scheme[T]{}, badIndex("newton-cotes", n)
	}

	var node func(k int) *big.Rat
	switch variant {
	case Closed:
		if n == 0 {
			// k/n is indeterminate at order zero; the single point goes
			// to the centroid.
			node = func(int) *big.Rat { return big.NewRat(1, 4) }
		} else {
			node = func(k int) *big.Rat { return big.NewRat(int64(k), int64(n)) }
		}
	case Open:
		node = func(k int) *big.Rat { return big.NewRat(int64(k)+1, int64(n)+4) }
	default:
		return scheme.Scheme[T]{}, fmt.Errorf("newton-cotes: variant %d: %w", variant, scheme.ErrInvalidSchemeIndex)
	}

	// Lagrange coefficient slices are shared across the (i,j,k,l) loop;
	// each axis reuses the same univariate polynomials.
	coeffs := make([][]*big.Rat, n+1)
	for m := 0; m <= n; m++ {
		coeffs[m] = lagrangeCoeffs(m, node)
	}

	var (
		points  [][]T
		weights []T
	)
	for i := 0; i <= n; i++ {
		for j := 0; j <= n-i; j++ {
			for k := 0; k <= n-i-j; k++ {
				l := n - i - j - k
				points = append(points, []T{
					f.FromRat(node(i)),
					f.FromRat(node(j)),
					f.FromRat(node(k)),
					f.FromRat(node(l)),
				})
				weights = append(weights, f.FromRat(
					integrateLagrangeProduct(coeffs[i], coeffs[j], coeffs[k], coeffs[l])))
			}
		}
	}

	groups := []scheme.Group[T]{scheme.PerPoint(weights, points)}
	name := fmt.Sprintf("Newton-Cotes (%s, %d)", variant, n)
	return assemble(name, n, groups, newtonCotesCitation)
}

// lagrangeCoeffs returns the coefficients (ascending powers) of
//
//	prod_{k<m} (t - node(k)) / (node(m) - node(k))
//
// the nodal polynomial that is 1 at node(m) and 0 at all lower nodes.
func lagrangeCoeffs(m int, node func(int) *big.Rat) []*big.Rat {
	c := []*big.Rat{big.NewRat(1, 1)}
	pm := node(m)
	for k := 0; k < m; k++ {
		nk := node(k)
		den := new(big.Rat).Sub(pm, nk)
		next := make([]*big.Rat, len(c)+1)
		for i := range next {
			next[i] = new(big.Rat)
		}
		for i, ci := range c {
			scaled := new(big.Rat).Quo(ci, den)
			next[i+1].Add(next[i+1], scaled)
			next[i].Sub(next[i], new(big.Rat).Mul(scaled, nk))
		}
		c = next
	}
	return c
}

// integrateLagrangeProduct integrates P0(l0)*P1(l1)*P2(l2)*P3(l3) exactly
// over the reference tetrahedron (volume normalized to 1), expanding the
// product monomial by monomial and applying
//
//	integral l0^a l1^b l2^c l3^d dV = a! b! c! d! * 6 / (a+b+c+d+3)!
func integrateLagrangeProduct(p0, p1, p2, p3 []*big.Rat) *big.Rat {
	w := new(big.Rat)
	coef := new(big.Rat)
	for a, ca := range p0 {
		if ca.Sign() == 0 {
			continue
		}
		for b, cb := range p1 {
			if cb.Sign() == 0 {
				continue
			}
			for c, cc := range p2 {
				if cc.Sign() == 0 {
					continue
				}
				for d, cd := range p3 {
					if cd.Sign() == 0 {
						continue
					}
					coef.Mul(ca, cb)
					coef.Mul(coef, cc)
					coef.Mul(coef, cd)
					w.Add(w, coef.Mul(coef, monomialIntegral(a, b, c, d)))
				}
			}
		}
	}
	return w
}

// monomialIntegral returns a! b! c! d! * 6 / (a+b+c+d+3)! as an exact
// rational.
func monomialIntegral(a, b, c, d int) *big.Rat {
	num := new(big.Int).Mul(factorial(a), factorial(b))
	num.Mul(num, factorial(c))
	num.Mul(num, factorial(d))
	num.Mul(num, big.NewInt(6))
	return new(big.Rat).SetFrac(num, factorial(a+b+c+d+3))
}

func factorial(n int) *big.Int {
	return new(big.Int).MulRange(1, int64(n))
}
