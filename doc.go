// Package cubature generates and evaluates quadrature rules for
// integrating functions over reference geometric domains: the tetrahedron
// and the n-cube.
//
// Rules come from pre-tabulated point/weight schemes in the numerical-
// analysis literature (Hammer-Marlowe-Stroud, Yu, Keast, Liu-Vinokur,
// Zienkiewicz, Zhang-Cui-Liu, Shunn-Ham, Stroud) plus a generative
// symmetric Newton-Cotes family of arbitrary order. Each rule is built
// from symmetry orbits of a few free parameters, flattened into parallel
// weight/point tables, and carries its literature citation.
//
// Construction is generic over the numeric field: pass field.Float64{}
// for ordinary floating point or field.NewRat() for exact rational
// arithmetic (irrational constants evaluated to configurable precision).
//
//	s, err := cubature.New(field.Float64{}, cubature.Keast, 4)
//	...
//	v := tet.Integrate(fn, verts, s)
//
// Schemes are immutable after construction and safe to share across
// goroutines. Integration maps the reference points onto a concrete
// domain instance by affine combination of its vertices, scales by the
// signed Jacobian factor, and reduces with compensated summation.
package cubature
