// Package tet constructs quadrature schemes on the reference tetrahedron
// and integrates functions over concrete tetrahedra.
//
// Every family constructor is a declarative index -> recipe switch: each
// case lists only {weight, orbit(parameters)} groups and the degree of
// exactness, and assemble turns the groups into a Scheme. Weights are
// normalized so they sum to 1, the reference volume.
package tet

import (
	"fmt"

	"github.com/mshgrid/cubature/field"
	"github.com/mshgrid/cubature/scheme"
)

// assemble flattens orbit groups into a scheme, keeping the first three
// barycentric coordinates per point; the fourth is implicit.
func assemble[T any](name string, degree int, groups []scheme.Group[T], cit scheme.Citation) (scheme.Scheme[T], error) {
	bary, weights, err := scheme.Untangle(groups)
	if err != nil {
		return scheme.Scheme[T]{}, fmt.Errorf("%s: %w", name, err)
	}
	points := make([][]T, len(bary))
	for i, p := range bary {
		points[i] = p[:3]
	}
	return scheme.Scheme[T]{
		Name:     name,
		Dim:      3,
		Degree:   degree,
		Weights:  weights,
		Points:   points,
		Citation: cit,
	}, nil
}

// badIndex builds the error for an unknown index within a family.
func badIndex(family string, index int) error {
	return fmt.Errorf("%s: index %d: %w", family, index, scheme.ErrInvalidSchemeIndex)
}

// radial maps the radial parameter r used by Hammer-Marlowe-Stroud and
// Liu-Vinokur ("alpha" there) to the S31 orbit: the repeated coordinate is
// (1-r)/4 and the distinguished one (1+3r)/4.
func radial[T any](f field.Arith[T], r T) T {
	return f.Div(f.Sub(f.FromInt(1, 1), r), f.FromInt(4, 1))
}
