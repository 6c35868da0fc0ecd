// Package scheme defines the quadrature scheme value type, its citation
// metadata, and the flattening of weighted symmetry-orbit groups into the
// parallel weight/point tables a scheme carries.
package scheme

import (
	"errors"

	"github.com/mshgrid/cubature/field"
)

var (
	// ErrInvalidSchemeIndex reports an unknown family/index combination.
	ErrInvalidSchemeIndex = errors.New("scheme: invalid scheme index")

	// ErrShapeMismatch reports a per-point weight array whose length
	// disagrees with its orbit's point count. It indicates a bug in a
	// rule table, not a caller error.
	ErrShapeMismatch = errors.New("scheme: weight/point shape mismatch")
)

// Citation identifies the publication a rule family is drawn from.
// Pass-through metadata, never computed.
type Citation struct {
	Authors []string
	Title   string
	Journal string
	Volume  string
	Number  string
	Month   string
	Year    string
	Pages   string
	URL     string
}

// Scheme is an immutable quadrature rule on a reference domain.
//
// For the tetrahedron (Dim == 3) each point holds the first three
// barycentric coordinates; the fourth is 1 minus their sum. For the n-cube
// each point holds n coordinates in [-1, 1]. Weights sum to the reference
// volume: 1 for the tetrahedron, 2^n for the n-cube.
//
// Schemes are constructed once and may be shared across goroutines; no
// field is mutated after construction.
type Scheme[T any] struct {
	Name     string
	Dim      int
	Degree   int // highest polynomial degree integrated exactly
	Weights  []T
	Points   [][]T
	Citation Citation
}

// ToFloat64 converts a scheme built over any field to the float64 form the
// integrators consume.
func ToFloat64[T any](f field.Arith[T], s Scheme[T]) Scheme[float64] {
	w := make([]float64, len(s.Weights))
	for i, wi := range s.Weights {
		w[i] = f.Float(wi)
	}
	pts := make([][]float64, len(s.Points))
	for i, p := range s.Points {
		row := make([]float64, len(p))
		for j, c := range p {
			row[j] = f.Float(c)
		}
		pts[i] = row
	}
	return Scheme[float64]{
		Name:     s.Name,
		Dim:      s.Dim,
		Degree:   s.Degree,
		Weights:  w,
		Points:   pts,
		Citation: s.Citation,
	}
}
