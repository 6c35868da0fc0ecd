// Package orbit generates the point sets obtained by applying a reference
// domain's symmetry group to one parameterized representative point.
//
// Tetrahedron orbits are named after their barycentric repetition pattern:
// S31 is [a,a,a,b], S22 is [a,a,b,b], and so on. Orbit sizes are the
// symmetric-group orbit sizes 1, 4, 6, 12 and 24.
//
// Parameters are never range-checked: a parameter outside (0,1) silently
// produces points outside the simplex, which published rules with negative
// weights or vertex/exterior points rely on.
package orbit

import "github.com/mshgrid/cubature/field"

// S4 returns the centroid orbit [1/4, 1/4, 1/4, 1/4].
func S4[T any](f field.Arith[T]) [][]T {
	q := f.FromInt(1, 4)
	return [][]T{{q, q, q, q}}
}

// S31 returns the 4-point orbit with pattern [a,a,a,b], b = 1 - 3a.
func S31[T any](f field.Arith[T], a T) [][]T {
	b := f.Sub(f.FromInt(1, 1), f.Mul(f.FromInt(3, 1), a))
	return [][]T{
		{a, a, a, b},
		{a, a, b, a},
		{a, b, a, a},
		{b, a, a, a},
	}
}

// S22 returns the 6-point orbit with pattern [a,a,b,b], b = 1/2 - a.
func S22[T any](f field.Arith[T], a T) [][]T {
	b := f.Sub(f.FromInt(1, 2), a)
	return [][]T{
		{a, a, b, b},
		{a, b, a, b},
		{b, a, a, b},
		{a, b, b, a},
		{b, a, b, a},
		{b, b, a, a},
	}
}

// S211 returns the 12-point orbit with pattern [a,a,b,c], c = 1 - 2a - b.
func S211[T any](f field.Arith[T], a, b T) [][]T {
	c := f.Sub(f.FromInt(1, 1), f.Add(f.Mul(f.FromInt(2, 1), a), b))
	return [][]T{
		{a, a, b, c},
		{a, b, a, c},
		{b, a, a, c},
		{a, b, c, a},
		{b, a, c, a},
		{b, c, a, a},
		{a, a, c, b},
		{a, c, a, b},
		{c, a, a, b},
		{a, c, b, a},
		{c, a, b, a},
		{c, b, a, a},
	}
}

// S1111 returns the full 24-point orbit of [a,b,c,d], d = 1 - a - b - c.
func S1111[T any](f field.Arith[T], a, b, c T) [][]T {
	d := f.Sub(f.FromInt(1, 1), f.Add(a, f.Add(b, c)))
	return [][]T{
		{a, b, c, d},
		{a, b, d, c},
		{a, c, b, d},
		{a, c, d, b},
		{a, d, b, c},
		{a, d, c, b},
		{b, a, c, d},
		{b, a, d, c},
		{b, c, a, d},
		{b, c, d, a},
		{b, d, a, c},
		{b, d, c, a},
		{c, a, b, d},
		{c, a, d, b},
		{c, b, a, d},
		{c, b, d, a},
		{c, d, a, b},
		{c, d, b, a},
		{d, a, b, c},
		{d, a, c, b},
		{d, b, a, c},
		{d, b, c, a},
		{d, c, a, b},
		{d, c, b, a},
	}
}
