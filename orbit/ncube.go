package orbit

import "github.com/mshgrid/cubature/field"

// Full returns the single n-cube point (v, v, ..., v).
func Full[T any](f field.Arith[T], n int, v T) [][]T {
	p := make([]T, n)
	for i := range p {
		p[i] = v
	}
	return [][]T{p}
}

// Axis returns the n-point axis orbit: point k has coordinate k equal to a
// and all other coordinates equal to b.
func Axis[T any](f field.Arith[T], n int, a, b T) [][]T {
	pts := make([][]T, n)
	for k := 0; k < n; k++ {
		p := make([]T, n)
		for i := range p {
			if i == k {
				p[i] = a
			} else {
				p[i] = b
			}
		}
		pts[k] = p
	}
	return pts
}
