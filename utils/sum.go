package utils

import "math"

// SumCompensated returns the sum of xs using Neumaier's compensated
// summation. Quadrature sums combine many terms of disparate magnitude and
// mixed sign (rules with negative weights), where naive left-to-right
// addition loses digits.
func SumCompensated(xs []float64) float64 {
	var sum, comp float64
	for _, x := range xs {
		t := sum + x
		if math.Abs(sum) >= math.Abs(x) {
			comp += (sum - t) + x
		} else {
			comp += (x - t) + sum
		}
		sum = t
	}
	return sum + comp
}

// SumProductCompensated returns sum_i a[i]*b[i] with compensated
// accumulation. The slices must have equal length.
func SumProductCompensated(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("utils: length mismatch in SumProductCompensated")
	}
	var sum, comp float64
	for i, ai := range a {
		x := ai * b[i]
		t := sum + x
		if math.Abs(sum) >= math.Abs(x) {
			comp += (sum - t) + x
		} else {
			comp += (x - t) + sum
		}
		sum = t
	}
	return sum + comp
}
