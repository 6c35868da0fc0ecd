package scheme

import "fmt"

// Group pairs a weight specification with one symmetry orbit's points.
// Construct with Broadcast or PerPoint.
type Group[T any] struct {
	weights   []T
	broadcast bool
	points    [][]T
}

// Broadcast pairs a single weight with every point of an orbit.
func Broadcast[T any](w T, points [][]T) Group[T] {
	return Group[T]{weights: []T{w}, broadcast: true, points: points}
}

// PerPoint pairs one weight per point. len(weights) must equal
// len(points); Untangle reports ErrShapeMismatch otherwise.
func PerPoint[T any](weights []T, points [][]T) Group[T] {
	return Group[T]{weights: weights, points: points}
}

// Untangle flattens an ordered sequence of weighted groups into parallel
// point and weight slices, concatenated in input order. Broadcast weights
// repeat once per point in their group.
func Untangle[T any](groups []Group[T]) (points [][]T, weights []T, err error) {
	var n int
	for i, g := range groups {
		if !g.broadcast && len(g.weights) != len(g.points) {
			return nil, nil, fmt.Errorf(
				"group %d: %d weights for %d points: %w",
				i, len(g.weights), len(g.points), ErrShapeMismatch)
		}
		n += len(g.points)
	}

	points = make([][]T, 0, n)
	weights = make([]T, 0, n)
	for _, g := range groups {
		for i, p := range g.points {
			points = append(points, p)
			if g.broadcast {
				weights = append(weights, g.weights[0])
			} else {
				weights = append(weights, g.weights[i])
			}
		}
	}
	return points, weights, nil
}
