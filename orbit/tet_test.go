package orbit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mshgrid/cubature/field"
	"github.com/mshgrid/cubature/utils"
)

func TestTetOrbitSizesAndBarycentricSums(t *testing.T) {
	f := field.Float64{}
	a, b, c := 0.11, 0.07, 0.31

	cases := []struct {
		name string
		pts  [][]float64
		size int
	}{
		{"S4", S4(f), 1},
		{"S31", S31(f, a), 4},
		{"S22", S22(f, a), 6},
		{"S211", S211(f, a, b), 12},
		{"S1111", S1111(f, a, b, c), 24},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Len(t, tc.pts, tc.size)
			for _, p := range tc.pts {
				require.Len(t, p, 4)
				assert.InDelta(t, 1.0, utils.SumCompensated(p), 1e-15)
			}
		})
	}
}

func TestTetOrbitPointsDistinct(t *testing.T) {
	f := field.Float64{}
	cases := map[string][][]float64{
		"S31":   S31(f, 0.1),
		"S22":   S22(f, 0.2),
		"S211":  S211(f, 0.1, 0.2),
		"S1111": S1111(f, 0.1, 0.2, 0.3),
	}
	for name, pts := range cases {
		seen := map[string]bool{}
		for _, p := range pts {
			key := fmt.Sprintf("%.15f %.15f %.15f %.15f", p[0], p[1], p[2], p[3])
			assert.False(t, seen[key], "%s: duplicate point %v", name, p)
			seen[key] = true
		}
	}
}

func TestS31Pattern(t *testing.T) {
	f := field.Float64{}
	pts := S31(f, 0.25) // degenerate: b = 0.25 as well, centroid repeated
	for _, p := range pts {
		for _, x := range p {
			assert.Equal(t, 0.25, x)
		}
	}

	// Out-of-range parameter is not validated: coordinates go negative.
	pts = S31(f, 0.5)
	assert.Equal(t, -0.5, pts[0][3])
}

func TestNCubeOrbits(t *testing.T) {
	f := field.Float64{}

	full := Full(f, 4, 0.3)
	require.Len(t, full, 1)
	assert.Equal(t, []float64{0.3, 0.3, 0.3, 0.3}, full[0])

	pts := Axis(f, 3, -1.0, 0.5)
	require.Len(t, pts, 3)
	assert.Equal(t, []float64{-1, 0.5, 0.5}, pts[0])
	assert.Equal(t, []float64{0.5, -1, 0.5}, pts[1])
	assert.Equal(t, []float64{0.5, 0.5, -1}, pts[2])
}
