package geometry_test

import (
	"math"
	"testing"

	"github.com/aaholmes/multiagent-defense/geometry"
	"github.com/stretchr/testify/require"
)

// TestApollonianCircleBasic reproduces spec scenario S2: D=(0,0), I=(4,0),
// k=0.5 must produce a circle centered at (-4/3, 0) with radius 8/3,
// passing through (4/3, 0) and (-4, 0).
func TestApollonianCircleBasic(t *testing.T) {
	defender := geometry.Point{X: 0, Y: 0}
	intruder := geometry.Point{X: 4, Y: 0}

	c := geometry.ApollonianCircle(defender, intruder, 0.5)

	require.InDelta(t, -4.0/3.0, c.Center.X, 1e-10)
	require.InDelta(t, 0.0, c.Center.Y, 1e-10)
	require.InDelta(t, 8.0/3.0, c.Radius, 1e-10)

	p1 := geometry.Point{X: 4.0 / 3.0, Y: 0}
	p2 := geometry.Point{X: -4, Y: 0}
	require.InDelta(t, c.Radius, c.Center.Distance(p1), 1e-10)
	require.InDelta(t, c.Radius, c.Center.Distance(p2), 1e-10)
}

// TestApollonianCircleConstructionPoints checks property 1: for arbitrary
// D != I and 0 < k < 1, both the internal- and external-division
// construction points lie on the resulting circle.
func TestApollonianCircleConstructionPoints(t *testing.T) {
	cases := []struct {
		name      string
		d, i      geometry.Point
		k         float64
	}{
		{"along x-axis", geometry.Point{X: -3, Y: 0}, geometry.Point{X: 10, Y: 0}, 0.25},
		{"diagonal", geometry.Point{X: 1, Y: 1}, geometry.Point{X: 8, Y: 5}, 0.6},
		{"negative coords", geometry.Point{X: -5, Y: -2}, geometry.Point{X: -1, Y: 9}, 0.4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dx := tc.i.X - tc.d.X
			dy := tc.i.Y - tc.d.Y
			d := math.Hypot(dx, dy)
			u := geometry.Point{X: dx / d, Y: dy / d}

			p1 := tc.d.Add(u.Scale(d * tc.k / (1 + tc.k)))
			p2 := tc.d.Sub(u.Scale(d * tc.k / (1 - tc.k)))

			c := geometry.ApollonianCircle(tc.d, tc.i, tc.k)

			require.InDelta(t, c.Radius, c.Center.Distance(p1), 1e-10)
			require.InDelta(t, c.Radius, c.Center.Distance(p2), 1e-10)
		})
	}
}

// TestApollonianCircleEqualSpeedDegeneracy checks that k=1 produces the
// perpendicular-bisector sentinel: center at the midpoint, radius +Inf.
func TestApollonianCircleEqualSpeedDegeneracy(t *testing.T) {
	d := geometry.Point{X: 0, Y: 0}
	i := geometry.Point{X: 6, Y: 8}

	c := geometry.ApollonianCircle(d, i, 1.0)

	require.InDelta(t, 3.0, c.Center.X, 1e-10)
	require.InDelta(t, 4.0, c.Center.Y, 1e-10)
	require.True(t, math.IsInf(c.Radius, 1))
}

// TestApollonianCircleFasterDefender exercises the k>1 robustness branch.
// It is outside the operational contract (defenders are supposed to be
// slower) but must still return a well-formed, finite circle.
func TestApollonianCircleFasterDefender(t *testing.T) {
	d := geometry.Point{X: 0, Y: 0}
	i := geometry.Point{X: 4, Y: 0}

	c := geometry.ApollonianCircle(d, i, 2.0)

	require.False(t, math.IsInf(c.Radius, 1))
	require.Greater(t, c.Radius, 0.0)
}
