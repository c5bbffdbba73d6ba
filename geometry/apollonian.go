package geometry

import "math"

// ApollonianCircle constructs the dominance circle of a defender against an
// intruder for a given speed ratio k = defenderSpeed/intruderSpeed.
//
// The Apollonian circle is the locus of points P such that
// |P-defender| / |P-intruder| = k. For 0 < k < 1 (the defender is slower,
// the operational contract per spec §3), the circle is built from two
// points on the defender→intruder line:
//
//   - an internal-division point, at distance d·k/(1+k) from defender
//     toward intruder, and
//   - an external-division point, at distance d·k/(1-k) from defender
//     away from intruder,
//
// where d = |intruder-defender|. The circle's center is the midpoint of
// those two points and its radius is half their separation.
//
// When |k-1| < Tolerance (equal speeds), the construction degenerates to
// the perpendicular bisector of defender and intruder; this is reported as
// a circle centered on the midpoint with Radius = +Inf, never as a
// language-level "no value" — the center remains meaningful even though the
// boundary it describes is a line, not a circle (spec §9 Design Notes).
//
// For k > 1 (the defender faster than the intruder, outside the contract
// but accepted for robustness), the same internal/external division is
// applied directly along the defender→intruder vector rather than via a
// unit vector, per spec §4.1.
func ApollonianCircle(defender, intruder Point, speedRatio float64) Circle {
	if math.Abs(speedRatio-1.0) < Tolerance {
		midpoint := Point{
			X: (defender.X + intruder.X) / 2,
			Y: (defender.Y + intruder.Y) / 2,
		}
		return Circle{Center: midpoint, Radius: math.Inf(1)}
	}

	k := speedRatio
	dx := intruder.X - defender.X
	dy := intruder.Y - defender.Y
	d := math.Sqrt(dx*dx + dy*dy)

	var p1, p2 Point
	if k < 1.0 {
		ux := dx / d
		uy := dy / d

		d1 := d * k / (1.0 + k)
		p1 = Point{X: defender.X + d1*ux, Y: defender.Y + d1*uy}

		d2 := d * k / (1.0 - k)
		p2 = Point{X: defender.X - d2*ux, Y: defender.Y - d2*uy}
	} else {
		t1 := k / (k + 1.0)
		t2 := k / (k - 1.0)

		p1 = Point{X: defender.X + t1*dx, Y: defender.Y + t1*dy}
		p2 = Point{X: defender.X + t2*dx, Y: defender.Y + t2*dy}
	}

	center := Point{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
	return Circle{Center: center, Radius: center.Distance(p1)}
}
