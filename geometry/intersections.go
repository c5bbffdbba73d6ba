package geometry

import "math"

// CircleIntersectionPoints returns the 0, 1, or 2 points where c1 and c2
// cross.
//
// Returns no points when either radius is infinite, the circles are
// disjoint, or one strictly contains the other. Coincident circles (same
// center, equal radii) are treated as ill-defined rather than
// infinite-intersection and also return no points (spec §4.1, §9 Design
// Notes point 3) — callers computing coverage overlap must not read
// "empty" as "no overlap" in that case; the overlap heuristic in the
// controller package accounts for it separately via center distance.
func CircleIntersectionPoints(c1, c2 Circle) []Point {
	if !c1.Intersects(c2) || math.IsInf(c1.Radius, 1) || math.IsInf(c2.Radius, 1) {
		return nil
	}

	d := c1.Center.Distance(c2.Center)

	if d == 0 && math.Abs(c1.Radius-c2.Radius) < Tolerance {
		return nil // coincident circles: infinitely many points, reported as none
	}

	// One circle strictly contains the other.
	minR, maxR := c1.Radius, c2.Radius
	if minR > maxR {
		minR, maxR = maxR, minR
	}
	if d+minR < maxR {
		return nil
	}

	a := (c1.Radius*c1.Radius - c2.Radius*c2.Radius + d*d) / (2 * d)
	hSq := c1.Radius*c1.Radius - a*a
	if hSq < 0 {
		hSq = 0 // guard against rounding noise at near-tangency
	}
	h := math.Sqrt(hSq)

	p := Point{
		X: c1.Center.X + a*(c2.Center.X-c1.Center.X)/d,
		Y: c1.Center.Y + a*(c2.Center.Y-c1.Center.Y)/d,
	}

	if math.Abs(h) < Tolerance {
		return []Point{p}
	}

	return []Point{
		{
			X: p.X + h*(c2.Center.Y-c1.Center.Y)/d,
			Y: p.Y - h*(c2.Center.X-c1.Center.X)/d,
		},
		{
			X: p.X - h*(c2.Center.Y-c1.Center.Y)/d,
			Y: p.Y + h*(c2.Center.X-c1.Center.X)/d,
		},
	}
}

// ArcIntersectionLength returns the length of the arc of c1 that lies
// inside c2.
//
// Zero when the circles are disjoint or either radius is infinite.
// 2*pi*r1 when c1 is entirely inside c2 (the full circumference counts as
// covered). Zero when c2 is strictly inside c1 (no arc of c1 reaches into
// the smaller c2). Otherwise the central angle is recovered from the law
// of cosines, with the cosine argument clamped to [-1,1] before acos to
// absorb rounding error at near-tangency (spec §4.1, §7 "Numerical clamp").
func ArcIntersectionLength(c1, c2 Circle) float64 {
	if !c1.Intersects(c2) || math.IsInf(c1.Radius, 1) || math.IsInf(c2.Radius, 1) {
		return 0
	}

	d := c1.Center.Distance(c2.Center)

	if d+c1.Radius <= c2.Radius {
		return 2 * math.Pi * c1.Radius
	}
	if d+c2.Radius <= c1.Radius {
		return 0
	}

	cosHalfAngle := (c1.Radius*c1.Radius + d*d - c2.Radius*c2.Radius) / (2 * c1.Radius * d)
	cosHalfAngle = clamp(cosHalfAngle, -1, 1)
	halfAngle := math.Acos(cosHalfAngle)

	return c1.Radius * 2 * halfAngle
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
