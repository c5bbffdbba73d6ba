package geometry

import "math"

// SegmentCircleIntersection solves |p1 + t(p2-p1) - c.Center|^2 = c.Radius^2
// for t in [0,1] and returns the point at the smallest valid t — the
// intersection closest to the segment's start — or ok=false if none
// exists.
//
// Infinite-radius circles and zero-length segments never intersect
// (spec §4.1): the former has no meaningful boundary, the latter has no
// direction to solve the quadratic along.
func SegmentCircleIntersection(p1, p2 Point, c Circle) (point Point, ok bool) {
	if math.IsInf(c.Radius, 1) {
		return Point{}, false
	}

	dx := p2.X - p1.X
	dy := p2.Y - p1.Y

	fx := p1.X - c.Center.X
	fy := p1.Y - c.Center.Y

	a := dx*dx + dy*dy
	if math.Abs(a) < Tolerance {
		return Point{}, false
	}

	b := 2 * (fx*dx + fy*dy)
	cc := fx*fx + fy*fy - c.Radius*c.Radius

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return Point{}, false
	}

	sqrtDisc := math.Sqrt(discriminant)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	bestT, found := math.Inf(1), false
	for _, t := range [2]float64{t1, t2} {
		if t >= 0 && t <= 1 && t < bestT {
			bestT = t
			found = true
		}
	}
	if !found {
		return Point{}, false
	}

	return Point{X: p1.X + bestT*dx, Y: p1.Y + bestT*dy}, true
}
