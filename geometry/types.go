package geometry

import "math"

// Tolerance is the numerical tolerance used throughout this module for
// equality comparisons and degeneracy checks (spec §6).
const Tolerance = 1e-10

// Point is a value in the 2D plane. Zero value is the origin.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between p and other.
func (p Point) Distance(other Point) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// AngleTo returns the angle, in radians, of the vector from p to other,
// via the two-argument arctangent.
func (p Point) AngleTo(other Point) float64 {
	return math.Atan2(other.Y-p.Y, other.X-p.X)
}

// Add returns p + other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns p - other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns p scaled by a scalar factor.
func (p Point) Scale(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// Magnitude returns the Euclidean norm of p treated as a vector.
func (p Point) Magnitude() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Normalize returns the unit vector in the direction of p, or the zero
// vector when p itself is the zero vector.
func (p Point) Normalize() Point {
	mag := p.Magnitude()
	if mag == 0 {
		return Point{}
	}
	return Point{X: p.X / mag, Y: p.Y / mag}
}

// Circle is a circle in the plane. Radius may be +Inf to denote the
// degenerate equal-speed Apollonian case (spec §3); it is never negative
// for any circle this module constructs.
type Circle struct {
	Center Point
	Radius float64
}

// Intersects reports whether c and other overlap or touch. Infinite-radius
// circles never intersect anything — the bisector degeneracy carries no
// meaningful boundary to cross.
func (c Circle) Intersects(other Circle) bool {
	if math.IsInf(c.Radius, 1) || math.IsInf(other.Radius, 1) {
		return false
	}
	return c.Center.Distance(other.Center) <= c.Radius+other.Radius
}

// ContainsPoint reports whether p lies within or on c. Always false for an
// infinite-radius circle.
func (c Circle) ContainsPoint(p Point) bool {
	if math.IsInf(c.Radius, 1) {
		return false
	}
	return c.Center.Distance(p) <= c.Radius
}
