// Package geometry provides the 2D primitives and predicates the rest of
// this module builds on: points and circles, the Apollonian-circle
// construction that underlies cooperative defender coverage, circle/circle
// and segment/circle intersection routines, and the grid↔world conversions
// shared by the threat-map builder and the intruder planner.
//
// What:
//
//   - Point / Circle: value types with distance, angle, and containment ops.
//   - ApollonianCircle: locus of points whose distance ratio to two fixed
//     points equals a fixed k; the dominance boundary between a defender
//     and the intruder it is slower than.
//   - CircleIntersectionPoints / ArcIntersectionLength: circle-circle
//     geometry used to score coverage and overlap between defenders.
//   - SegmentCircleIntersection: used to test whether the intruder's direct
//     path to the goal crosses a defender's dominance circle.
//   - ToGridCoords / ToWorldCoords / RasterizeDisk: the only place this
//     module converts between continuous world coordinates and grid cells.
//
// Why:
//
//   - Every predicate here is total: degenerate input (coincident points,
//     a zero-length segment, an infinite-radius circle) produces a
//     documented sentinel value, never a panic or an error. The controller
//     and planner packages lean on this to stay branch-free at call sites.
//
// Numerical tolerance:
//
//   - Equality comparisons and the equal-speed Apollonian degeneracy check
//     use 1e-10, matching the rest of the module.
package geometry
