package controller

import "github.com/aaholmes/multiagent-defense/geometry"

// travelVelocity returns the Travel-state velocity: DefenderSpeed along
// the unit vector from the Apollonian circle's center to the protected
// zone's center. If the two centers coincide, the direction is
// undefined and the zero vector is returned (spec §4.2).
func travelVelocity(apollonianCenter, goalCenter geometry.Point, maxSpeed float64) geometry.Point {
	direction := goalCenter.Sub(apollonianCenter).Normalize()
	return direction.Scale(maxSpeed)
}
