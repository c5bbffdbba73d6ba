package controller

import "github.com/aaholmes/multiagent-defense/geometry"

// ClampVelocity scales velocity down to maxSpeed if it exceeds it,
// preserving direction. Velocities at or under maxSpeed pass through
// unchanged.
func ClampVelocity(velocity geometry.Point, maxSpeed float64) geometry.Point {
	speed := velocity.Magnitude()
	if speed <= maxSpeed {
		return velocity
	}
	return velocity.Normalize().Scale(maxSpeed)
}
