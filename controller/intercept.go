package controller

import (
	"github.com/aaholmes/multiagent-defense/geometry"
	"github.com/aaholmes/multiagent-defense/model"
)

// interceptVelocity recomputes the intruder→goal segment's intersection
// with this defender's Apollonian circle and moves toward that target at
// DefenderSpeed. If the predicate no longer holds this tick (the
// intersection that triggered Intercept has since vanished — e.g. the
// intruder moved), the defender pauses: emitting zero velocity rather than
// drifting on a stale target (spec §4.2).
func interceptVelocity(defenderPos geometry.Point, world model.WorldState, apollonian geometry.Circle, maxSpeed float64) geometry.Point {
	target, ok := geometry.SegmentCircleIntersection(
		world.Intruder.Position, world.ProtectedZone.Center, apollonian,
	)
	if !ok {
		return geometry.Point{}
	}

	direction := target.Sub(defenderPos).Normalize()
	return ClampVelocity(direction.Scale(maxSpeed), maxSpeed)
}
