package controller

import (
	"github.com/aaholmes/multiagent-defense/geometry"
	"github.com/aaholmes/multiagent-defense/model"
)

// nextState evaluates the FSM transition for one defender given its
// Apollonian circle and the world it lives in. current is the state the
// defender held at the start of the tick; once current is
// model.Intercept, the predicates are skipped and Intercept is returned
// unconditionally (spec §4.2 "Intercept... terminal").
func nextState(current model.ControlState, apollonian geometry.Circle, world model.WorldState) model.ControlState {
	if current == model.Intercept {
		return model.Intercept
	}

	if _, crosses := geometry.SegmentCircleIntersection(
		world.Intruder.Position, world.ProtectedZone.Center, apollonian,
	); crosses {
		return model.Intercept
	}

	if apollonian.Intersects(world.ProtectedZone) {
		return model.Engage
	}

	return model.Travel
}
