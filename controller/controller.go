package controller

import (
	"github.com/aaholmes/multiagent-defense/geometry"
	"github.com/aaholmes/multiagent-defense/model"
)

// Step evaluates one defender's FSM transition and resulting velocity
// command. current is the defender's state at the start of the tick;
// the returned state is what it holds at the end of it.
func Step(world model.WorldState, defenderIndex int, current model.ControlState, config model.SimConfig) (model.ControlState, geometry.Point) {
	defender := world.Defenders[defenderIndex]
	apollonian := geometry.ApollonianCircle(defender.Position, world.Intruder.Position, config.SpeedRatio())

	state := nextState(current, apollonian, world)

	var velocity geometry.Point
	switch state {
	case model.Travel:
		velocity = travelVelocity(apollonian.Center, world.ProtectedZone.Center, config.DefenderSpeed)
	case model.Engage:
		velocity = engageVelocity(world, defenderIndex, config)
	case model.Intercept:
		velocity = interceptVelocity(defender.Position, world, apollonian, config.DefenderSpeed)
	}

	return state, ClampVelocity(velocity, config.DefenderSpeed)
}

// Commands computes one velocity command per defender in world, treating
// every defender as starting the tick in model.Travel. This is the
// stateless legacy entry point: callers that need Intercept's
// latch-once-triggered behavior to persist across ticks must use
// CommandsWithStates instead and carry the returned state vector forward
// themselves.
func Commands(world model.WorldState, config model.SimConfig) []geometry.Point {
	velocities := make([]geometry.Point, len(world.Defenders))
	for i := range world.Defenders {
		_, velocity := Step(world, i, model.Travel, config)
		velocities[i] = velocity
	}
	return velocities
}

// CommandsWithStates computes one velocity command per defender in
// world, carrying each defender's ControlState in from the previous
// call. states is extended with model.Travel if shorter than
// world.Defenders, and is mutated in place to hold each defender's
// post-tick state for the caller to pass back in on the next tick.
func CommandsWithStates(world model.WorldState, states *[]model.ControlState, config model.SimConfig) []geometry.Point {
	for len(*states) < len(world.Defenders) {
		*states = append(*states, model.Travel)
	}

	velocities := make([]geometry.Point, len(world.Defenders))
	for i := range world.Defenders {
		updated, velocity := Step(world, i, (*states)[i], config)
		(*states)[i] = updated
		velocities[i] = velocity
	}
	return velocities
}
