// Package multiagentdefense is a pure, side-effect-free core for a
// multi-defender interception simulation: Apollonian-circle geometry, a
// three-state (Travel/Engage/Intercept) defender controller, a
// threat-weighted grid builder, and an A* intruder planner.
//
// The module is organized the way a small computational-geometry
// library is organized: one leaf package per concern, each independently
// testable, wired together by thin orchestration at the top of the call
// chain rather than by any shared mutable state.
//
//	geometry/   — Point, Circle, Apollonian-circle construction, circle/
//	              segment intersections, world<->grid coordinate mapping
//	model/      — AgentState, WorldState, SimConfig, ControlState, Grid
//	controller/ — per-defender FSM: state transitions and velocity commands
//	threatmap/  — per-tick scalar cost field over the planning grid
//	planner/    — goal selection and A* search for the intruder
//
// None of these packages perform I/O, logging, or persistence — every
// operation is a function of its inputs; the only state they mutate is a
// threatmap.Field through its Set method and the caller-owned state slice
// that controller.CommandsWithStates updates in place, so an embedder is free to call them from any scheduling model:
// a single-threaded tick loop, a simulation harness driving many worlds
// in parallel, or a test that replays a single tick byte-for-byte.
//
//	go get github.com/aaholmes/multiagent-defense/geometry
package multiagentdefense
