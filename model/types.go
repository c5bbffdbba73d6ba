package model

import "github.com/aaholmes/multiagent-defense/geometry"

// AgentState is the position and velocity of a single agent (defender or
// intruder). Velocity is advisory: the core snapshots it but does not rely
// on it for any predicate (spec §3).
type AgentState struct {
	Position geometry.Point
	Velocity geometry.Point
}

// WorldState is one tick's immutable snapshot: an ordered sequence of
// defenders, the single intruder, and the protected zone. Defender order
// is stable and defines the indices the controller and FSM state vector
// use (spec §3).
type WorldState struct {
	Defenders     []AgentState
	Intruder      AgentState
	ProtectedZone geometry.Circle
}

// Clone returns a deep copy of w. The defenders slice is copied so that
// mutating the clone's positions (as the controller's engage-loss gradient
// does) never aliases the original (spec §4.2, §5).
func (w WorldState) Clone() WorldState {
	defenders := make([]AgentState, len(w.Defenders))
	copy(defenders, w.Defenders)
	return WorldState{
		Defenders:     defenders,
		Intruder:      w.Intruder,
		ProtectedZone: w.ProtectedZone,
	}
}

// ControlState is the per-defender finite-state-machine state (spec §4.2).
// Intercept is terminal: once a defender reaches it, subsequent ticks never
// transition it away.
type ControlState int

const (
	// Travel is the initial state: move toward the goal along the
	// Apollonian centerline.
	Travel ControlState = iota
	// Engage is entered when the defender's Apollonian circle overlaps the
	// protected zone; velocity follows a gradient-descent loss.
	Engage
	// Intercept is entered when the intruder's direct path to the goal
	// crosses the defender's Apollonian circle; terminal.
	Intercept
)

// String renders the control state for logging/debugging contexts (tests,
// Example output).
func (s ControlState) String() string {
	switch s {
	case Travel:
		return "Travel"
	case Engage:
		return "Engage"
	case Intercept:
		return "Intercept"
	default:
		return "Unknown"
	}
}

// PathResult is the outcome of a planner search: the ordered sequence of
// grid nodes from start to goal, the summed cost of nodes entered after
// start, and whether a path was found at all. If Found is false, Path is
// empty and Cost is zero (spec §3).
type PathResult struct {
	Path  []geometry.GridNode
	Cost  float64
	Found bool
}
