// Package model holds the value types the controller, threatmap, and
// planner packages share: agent and world snapshots, simulation
// configuration, the per-defender control state, path results, and the
// 4-connected grid substrate used for planning.
//
// Every type here has value semantics and no custom equality beyond
// structural comparison (spec §3, §4.5). The only entity that survives
// across simulation ticks is the caller-owned FSM state vector
// ([]ControlState) passed into controller.CommandsWithStates — everything
// else is scoped to a single tick.
package model
