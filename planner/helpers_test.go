package planner_test

import (
	"testing"

	"github.com/aaholmes/multiagent-defense/geometry"
	"github.com/aaholmes/multiagent-defense/model"
	"github.com/aaholmes/multiagent-defense/threatmap"
	"github.com/stretchr/testify/require"
)

// uniformFieldFor builds world's threat field with no defenders, so
// every cell holds exactly gridConfig.BaseCost — a neutral backdrop for
// tests that only care about SelectGoal's or Search's own logic.
func uniformFieldFor(t *testing.T, world model.WorldState, gridConfig geometry.GridConfig, simConfig model.SimConfig) *threatmap.Field {
	t.Helper()
	require.Empty(t, world.Defenders, "uniformFieldFor expects a defender-free world")
	return threatmap.Generate(world, gridConfig, simConfig)
}
