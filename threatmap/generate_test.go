package threatmap_test

import (
	"testing"

	"github.com/aaholmes/multiagent-defense/geometry"
	"github.com/aaholmes/multiagent-defense/model"
	"github.com/aaholmes/multiagent-defense/threatmap"
	"github.com/stretchr/testify/require"
)

// TestGenerateBaseCostEverywhereWithNoDefenders covers the empty case: no
// defenders means every cell holds exactly BaseCost.
func TestGenerateBaseCostEverywhereWithNoDefenders(t *testing.T) {
	gridConfig, err := geometry.NewGridConfig(5, 5, 0, 10, 0, 10, 1, 9)
	require.NoError(t, err)
	simConfig, err := model.NewSimConfig(0.1, 1, 2, 1, 1e-6)
	require.NoError(t, err)

	world := model.WorldState{
		Intruder:      model.AgentState{Position: geometry.Point{X: 9, Y: 9}},
		ProtectedZone: geometry.Circle{Center: geometry.Point{X: 0, Y: 0}, Radius: 1},
	}

	field := threatmap.Generate(world, gridConfig, simConfig)

	for row := 0; row < gridConfig.Height; row++ {
		for col := 0; col < gridConfig.Width; col++ {
			cost, err := field.At(geometry.GridNode{Row: row, Col: col})
			require.NoError(t, err)
			require.Equal(t, 1.0, cost)
		}
	}
}

// TestGenerateAddsPenaltyInsideDefenderDisk covers property 11: a cell at
// the defender's own position (the defender always lies inside its
// Apollonian disk when speeds differ, between the two construction points
// on opposite sides of it; the disk's center lies on the side away from
// the intruder) must exceed BaseCost; a cell far outside every disk stays
// at BaseCost.
func TestGenerateAddsPenaltyInsideDefenderDisk(t *testing.T) {
	gridConfig, err := geometry.NewGridConfig(20, 20, -50, 50, -50, 50, 1, 9)
	require.NoError(t, err)
	simConfig, err := model.NewSimConfig(0.1, 1, 2, 1, 1e-6)
	require.NoError(t, err)

	world := model.WorldState{
		Defenders: []model.AgentState{
			{Position: geometry.Point{X: 0, Y: 0}},
		},
		Intruder:      model.AgentState{Position: geometry.Point{X: 10, Y: 0}},
		ProtectedZone: geometry.Circle{Center: geometry.Point{X: -40, Y: -40}, Radius: 1},
	}

	field := threatmap.Generate(world, gridConfig, simConfig)

	defenderNode, ok := geometry.ToGridCoords(world.Defenders[0].Position, gridConfig)
	require.True(t, ok)
	costAtDefender, err := field.At(defenderNode)
	require.NoError(t, err)
	require.Greater(t, costAtDefender, gridConfig.BaseCost)

	farNode := geometry.GridNode{Row: 0, Col: 0}
	costFar, err := field.At(farNode)
	require.NoError(t, err)
	require.Equal(t, gridConfig.BaseCost, costFar)
}

// TestGenerateStacksPenaltyForOverlappingDefenders covers the
// accumulation rule: a cell inside two defenders' disks gets the
// penalty added twice, not saturated to a single application.
func TestGenerateStacksPenaltyForOverlappingDefenders(t *testing.T) {
	gridConfig, err := geometry.NewGridConfig(20, 20, -50, 50, -50, 50, 1, 9)
	require.NoError(t, err)
	simConfig, err := model.NewSimConfig(0.1, 1, 2, 1, 1e-6)
	require.NoError(t, err)

	world := model.WorldState{
		Defenders: []model.AgentState{
			{Position: geometry.Point{X: 0, Y: 0}},
			{Position: geometry.Point{X: 0.5, Y: 0}},
		},
		Intruder:      model.AgentState{Position: geometry.Point{X: 10, Y: 0}},
		ProtectedZone: geometry.Circle{Center: geometry.Point{X: -40, Y: -40}, Radius: 1},
	}

	field := threatmap.Generate(world, gridConfig, simConfig)

	node, ok := geometry.ToGridCoords(geometry.Point{X: 0, Y: 0}, gridConfig)
	require.True(t, ok)
	cost, err := field.At(node)
	require.NoError(t, err)
	require.Equal(t, gridConfig.BaseCost+2*gridConfig.ThreatPenalty, cost)
}

// TestFieldAtOutOfBounds covers the bounds-checked accessor contract
// shared with matrix.Dense's At/Set.
func TestFieldAtOutOfBounds(t *testing.T) {
	gridConfig, err := geometry.NewGridConfig(3, 3, 0, 3, 0, 3, 1, 9)
	require.NoError(t, err)
	simConfig, err := model.NewSimConfig(0.1, 1, 2, 1, 1e-6)
	require.NoError(t, err)

	world := model.WorldState{
		Intruder:      model.AgentState{Position: geometry.Point{X: 1, Y: 1}},
		ProtectedZone: geometry.Circle{Center: geometry.Point{X: 0, Y: 0}, Radius: 1},
	}
	field := threatmap.Generate(world, gridConfig, simConfig)

	_, err = field.At(geometry.GridNode{Row: -1, Col: 0})
	require.ErrorIs(t, err, threatmap.ErrIndexOutOfBounds)

	err = field.Set(geometry.GridNode{Row: 10, Col: 0}, 5)
	require.ErrorIs(t, err, threatmap.ErrIndexOutOfBounds)
}
