package planner

import (
	"github.com/aaholmes/multiagent-defense/geometry"
	"github.com/aaholmes/multiagent-defense/model"
	"github.com/aaholmes/multiagent-defense/threatmap"
)

// FullPath computes the intruder's complete route to its selected goal
// cell: builds the threat field, picks a goal with SelectGoal, and runs
// Search between the intruder's cell and that goal. Found is false if
// either the intruder's position or the goal falls outside the grid, or if
// no path connects them.
func FullPath(world model.WorldState, gridConfig geometry.GridConfig, simConfig model.SimConfig) model.PathResult {
	field := threatmap.Generate(world, gridConfig, simConfig)

	startNode, ok := geometry.ToGridCoords(world.Intruder.Position, gridConfig)
	if !ok {
		return model.PathResult{Found: false}
	}

	goalNode, ok := SelectGoal(world, gridConfig, field)
	if !ok {
		return model.PathResult{Found: false}
	}

	grid := model.NewGrid(gridConfig)
	return Search(startNode, goalNode, grid, field)
}

// NextPosition returns the world-space point one step along the
// intruder's path toward its goal, or ok=false if no path exists or the
// intruder is already at (or has no room to move past) its goal cell.
func NextPosition(world model.WorldState, gridConfig geometry.GridConfig, simConfig model.SimConfig) (point geometry.Point, ok bool) {
	result := FullPath(world, gridConfig, simConfig)
	if !result.Found || len(result.Path) < 2 {
		return geometry.Point{}, false
	}

	return geometry.ToWorldCoords(result.Path[1], gridConfig), true
}
