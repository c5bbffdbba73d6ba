package planner

import (
	"math"

	"github.com/aaholmes/multiagent-defense/geometry"
	"github.com/aaholmes/multiagent-defense/model"
	"github.com/aaholmes/multiagent-defense/threatmap"
)

// SelectGoal picks the intruder's destination cell inside
// world.ProtectedZone. If the intruder is already inside the zone, its
// own cell is the goal. Otherwise every grid cell whose world-space
// center lies in the zone is a candidate, and the lowest-cost one under
// field wins (ties broken by row-major scan order — the same order
// RasterizeDisk and this scan both traverse cells in). If the zone
// contains no cell center at all (a zone smaller than one grid cell),
// the zone-center cell is the fallback.
func SelectGoal(world model.WorldState, gridConfig geometry.GridConfig, field *threatmap.Field) (geometry.GridNode, bool) {
	if world.ProtectedZone.ContainsPoint(world.Intruder.Position) {
		return geometry.ToGridCoords(world.Intruder.Position, gridConfig)
	}

	centerNode, ok := geometry.ToGridCoords(world.ProtectedZone.Center, gridConfig)
	if !ok {
		return geometry.GridNode{}, false
	}

	cellSize := gridConfig.CellSize()
	gridRadius := int(math.Ceil(world.ProtectedZone.Radius/cellSize)) + 1

	startRow := max(centerNode.Row-gridRadius, 0)
	endRow := min(centerNode.Row+gridRadius+1, gridConfig.Height)
	startCol := max(centerNode.Col-gridRadius, 0)
	endCol := min(centerNode.Col+gridRadius+1, gridConfig.Width)

	bestNode := geometry.GridNode{}
	bestCost := 0.0
	found := false

	for row := startRow; row < endRow; row++ {
		for col := startCol; col < endCol; col++ {
			node := geometry.GridNode{Row: row, Col: col}
			if !world.ProtectedZone.ContainsPoint(geometry.ToWorldCoords(node, gridConfig)) {
				continue
			}

			cost, err := field.At(node)
			if err != nil {
				continue
			}

			if !found || cost < bestCost {
				bestNode, bestCost, found = node, cost, true
			}
		}
	}

	if !found {
		return centerNode, true
	}
	return bestNode, true
}
