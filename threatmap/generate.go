package threatmap

import (
	"github.com/aaholmes/multiagent-defense/geometry"
	"github.com/aaholmes/multiagent-defense/model"
)

// Generate builds the threat field for one tick: every cell starts at
// gridConfig.BaseCost, then every defender's Apollonian dominance disk is
// rasterized onto the grid (geometry.RasterizeDisk) and
// gridConfig.ThreatPenalty is added to each cell the disk covers. A cell
// shadowed by more than one defender accumulates the penalty once per
// defender (spec §4.1 — penalties stack, they do not saturate).
func Generate(world model.WorldState, gridConfig geometry.GridConfig, simConfig model.SimConfig) *Field {
	field := newField(gridConfig)

	for _, defender := range world.Defenders {
		apollonian := geometry.ApollonianCircle(defender.Position, world.Intruder.Position, simConfig.SpeedRatio())
		geometry.RasterizeDisk(apollonian, gridConfig, func(node geometry.GridNode) {
			field.addPenalty(node, gridConfig.ThreatPenalty)
		})
	}

	return field
}
