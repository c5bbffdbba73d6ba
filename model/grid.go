package model

import "github.com/aaholmes/multiagent-defense/geometry"

// Grid is the 4-connected (von Neumann) planning substrate the planner
// package searches over: bounds checks, a fixed package-level
// neighbor-offset table and row-major indexing for one GridConfig, in the
// style of gridgraph.GridGraph — but fixed to Conn4, since the intruder
// planner's A* is 4-connected only (spec §4.4). threatmap.Field does its
// own row-major indexing and does not use Grid.
type Grid struct {
	Config geometry.GridConfig
}

// NewGrid builds a Grid over the given configuration.
func NewGrid(config geometry.GridConfig) Grid {
	return Grid{Config: config}
}

// InBounds reports whether (row, col) lies within the grid.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Config.Height && col >= 0 && col < g.Config.Width
}

// neighborOffsets is the fixed von Neumann neighborhood: right, left, down,
// up, matching the order used by the original pathfinding implementation
// this grid is grounded on.
var neighborOffsets = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// Neighbors4 returns the in-bounds 4-connected neighbors of node.
func (g Grid) Neighbors4(node geometry.GridNode) []geometry.GridNode {
	neighbors := make([]geometry.GridNode, 0, 4)
	for _, d := range neighborOffsets {
		row, col := node.Row+d[0], node.Col+d[1]
		if g.InBounds(row, col) {
			neighbors = append(neighbors, geometry.GridNode{Row: row, Col: col})
		}
	}
	return neighbors
}

// Index maps a node to its row-major flat index: row*Width + col.
func (g Grid) Index(node geometry.GridNode) int {
	return node.Row*g.Config.Width + node.Col
}
