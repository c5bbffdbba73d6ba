package planner

import (
	"container/heap"
	"math"

	"github.com/aaholmes/multiagent-defense/geometry"
	"github.com/aaholmes/multiagent-defense/model"
	"github.com/aaholmes/multiagent-defense/threatmap"
)

// manhattanDistance is the A* heuristic for a 4-connected grid. It is
// admissible only while every per-step cost is at least 1, i.e. while
// BaseCost >= 1; geometry.NewGridConfig only checks that BaseCost is
// positive, so a smaller BaseCost is accepted and can yield sub-optimal
// paths.
func manhattanDistance(a, b geometry.GridNode) float64 {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return float64(dr + dc)
}

// Search runs A* from start to goal over grid, using field for per-cell
// step cost. Cells with +Inf cost are impassable. Ties in f-cost are
// broken by insertion order, the earlier-pushed node winning — the same
// lazy-decrease-key discipline dijkstra.Dijkstra uses, adapted to a
// heuristic-guided open set instead of a pure distance-ordered one.
func Search(start, goal geometry.GridNode, grid model.Grid, field *threatmap.Field) model.PathResult {
	if !grid.InBounds(start.Row, start.Col) || !grid.InBounds(goal.Row, goal.Col) {
		return model.PathResult{Found: false}
	}
	if start == goal {
		return model.PathResult{Path: []geometry.GridNode{start}, Cost: 0, Found: true}
	}

	openSet := make(nodeHeap, 0)
	heap.Init(&openSet)

	cameFrom := make(map[geometry.GridNode]geometry.GridNode)
	gScores := map[geometry.GridNode]float64{start: 0}

	var sequence int
	push := func(node geometry.GridNode, gCost float64) {
		heap.Push(&openSet, &nodeItem{
			node:     node,
			gCost:    gCost,
			fCost:    gCost + manhattanDistance(node, goal),
			sequence: sequence,
		})
		sequence++
	}
	push(start, 0)

	closed := make(map[geometry.GridNode]bool)

	for openSet.Len() > 0 {
		current := heap.Pop(&openSet).(*nodeItem)

		if closed[current.node] {
			continue
		}
		if current.node == goal {
			return model.PathResult{
				Path:  reconstructPath(goal, cameFrom, start),
				Cost:  current.gCost,
				Found: true,
			}
		}
		closed[current.node] = true

		for _, neighbor := range grid.Neighbors4(current.node) {
			if closed[neighbor] {
				continue
			}

			cost, err := field.At(neighbor)
			if err != nil || math.IsInf(cost, 1) {
				continue
			}

			tentativeG := current.gCost + cost
			existingG, seen := gScores[neighbor]
			if seen && tentativeG >= existingG {
				continue
			}

			cameFrom[neighbor] = current.node
			gScores[neighbor] = tentativeG
			push(neighbor, tentativeG)
		}
	}

	return model.PathResult{Found: false}
}

// reconstructPath walks cameFrom backward from goal to start and
// reverses the result into start-to-goal order.
func reconstructPath(goal geometry.GridNode, cameFrom map[geometry.GridNode]geometry.GridNode, start geometry.GridNode) []geometry.GridNode {
	path := []geometry.GridNode{goal}
	current := goal
	for current != start {
		parent := cameFrom[current]
		path = append(path, parent)
		current = parent
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// nodeItem is one entry in the A* open set's priority queue.
type nodeItem struct {
	node     geometry.GridNode
	gCost    float64
	fCost    float64
	sequence int
}

// nodeHeap is a min-heap of *nodeItem ordered by fCost ascending, with
// insertion sequence as the tie-break — mirroring dijkstra's nodePQ, but
// ordered on f-cost instead of raw distance.
type nodeHeap []*nodeItem

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].fCost != h[j].fCost {
		return h[i].fCost < h[j].fCost
	}
	return h[i].sequence < h[j].sequence
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x interface{}) {
	*h = append(*h, x.(*nodeItem))
}

func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
