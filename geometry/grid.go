package geometry

import "math"

// GridConfig describes the regular grid the intruder planner searches and
// the threat-map builder rasterizes onto. World coordinates are mapped to
// grid cells by linear interpolation over WorldBounds.
//
// The implied uniform cell size is
//
//	CellSize = max((MaxX-MinX)/Width, (MaxY-MinY)/Height)
//
// so a non-square world-bounds rectangle still yields a single cell size,
// conservatively sized to the coarser axis (spec §3).
type GridConfig struct {
	Width, Height           int
	MinX, MaxX, MinY, MaxY  float64
	BaseCost, ThreatPenalty float64
}

// CellSize returns the implied uniform cell size for g.
func (g GridConfig) CellSize() float64 {
	return math.Max((g.MaxX-g.MinX)/float64(g.Width), (g.MaxY-g.MinY)/float64(g.Height))
}

// GridNode identifies a single grid cell by row-major (row, col)
// coordinates, 0 <= row < Height, 0 <= col < Width. GridNode is a plain
// comparable struct and can be used directly as a Go map key.
type GridNode struct {
	Row, Col int
}

// ToGridCoords maps a world point to the grid cell whose rectangle
// contains it, or ok=false if p lies outside WorldBounds.
func ToGridCoords(p Point, g GridConfig) (node GridNode, ok bool) {
	if p.X < g.MinX || p.X > g.MaxX || p.Y < g.MinY || p.Y > g.MaxY {
		return GridNode{}, false
	}

	col := int((p.X - g.MinX) / (g.MaxX - g.MinX) * float64(g.Width))
	row := int((p.Y - g.MinY) / (g.MaxY - g.MinY) * float64(g.Height))

	if col >= g.Width {
		col = g.Width - 1
	}
	if row >= g.Height {
		row = g.Height - 1
	}

	return GridNode{Row: row, Col: col}, true
}

// ToWorldCoords returns the world-space center of the cell at node.
func ToWorldCoords(node GridNode, g GridConfig) Point {
	cellW := (g.MaxX - g.MinX) / float64(g.Width)
	cellH := (g.MaxY - g.MinY) / float64(g.Height)

	return Point{
		X: g.MinX + (float64(node.Col)+0.5)*cellW,
		Y: g.MinY + (float64(node.Row)+0.5)*cellH,
	}
}

// RasterizeDisk iterates the grid cells whose centers lie within circle's
// conservative bounding square — radius ceil(circle.Radius/CellSize) in
// grid units around the cell containing circle.Center — and invokes hit
// for every cell whose world-space center is actually inside circle.
//
// If circle's center maps outside the grid, RasterizeDisk does nothing:
// there is no anchor cell to bound the search from (spec §4.1).
func RasterizeDisk(circle Circle, g GridConfig, hit func(node GridNode)) {
	centerNode, ok := ToGridCoords(circle.Center, g)
	if !ok {
		return
	}

	cellSize := g.CellSize()
	gridRadius := int(math.Ceil(circle.Radius / cellSize))

	startRow := max(centerNode.Row-gridRadius, 0)
	endRow := min(centerNode.Row+gridRadius+1, g.Height)
	startCol := max(centerNode.Col-gridRadius, 0)
	endCol := min(centerNode.Col+gridRadius+1, g.Width)

	for row := startRow; row < endRow; row++ {
		for col := startCol; col < endCol; col++ {
			node := GridNode{Row: row, Col: col}
			if circle.ContainsPoint(ToWorldCoords(node, g)) {
				hit(node)
			}
		}
	}
}
