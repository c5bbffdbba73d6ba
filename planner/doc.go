// Package planner finds the intruder's next step toward the protected
// zone across a threatmap.Field.
//
// What: SelectGoal picks a destination cell inside the protected zone —
// the intruder's own cell if it is already inside, otherwise the
// lowest-cost cell among every grid cell whose world-space center falls
// in the zone, falling back to the zone-center cell if none do. Search
// runs A* from the intruder's cell to that goal over a model.Grid/
// threatmap.Field pair, 4-connected, Manhattan-distance heuristic.
// NextPosition and FullPath compose the two: NextPosition returns only
// the world-space point one step along the resulting path (or none, if
// no path exists or the intruder is already at the goal); FullPath
// returns the complete model.PathResult.
//
// Why: the Manhattan heuristic is admissible only while
// threatmap.Field's BaseCost is >= 1 — then a heuristic step never
// overestimates the true minimum per-step cost. geometry.NewGridConfig
// only checks that BaseCost is positive, and this package does not
// re-check it per search.
//
// Complexity: Search is O((Width*Height) log(Width*Height)) worst case,
// the same heap-based bound as dijkstra.Dijkstra, specialized to a
// fixed 4-connected grid and an admissible heuristic instead of an
// arbitrary weighted graph.
//
// Errors: none of these functions return errors; an intruder or zone
// center outside WorldBounds simply yields ok=false / Found=false.
package planner
