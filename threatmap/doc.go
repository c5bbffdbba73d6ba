// Package threatmap builds the per-tick scalar cost field the intruder
// planner searches over.
//
// What: Generate rasterizes every defender's Apollonian dominance disk
// (geometry.ApollonianCircle, geometry.RasterizeDisk) onto a Field — a
// row-major flat-slice grid in the style of matrix.Dense — adding
// GridConfig.ThreatPenalty to every cell whose center lies inside a
// defender's circle, on top of the uniform GridConfig.BaseCost every
// other cell holds.
//
// Why: the planner needs a single additive cost per cell rather than a
// list of circles to test on every expansion; building the field once
// per tick turns an O(defenders) per-node circle-containment check into
// an O(1) array lookup during search.
//
// Complexity: O(Width*Height) to allocate and fill the base cost, plus
// O(defenders * disk area in cells) to rasterize. Field.At/Set are O(1).
//
// Errors: Generate never fails — grid dimensions are validated when the
// GridConfig is constructed (geometry.NewGridConfig), not here.
package threatmap
