package controller

import (
	"math"

	"github.com/aaholmes/multiagent-defense/geometry"
	"github.com/aaholmes/multiagent-defense/model"
)

// gradientStep is the finite-difference perturbation used to evaluate the
// Engage loss's gradient (spec §4.2).
const gradientStep = 1e-4

// coverage returns the arc length of apollonian that lies inside the
// protected zone — how much of the zone boundary this defender's
// dominance circle shadows.
func coverage(apollonian, protectedZone geometry.Circle) float64 {
	return geometry.ArcIntersectionLength(apollonian, protectedZone)
}

// overlap estimates the pairwise coverage overlap between two defenders'
// Apollonian circles. This is a deliberate heuristic, not an exact
// arc-arc intersection (spec §4.2, §9 Design Notes): it is zero whenever
// the circles are disjoint or either has zero coverage, and otherwise
// scales the smaller of the two coverage arcs by how deeply the circles
// overlap (combined radii vs. center distance). Re-implementations that
// substitute a geometrically exact overlap would change Engage's gradient
// magnitudes and must not be made "more correct" at the cost of this
// continuity.
func overlap(a, b, protectedZone geometry.Circle) float64 {
	if !a.Intersects(b) {
		return 0
	}

	covA := coverage(a, protectedZone)
	covB := coverage(b, protectedZone)
	if covA == 0 || covB == 0 {
		return 0
	}

	dc := a.Center.Distance(b.Center)
	rr := a.Radius + b.Radius
	f := math.Max(0, (rr-dc)/rr)

	return f * math.Min(covA, covB)
}

// soft applies the epsilon tolerance: contributions at or below epsilon
// drop to zero, and the remainder is the excess over epsilon (spec §4.2
// "soft(x) = max(0, x-epsilon)").
func soft(x, epsilon float64) float64 {
	return math.Max(0, x-epsilon)
}

// engageLoss computes defender i's Engage loss: w_repel times the summed
// soft-gated overlap with every other defender, minus this defender's own
// coverage. Both the soft() clamp and the "only sum pairs where overlap
// exceeds epsilon in the first place" gate apply (spec §4.2, §9 Open
// Question 2) — minimizing this loss grows own coverage and pushes away
// from teammates whose shadow overlaps this one by more than epsilon.
func engageLoss(world model.WorldState, defenderIndex int, config model.SimConfig) float64 {
	defender := world.Defenders[defenderIndex]
	apollonian := geometry.ApollonianCircle(defender.Position, world.Intruder.Position, config.SpeedRatio())

	overlapPenalty := 0.0
	for j, other := range world.Defenders {
		if j == defenderIndex {
			continue
		}

		otherApollonian := geometry.ApollonianCircle(other.Position, world.Intruder.Position, config.SpeedRatio())
		pairOverlap := overlap(apollonian, otherApollonian, world.ProtectedZone)
		if pairOverlap > config.Epsilon {
			overlapPenalty += soft(pairOverlap, config.Epsilon)
		}
	}

	return config.WRepel*overlapPenalty - coverage(apollonian, world.ProtectedZone)
}

// engageGradient computes the symmetric finite-difference gradient of
// engageLoss with respect to defender i's position, perturbing only that
// defender's position in a cloned world snapshot per axis/sign so that the
// other defenders' positions — and this defender's unperturbed Engage
// evaluation for any other defender's gradient — are unaffected (spec §5
// "defenders do not observe each other's tentative moves").
func engageGradient(world model.WorldState, defenderIndex int, config model.SimConfig) geometry.Point {
	original := world.Defenders[defenderIndex].Position

	evalAt := func(pos geometry.Point) float64 {
		perturbed := world.Clone()
		perturbed.Defenders[defenderIndex].Position = pos
		return engageLoss(perturbed, defenderIndex, config)
	}

	lossXPlus := evalAt(geometry.Point{X: original.X + gradientStep, Y: original.Y})
	lossXMinus := evalAt(geometry.Point{X: original.X - gradientStep, Y: original.Y})
	gradX := (lossXPlus - lossXMinus) / (2 * gradientStep)

	lossYPlus := evalAt(geometry.Point{X: original.X, Y: original.Y + gradientStep})
	lossYMinus := evalAt(geometry.Point{X: original.X, Y: original.Y - gradientStep})
	gradY := (lossYPlus - lossYMinus) / (2 * gradientStep)

	return geometry.Point{X: gradX, Y: gradY}
}

// engageVelocity returns the Engage-state velocity: the negative gradient
// of engageLoss, scaled by LearningRate and clamped to DefenderSpeed.
func engageVelocity(world model.WorldState, defenderIndex int, config model.SimConfig) geometry.Point {
	gradient := engageGradient(world, defenderIndex, config)
	velocity := gradient.Scale(-config.LearningRate)
	return ClampVelocity(velocity, config.DefenderSpeed)
}
