// Package controller implements the per-defender three-state cooperative
// strategy: Travel, Engage, Intercept (spec §4.2).
//
// State transitions (evaluated every tick, in strict priority, before
// velocity is computed):
//
//  1. If the segment from the intruder to the protected-zone center
//     crosses this defender's Apollonian circle, transition to Intercept.
//  2. Else if the Apollonian circle overlaps the protected zone, Engage.
//  3. Else Travel.
//
// Intercept is terminal: once entered, the predicates above are skipped on
// every later tick for that defender.
//
// Velocity by state:
//
//   - Travel moves at DefenderSpeed along the unit vector from the
//     Apollonian circle's center to the protected zone's center.
//   - Intercept recomputes the segment-circle intersection target and
//     moves toward it at DefenderSpeed; if the predicate no longer holds
//     this tick, the defender pauses (zero velocity) rather than drift.
//   - Engage moves opposite a finite-difference gradient of a per-defender
//     loss that rewards this defender's own coverage arc and penalizes
//     arc overlap with teammates' coverage beyond a soft tolerance.
//
// All velocities are clamped to DefenderSpeed before being returned.
package controller
