package dsc

import "math"

// Quantum AI longevity model for interstellar swarms: galactic cosmic rays
// drive physical qubit errors; a surface code trades physical qubits for
// logical error suppression.

const (
	// baseQubitErrorRate is the cat-qubit physical error rate at 1 AU, per second.
	baseQubitErrorRate = 1e-15
	// errorGrowthPerLy is the fractional error rate increase per light-year.
	errorGrowthPerLy = 0.5
)

// CosmicRayErrorRate returns the physical qubit error rate per second at the
// given distance in light-years.
func CosmicRayErrorRate(distanceLy float64) float64 {
	return baseQubitErrorRate * (1 + errorGrowthPerLy*distanceLy)
}

// SurfaceCodeOverhead returns the number of physical qubits per logical qubit
// needed to reach the target logical error rate (code distance squared).
func SurfaceCodeOverhead(errorRate, targetError float64) int {
	d := math.Ceil(math.Sqrt(targetError / errorRate))
	return int(d * d)
}

// SurfaceCodeSurvival returns the probability that a surface-code protected
// AI of the given size survives the mission intact.
func SurfaceCodeSurvival(logicalQubits, physicalQubits, missionYears, distanceLy float64) float64 {
	errorRate := CosmicRayErrorRate(distanceLy)
	pLogical := math.Pow(errorRate*physicalQubits/logicalQubits, 2)
	totalErrors := pLogical * logicalQubits * missionYears * SecondsPerYear
	return math.Exp(-totalErrors)
}

// CatQubitLifetime returns the raw (uncoded) cat qubit coherence lifetime in
// years at the given distance.
func CatQubitLifetime(distanceLy float64) float64 {
	return 1.0 / (100 * CosmicRayErrorRate(distanceLy)) / SecondsPerYear
}

// CatQubitSurvival returns the survival probability of an uncoded cat qubit
// memory over the mission.
func CatQubitSurvival(missionYears, distanceLy float64) float64 {
	return math.Exp(-missionYears / CatQubitLifetime(distanceLy))
}

// FleetSurvival returns the fleet-wide AI survival probability for a galactic
// migration, where the average hop distance grows with mission time at 1% c.
func FleetSurvival(missionYears, logicalQubits, physicalQubits, baseError, errorIncreasePerLy float64) float64 {
	avgDistanceLy := missionYears * 0.01
	errorRate := baseError * (1 + errorIncreasePerLy*avgDistanceLy)
	pLogical := math.Pow(errorRate*physicalQubits/logicalQubits, 2)
	totalErrors := pLogical * logicalQubits * missionYears * SecondsPerYear
	return math.Exp(-totalErrors)
}
