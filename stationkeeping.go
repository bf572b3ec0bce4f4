package dsc

import "math"

const (
	// ionIsp is the specific impulse assumed for the station-keeping ion
	// drive, in seconds.
	ionIsp = 1e6
	// powerToThrust is the electric propulsion conversion factor, N per kW.
	powerToThrust = 0.10
	// srpMargin doubles the solar radiation pressure force to cover
	// misalignment and margin.
	srpMargin = 2.0
)

// SRPPressure returns the solar radiation pressure on a reflective surface at
// 1 AU, in N/m²: (1+ρ)·(S0/c)·cosθ.
func SRPPressure(reflectivity, cosTheta float64) float64 {
	return (1.0 + reflectivity) * (SolarFlux / LightSpeed) * cosTheta
}

// TsiolkovskyFuel returns the propellant mass in kg needed for the given Δv
// (m/s) at the given specific impulse (s), for a vehicle of the given dry
// mass. Zero or negative Δv requires no propellant.
func TsiolkovskyFuel(dryMassKg, deltaV, isp float64) float64 {
	if deltaV <= 0 {
		return 0
	}
	return dryMassKg * (math.Exp(deltaV/(isp*EarthGravity)) - 1)
}

// StationKeepingSpec defines a deep-space occulter whose station-keeping
// system must counter solar radiation pressure over its lifetime.
type StationKeepingSpec struct {
	Area           float64 // sail area in m²
	ArealDensity   float64 // kg/m²
	Reflectivity   float64
	MissionYears   float64 // elapsed time used for power decay
	LifetimeYears  float64 // total operational lifetime
	AUDistance     float64
	FusionBaseKW   float64
	BeamedKW       float64
	FusionHalfLife float64 // years
	AnnualDeltaV   float64 // m/s of station-keeping per year
}

// DefaultStationKeepingSpec returns the 100-year, 100 AU Oort-cloud baseline.
func DefaultStationKeepingSpec() StationKeepingSpec {
	return StationKeepingSpec{
		Area:           1e6,
		ArealDensity:   0.0005,
		Reflectivity:   0.97,
		MissionYears:   100.0,
		LifetimeYears:  100.0,
		AUDistance:     100.0,
		FusionBaseKW:   200.0,
		BeamedKW:       0.0,
		FusionHalfLife: 12.0,
		AnnualDeltaV:   75.0,
	}
}

// StationKeepingReport carries the derived station-keeping budget.
type StationKeepingReport struct {
	PowerKW            float64
	FusionSurvival     float64 // fraction of fusion output remaining
	SRPForceN          float64
	RequiredForceN     float64 // SRP force with margin
	ThrustN            float64 // thrust available from the power budget
	DryMassKg          float64
	AnnualFuelKg       float64
	TotalFuelKg        float64
	WetMassKg          float64
	PropellantFraction float64 // propellant over dry mass
}

// Estimate computes the station-keeping budget for this occulter.
func (s StationKeepingSpec) Estimate() StationKeepingReport {
	dryMass := s.ArealDensity * s.Area
	srpForce := SRPPressure(s.Reflectivity, 0.95) * s.Area
	budget := PowerBudget{
		AUDistance:      s.AUDistance,
		MissionYears:    s.MissionYears,
		SolarArea:       s.Area,
		SolarEfficiency: 0.20,
		FusionBaseKW:    s.FusionBaseKW,
		FusionHalfLife:  s.FusionHalfLife,
		BeamedKW:        s.BeamedKW,
	}
	powerKW := budget.Available()
	annualFuel := TsiolkovskyFuel(dryMass, s.AnnualDeltaV, ionIsp)
	totalFuel := annualFuel * s.LifetimeYears
	return StationKeepingReport{
		PowerKW:            powerKW,
		FusionSurvival:     math.Pow(0.5, s.MissionYears/s.FusionHalfLife),
		SRPForceN:          srpForce,
		RequiredForceN:     srpForce * srpMargin,
		ThrustN:            powerKW * powerToThrust,
		DryMassKg:          dryMass,
		AnnualFuelKg:       annualFuel,
		TotalFuelKg:        totalFuel,
		WetMassKg:          dryMass + totalFuel,
		PropellantFraction: totalFuel / dryMass,
	}
}
