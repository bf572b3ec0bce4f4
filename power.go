package dsc

import "math"

// FusionFuel defines a fusion power plant fuel.
type FusionFuel interface {
	// Returns the fuel inventory half-life in years (tritium decay, breeding
	// losses, and plant wear folded into one exponential).
	HalfLife() float64
	// Returns the plant specific power in kW per kg of reactor mass.
	SpecificPower() float64
	String() string
}

/* Available fusion fuels */

// DT is the deuterium-tritium baseline cycle.
type DT struct{}

// HalfLife implements the FusionFuel interface.
func (f DT) HalfLife() float64 { return 12.32 }

// SpecificPower implements the FusionFuel interface.
func (f DT) SpecificPower() float64 { return 800 }

func (f DT) String() string { return "D-T" }

// DHe3 is the deuterium-helium-3 aneutronic cycle.
type DHe3 struct{}

// HalfLife implements the FusionFuel interface.
func (f DHe3) HalfLife() float64 { return 30.0 }

// SpecificPower implements the FusionFuel interface.
func (f DHe3) SpecificPower() float64 { return 1200 }

func (f DHe3) String() string { return "D-He3" }

// PB11 is the proton-boron-11 dream fuel.
type PB11 struct{}

// HalfLife implements the FusionFuel interface.
func (f PB11) HalfLife() float64 { return 100.0 }

// SpecificPower implements the FusionFuel interface.
func (f PB11) SpecificPower() float64 { return 1800 }

func (f PB11) String() string { return "p-B11" }

// IdealFuel is the theoretical upper bound used for sensitivity studies.
type IdealFuel struct{}

// HalfLife implements the FusionFuel interface.
func (f IdealFuel) HalfLife() float64 { return 500.0 }

// SpecificPower implements the FusionFuel interface.
func (f IdealFuel) SpecificPower() float64 { return 2500 }

func (f IdealFuel) String() string { return "Ideal" }

// GenericFuel is a parametric fusion fuel.
type GenericFuel struct {
	halfLife      float64
	specificPower float64
}

// HalfLife implements the FusionFuel interface.
func (f GenericFuel) HalfLife() float64 { return f.halfLife }

// SpecificPower implements the FusionFuel interface.
func (f GenericFuel) SpecificPower() float64 { return f.specificPower }

func (f GenericFuel) String() string { return "generic" }

// NewGenericFuel returns a parametric fusion fuel.
func NewGenericFuel(halfLifeYears, specificPowerKWKg float64) GenericFuel {
	return GenericFuel{halfLifeYears, specificPowerKWKg}
}

// FuelDecay returns the surviving fraction of a fusion plant's output after
// the given number of years.
func FuelDecay(fuel FusionFuel, years float64) float64 {
	return math.Pow(0.5, years/fuel.HalfLife())
}

// PowerBudget models the hybrid power supply of a deep-space occulter: a
// solar array sized at 1 AU, an on-board fusion plant with exponential
// output decay, and optionally beamed microwave power relayed over hops.
type PowerBudget struct {
	AUDistance      float64    // heliocentric distance in AU
	MissionYears    float64    // elapsed mission time
	SolarArea       float64    // m²
	SolarEfficiency float64    // conversion efficiency of the array
	FusionBaseKW    float64    // plant output at mission start (used when Fuel is nil)
	FusionHalfLife  float64    // years (used when Fuel is nil)
	Fuel            FusionFuel // optional fuel catalog entry, overrides the base/half-life pair
	FuelMassKg      float64    // reactor mass when Fuel is set
	BeamedKW        float64    // beamed microwave power at the source
	RelayHops       int        // each relay hop loses 10%
}

// DefaultPowerBudget returns the 1 km², 20% efficient array baseline.
func DefaultPowerBudget(au, missionYears float64) PowerBudget {
	return PowerBudget{
		AUDistance:      au,
		MissionYears:    missionYears,
		SolarArea:       1e6,
		SolarEfficiency: 0.20,
		FusionBaseKW:    100.0,
		FusionHalfLife:  12.0,
	}
}

// SolarKW returns the array output at the budget's distance, in kW.
func (p PowerBudget) SolarKW() float64 {
	return SolarFlux / (p.AUDistance * p.AUDistance) * p.SolarArea * p.SolarEfficiency / 1000.0
}

// FusionKW returns the decayed fusion plant output, in kW.
func (p PowerBudget) FusionKW() float64 {
	if p.Fuel != nil {
		decay := FuelDecay(p.Fuel, p.MissionYears)
		return p.Fuel.SpecificPower() * p.FuelMassKg / 1000.0 * decay
	}
	return p.FusionBaseKW * math.Pow(0.5, p.MissionYears/p.FusionHalfLife)
}

// BeamedKWDelivered returns the beamed power after relay losses, in kW.
func (p PowerBudget) BeamedKWDelivered() float64 {
	return p.BeamedKW * math.Pow(0.90, float64(p.RelayHops))
}

// Available returns the usable power in kW: the spacecraft runs on whichever
// of solar or fusion-plus-beamed supplies more.
func (p PowerBudget) Available() float64 {
	return math.Max(p.SolarKW(), p.FusionKW()+p.BeamedKWDelivered())
}
