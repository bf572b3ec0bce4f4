package dsc

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/julian"
)

const (
	// gcrBaseDose is the average galactic cosmic ray dose at 1 AU, Sv/yr.
	gcrBaseDose = 0.7
	// speMaxDose is the worst-case solar particle event dose at 1 AU, Sv.
	speMaxDose = 5.0
	// crewDoseLimit is the NASA career-compatible dose target, Sv/yr.
	crewDoseLimit = 0.005
	// minShieldThickness is the structural floor in cm.
	minShieldThickness = 10.0
)

// solarMaxJD is the Julian day of the cycle 24 maximum (April 2014), used as
// the phase reference of the 11-year activity cycle.
var solarMaxJD = julian.TimeToJD(time.Date(2014, 4, 1, 0, 0, 0, 0, time.UTC))

// ShieldingMaterial defines a passive radiation shielding material.
type ShieldingMaterial struct {
	Name             string
	Density          float64 // kg/m³
	AttenuationDepth float64 // g/cm² needed per decade of dose reduction
	CostPerKg        float64 // $/kg delivered
}

func (m ShieldingMaterial) String() string {
	return m.Name
}

/* Available shielding materials */

var (
	// WaterIce doubles as propellant and thermal storage.
	WaterIce = ShieldingMaterial{"Water Ice", 917, 25, 0.1}
	// Polyethylene is the standard hydrogen-rich laboratory reference.
	Polyethylene = ShieldingMaterial{"Polyethylene", 930, 22, 5}
	// Regolith is sourced in place, nearly free but bulky.
	Regolith = ShieldingMaterial{"Regolith", 1500, 40, 0.01}

	// ShieldingCatalog lists the available materials.
	ShieldingCatalog = []ShieldingMaterial{WaterIce, Polyethylene, Regolith}
)

// GCRDoseRate returns the galactic cosmic ray dose rate in Sv/yr at the given
// heliocentric distance. GCR flux rises away from the heliosphere's
// modulation, roughly 8% per AU in this model.
func GCRDoseRate(au float64) float64 {
	return gcrBaseDose * (1 + 0.08*(au-1))
}

// SPEEventDose returns the worst-case solar particle event dose in Sv at the
// given distance. Outside solar maximum, events are rare and mild.
func SPEEventDose(au float64, solarMax bool) float64 {
	if !solarMax {
		return 0.1
	}
	return speMaxDose / math.Pow(au, 1.5)
}

// SolarCyclePhase returns the phase of the 11-year solar activity cycle at
// the given epoch, in [0,1), with 0 at solar maximum.
func SolarCyclePhase(epoch time.Time) float64 {
	years := (julian.TimeToJD(epoch) - solarMaxJD) / 365.25
	phase := math.Mod(years/SolarCycleYears, 1)
	if phase < 0 {
		phase++
	}
	return phase
}

// IsSolarMax returns whether the epoch falls in the active half of the cycle.
func IsSolarMax(epoch time.Time) bool {
	phase := SolarCyclePhase(epoch)
	return phase < 0.25 || phase >= 0.75
}

// ThicknessFor returns the shielding thickness in cm which brings the given
// dose rate down to the target, with a structural floor of 10 cm.
func (m ShieldingMaterial) ThicknessFor(doseRateSvYr, targetSvYr float64) float64 {
	if doseRateSvYr <= targetSvYr {
		return minShieldThickness
	}
	decades := math.Log10(doseRateSvYr / targetSvYr)
	gcm2 := decades * m.AttenuationDepth
	thickness := (gcm2 * 1000) / m.Density // g/cm² to cm at the material density
	return math.Max(minShieldThickness, thickness)
}

// AdaptiveThickness returns the thickness keeping the dose at the NASA
// 5 mSv/yr limit.
func (m ShieldingMaterial) AdaptiveThickness(doseRateSvYr float64) float64 {
	return m.ThicknessFor(doseRateSvYr, crewDoseLimit)
}

// DoseReduction returns the dose reduction factor of the given thickness of
// this material (the inverse operation of ThicknessFor).
func (m ShieldingMaterial) DoseReduction(thicknessCm float64) float64 {
	gcm2 := thicknessCm * m.Density / 1000
	return math.Pow(10, gcm2/m.AttenuationDepth)
}

// MassPerOcculter returns the shield mass in kg for one occulter of the given
// shielded area in m².
func (m ShieldingMaterial) MassPerOcculter(thicknessCm, areaM2 float64) float64 {
	return thicknessCm / 100.0 * m.Density * areaM2
}
