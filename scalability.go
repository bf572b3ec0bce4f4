package dsc

import "math"

// ScalabilitySpec parameterizes the occluder scalability model, from climate
// solar radiation management up to a full Dyson swarm equivalent.
type ScalabilitySpec struct {
	Occlusion            float64 // target fraction of solar input blocked, in (0,1]
	ShadeArea            float64 // area per occulter in m²
	OpticalEfficiency    float64 // κ
	ArealDensity         float64 // kg/m²
	PayloadPerLaunch     float64 // tons delivered to L1 per launch
	FlightsPerYear       float64 // initial launch cadence
	CadenceGrowthRate    float64 // yearly fractional growth of the launch cadence
	InitialFactoryOutput float64 // initial off-Earth mass production, t/yr
	FactoryGrowthRate    float64 // yearly fractional growth of the industrial base
	MissionYears         int     // horizon for the self-replication scenario
}

// DefaultScalabilitySpec returns the baseline growth assumptions: Starship-like
// 20%/yr cadence growth and a 50%/yr self-replicating industrial base.
func DefaultScalabilitySpec(occlusion float64) ScalabilitySpec {
	return ScalabilitySpec{
		Occlusion:            occlusion,
		ShadeArea:            1e6,
		OpticalEfficiency:    0.95,
		ArealDensity:         0.001,
		PayloadPerLaunch:     50.0,
		FlightsPerYear:       20.0,
		CadenceGrowthRate:    0.20,
		InitialFactoryOutput: 1e5,
		FactoryGrowthRate:    0.50,
		MissionYears:         100,
	}
}

// ScalabilityReport carries the derived requirements and deployment horizons.
type ScalabilityReport struct {
	Occlusion            float64
	Occluders            float64
	TotalAreaKm2         float64
	TotalMassTons        float64
	MassPerOcculter      float64 // kg
	Launches             float64
	YearsConstantCadence float64
	YearsExponential     float64 // years with exponentially growing cadence
	YearsSelfReplicating float64 // +Inf when never within the mission horizon
	PowerBlockedTW       float64
}

// Scale evaluates the scalability model.
func (s ScalabilitySpec) Scale() ScalabilityReport {
	occluders := s.Occlusion * EarthCrossSection / (s.ShadeArea * s.OpticalEfficiency)
	massPer := s.ShadeArea * s.ArealDensity
	totalTons := occluders * massPer / 1000.0
	launches := totalTons / s.PayloadPerLaunch
	yearsConstant := launches / s.FlightsPerYear

	// Exponential cadence: solving ∫ c0·(1+g)^t dt = L for T gives
	// T = ln(1 + L·ln(1+g)/c0) / ln(1+g).
	yearsExp := yearsConstant
	if s.CadenceGrowthRate > 0 {
		lg := math.Log(1 + s.CadenceGrowthRate)
		yearsExp = math.Log(1+launches*lg/s.FlightsPerYear) / lg
	}

	// Self-replicating industry: first year in which cumulative compound
	// production exceeds the required mass.
	yearsSelfRep := math.Inf(1)
	if s.FactoryGrowthRate > 0 && s.InitialFactoryOutput > 0 {
		production := s.InitialFactoryOutput
		cumulative := 0.0
		for year := 0; year < s.MissionYears; year++ {
			production *= 1 + s.FactoryGrowthRate
			cumulative += production
			if cumulative >= totalTons {
				yearsSelfRep = float64(year)
				break
			}
		}
	}

	return ScalabilityReport{
		Occlusion:            s.Occlusion,
		Occluders:            occluders,
		TotalAreaKm2:         occluders * s.ShadeArea / 1e6,
		TotalMassTons:        totalTons,
		MassPerOcculter:      massPer,
		Launches:             launches,
		YearsConstantCadence: yearsConstant,
		YearsExponential:     yearsExp,
		YearsSelfReplicating: yearsSelfRep,
		PowerBlockedTW:       s.Occlusion * SolarFlux * EarthCrossSection / 1e12,
	}
}
