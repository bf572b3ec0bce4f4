package dsc

// SunshadeSpec defines the engineering parameters of an L1 sunshade
// constellation sized for a fractional reduction of solar input.
type SunshadeSpec struct {
	Occlusion         float64 // target fraction of solar input blocked, in (0,1]
	ShadeArea         float64 // area per occulter in m²
	OpticalEfficiency float64 // κ, reflectivity/transparency effectiveness
	ArealDensity      float64 // kg/m²
	PayloadPerLaunch  float64 // effective delivered tons per launch to L1
	FlightsPerYear    float64 // launch cadence
}

// DefaultSunshadeSpec returns the baseline constellation parameters: 1 km²
// shades at 1 g/m², 50 t to L1 per launch, 20 flights a year.
func DefaultSunshadeSpec(occlusion float64) SunshadeSpec {
	return SunshadeSpec{
		Occlusion:         occlusion,
		ShadeArea:         1e6,
		OpticalEfficiency: 0.95,
		ArealDensity:      0.001,
		PayloadPerLaunch:  50.0,
		FlightsPerYear:    20.0,
	}
}

// SunshadeSizing carries the derived constellation requirements.
type SunshadeSizing struct {
	Occluders       float64 // number of occulters required
	MassPerOcculter float64 // kg
	TotalMassTons   float64
	TotalAreaKm2    float64
	Launches        float64
	YearsAtCadence  float64 // years at the constant launch cadence
	DeltaTEffective float64 // K, change in effective temperature
	DeltaTSurface   float64 // K, surface response after ECS amplification
}

// Size computes the full engineering estimate for the constellation.
func (s SunshadeSpec) Size() SunshadeSizing {
	occluders := s.Occlusion * EarthCrossSection / (s.ShadeArea * s.OpticalEfficiency)
	massPer := s.ShadeArea * s.ArealDensity
	totalTons := occluders * massPer / 1000.0
	launches := totalTons / s.PayloadPerLaunch
	dTEff := -EffectiveTemp * 0.25 * s.Occlusion
	return SunshadeSizing{
		Occluders:       occluders,
		MassPerOcculter: massPer,
		TotalMassTons:   totalTons,
		TotalAreaKm2:    occluders * s.ShadeArea / 1e6,
		Launches:        launches,
		YearsAtCadence:  launches / s.FlightsPerYear,
		DeltaTEffective: dTEff,
		DeltaTSurface:   dTEff * ECSMultiplier,
	}
}
