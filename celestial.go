package dsc

import "math"

const (
	// AU is one astronomical unit in meters.
	AU = 1.495978707e11
	// SolarFlux is the total solar irradiance at 1 AU in W/m².
	SolarFlux = 1361.0
	// LightSpeed is the speed of light in m/s.
	LightSpeed = 299792458.0
	// EarthGravity is the standard gravity g0 in m/s².
	EarthGravity = 9.80665
	// EarthRadius is the mean Earth radius in meters.
	EarthRadius = 6.371e6
	// EffectiveTemp is Earth's effective radiating temperature in Kelvin.
	EffectiveTemp = 255.0
	// ECSMultiplier converts an effective temperature change to a surface
	// temperature change (approximate GCM/IPCC surface response factor).
	ECSMultiplier = 1.8
	// GravConst is the gravitational constant in m³/(kg·s²).
	GravConst = 6.67430e-11
	// SunMass is the mass of the Sun in kg.
	SunMass = 1.989e30
	// SolarCycleYears is the mean solar activity cycle duration.
	SolarCycleYears = 11.0
	// SecondsPerYear is the number of seconds in a Julian year.
	SecondsPerYear = 365.25 * 86400
)

// EarthCrossSection is the Earth disk area πR² in m², the reference area for
// occlusion fractions.
var EarthCrossSection = math.Pi * EarthRadius * EarthRadius
