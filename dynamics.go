package dsc

import (
	"math"
	"math/rand"
	"time"

	"github.com/ChristopherRabotin/ode"
)

// SwarmShell defines a spherical shell of occulter units orbiting the Sun,
// propagated under central solar gravity. It implements ode.Integrable so it
// can be driven directly by the RK4 integrator.
type SwarmShell struct {
	R, V    [][]float64 // position (m) and velocity (m/s) per unit, heliocentric
	step    time.Duration
	elapsed float64 // seconds
	stop    float64 // seconds
}

// NewSwarmShell seeds n units on a shell of the given radius (AU) with a
// fractional radial dispersion and near-circular Keplerian velocities.
func NewSwarmShell(n int, radiusAU, dispersion float64, step time.Duration, seed int64) *SwarmShell {
	rng := rand.New(rand.NewSource(seed))
	s := &SwarmShell{R: make([][]float64, n), V: make([][]float64, n), step: step}
	for i := 0; i < n; i++ {
		r := radiusAU * AU * (1 + dispersion*rng.NormFloat64())
		θ := math.Acos(2*rng.Float64() - 1)
		φ := 2 * math.Pi * rng.Float64()
		sθ, cθ := math.Sincos(θ)
		sφ, cφ := math.Sincos(φ)
		s.R[i] = []float64{r * sθ * cφ, r * sθ * sφ, r * cθ}
		// Circular speed, prograde about the z axis.
		vCirc := math.Sqrt(GravConst * SunMass / r)
		vHat := unit(cross([]float64{0, 0, 1}, s.R[i]))
		s.V[i] = []float64{vCirc * vHat[0], vCirc * vHat[1], vCirc * vHat[2]}
	}
	return s
}

// Units returns the number of units in the shell.
func (s *SwarmShell) Units() int {
	return len(s.R)
}

// MeanRadiusAU returns the mean heliocentric distance of the shell.
func (s *SwarmShell) MeanRadiusAU() float64 {
	sum := 0.0
	for _, r := range s.R {
		sum += norm(r)
	}
	return sum / (float64(len(s.R)) * AU)
}

// GetState implements the ode.Integrable interface.
func (s *SwarmShell) GetState() []float64 {
	f := make([]float64, 6*len(s.R))
	for i := range s.R {
		for j := 0; j < 3; j++ {
			f[6*i+j] = s.R[i][j]
			f[6*i+3+j] = s.V[i][j]
		}
	}
	return f
}

// SetState implements the ode.Integrable interface.
func (s *SwarmShell) SetState(t float64, f []float64) {
	for i := range s.R {
		for j := 0; j < 3; j++ {
			s.R[i][j] = f[6*i+j]
			s.V[i][j] = f[6*i+3+j]
		}
	}
	s.elapsed += s.step.Seconds()
}

// Stop implements the ode.Integrable interface.
func (s *SwarmShell) Stop(t float64) bool {
	return s.elapsed >= s.stop
}

// Func implements the ode.Integrable interface: central solar gravity only,
// unit-to-unit attraction is negligible at swarm masses.
func (s *SwarmShell) Func(t float64, f []float64) []float64 {
	fDot := make([]float64, len(f))
	for i := 0; i < len(f)/6; i++ {
		r := []float64{f[6*i], f[6*i+1], f[6*i+2]}
		rNorm := norm(r)
		acc := -GravConst * SunMass / math.Pow(rNorm, 3)
		for j := 0; j < 3; j++ {
			fDot[6*i+j] = f[6*i+3+j]
			fDot[6*i+3+j] = acc * r[j]
		}
	}
	return fDot
}

// Propagate advances the shell for the given duration. Blocking.
func (s *SwarmShell) Propagate(duration time.Duration) {
	s.elapsed = 0
	s.stop = duration.Seconds()
	ode.NewRK4(0, s.step.Seconds(), s).Solve()
}

// CollisionPairs counts unit pairs closer than the given separation in km.
func (s *SwarmShell) CollisionPairs(minSeparationKm float64) int {
	count := 0
	minSep := minSeparationKm * 1000
	for i := 0; i < len(s.R); i++ {
		for j := i + 1; j < len(s.R); j++ {
			d := []float64{s.R[i][0] - s.R[j][0], s.R[i][1] - s.R[j][1], s.R[i][2] - s.R[j][2]}
			if norm(d) < minSep {
				count++
			}
		}
	}
	return count
}
