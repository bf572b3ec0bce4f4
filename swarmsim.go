package dsc

import (
	"math"
	"math/rand"
	"os"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/matrix/mat64"
	"github.com/gonum/stat/distmv"
)

// TileMaterial defines an occulter tile technology for the swarm simulator.
type TileMaterial struct {
	Name               string
	Area               float64 // m² per tile
	Efficiency         float64 // initial optical efficiency
	MonthlyDegradation float64 // fractional efficiency loss per month
	ReplicationError   float64 // probability a replicated tile is defective
	UnitPowerMW        float64 // power contribution of a healthy tile
}

func (m TileMaterial) String() string {
	return m.Name
}

/* Available tile materials */

var (
	// KaptonSiO2 is the baseline polyimide film with an SiO2 overcoat.
	KaptonSiO2 = TileMaterial{"Kapton-SiO2", 1e6, 0.95, 0.005, 0.02, 0.25}
	// AluminumMylar degrades faster but is the cheapest to replicate.
	AluminumMylar = TileMaterial{"Al-Mylar", 1e6, 0.92, 0.008, 0.03, 0.23}
	// GrapheneMesh is the most durable and most replication-accurate.
	GrapheneMesh = TileMaterial{"Graphene mesh", 1e6, 0.97, 0.003, 0.01, 0.28}

	// TileCatalog lists the available tile materials.
	TileCatalog = []TileMaterial{KaptonSiO2, AluminumMylar, GrapheneMesh}
)

// SwarmSimConfig parameterizes a Monte Carlo swarm run. All probabilities are
// per monthly step.
type SwarmSimConfig struct {
	Years                float64
	ReplicationRate      float64 // fraction of the fleet replicated per month
	RedundancyFactor     float64 // extra replication margin
	StormProbability     float64 // monthly probability of a solar storm
	StormDamage          float64 // fraction of tiles degraded by a storm
	MicrometeoroidProb   float64 // monthly probability of a micrometeoroid cluster
	MicrometeoroidDamage float64 // fraction of tiles hit
	Seed                 int64
}

// DefaultSwarmSimConfig returns the dashboard baseline: a five-year run with
// 5% monthly replication and 10% redundancy.
func DefaultSwarmSimConfig() SwarmSimConfig {
	return SwarmSimConfig{
		Years:                5,
		ReplicationRate:      0.05,
		RedundancyFactor:     1.1,
		StormProbability:     0.01,
		StormDamage:          0.10,
		MicrometeoroidProb:   0.005,
		MicrometeoroidDamage: 0.15,
		Seed:                 1,
	}
}

// SwarmSample is one month of swarm history.
type SwarmSample struct {
	Month         int
	Tiles         int
	Shading       float64 // fraction of the Earth disk occluded
	DeltaTSurface float64 // K
	PowerMW       float64
	MeanEff       float64 // fleet-mean tile efficiency
}

type tile struct {
	mat TileMaterial
	eff float64
}

// SwarmSim is a multi-material, stochastic, self-replicating swarm simulator.
type SwarmSim struct {
	cfg     SwarmSimConfig
	tiles   []tile
	rng     *rand.Rand
	hazard  *distmv.Normal // jitter on the per-event damage severity
	logger  kitlog.Logger
	history []SwarmSample
}

// NewSwarmSim returns a simulator seeded with the given tile counts per
// catalog material.
func NewSwarmSim(cfg SwarmSimConfig, initialCounts map[string]int) *SwarmSim {
	rng := rand.New(rand.NewSource(cfg.Seed))
	hazard, ok := distmv.NewNormal([]float64{0}, mat64.NewSymDense(1, []float64{1e-4}), rng)
	if !ok {
		panic("NOK in Gaussian")
	}
	tiles := make([]tile, 0)
	for _, mat := range TileCatalog {
		for i := 0; i < initialCounts[mat.Name]; i++ {
			tiles = append(tiles, tile{mat, mat.Efficiency})
		}
	}
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "sim", "swarm")
	return &SwarmSim{cfg: cfg, tiles: tiles, rng: rng, hazard: hazard, logger: klog}
}

// SetLogger overrides the default stdout logger.
func (s *SwarmSim) SetLogger(l kitlog.Logger) {
	s.logger = l
}

// damageFactor returns the base multiplier with a small stochastic jitter,
// clamped to (0,1].
func (s *SwarmSim) damageFactor(base float64) float64 {
	f := base + s.hazard.Rand(nil)[0]
	return math.Min(1, math.Max(1e-3, f))
}

// Run advances the simulation month by month and returns the history.
func (s *SwarmSim) Run() []SwarmSample {
	steps := int(s.cfg.Years * 12)
	s.history = make([]SwarmSample, 0, steps)
	for month := 1; month <= steps; month++ {
		// Deterministic degradation.
		for i := range s.tiles {
			s.tiles[i].eff *= 1 - s.tiles[i].mat.MonthlyDegradation
		}
		// Stochastic hazards hit a random subset of the fleet.
		if s.rng.Float64() < s.cfg.StormProbability {
			s.damageSubset(s.cfg.StormDamage, s.damageFactor(0.9))
		}
		if s.rng.Float64() < s.cfg.MicrometeoroidProb {
			s.damageSubset(s.cfg.MicrometeoroidDamage, s.damageFactor(0.85))
		}
		sample := s.sample(month)
		s.history = append(s.history, sample)
		// Self-replication with oversight: defective copies are culled
		// before joining the fleet.
		nRepl := int(float64(len(s.tiles)) * s.cfg.ReplicationRate * s.cfg.RedundancyFactor)
		for i := 0; i < nRepl; i++ {
			parent := s.tiles[s.rng.Intn(len(s.tiles))]
			if s.rng.Float64() > parent.mat.ReplicationError {
				s.tiles = append(s.tiles, tile{parent.mat, parent.mat.Efficiency})
			}
		}
		if month%12 == 0 {
			s.logger.Log("level", "info", "month", month, "tiles", sample.Tiles, "shading", sample.Shading, "ΔT(K)", sample.DeltaTSurface)
		}
	}
	return s.history
}

// damageSubset degrades a random fraction of the fleet by the given factor.
func (s *SwarmSim) damageSubset(fraction, factor float64) {
	n := int(float64(len(s.tiles)) * fraction)
	for _, idx := range s.rng.Perm(len(s.tiles))[:n] {
		s.tiles[idx].eff *= factor
	}
}

// sample aggregates the fleet state for one month.
func (s *SwarmSim) sample(month int) SwarmSample {
	effArea := 0.0
	power := 0.0
	effSum := 0.0
	for _, t := range s.tiles {
		effArea += t.eff * t.mat.Area
		power += t.eff * t.mat.UnitPowerMW
		effSum += t.eff
	}
	shading := math.Min(1, effArea/EarthCrossSection)
	dTSurface := -EffectiveTemp * 0.25 * shading * ECSMultiplier
	meanEff := 0.0
	if len(s.tiles) > 0 {
		meanEff = effSum / float64(len(s.tiles))
	}
	return SwarmSample{month, len(s.tiles), shading, dTSurface, power, meanEff}
}
