package dsc

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/gonum/floats"
)

// maxBruteForceCandidates bounds the exhaustive subset search; beyond this the
// enumeration count makes the search a caller-side sizing mistake.
const maxBruteForceCandidates = 24

// massε is the tolerance below which two stack masses are considered equal
// for tie-breaking purposes.
const massε = 1e-12

// OptimizeMethod defines an enum of reflector optimization strategies.
type OptimizeMethod uint8

const (
	// BruteForce enumerates every layer subset and is exact.
	BruteForce OptimizeMethod = iota + 1
	// Greedy ranks layers by marginal reflectivity gain per unit mass.
	Greedy
)

func (m OptimizeMethod) String() string {
	switch m {
	case BruteForce:
		return "brute-force"
	case Greedy:
		return "greedy"
	}
	panic("cannot stringify unknown optimization method")
}

// Layer defines a candidate reflective coating technology.
type Layer struct {
	Reflectivity float64 // fraction of incident light reflected by this layer alone, in [0,1)
	ArealMass    float64 // kg per m² of surface
}

func (l Layer) String() string {
	return fmt.Sprintf("(%.2f, %.1fg)", l.Reflectivity, l.ArealMass*1000)
}

/* Available layer technologies (realistic near-term values) */

var (
	// AlFilm30nm is a 30 nm aluminum coat on polymer, the baseline space mirror.
	AlFilm30nm = Layer{0.91, 0.00015}
	// AlFilm12nm is an ultra-thin experimental aluminum coat.
	AlFilm12nm = Layer{0.88, 0.00006}
	// DielectricSiO2 is a single SiO2 dielectric layer.
	DielectricSiO2 = Layer{0.12, 0.0008}
	// DielectricStack5 is a 5-layer dielectric stack.
	DielectricStack5 = Layer{0.25, 0.0018}
	// VCoatMirror15 is a 15-layer V-coated dielectric mirror.
	VCoatMirror15 = Layer{0.45, 0.0045}
	// FluoropolymerCoat is a protective fluoropolymer coating, almost free mass.
	FluoropolymerCoat = Layer{0.05, 0.00003}
	// RetroreflectorFilm is a micro-structured retroreflector film, heavy but highly reflective.
	RetroreflectorFilm = Layer{0.60, 0.012}

	// BaselineLayers is the candidate catalog used by the scenario runners.
	BaselineLayers = []Layer{AlFilm30nm, AlFilm12nm, DielectricSiO2, DielectricStack5, VCoatMirror15, FluoropolymerCoat, RetroreflectorFilm}
)

// PowerOption models an onboard power source whose presence is accounted for
// solely as a fractional discount on total structural mass.
type PowerOption struct {
	MassReductionFraction float64 // in [0,1)
}

// AdjustedMass applies the power option's mass discount to the given mass.
// A nil option leaves the mass unchanged.
func AdjustedMass(mass float64, opt *PowerOption) float64 {
	if opt == nil {
		return mass
	}
	return mass * (1 - opt.MassReductionFraction)
}

// ReflectorSolution defines a layer stack meeting a reflectivity target.
type ReflectorSolution struct {
	Layers       []Layer        // selected candidates, in catalog order
	Reflectivity float64        // achieved combined reflectivity
	ArealMass    float64        // total areal mass in kg/m², after any power adjustment
	Method       OptimizeMethod // strategy which produced this stack
}

// LayerCount returns the number of layers in the stack.
func (s ReflectorSolution) LayerCount() int {
	return len(s.Layers)
}

func (s ReflectorSolution) String() string {
	comp := ""
	for _, l := range s.Layers {
		comp += " " + l.String()
	}
	return fmt.Sprintf("%s: %.3f g/m² R=%.5f layers=%d:%s", s.Method, s.ArealMass*1000, s.Reflectivity, s.LayerCount(), comp)
}

// ReflectorResult is the outcome of a reflector optimization: either a found
// solution or an explicit infeasibility. An infeasible result is a normal
// outcome, not an error, and is never conflated with a zero-mass solution.
type ReflectorResult struct {
	Feasible bool
	ReflectorSolution
}

func foundResult(sol ReflectorSolution) ReflectorResult {
	return ReflectorResult{true, sol}
}

func infeasibleResult(method OptimizeMethod) ReflectorResult {
	return ReflectorResult{false, ReflectorSolution{Method: method}}
}

func (r ReflectorResult) String() string {
	if !r.Feasible {
		return fmt.Sprintf("%s: impossible with available layers", r.Method)
	}
	return r.ReflectorSolution.String()
}

// CombinedReflectivity computes the combined reflectivity of a stack of
// independent partial reflectors under the non-coherent approximation:
// R = 1 − Π(1 − r_i). An empty stack reflects nothing. Order independent.
// A reflectivity of exactly 1.0 collapses the product and masks every other
// layer; callers are expected to clamp inputs below 1.
func CombinedReflectivity(reflectivities []float64) float64 {
	if len(reflectivities) == 0 {
		return 0
	}
	transmissions := make([]float64, len(reflectivities))
	for i, r := range reflectivities {
		transmissions[i] = 1 - r
	}
	return 1 - floats.Prod(transmissions)
}

// validateReflectorInputs fails fast on malformed inputs so that a
// unit-conversion bug upstream is not silently clamped away.
func validateReflectorInputs(target float64, candidates []Layer, power *PowerOption) error {
	if target <= 0 || target > 1 {
		return fmt.Errorf("target reflectivity %g not in (0,1]", target)
	}
	for i, l := range candidates {
		if l.Reflectivity < 0 || l.Reflectivity >= 1 {
			return fmt.Errorf("candidate #%d reflectivity %g not in [0,1)", i, l.Reflectivity)
		}
		if l.ArealMass < 0 {
			return fmt.Errorf("candidate #%d areal mass %g is negative", i, l.ArealMass)
		}
	}
	if power != nil && (power.MassReductionFraction < 0 || power.MassReductionFraction >= 1) {
		return fmt.Errorf("power option mass reduction %g not in [0,1)", power.MassReductionFraction)
	}
	return nil
}

// OptimizeReflectorBruteForce finds the layer subset of minimum total areal
// mass whose combined reflectivity meets or exceeds the target, searching all
// non-empty subsets (exact for small candidate sets). A positive maxLayers
// caps the subset size considered; zero means uncapped. The power option only
// discounts the reported mass of the winning stack, it never influences which
// layers get selected.
//
// Tie-break: lower mass wins; within massε of equal mass, fewer layers wins;
// still equal, the subset earliest in bitmask enumeration order wins.
func OptimizeReflectorBruteForce(target float64, candidates []Layer, maxLayers int, power *PowerOption) (ReflectorResult, error) {
	if err := validateReflectorInputs(target, candidates, power); err != nil {
		return ReflectorResult{}, err
	}
	n := len(candidates)
	if n > maxBruteForceCandidates {
		return ReflectorResult{}, fmt.Errorf("%d candidates exceed the brute-force bound of %d (cap the catalog or use the greedy optimizer)", n, maxBruteForceCandidates)
	}
	bestMass := math.Inf(1)
	bestSize := 0
	bestMask := uint32(0)
	bestRefl := 0.0
	found := false
	for mask := uint32(1); mask < uint32(1)<<uint(n); mask++ {
		size := bits.OnesCount32(mask)
		if maxLayers > 0 && size > maxLayers {
			continue
		}
		transmission := 1.0
		mass := 0.0
		for i := 0; i < n; i++ {
			if mask&(uint32(1)<<uint(i)) != 0 {
				transmission *= 1 - candidates[i].Reflectivity
				mass += candidates[i].ArealMass
			}
		}
		if 1-transmission < target {
			continue
		}
		if !found || mass < bestMass-massε ||
			(floats.EqualWithinAbs(mass, bestMass, massε) && size < bestSize) {
			found = true
			bestMass = mass
			bestSize = size
			bestMask = mask
			bestRefl = 1 - transmission
		}
	}
	if !found {
		return infeasibleResult(BruteForce), nil
	}
	selected := make([]Layer, 0, bestSize)
	for i := 0; i < n; i++ {
		if bestMask&(uint32(1)<<uint(i)) != 0 {
			selected = append(selected, candidates[i])
		}
	}
	return foundResult(ReflectorSolution{selected, bestRefl, AdjustedMass(bestMass, power), BruteForce}), nil
}

// OptimizeReflectorGreedy approximates the minimum-mass stack in polynomial
// time by repeatedly selecting the candidate with the highest marginal
// reflectivity gain per unit mass. Zero-mass candidates with positive
// reflectivity have unbounded priority and are taken first, in input order.
// The running reflectivity is maintained incrementally via the transmission
// product, so each marginal check is O(1).
//
// Greedy is not guaranteed optimal: the combination model is multiplicative
// and a locally best pick does not account for future interactions.
func OptimizeReflectorGreedy(target float64, candidates []Layer, power *PowerOption) (ReflectorResult, error) {
	if err := validateReflectorInputs(target, candidates, power); err != nil {
		return ReflectorResult{}, err
	}
	transmission := 1.0
	mass := 0.0
	selected := make([]Layer, 0, len(candidates))
	remaining := make([]Layer, 0, len(candidates))

	// Free reflectivity first: a massless layer can never hurt the objective.
	for _, l := range candidates {
		if l.ArealMass == 0 && l.Reflectivity > 0 {
			transmission *= 1 - l.Reflectivity
			selected = append(selected, l)
		} else if l.ArealMass > 0 {
			remaining = append(remaining, l)
		}
	}

	for 1-transmission < target && len(remaining) > 0 {
		bestIdx := -1
		bestRatio := math.Inf(-1)
		for i, l := range remaining {
			// Marginal gain of adding l to the current stack is T·r, where T
			// is the running transmission.
			ratio := transmission * l.Reflectivity / l.ArealMass
			if ratio > bestRatio {
				bestRatio = ratio
				bestIdx = i
			}
		}
		l := remaining[bestIdx]
		transmission *= 1 - l.Reflectivity
		mass += l.ArealMass
		selected = append(selected, l)
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	achieved := 1 - transmission
	if achieved < target {
		return infeasibleResult(Greedy), nil
	}
	return foundResult(ReflectorSolution{selected, achieved, AdjustedMass(mass, power), Greedy}), nil
}
