package main

import (
	"flag"
	"fmt"
	"math"

	dsc "github.com/AgapeIntelligence/Dyson-swarm-calculator"
)

var (
	cadenceGrowth float64
	factoryGrowth float64
)

func init() {
	// Read flags
	flag.Float64Var(&cadenceGrowth, "cadenceGrowth", 0.20, "yearly launch cadence growth rate")
	flag.Float64Var(&factoryGrowth, "factoryGrowth", 0.50, "yearly self-replicating industry growth rate")
}

func main() {
	flag.Parse()
	// From 1.8% (climate offset of ~2 K) up to a full Dyson swarm equivalent.
	occlusions := []float64{0.018, 0.05, 0.10, 0.25, 0.50, 1.00}
	fmt.Println("occlusion  occluders      mass (t)    power (TW)  constant (yr)  exp. cadence (yr)  self-rep (yr)")
	for _, occlusion := range occlusions {
		spec := dsc.DefaultScalabilitySpec(occlusion)
		spec.CadenceGrowthRate = cadenceGrowth
		spec.FactoryGrowthRate = factoryGrowth
		rpt := spec.Scale()
		selfRep := "never"
		if !math.IsInf(rpt.YearsSelfReplicating, 1) {
			selfRep = fmt.Sprintf("%.0f", rpt.YearsSelfReplicating)
		}
		fmt.Printf("%9.3f  %9.3g  %12.3g  %12.3g  %13.0f  %17.1f  %13s\n",
			rpt.Occlusion, rpt.Occluders, rpt.TotalMassTons, rpt.PowerBlockedTW,
			rpt.YearsConstantCadence, rpt.YearsExponential, selfRep)
	}

	// Climate sizing detail for the SRM baseline.
	sizing := dsc.DefaultSunshadeSpec(0.018).Size()
	fmt.Printf("\nSRM baseline (1.8%% occlusion): %.3g occulters, %.3g t, ΔT_eff=%.2f K, ΔT_surface=%.2f K\n",
		sizing.Occluders, sizing.TotalMassTons, sizing.DeltaTEffective, sizing.DeltaTSurface)
}
