package main

import (
	"flag"
	"fmt"
	"time"

	dsc "github.com/AgapeIntelligence/Dyson-swarm-calculator"
)

var (
	lifetimeYears float64
	fuelMassKg    float64
)

func init() {
	// Read flags
	flag.Float64Var(&lifetimeYears, "lifetime", 100, "occulter lifetime in years")
	flag.Float64Var(&fuelMassKg, "fuelMass", 800, "fusion reactor mass in kg")
}

func main() {
	flag.Parse()
	distances := []float64{5, 50, 100, 1000}
	fuels := []dsc.FusionFuel{dsc.DT{}, dsc.DHe3{}, dsc.PB11{}, dsc.IdealFuel{}}
	now := time.Now().UTC()

	fmt.Println("== station keeping ==")
	for _, au := range distances {
		spec := dsc.DefaultStationKeepingSpec()
		spec.AUDistance = au
		spec.MissionYears = lifetimeYears
		spec.LifetimeYears = lifetimeYears
		rpt := spec.Estimate()
		ok := "OK"
		if rpt.ThrustN < rpt.RequiredForceN {
			ok = "UNDERPOWERED"
		}
		fmt.Printf("%6.0f AU: power=%8.2f kW thrust=%8.4f N required=%8.4f N wet=%8.1f kg prop=%.5f%%  %s\n",
			au, rpt.PowerKW, rpt.ThrustN, rpt.RequiredForceN, rpt.WetMassKg, rpt.PropellantFraction*100, ok)
	}

	fmt.Println("\n== fusion fuel trade ==")
	for _, fuel := range fuels {
		budget := dsc.DefaultPowerBudget(100, lifetimeYears)
		budget.Fuel = fuel
		budget.FuelMassKg = fuelMassKg
		fmt.Printf("%8s: end-of-life output %8.2f kW (survival %.4f)\n",
			fuel, budget.FusionKW(), dsc.FuelDecay(fuel, lifetimeYears))
	}

	fmt.Println("\n== adaptive shielding ==")
	solarMax := dsc.IsSolarMax(now)
	fmt.Printf("epoch %s: solar cycle phase %.2f (solar max: %v)\n", now.Format("2006-01-02"), dsc.SolarCyclePhase(now), solarMax)
	for _, au := range distances {
		dose := dsc.GCRDoseRate(au)
		spe := dsc.SPEEventDose(au, solarMax)
		fmt.Printf("%6.0f AU: GCR %.3f Sv/yr, worst SPE %.3f Sv\n", au, dose, spe)
		for _, mat := range dsc.ShieldingCatalog {
			thick := mat.AdaptiveThickness(dose)
			mass := mat.MassPerOcculter(thick, 100)
			fmt.Printf("\t%-14s %6.1f cm  %9.0f kg per 100 m² habitat\n", mat, thick, mass)
		}
	}
}
