package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	dsc "github.com/AgapeIntelligence/Dyson-swarm-calculator"
	"github.com/spf13/viper"
)

// This code only reads the optional catalog file and prints the optimizer
// comparison tables.

const defaultScenario = "~~unset~~"

var (
	scenario  string
	maxLayers int
	powerCut  float64
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "layer catalog TOML file (default: built-in catalog)")
	flag.IntVar(&maxLayers, "maxLayers", 0, "stack depth cap for the exhaustive search (0: unlimited)")
	flag.Float64Var(&powerCut, "powerCut", 0.075, "mass reduction fraction of the fusion power option")
}

func main() {
	flag.Parse()
	candidates := dsc.BaselineLayers
	targets := []float64{0.90, 0.95, 0.98, 0.995}
	if scenario != defaultScenario {
		scenario = strings.Replace(scenario, ".toml", "", 1)
		viper.AddConfigPath(".")
		viper.SetConfigName(scenario)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("./%s.toml: Error %s", scenario, err)
		}
		candidates = nil
		for layerNo := 0; viper.IsSet(fmt.Sprintf("layers.%d", layerNo)); layerNo++ {
			r := viper.GetFloat64(fmt.Sprintf("layers.%d.reflectivity", layerNo))
			m := viper.GetFloat64(fmt.Sprintf("layers.%d.arealMass", layerNo))
			candidates = append(candidates, dsc.Layer{Reflectivity: r, ArealMass: m})
		}
		if viper.IsSet("targets") {
			targets = nil
			for _, tgt := range viper.GetStringSlice("targets") {
				val, err := strconv.ParseFloat(tgt, 64)
				if err != nil {
					log.Fatalf("could not understand target `%s`: %s", tgt, err)
				}
				targets = append(targets, val)
			}
		}
	}
	if len(candidates) == 0 {
		log.Fatal("no candidate layers in catalog")
	}
	fmt.Printf("catalog: %d candidate layers\n", len(candidates))

	power := &dsc.PowerOption{MassReductionFraction: powerCut}
	for _, target := range targets {
		for _, opt := range []*dsc.PowerOption{nil, power} {
			label := "bare"
			if opt != nil {
				label = fmt.Sprintf("fusion -%.1f%% mass", opt.MassReductionFraction*100)
			}
			exact, err := dsc.OptimizeReflectorBruteForce(target, candidates, maxLayers, opt)
			if err != nil {
				log.Fatalf("target %.3f: %s", target, err)
			}
			greedy, err := dsc.OptimizeReflectorGreedy(target, candidates, opt)
			if err != nil {
				log.Fatalf("target %.3f: %s", target, err)
			}
			fmt.Printf("target R=%.3f [%s]\n\t%s\n\t%s\n", target, label, exact, greedy)
		}
	}
}
