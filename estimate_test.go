package dsc

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gonum/floats"
)

func TestEstimateDegradationRecoversRate(t *testing.T) {
	// Clean exponential telemetry at 0.4% monthly loss.
	const rate = 0.004
	observed := make([]float64, 60)
	for k := range observed {
		observed[k] = 0.95 * math.Pow(1-rate, float64(k))
	}
	est, err := EstimateDegradation(observed, 1e-3)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(est.MonthlyRate, rate, 1e-3) {
		t.Fatalf("monthly rate = %f, truth %f", est.MonthlyRate, rate)
	}
	if !floats.EqualWithinAbs(est.Efficiency, observed[59], 5e-3) {
		t.Fatalf("filtered efficiency = %f, truth %f", est.Efficiency, observed[59])
	}
}

func TestEstimateDegradationNoisyTelemetry(t *testing.T) {
	const rate = 0.005
	rng := rand.New(rand.NewSource(11))
	observed := make([]float64, 120)
	for k := range observed {
		observed[k] = 0.97*math.Pow(1-rate, float64(k)) + 1e-3*rng.NormFloat64()
	}
	est, err := EstimateDegradation(observed, 1e-3)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(est.MonthlyRate, rate, 2e-3) {
		t.Fatalf("monthly rate = %f, truth %f", est.MonthlyRate, rate)
	}
}

func TestEstimateDegradationInvalidInputs(t *testing.T) {
	if _, err := EstimateDegradation([]float64{0.9, 0.89}, 1e-3); err == nil {
		t.Fatal("two samples must be rejected")
	}
	if _, err := EstimateDegradation([]float64{0.9, -0.1, 0.8}, 1e-3); err == nil {
		t.Fatal("negative efficiency must be rejected")
	}
	if _, err := EstimateDegradation([]float64{0.9, 1.5, 0.8}, 1e-3); err == nil {
		t.Fatal("efficiency above 1 must be rejected")
	}
}
