package dsc

import (
	"fmt"
	"math"
	"os"

	"github.com/ChristopherRabotin/gokalman"
	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/matrix/mat64"
)

// DegradationEstimate is the output of the fleet degradation filter.
type DegradationEstimate struct {
	MonthlyRate float64 // estimated fractional efficiency loss per month
	LogDecay    float64 // estimated per-month decay of ln(efficiency)
	Efficiency  float64 // filtered fleet-mean efficiency at the last sample
}

// EstimateDegradation recovers the underlying monthly degradation rate from
// noisy fleet-mean efficiency telemetry using a vanilla Kalman filter.
//
// The filter runs on x = [ln η, δ] with ln η(k+1) = ln η(k) − δ, which keeps
// the multiplicative decay model linear. σMeas is the standard deviation of
// one efficiency measurement.
func EstimateDegradation(observed []float64, σMeas float64) (DegradationEstimate, error) {
	if len(observed) < 3 {
		return DegradationEstimate{}, fmt.Errorf("need at least 3 samples to estimate a trend, got %d", len(observed))
	}
	for i, η := range observed {
		if η <= 0 || η > 1 {
			return DegradationEstimate{}, fmt.Errorf("sample #%d efficiency %g not in (0,1]", i, η)
		}
	}
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "estimate", "degradation")

	F := mat64.NewDense(2, 2, []float64{1, -1, 0, 1})
	G := mat64.NewDense(2, 1, nil) // no control input
	H := mat64.NewDense(1, 2, []float64{1, 0})
	// Process noise keeps the decay state adaptive; measurement noise is the
	// log-domain image of σMeas near η≈1.
	Q := mat64.NewSymDense(2, []float64{1e-10, 0, 0, 1e-10})
	R := mat64.NewSymDense(1, []float64{σMeas * σMeas})
	noise := gokalman.NewNoiseless(Q, R)

	x0 := mat64.NewVector(2, []float64{math.Log(observed[0]), 0})
	P0 := mat64.NewSymDense(2, []float64{1e-2, 0, 0, 1e-4})
	kf, _, err := gokalman.NewVanilla(x0, P0, F, G, H, noise)
	if err != nil {
		return DegradationEstimate{}, err
	}

	noCtrl := mat64.NewVector(1, nil)
	var state *mat64.Vector
	for k := 1; k < len(observed); k++ {
		z := mat64.NewVector(1, []float64{math.Log(observed[k])})
		est, err := kf.Update(z, noCtrl)
		if err != nil {
			return DegradationEstimate{}, err
		}
		state = est.State()
	}
	δ := state.At(1, 0)
	rslt := DegradationEstimate{
		MonthlyRate: 1 - math.Exp(-δ),
		LogDecay:    δ,
		Efficiency:  math.Exp(state.At(0, 0)),
	}
	klog.Log("level", "info", "samples", len(observed), "rate/month", rslt.MonthlyRate, "η", rslt.Efficiency)
	return rslt, nil
}
