package isi

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Result holds inter-symbol interference metrics of a matched-filter pair.
type Result struct {
	// MSE is the root-mean-square ISI across symbol-spaced lags (linear).
	MSE float64
	// Max is the largest single-lag ISI term (linear).
	Max float64
}

// Evaluate measures the ISI of the matched-filter pair built from taps,
// sampled at symbol-spaced instants for oversampling factor k and filter
// delay m. The tap vector must have length 2*k*m+1.
func Evaluate(taps []float64, k, m int) (Result, error) {
	if k < 1 {
		return Result{}, fmt.Errorf("isi: oversampling must be >= 1: %d", k)
	}
	if m < 1 {
		return Result{}, fmt.Errorf("isi: delay must be >= 1: %d", m)
	}

	n := 2*k*m + 1
	if len(taps) != n {
		return Result{}, fmt.Errorf("isi: tap count must be 2*k*m+1 = %d: %d", n, len(taps))
	}

	rxx0 := vecmath.DotProduct(taps, taps)
	if rxx0 <= 0 {
		return Result{}, fmt.Errorf("isi: filter has zero energy")
	}

	var sumSq, peak float64

	for i := 1; i <= 2*m; i++ {
		lag := i * k
		rxx := vecmath.DotProduct(taps[:n-lag], taps[lag:])

		e := math.Abs(rxx / rxx0)

		sumSq += e * e
		if e > peak {
			peak = e
		}
	}

	return Result{
		MSE: math.Sqrt(sumSq / float64(2*m)),
		Max: peak,
	}, nil
}
