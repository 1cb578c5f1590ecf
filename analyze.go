package rnyquist

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-rnyquist/isi"
)

// Analysis holds measured properties of a designed filter.
type Analysis struct {
	// ISIRMS is the root-mean-square inter-symbol interference (linear).
	ISIRMS float64
	// ISIMax is the peak inter-symbol interference (linear).
	ISIMax float64
	// ISIRMSdB is ISIRMS expressed in dB (20*log10 convention).
	ISIRMSdB float64
	// StopbandDB is the peak stopband level relative to DC in dB, measured
	// beyond the theoretical band edge (1+beta)/(2k) cycles per sample.
	StopbandDB float64
}

// Analyze measures the residual ISI and the achieved stopband attenuation of
// a designed filter for oversampling k, delay m, and excess bandwidth beta.
func Analyze(taps []float64, k, m int, beta float64) (Analysis, error) {
	if math.IsNaN(beta) || beta <= 0 || beta >= 1 {
		return Analysis{}, fmt.Errorf("%w: beta must be in (0,1): %g", ErrInvalidExcessBandwidth, beta)
	}

	res, err := isi.Evaluate(taps, k, m)
	if err != nil {
		return Analysis{}, err
	}

	stopband, err := peakStopband(taps, k, beta)
	if err != nil {
		return Analysis{}, err
	}

	return Analysis{
		ISIRMS:     res.MSE,
		ISIMax:     res.Max,
		ISIRMSdB:   20 * math.Log10(res.MSE),
		StopbandDB: stopband,
	}, nil
}

// peakStopband evaluates the zero-padded magnitude response and returns the
// highest stopband bin relative to DC in dB.
func peakStopband(taps []float64, k int, beta float64) (float64, error) {
	fftSize := nextPowerOf2(8 * len(taps))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("rnyquist: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range taps {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("rnyquist: forward FFT failed: %w", err)
	}

	half := fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)

	for i := range half {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, half)
	vecmath.Power(power, re, im)

	dcRef := power[0]
	if dcRef <= 0 {
		return 0, fmt.Errorf("rnyquist: filter has no DC response")
	}

	// The stopband begins past the outer edge of the excess bandwidth.
	fStop := (1 + beta) / (2 * float64(k))

	start := int(math.Ceil(fStop * float64(fftSize)))
	if start >= half {
		return math.Inf(-1), nil
	}

	peak := 0.0
	for _, p := range power[start:] {
		if p > peak {
			peak = p
		}
	}

	if peak <= 0 {
		return math.Inf(-1), nil
	}

	return 10 * math.Log10(peak/dcRef), nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}

	return p
}
