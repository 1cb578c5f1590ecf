package rnyquist

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-rnyquist/kaiser"
)

// Exact designs a root-Nyquist filter with the bandwidth correction refined
// by the ISI search. The returned taps have length 2*k*m+1 and energy k.
func Exact(k, m int, beta, dt float64, opts ...Option) ([]float64, error) {
	taps, _, err := ExactWithRho(k, m, beta, dt, opts...)

	return taps, err
}

// ExactWithRho is Exact returning also the refined bandwidth-correction
// factor used for the final filter, clamped to [0,1].
func ExactWithRho(k, m int, beta, dt float64, opts ...Option) ([]float64, float64, error) {
	if k < 2 {
		return nil, 0, fmt.Errorf("%w: k must be >= 2: %d", ErrInvalidOversampling, k)
	}

	return designExact(k, m, beta, dt, opts)
}

// ExactAnyRate is the low-level exact design permitting any oversampling
// factor k >= 1. It is intended for diagnostics and composition; the public
// entry points require k >= 2.
func ExactAnyRate(k, m int, beta, dt float64, opts ...Option) ([]float64, float64, error) {
	if k < 1 {
		return nil, 0, fmt.Errorf("%w: k must be >= 1: %d", ErrInvalidOversampling, k)
	}

	return designExact(k, m, beta, dt, opts)
}

// Approx designs a root-Nyquist filter from the closed-form rho estimate
// alone. It is cheaper than Exact and carries a slightly higher residual ISI.
func Approx(k, m int, beta, dt float64) ([]float64, error) {
	if k < 2 {
		return nil, fmt.Errorf("%w: k must be >= 2: %d", ErrInvalidOversampling, k)
	}

	if err := validateSpec(m, beta, dt); err != nil {
		return nil, err
	}

	rhoHat, err := EstimateRho(m, beta)
	if err != nil {
		return nil, err
	}

	return synthesizeNormalized(k, m, beta, dt, rhoHat)
}

func designExact(k, m int, beta, dt float64, opts []Option) ([]float64, float64, error) {
	if err := validateSpec(m, beta, dt); err != nil {
		return nil, 0, err
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	rhoHat, err := EstimateRho(m, beta)
	if err != nil {
		return nil, 0, err
	}

	obj := newObjective(k, m, beta, dt)

	rho, err := parabolicSearch(obj.evaluate, rhoHat, cfg)
	if err != nil {
		return nil, 0, err
	}

	// Search candidates are free; the final design point is not.
	rho = clamp01(rho)

	taps, err := synthesizeNormalized(k, m, beta, dt, rho)
	if err != nil {
		return nil, 0, err
	}

	return taps, rho, nil
}

// synthesizeNormalized generates the final taps at the given rho into a fresh
// buffer, never the search scratch, and scales them so that the sum of
// squared taps equals the oversampling factor.
func synthesizeNormalized(k, m int, beta, dt, rho float64) ([]float64, error) {
	n, atten, fc := deriveKaiserParams(k, m, beta, rho)

	taps, err := kaiser.Synthesize(n, fc, atten, dt)
	if err != nil {
		return nil, err
	}

	e2 := vecmath.DotProduct(taps, taps)
	if e2 <= 0 {
		return nil, fmt.Errorf("rnyquist: designed zero-energy filter")
	}

	vecmath.ScaleBlockInPlace(taps, math.Sqrt(float64(k)/e2))

	return taps, nil
}

func validateSpec(m int, beta, dt float64) error {
	if m < 1 {
		return fmt.Errorf("%w: m must be >= 1: %d", ErrInvalidDelay, m)
	}
	if math.IsNaN(beta) || beta <= 0 || beta >= 1 {
		return fmt.Errorf("%w: beta must be in (0,1): %g", ErrInvalidExcessBandwidth, beta)
	}
	if math.IsNaN(dt) || dt < -1 || dt > 1 {
		return fmt.Errorf("%w: dt must be in [-1,1]: %g", ErrInvalidFractionalDelay, dt)
	}

	return nil
}
