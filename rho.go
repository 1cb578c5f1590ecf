package rnyquist

import (
	"fmt"
	"math"
)

// rhoFit holds curve-fit constants for the closed-form rho estimate.
type rhoFit struct {
	c0, c1, c2 float64
}

// rhoFits tabulates the fitted constants for filter delays m = 1..6.
var rhoFits = [...]rhoFit{
	{c0: 0.78583556, c1: 0.05439958, c2: 0.37818679},
	{c0: 0.82194722, c1: 0.06170731, c2: 0.16362774},
	{c0: 0.84686762, c1: 0.07475776, c2: 0.05263769},
	{c0: 0.86538726, c1: 0.07374587, c2: 0.03491642},
	{c0: 0.87861007, c1: 0.06981039, c2: 0.03553645},
	{c0: 0.88901162, c1: 0.06708569, c2: 0.03459680},
}

// EstimateRho returns the closed-form estimate of the bandwidth-correction
// factor for filter delay m and excess bandwidth beta. Unlike the design
// entry points, the standalone estimator accepts the closed interval
// beta in [0,1]. The result is clamped to [0,1].
func EstimateRho(m int, beta float64) (float64, error) {
	if m < 1 {
		return 0, fmt.Errorf("%w: m must be >= 1: %d", ErrInvalidDelay, m)
	}
	if math.IsNaN(beta) || beta < 0 || beta > 1 {
		return 0, fmt.Errorf("%w: beta must be in [0,1]: %g", ErrInvalidExcessBandwidth, beta)
	}

	var fit rhoFit
	if m <= len(rhoFits) {
		fit = rhoFits[m-1]
	} else {
		mf := float64(m)

		fit.c0 = 0.057918*mathLog(mf) + 0.784313
		if m <= 3 {
			fit.c1 = 0.0099427*mf + 0.0447250
		} else {
			fit.c1 = -0.0026685*mf + 0.0835030
		}
		fit.c2 = 0.03373 + mathExp(-0.30382*mf*mf-0.19451*mf-0.56171)
	}

	// Keep the logarithm argument strictly positive.
	c2 := fit.c2
	if c2 >= beta {
		c2 = 0.999 * beta
	}

	return clamp01(fit.c0 + fit.c1*mathLog(beta-c2)), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
