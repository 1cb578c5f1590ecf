package rnyquist

import (
	"github.com/cwbudde/algo-rnyquist/isi"
	"github.com/cwbudde/algo-rnyquist/kaiser"
)

// objective evaluates the residual ISI of candidate bandwidth corrections for
// one filter specification. It owns a private scratch buffer that is
// overwritten on every evaluation; the buffer is never handed to callers.
type objective struct {
	k, m     int
	beta, dt float64
	scratch  []float64
}

func newObjective(k, m int, beta, dt float64) *objective {
	return &objective{
		k:       k,
		m:       m,
		beta:    beta,
		dt:      dt,
		scratch: make([]float64, 2*k*m+1),
	}
}

// evaluate synthesizes a candidate filter at the given rho and returns its
// RMS ISI. rho is a free search variable and may leave [0,1].
func (o *objective) evaluate(rho float64) (float64, error) {
	_, atten, fc := deriveKaiserParams(o.k, o.m, o.beta, rho)

	if err := kaiser.SynthesizeInto(o.scratch, fc, atten, o.dt); err != nil {
		return 0, err
	}

	res, err := isi.Evaluate(o.scratch, o.k, o.m)
	if err != nil {
		return 0, err
	}

	return res.MSE, nil
}

// deriveKaiserParams maps a (k, m, beta, rho) design point to the prototype
// generator's parameters: the un-normalized correction gamma = rho*beta
// shrinks the transition band, which sets the achievable sidelobe
// attenuation for the window length and moves the cutoff inward.
func deriveKaiserParams(k, m int, beta, rho float64) (n int, atten, fc float64) {
	n = 2*k*m + 1
	gamma := rho * beta
	del := gamma / float64(k)

	atten = 14.26*del*float64(n) + 7.95
	fc = (1 + beta - gamma) / float64(k)

	return n, atten, fc
}
