package kaiser

import "math"

// Synthesize returns a Kaiser-windowed sinc low-pass prototype of length n.
// fc is the normalized cutoff frequency where 1.0 corresponds to the Nyquist
// frequency, atten the target stopband attenuation in dB, and mu a fractional
// sample delay in [-1,1] shifting the sinc center.
func Synthesize(n int, fc, atten, mu float64) ([]float64, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}

	dst := make([]float64, n)
	if err := SynthesizeInto(dst, fc, atten, mu); err != nil {
		return nil, err
	}

	return dst, nil
}

// SynthesizeInto fills dst with the windowed-sinc prototype without
// allocating. The prototype length is len(dst).
func SynthesizeInto(dst []float64, fc, atten, mu float64) error {
	if err := validateLength(len(dst)); err != nil {
		return err
	}

	if err := validateParams(fc, atten, mu); err != nil {
		return err
	}

	n := len(dst)
	beta := BetaFromAttenuation(atten)
	i0Beta := besselI0(beta)
	center := float64(n-1) / 2

	for i := range dst {
		t := float64(i) - center + mu

		// Window argument: the fractional delay shifts the taper along with
		// the sinc, so |r| can exceed 1 at the outermost taps.
		r := 2 * t / float64(n)
		a := math.Sqrt(math.Max(0, 1-r*r))

		dst[i] = sinc(fc*t) * besselI0(beta*a) / i0Beta
	}

	return nil
}

// BetaFromAttenuation returns the Kaiser window shape parameter for a target
// stopband attenuation in dB, using Kaiser's empirical design formula.
func BetaFromAttenuation(atten float64) float64 {
	atten = math.Abs(atten)

	switch {
	case atten > 50:
		return 0.1102 * (atten - 8.7)
	case atten > 21:
		return 0.5842*math.Pow(atten-21, 0.4) + 0.07886*(atten-21)
	default:
		return 0
	}
}

func sinc(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}

// besselI0 evaluates the modified Bessel function I0 by power series.
func besselI0(x float64) float64 {
	sum := 1.0
	term := 1.0

	x2 := (x * x) / 4
	for k := 1; k < 64; k++ {
		term *= x2 / float64(k*k)

		sum += term
		if term < 1e-16*sum {
			break
		}
	}

	return sum
}
