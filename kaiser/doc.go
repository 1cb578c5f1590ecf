// Package kaiser generates Kaiser-windowed sinc low-pass prototype filters.
//
// The prototype is the product of a sinc pulse and a Kaiser window, with an
// optional fractional sample delay shifting the sinc center. The window shape
// parameter is derived from a target stopband attenuation via Kaiser's
// empirical formula, so callers specify attenuation in dB rather than the
// window beta directly.
//
// Common workflows:
//   - Synthesize(n, fc, atten, mu) for a freshly allocated tap vector
//   - SynthesizeInto(dst, fc, atten, mu) for allocation-free repeated design
//   - BetaFromAttenuation(atten) to inspect the derived window parameter
package kaiser
