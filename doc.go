// Package rnyquist designs square-root Nyquist ("root-Nyquist") pulse-shaping
// filters based on the Kaiser-windowed sinc.
//
// Root-Nyquist filters are used in matched transmit/receive pairs: the
// combined response satisfies the Nyquist zero-ISI criterion at symbol-spaced
// sampling instants, also under a fractional timing offset. The transition
// band is controlled by a bandwidth-correction factor rho, which this package
// either estimates in closed form (approximate design) or refines by a
// bounded parabolic-interpolation search minimizing the measured ISI of the
// candidate filter (exact design).
//
// Design parameters:
//   - k: oversampling factor, samples per symbol
//   - m: filter delay in symbols (the tap count is 2*k*m+1)
//   - beta: excess bandwidth in (0,1)
//   - dt: fractional sample delay in [-1,1]
//
// Returned taps are energy-normalized so that the sum of squares equals k,
// preserving unit average power at k samples per symbol.
//
// Common workflows:
//   - Exact(k, m, beta, dt) for the ISI-optimized design
//   - ExactWithRho to also obtain the refined correction factor
//   - Approx(k, m, beta, dt) for the cheaper closed-form design
//   - EstimateRho(m, beta) for the standalone estimate
//   - Analyze(taps, k, m, beta) for ISI and stopband diagnostics
package rnyquist
