package rnyquist

const defaultMaxIterations = 10

// TraceFunc observes the rho search: it is called once per completed round
// with the round index (starting at 1), the round's vertex estimate, and the
// RMS ISI measured at that estimate.
type TraceFunc func(iteration int, rho, isiRMS float64)

// Option configures an exact design.
type Option func(*config)

type config struct {
	maxIterations int
	trace         TraceFunc
}

func defaultConfig() config {
	return config{maxIterations: defaultMaxIterations}
}

// WithTrace installs a per-iteration observer on the rho search. Installing a
// trace adds one objective evaluation per round for reporting.
func WithTrace(fn TraceFunc) Option {
	return func(cfg *config) {
		cfg.trace = fn
	}
}

// WithMaxIterations overrides the search round budget (default 10).
func WithMaxIterations(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxIterations = n
		}
	}
}
