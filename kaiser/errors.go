package kaiser

import (
	"fmt"
	"math"
)

func validateLength(n int) error {
	if n < 1 {
		return fmt.Errorf("kaiser: length must be >= 1: %d", n)
	}

	return nil
}

func validateParams(fc, atten, mu float64) error {
	if !isFinite(fc) || fc <= 0 {
		return fmt.Errorf("kaiser: cutoff must be positive and finite: %g", fc)
	}
	if !isFinite(atten) {
		return fmt.Errorf("kaiser: attenuation must be finite: %g", atten)
	}
	if math.IsNaN(mu) || mu < -1 || mu > 1 {
		return fmt.Errorf("kaiser: fractional delay must be in [-1,1]: %g", mu)
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
