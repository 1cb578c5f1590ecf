package rnyquist

import "math"

// denominatorFloor is the parabola-fit degeneracy threshold: below it the
// local ISI curve is too flat to refine the estimate any further.
const denominatorFloor = 1e-9

// parabolicSearch minimizes f in a neighborhood of the initial estimate
// rhoHat by inverse parabolic interpolation. The objective is assumed locally
// unimodal; convergence is heuristic and bounded by the round budget, with no
// tolerance-based stop. The result is the last vertex the fit produced, or
// rhoHat if the fit degenerated before producing one.
func parabolicSearch(f func(float64) (float64, error), rhoHat float64, cfg config) (float64, error) {
	x0 := 0.9 * rhoHat
	x2 := 1.1 * rhoHat

	y0, err := f(x0)
	if err != nil {
		return 0, err
	}

	y2, err := f(x2)
	if err != nil {
		return 0, err
	}

	xHat := rhoHat

	for p := range cfg.maxIterations {
		x1 := 0.5 * (x0 + x2)

		y1, err := f(x1)
		if err != nil {
			return 0, err
		}

		num := y0*(x1*x1-x2*x2) + y1*(x2*x2-x0*x0) + y2*(x0*x0-x1*x1)
		den := y0*(x1-x2) + y1*(x2-x0) + y2*(x0-x1)

		if math.Abs(den) < denominatorFloor {
			break
		}

		xHat = 0.5 * num / den

		// Narrow the bracket by vertex position, not by objective comparison:
		// the midpoint replaces whichever endpoint the vertex moved away from.
		if xHat > x1 {
			x0, y0 = x1, y1
		} else {
			x2, y2 = x1, y1
		}

		if cfg.trace != nil {
			yHat, err := f(xHat)
			if err != nil {
				return 0, err
			}

			cfg.trace(p+1, xHat, yHat)
		}
	}

	return xHat, nil
}
