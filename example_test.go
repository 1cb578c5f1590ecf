package rnyquist_test

import (
	"fmt"

	rnyquist "github.com/cwbudde/algo-rnyquist"
)

func ExampleExact() {
	taps, err := rnyquist.Exact(2, 3, 0.3, 0)
	if err != nil {
		panic(err)
	}

	energy := 0.0
	for _, v := range taps {
		energy += v * v
	}

	fmt.Printf("%d taps, energy %.1f\n", len(taps), energy)
	// Output: 13 taps, energy 2.0
}

func ExampleExactWithRho() {
	_, rho, err := rnyquist.ExactWithRho(2, 3, 0.3, 0)
	if err != nil {
		panic(err)
	}

	fmt.Printf("rho = %.3f\n", rho)
	// Output: rho = 0.743
}

func ExampleEstimateRho() {
	rho, err := rnyquist.EstimateRho(3, 0.3)
	if err != nil {
		panic(err)
	}

	fmt.Printf("rho_hat = %.4f\n", rho)
	// Output: rho_hat = 0.7424
}

func ExampleExactWithRho_trace() {
	var rounds int

	_, _, err := rnyquist.ExactWithRho(2, 3, 0.3, 0,
		rnyquist.WithTrace(func(iteration int, rho, isiRMS float64) {
			rounds = iteration
		}),
	)
	if err != nil {
		panic(err)
	}

	fmt.Printf("search ran %d rounds\n", rounds)
	// Output: search ran 8 rounds
}
