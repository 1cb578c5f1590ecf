package isi

import (
	"math"
	"testing"
)

func TestEvaluateImpulse(t *testing.T) {
	// A centered unit impulse is a perfect Nyquist pulse: zero ISI.
	taps := make([]float64, 13)
	taps[6] = 1

	res, err := Evaluate(taps, 2, 3)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if res.MSE != 0 || res.Max != 0 {
		t.Fatalf("Evaluate(impulse) = (%g, %g), want (0, 0)", res.MSE, res.Max)
	}
}

func TestEvaluateKnownValues(t *testing.T) {
	// For taps [1,2,1] with k=1, m=1:
	//   rxx(0) = 6, rxx(1) = 4, rxx(2) = 1
	//   e1 = 2/3, e2 = 1/6, MSE = sqrt(17/72), Max = 2/3.
	res, err := Evaluate([]float64{1, 2, 1}, 1, 1)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	wantMSE := math.Sqrt(17.0 / 72.0)
	if math.Abs(res.MSE-wantMSE) > 1e-12 {
		t.Fatalf("MSE = %.15f, want %.15f", res.MSE, wantMSE)
	}

	if math.Abs(res.Max-2.0/3.0) > 1e-12 {
		t.Fatalf("Max = %.15f, want %.15f", res.Max, 2.0/3.0)
	}
}

func TestEvaluateMaxBoundsMSE(t *testing.T) {
	taps := []float64{0.1, -0.3, 0.5, 1, 0.5, -0.3, 0.1, 0.05, 0.02}

	res, err := Evaluate(taps, 2, 2)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if res.MSE > res.Max {
		t.Fatalf("MSE %g exceeds Max %g", res.MSE, res.Max)
	}
}

func TestEvaluateValidation(t *testing.T) {
	taps := make([]float64, 13)
	taps[6] = 1

	tests := []struct {
		name string
		taps []float64
		k, m int
	}{
		{"zero oversampling", taps, 0, 3},
		{"zero delay", taps, 2, 0},
		{"length mismatch", taps[:7], 2, 3},
		{"zero energy", make([]float64, 13), 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Evaluate(tt.taps, tt.k, tt.m); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
