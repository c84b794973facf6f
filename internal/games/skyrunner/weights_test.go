package skyrunner

import (
	"math"
	"testing"
)

func TestSelectWeighted(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		r       float64
		wantIdx int
		wantOK  bool
	}{
		{"first bucket", []float64{0.4, 0.3, 0.3}, 0.1, 0, true},
		{"boundary belongs to lower bucket", []float64{0.4, 0.3, 0.3}, 0.4, 0, true},
		{"middle bucket", []float64{0.4, 0.3, 0.3}, 0.5, 1, true},
		{"last bucket", []float64{0.4, 0.3, 0.3}, 0.99, 2, true},
		{"zero weights skipped", []float64{0, 1.0}, 0, 1, true},
		{"trailing zero never chosen", []float64{0.7, 0.3, 0.0}, 0.9999, 1, true},
		{"rounding residual to last positive", []float64{0.5, 0.5 - 1e-12, 0}, 0.99999999999999, 1, true},
		{"overshoot goes to last positive, not first", []float64{0.6, 0.4 - 1e-10}, 0.99999999995, 1, true},
		{"empty", nil, 0.5, 0, false},
		{"all zero", []float64{0, 0, 0}, 0.5, 0, false},
		{"short of one", []float64{0.2, 0.2}, 0.9, 0, false},
		{"negative weight ignored", []float64{-1, 1}, 0.5, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := SelectWeighted(tt.weights, tt.r)
			if idx != tt.wantIdx || ok != tt.wantOK {
				t.Errorf("SelectWeighted(%v, %v) = (%d, %v), want (%d, %v)",
					tt.weights, tt.r, idx, ok, tt.wantIdx, tt.wantOK)
			}
		})
	}
}

func TestSelectWeightedConverges(t *testing.T) {
	weights := []float64{0.2, 0.3, 0.2, 0.2, 0.1, 0, 0}
	rng := NewRNG(42)

	const n = 10000
	counts := make([]int, len(weights))
	for range n {
		idx, ok := SelectWeighted(weights, rng.Float64())
		if !ok {
			t.Fatal("well-formed vector reported a fallback")
		}
		counts[idx]++
	}

	for i, w := range weights {
		got := float64(counts[i]) / n
		if math.Abs(got-w) > 0.02 {
			t.Errorf("index %d: observed %.3f, want %.2f", i, got, w)
		}
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(99), NewRNG(99)
	for range 100 {
		if a.Next() != b.Next() {
			t.Fatal("same seed should yield the same sequence")
		}
	}
	if NewRNG(0).State() != 1 {
		t.Error("zero seed should be remapped")
	}
	r := NewRNG(5)
	for range 1000 {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v out of [0,1)", f)
		}
		if n := r.Intn(7); n < 0 || n >= 7 {
			t.Fatalf("Intn(7) = %d", n)
		}
	}
}
