package testutil

import (
	"math"
	"testing"
)

func TestToneAndSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1, 48)
	if len(s) != 48 || s[0] != 0 {
		t.Fatalf("len=%d s[0]=%v", len(s), s[0])
	}

	c := Tone(1000, 48000, 2, math.Pi/2, 48)
	if math.Abs(c[0]-2) > 1e-15 || math.Abs(c[12]) > 1e-12 {
		t.Fatalf("cosine tone c[0]=%v c[12]=%v", c[0], c[12])
	}

	if got := Tone(1, 1, 1, 0, -3); len(got) != 0 {
		t.Fatalf("negative length gave %d samples", len(got))
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 0.5, 256)
	b := DeterministicNoise(42, 0.5, 256)
	c := DeterministicNoise(43, 0.5, 256)

	RequireSliceNearlyEqual(t, a, b, 0)

	diff, err := MaxAbsDiff(a, c)
	if err != nil {
		t.Fatal(err)
	}
	if diff == 0 {
		t.Fatal("different seeds produced identical noise")
	}

	for i, v := range a {
		if v < -0.5 || v >= 0.5 {
			t.Fatalf("a[%d]=%v outside [-0.5, 0.5)", i, v)
		}
	}
}

func TestImpulseAndDC(t *testing.T) {
	RequireSliceNearlyEqual(t, Impulse(4, 2), []float64{0, 0, 1, 0}, 0)
	RequireSliceNearlyEqual(t, Impulse(4, 9), make([]float64, 4), 0)
	RequireSliceNearlyEqual(t, DC(0.5, 3), []float64{0.5, 0.5, 0.5}, 0)
}

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 2})
	if err != nil || d != 1 {
		t.Fatalf("MaxAbsDiff=%v err=%v, want 1", d, err)
	}

	if _, err := MaxAbsDiff([]float64{1}, nil); err == nil {
		t.Fatal("expected length mismatch error")
	}

	if d, err := MaxAbsDiff(nil, nil); err != nil || d != 0 {
		t.Fatalf("empty MaxAbsDiff=%v err=%v", d, err)
	}
}

func TestWorstIndex(t *testing.T) {
	idx, diff := worstIndex([]float64{0, 1, 5, 2}, []float64{0, 1.5, 4, 2})
	if diff != 1 || idx != 2 {
		t.Fatalf("idx=%d diff=%v, want 2 and 1", idx, diff)
	}

	idx, diff = worstIndex([]float64{0, math.NaN()}, []float64{0, 0})
	if idx != 1 || !math.IsNaN(diff) {
		t.Fatalf("NaN not reported: idx=%d diff=%v", idx, diff)
	}
}
