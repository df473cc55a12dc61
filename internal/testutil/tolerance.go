package testutil

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// RequireSliceNearlyEqual fails t when got and want differ in length or any
// pair differs by more than eps. The failure names the worst index.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	worst, diff := worstIndex(got, want)
	if diff > eps || math.IsNaN(diff) {
		t.Fatalf("index %d: got %v, want %v (diff %g > eps %g)", worst, got[worst], want[worst], diff, eps)
	}
}

// RequireFinite fails t at the first NaN or Inf sample.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the infinity-norm distance between a and b.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	if len(a) == 0 {
		return 0, nil
	}

	return floats.Distance(a, b, math.Inf(1)), nil
}

func worstIndex(got, want []float64) (int, float64) {
	var (
		idx  int
		diff float64
	)

	for i := range got {
		d := math.Abs(got[i] - want[i])
		if math.IsNaN(d) {
			return i, d
		}

		if d > diff {
			idx, diff = i, d
		}
	}

	return idx, diff
}
