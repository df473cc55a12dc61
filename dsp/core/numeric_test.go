package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestAmplitudeToDBFloor(t *testing.T) {
	if got := AmplitudeToDB(0); math.Abs(got-(-200)) > 1e-9 {
		t.Fatalf("AmplitudeToDB(0) = %v, want -200", got)
	}
	if got := AmplitudeToDB(1); math.Abs(got) > 1e-6 {
		t.Fatalf("AmplitudeToDB(1) = %v, want ~0", got)
	}
	if got := PowerToDB(0); math.Abs(got-(-100)) > 1e-9 {
		t.Fatalf("PowerToDB(0) = %v, want -100", got)
	}
}

func TestLinearPowerToDB(t *testing.T) {
	if !NearlyEqual(LinearPowerToDB(100), 20, 1e-12) {
		t.Fatalf("LinearPowerToDB(100) = %v, want 20", LinearPowerToDB(100))
	}
	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("expected -Inf for zero power")
	}
	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("expected NaN for negative power")
	}
}

func TestPeakAbs(t *testing.T) {
	if got := PeakAbs([]float64{0.25, -0.75, 0.5}); got != 0.75 {
		t.Fatalf("PeakAbs = %v, want 0.75", got)
	}
	if got := PeakAbs(nil); got != 0 {
		t.Fatalf("PeakAbs(nil) = %v, want 0", got)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 64, 1024} {
		if !IsPowerOfTwo(n) {
			t.Fatalf("IsPowerOfTwo(%d) = false", n)
		}
	}
	for _, n := range []int{0, -4, 3, 1000} {
		if IsPowerOfTwo(n) {
			t.Fatalf("IsPowerOfTwo(%d) = true", n)
		}
	}
}
