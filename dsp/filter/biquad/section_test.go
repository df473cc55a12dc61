package biquad

import (
	"math"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestProcessSample_Passthrough(t *testing.T) {
	s := NewSection(Coefficients{B0: 1})
	for i, x := range []float64{1, 0, -1, 0.5, 0.25} {
		if y := s.ProcessSample(x); !almostEqual(y, x, eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, x)
		}
	}
}

func TestProcessSample_DFIIT(t *testing.T) {
	// B0=0.25 B1=0.5 B2=0.25 A1=-0.2 A2=0.04 driven by an impulse:
	// n=0: y=0.25,  d0=0.55, d1=0.24
	// n=1: y=0.55,  d0=0.35, d1=-0.022
	// n=2: y=0.35,  d0=0.048, d1=-0.014
	s := NewSection(Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04})
	want := []float64{0.25, 0.55, 0.35, 0.048}

	for i, w := range want {
		x := 0.0
		if i == 0 {
			x = 1
		}

		if y := s.ProcessSample(x); !almostEqual(y, w, 1e-12) {
			t.Fatalf("n=%d: got %v want %v", i, y, w)
		}
	}
}

func TestProcessBlock_MatchesSample(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.3, B2: 0.1, A1: -0.5, A2: 0.2}
	input := []float64{1, -0.5, 0.25, 0.8, -1, 0, 0.3}

	ref := NewSection(c)
	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = ref.ProcessSample(x)
	}

	buf := append([]float64(nil), input...)
	s := NewSection(c)
	s.ProcessBlock(buf)

	for i := range want {
		if !almostEqual(buf[i], want[i], eps) {
			t.Fatalf("index %d: got %v want %v", i, buf[i], want[i])
		}
	}

	if s.State() != ref.State() {
		t.Fatalf("state mismatch: %v vs %v", s.State(), ref.State())
	}
}

func TestSection_ResetAndState(t *testing.T) {
	s := NewSection(Coefficients{B0: 0.5, B1: 0.5, A1: -0.3})
	s.ProcessSample(1)
	s.ProcessSample(0.5)

	saved := s.State()
	a := s.ProcessSample(0.1)

	s.SetState(saved)
	if b := s.ProcessSample(0.1); a != b {
		t.Fatalf("restored state produced %v, want %v", b, a)
	}

	s.Reset()
	if s.State() != [2]float64{} {
		t.Fatalf("state after reset: %v", s.State())
	}
}

func TestCoefficients_FirstOrder(t *testing.T) {
	if !(Coefficients{B0: 0.5, B1: 0.5, A1: -0.1}).FirstOrder() {
		t.Fatal("expected first-order section")
	}

	if (Coefficients{B0: 1, B2: 0.1}).FirstOrder() {
		t.Fatal("B2 != 0 should be second order")
	}
}

func TestSection_StabilityLongRun(t *testing.T) {
	s := NewSection(Coefficients{B0: 0.0675, B1: 0.135, B2: 0.0675, A1: -1.143, A2: 0.4128})
	for range 100000 {
		if y := s.ProcessSample(1); math.IsNaN(y) || math.IsInf(y, 0) {
			t.Fatal("output diverged")
		}
	}
}
