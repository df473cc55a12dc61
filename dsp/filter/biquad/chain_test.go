package biquad

import (
	"math"
	"testing"
)

func twoSectionCoeffs() []Coefficients {
	return []Coefficients{
		{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.3, A2: 0.1},
		{B0: 0.5, B1: 0.5, A1: -0.2},
	}
}

func TestChain_MatchesManualCascade(t *testing.T) {
	coeffs := twoSectionCoeffs()
	c := NewChain(coeffs, WithGain(0.5))
	s0, s1 := NewSection(coeffs[0]), NewSection(coeffs[1])

	for i, x := range []float64{1, 0, -0.5, 0.25, 0.75, 0} {
		want := s1.ProcessSample(s0.ProcessSample(0.5 * x))
		if got := c.ProcessSample(x); !almostEqual(got, want, eps) {
			t.Fatalf("sample %d: got %v want %v", i, got, want)
		}
	}
}

func TestChain_FilterLeavesInput(t *testing.T) {
	c := NewChain(twoSectionCoeffs())
	input := []float64{1, 2, 3, 4}
	orig := append([]float64(nil), input...)

	out := c.Filter(input)
	if len(out) != len(input) {
		t.Fatalf("length=%d want=%d", len(out), len(input))
	}

	for i := range input {
		if input[i] != orig[i] {
			t.Fatalf("input mutated at %d", i)
		}
	}

	c.Reset()
	ref := NewChain(twoSectionCoeffs())
	for i, x := range orig {
		if want := ref.ProcessSample(x); !almostEqual(out[i], want, eps) {
			t.Fatalf("index %d: got %v want %v", i, out[i], want)
		}
	}
}

func TestChain_Order(t *testing.T) {
	tests := []struct {
		coeffs []Coefficients
		want   int
	}{
		{coeffs: nil, want: 0},
		{coeffs: twoSectionCoeffs(), want: 3},
		{coeffs: []Coefficients{{B0: 1, A2: 0.1}, {B0: 1, B2: 1}}, want: 4},
	}

	for _, tc := range tests {
		if got := NewChain(tc.coeffs).Order(); got != tc.want {
			t.Fatalf("Order()=%d want=%d", got, tc.want)
		}
	}
}

func TestChain_StateRoundTrip(t *testing.T) {
	c := NewChain(twoSectionCoeffs())
	c.ProcessBlock([]float64{1, 0.5, -0.25})

	saved := c.State()
	a := c.ProcessSample(0.3)

	c.SetState(saved)
	if b := c.ProcessSample(0.3); a != b {
		t.Fatalf("got %v want %v", b, a)
	}

	c.Reset()
	for i, st := range c.State() {
		if st != [2]float64{} {
			t.Fatalf("section %d state after reset: %v", i, st)
		}
	}
}

func TestChain_EmptyIsPassthrough(t *testing.T) {
	c := NewChain(nil)
	if y := c.ProcessSample(0.7); y != 0.7 {
		t.Fatalf("got %v want 0.7", y)
	}

	if math.Abs(cmplxAbs(c.Response(100, 1000))-1) > eps {
		t.Fatal("empty chain response should be unity")
	}
}

func BenchmarkChain_ProcessBlock(b *testing.B) {
	c := NewChain(twoSectionCoeffs())
	buf := make([]float64, 1024)

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		c.ProcessBlock(buf)
	}
}
