package window

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-siglab/dsp/core"
	dspwindow "github.com/mjibson/go-dsp/window"
)

func TestGenerateMatchesReference(t *testing.T) {
	tests := []struct {
		typ Type
		ref func(int) []float64
	}{
		{TypeHann, dspwindow.Hann},
		{TypeHamming, dspwindow.Hamming},
		{TypeNone, dspwindow.Rectangular},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			for _, n := range []int{2, 7, 64, 1001} {
				got := Generate(tt.typ, n)
				want := tt.ref(n)
				if len(got) != len(want) {
					t.Fatalf("n=%d len=%d want %d", n, len(got), len(want))
				}
				for i := range got {
					if math.Abs(got[i]-want[i]) > 1e-12 {
						t.Fatalf("n=%d coeff[%d]=%v want %v", n, i, got[i], want[i])
					}
				}
			}
		})
	}
}

func TestGenerateSymmetric(t *testing.T) {
	for _, typ := range Types() {
		w := Generate(typ, 33)
		for i := range w {
			j := len(w) - 1 - i
			if math.Abs(w[i]-w[j]) > 1e-12 {
				t.Fatalf("%v not symmetric at %d: %v vs %v", typ, i, w[i], w[j])
			}
		}
	}
}

func TestGenerateLengthOne(t *testing.T) {
	for _, typ := range Types() {
		w := Generate(typ, 1)
		if len(w) != 1 || w[0] != 1 {
			t.Fatalf("%v length-1 window = %v, want [1]", typ, w)
		}
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	if Generate(TypeHann, 0) != nil {
		t.Fatal("expected nil for zero length")
	}
	if Generate(TypeHann, -3) != nil {
		t.Fatal("expected nil for negative length")
	}
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	a := Generate(TypeHann, 16)
	b := Generate(TypeHann, 16, WithPeriodic())

	if a[15] != 0 {
		t.Fatalf("symmetric Hann must end at 0, got %v", a[15])
	}
	if b[15] == 0 {
		t.Fatal("periodic Hann must not end at 0")
	}
	if math.Abs(b[8]-1) > 1e-12 {
		t.Fatalf("periodic Hann center = %v, want 1", b[8])
	}
}

func TestTukeyAlphaLimits(t *testing.T) {
	rect := Generate(TypeTukey, 32, WithAlpha(0))
	for i, v := range rect {
		if v != 1 {
			t.Fatalf("alpha=0 coeff[%d]=%v want 1", i, v)
		}
	}

	hann := Generate(TypeHann, 32)
	full := Generate(TypeTukey, 32, WithAlpha(1))
	for i := range hann {
		if math.Abs(hann[i]-full[i]) > 1e-12 {
			t.Fatalf("alpha=1 coeff[%d]=%v want %v", i, full[i], hann[i])
		}
	}

	flat := Generate(TypeTukey, 256, WithAlpha(0.25))
	if flat[128] != 1 || flat[0] != 0 {
		t.Fatalf("unexpected tukey shape: first=%v center=%v", flat[0], flat[128])
	}
}

func TestApplyDoesNotMutate(t *testing.T) {
	in := []float64{1, 1, 1, 1}
	out := Apply(TypeHann, in)

	for i, v := range in {
		if v != 1 {
			t.Fatalf("input mutated at %d: %v", i, v)
		}
	}
	if out[0] != 0 || math.Abs(out[1]-0.75) > 1e-12 {
		t.Fatalf("unexpected windowed output: %v", out)
	}

	cp := Apply(TypeNone, in)
	cp[0] = 5
	if in[0] != 1 {
		t.Fatal("TypeNone must return a copy")
	}
}

func TestParseType(t *testing.T) {
	tests := map[string]Type{
		"None":        TypeNone,
		"":            TypeNone,
		"rectangular": TypeNone,
		"HANN":        TypeHann,
		"hanning":     TypeHann,
		"Hamming":     TypeHamming,
		" tukey ":     TypeTukey,
	}
	for in, want := range tests {
		got, err := ParseType(in)
		if err != nil || got != want {
			t.Fatalf("ParseType(%q) = %v, %v want %v", in, got, err, want)
		}
	}

	if _, err := ParseType("kaiser"); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("ParseType(kaiser): err=%v want ErrInvalidInput", err)
	}
}

func TestTypeString(t *testing.T) {
	if TypeHamming.String() != "Hamming" {
		t.Fatalf("String() = %q", TypeHamming.String())
	}
	if Type(42).String() != "Type(42)" {
		t.Fatalf("String() = %q", Type(42).String())
	}
}

func TestAnalyze(t *testing.T) {
	rect, err := Analyze(Generate(TypeNone, 1024))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if math.Abs(rect.ENBW-1) > 1e-12 || math.Abs(rect.CoherentGain-1) > 1e-12 {
		t.Fatalf("rectangular props = %+v", rect)
	}
	if math.Abs(rect.ScallopLossdB-(-3.92)) > 0.05 {
		t.Fatalf("rectangular scallop loss = %v, want ~-3.92 dB", rect.ScallopLossdB)
	}

	hann, err := Analyze(Generate(TypeHann, 1024, WithPeriodic()))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if math.Abs(hann.ENBW-1.5) > 1e-3 || math.Abs(hann.CoherentGain-0.5) > 1e-3 {
		t.Fatalf("hann props = %+v", hann)
	}

	if _, err := Analyze(nil); err == nil {
		t.Fatal("expected error for empty coefficients")
	}
	if _, err := Analyze([]float64{1, -1}); err == nil {
		t.Fatal("expected error for zero coherent gain")
	}
}
