package time

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-siglab/internal/testutil"
)

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil)
	if s.Length != 0 || s.RMS != 0 || s.Peak != 0 {
		t.Fatalf("unexpected stats for empty input: %+v", s)
	}
	if !math.IsInf(s.RMSDB, -1) || !math.IsInf(s.PeakDB, -1) {
		t.Fatalf("levels=%v/%v, want -Inf", s.RMSDB, s.PeakDB)
	}
}

func TestCalculateKnownValues(t *testing.T) {
	x := []float64{1, -3, 2, 0, 0}
	s := Calculate(x)

	checks := []struct {
		name      string
		got, want float64
	}{
		{"DC", s.DC, 0},
		{"Energy", s.Energy, 14},
		{"Power", s.Power, 14.0 / 5},
		{"RMS", s.RMS, math.Sqrt(14.0 / 5)},
		{"Variance", s.Variance, 14.0 / 5},
		{"Max", s.Max, 2},
		{"Min", s.Min, -3},
		{"Peak", s.Peak, 3},
		{"CrestFactor", s.CrestFactor, 3 / math.Sqrt(14.0/5)},
	}

	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-12 {
			t.Errorf("%s=%v, want %v", c.name, c.got, c.want)
		}
	}

	if s.Length != 5 || s.MaxPos != 2 || s.MinPos != 1 {
		t.Fatalf("length=%d maxPos=%d minPos=%d", s.Length, s.MaxPos, s.MinPos)
	}
	if s.ZeroCrossings != 2 {
		t.Fatalf("ZeroCrossings=%d, want 2", s.ZeroCrossings)
	}
}

func TestCalculateSine(t *testing.T) {
	x := testutil.DeterministicSine(10, 1000, 2, 1000)
	s := Calculate(x)

	if math.Abs(s.RMS-math.Sqrt2) > 1e-9 {
		t.Fatalf("RMS=%v, want sqrt(2)", s.RMS)
	}
	if math.Abs(s.CrestFactorDB-20*math.Log10(math.Sqrt2)) > 1e-6 {
		t.Fatalf("CrestFactorDB=%v, want ~3.01", s.CrestFactorDB)
	}
	if math.Abs(s.DC) > 1e-12 {
		t.Fatalf("DC=%v, want 0", s.DC)
	}
	// 10 full cycles leave 19 interior zero crossings; rounding may shift one.
	if s.ZeroCrossings < 18 || s.ZeroCrossings > 20 {
		t.Fatalf("ZeroCrossings=%d, want about 19", s.ZeroCrossings)
	}
}

func TestCalculateDC(t *testing.T) {
	s := Calculate(testutil.DC(0.5, 64))

	if s.DC != 0.5 || s.Variance > 1e-15 {
		t.Fatalf("DC=%v variance=%v", s.DC, s.Variance)
	}
	if math.Abs(s.CrestFactor-1) > 1e-12 || math.Abs(s.CrestFactorDB) > 1e-9 {
		t.Fatalf("crest=%v (%v dB), want 1 (0 dB)", s.CrestFactor, s.CrestFactorDB)
	}
}

func TestCalculateSilence(t *testing.T) {
	s := Calculate(make([]float64, 16))
	if s.CrestFactor != 0 || s.CrestFactorDB != 0 {
		t.Fatalf("crest=%v/%v, want 0", s.CrestFactor, s.CrestFactorDB)
	}
	if !math.IsInf(s.RMSDB, -1) {
		t.Fatalf("RMSDB=%v, want -Inf", s.RMSDB)
	}
}

func TestRMS(t *testing.T) {
	if got := RMS(nil); got != 0 {
		t.Fatalf("RMS(nil)=%v", got)
	}
	if got := RMS([]float64{3, -4}); math.Abs(got-math.Sqrt(12.5)) > 1e-12 {
		t.Fatalf("RMS=%v", got)
	}
}

func TestSNR(t *testing.T) {
	ref := []float64{1, -1, 1, -1}

	if got := SNR(ref, ref); !math.IsInf(got, 1) {
		t.Fatalf("identical SNR=%v, want +Inf", got)
	}

	processed := []float64{0.9, -0.9, 0.9, -0.9}
	if got := SNR(ref, processed); math.Abs(got-20) > 1e-9 {
		t.Fatalf("SNR=%v, want 20", got)
	}

	if got := SNR(ref, ref[:2]); !math.IsNaN(got) {
		t.Fatalf("mismatched SNR=%v, want NaN", got)
	}
}
