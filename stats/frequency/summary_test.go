package frequency

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-siglab/dsp/core"
	"github.com/cwbudde/algo-siglab/dsp/signal"
	"github.com/cwbudde/algo-siglab/dsp/spectrum"
	"github.com/cwbudde/algo-siglab/dsp/window"
	"github.com/cwbudde/algo-siglab/internal/testutil"
)

func TestSummarizeSine(t *testing.T) {
	x := testutil.DeterministicSine(50, 1000, 1, 1000)

	for _, scale := range []spectrum.Scale{spectrum.ScaleLinear, spectrum.ScaleLog} {
		t.Run(scale.String(), func(t *testing.T) {
			res, err := spectrum.Transform(x, 1000, window.TypeNone, scale)
			if err != nil {
				t.Fatalf("Transform: %v", err)
			}

			s, err := Summarize(res)
			if err != nil {
				t.Fatalf("Summarize: %v", err)
			}

			if s.PeakBin != 50 || s.PeakFrequency != 50 {
				t.Fatalf("peak bin=%d freq=%v, want 50", s.PeakBin, s.PeakFrequency)
			}
			if math.Abs(s.PeakMagnitude-0.5) > 1e-6 {
				t.Fatalf("peak magnitude=%v, want 0.5", s.PeakMagnitude)
			}
			if s.Cutoff != 50 {
				t.Fatalf("cutoff=%v, want 50", s.Cutoff)
			}
			if s.MaxFrequency != 50 || s.NyquistRate != 100 {
				t.Fatalf("fmax=%v nyquist=%v, want 50/100", s.MaxFrequency, s.NyquistRate)
			}
			if s.SNR < 100 {
				t.Fatalf("SNR=%v dB, want > 100 for a bin-centred tone", s.SNR)
			}
			if len(s.TopPeaks) != DefaultTopPeaks || s.TopPeaks[0].Bin != 50 {
				t.Fatalf("top peaks=%+v", s.TopPeaks)
			}
		})
	}
}

func TestSummarizeNoisyTone(t *testing.T) {
	gen := signal.NewGenerator([]core.ProcessorOption{core.WithSampleRate(1000)}, signal.WithSeed(3))

	tone, err := gen.Sine(120, 1, 0, 2000)
	if err != nil {
		t.Fatalf("Sine: %v", err)
	}

	noise, err := gen.WhiteNoise(0.1, 2000)
	if err != nil {
		t.Fatalf("WhiteNoise: %v", err)
	}

	res, err := spectrum.Transform(signal.Mix(tone, noise), 1000, window.TypeHann, spectrum.ScaleLinear)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	s, err := Summarize(res)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if s.PeakFrequency != 120 {
		t.Fatalf("peak=%v Hz, want 120", s.PeakFrequency)
	}
	if s.SNR < 20 || math.IsInf(s.SNR, 1) {
		t.Fatalf("SNR=%v dB, want finite and above 20", s.SNR)
	}
	if s.MaxFrequency < s.PeakFrequency {
		t.Fatalf("significant bandwidth %v below peak %v", s.MaxFrequency, s.PeakFrequency)
	}
	if s.Flatness <= 0 || s.Flatness >= 1 {
		t.Fatalf("flatness=%v, want in (0, 1)", s.Flatness)
	}
}

func TestSummarizeRejectsUnknownScale(t *testing.T) {
	res := spectrum.Result{
		Frequencies: []float64{0, 1},
		Magnitude:   []float64{1, 1},
		Scale:       spectrum.Scale(7),
	}

	if _, err := Summarize(res); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("err=%v, want ErrInvalidInput", err)
	}
}
