package testutil

import (
	"math"
	"math/rand/v2"
)

// DeterministicSine returns length samples of amplitude*sin(2*pi*f*n/fs).
// Sample 0 is always exactly 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	return Tone(freqHz, sampleRate, amplitude, 0, length)
}

// Tone is DeterministicSine with a starting phase in radians.
func Tone(freqHz, sampleRate, amplitude, phase float64, length int) []float64 {
	out := make([]float64, max(length, 0))
	w := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(w*float64(i)+phase)
	}

	return out
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude). The
// same seed always yields the same sequence.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	s := uint64(seed)
	rng := rand.New(rand.NewPCG(s, ^s))

	out := make([]float64, max(length, 0))
	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}

	return out
}

// Impulse returns a unit impulse at pos. An out-of-range pos yields silence.
func Impulse(length, pos int) []float64 {
	out := make([]float64, max(length, 0))
	if pos >= 0 && pos < len(out) {
		out[pos] = 1
	}

	return out
}

// DC returns a constant signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, max(length, 0))
	for i := range out {
		out[i] = value
	}

	return out
}
