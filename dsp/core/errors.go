package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned for empty or too-short signals, non-positive
// sample rates and out-of-range parameters. Callers match it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ValidateSignal checks that signal holds at least minLen samples and that
// every sample is finite.
func ValidateSignal(signal []float64, minLen int) error {
	if minLen < 1 {
		minLen = 1
	}

	if len(signal) < minLen {
		return fmt.Errorf("%w: signal needs at least %d samples, got %d", ErrInvalidInput, minLen, len(signal))
	}

	for i, v := range signal {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite sample %v at index %d", ErrInvalidInput, v, i)
		}
	}

	return nil
}

// ValidateSampleRate checks that fs is a positive rate in Hz.
func ValidateSampleRate(fs int) error {
	if fs <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %d", ErrInvalidInput, fs)
	}

	return nil
}
