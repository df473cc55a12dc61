// Package bank holds the signal-level filters: a causal Butterworth low-pass
// and two noise-reduction filters driven by a noise reference taken from the
// start of the signal.
//
// All three take a mono signal and its sample rate and return a new slice of
// the same length:
//
//   - [Lowpass] runs a cascade of Butterworth sections from
//     dsp/filter/design once, forward, from zero state.
//   - [SpectralSubtract] subtracts the reference's magnitude spectrum from the
//     signal's and rebuilds the signal with the original phase.
//   - [Wiener] scales every bin by max(S-N, 0)/S computed from the power
//     spectra of signal and reference.
//
// The noise reference is the first [DefaultNoiseDuration] seconds unless
// [WithNoiseDuration] says otherwise. When that span covers the whole signal
// the first tenth of the signal is used instead.
//
// Basic usage:
//
//	smooth, err := bank.Lowpass(x, 44100, 2000, bank.DefaultOrder)
//	clean, err := bank.Wiener(x, 44100, bank.WithNoiseDuration(0.25))
package bank
