// Package spectrum turns a real-valued signal into a one-sided
// frequency-domain view.
//
// [Transform] windows a signal, computes its one-sided DFT and reports bin
// frequencies, N-normalized magnitude (linear or dB) and phase. [Spectrogram]
// computes a short-time power spectral density grid. The remaining helpers
// convert complex bins to magnitude, power and phase.
package spectrum
