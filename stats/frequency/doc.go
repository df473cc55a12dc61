// Package frequency derives scalar metrics from one-sided magnitude spectra:
// peak SNR, energy cutoff, dominant peaks, significant bandwidth and the
// classic shape descriptors (centroid, flatness, rolloff, -3 dB bandwidth).
//
// Every function takes linear magnitudes as produced by
// spectrum.Transform with spectrum.ScaleLinear. Summarize accepts either
// scale and converts log results back to linear first.
package frequency
