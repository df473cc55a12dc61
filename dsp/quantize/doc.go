// Package quantize reduces a signal to 2^n amplitude levels spread across its
// own peak range and reports the per-sample quantization error.
//
// The quantizer is peak-normalized rather than full-scale: the largest
// absolute sample maps to the outermost level, so every bit depth uses its
// whole range regardless of the input's loudness. Level indices are found by
// rounding half to even, matching the usual numeric-library convention.
//
// Optional dither ([WithDither]) adds seeded noise, measured in level steps,
// before rounding. Dither is off by default, which keeps Quantize idempotent.
package quantize
