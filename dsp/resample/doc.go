// Package resample converts a finite signal from one integer sample rate to
// another.
//
// [Resample] produces round(N*newFs/originalFs) samples and a matching time
// axis. Two band-limited methods are available:
//
//   - MethodFFT (default): the one-sided spectrum is truncated or zero-padded
//     to the new length, with the Nyquist bin split or joined, and inverted.
//     The whole signal is treated as one period, so downsampling never
//     aliases and periodic signals are reproduced exactly.
//   - MethodPolyphase: a Kaiser-windowed sinc prototype is split into
//     polyphase branches for the reduced ratio up/down. The prototype's
//     group delay is removed so output sample j lines up with time j/newFs.
//
// Polyphase quality modes:
//
//	mode            taps/phase   nominal stopband
//	QualityFast     16           ~55 dB
//	QualityBalanced 32           ~75 dB
//	QualityBest     64           ~90 dB
package resample
