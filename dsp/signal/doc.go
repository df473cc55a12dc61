// Package signal builds deterministic test signals and prepares signals for
// display.
//
// [Generator] synthesizes tones and seeded white noise at a configured sample
// rate; [Mix] and [Normalize] combine and scale them. [Decimate] thins a long
// signal to a bounded number of points for plotting.
package signal
