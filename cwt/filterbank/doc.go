// Package filterbank implements the online continuous wavelet
// transform: a bank of logarithmically spaced wavelet kernels fed one
// sample at a time, each producing one complex scalogram coefficient
// per input sample.
//
// The bank derives per-band scales between a minimum and maximum
// frequency at a configurable number of bands per octave. Optional
// optimisation levels decimate low-frequency bands: each distinct
// decimation rate gets its own ring buffer, guarded by a Chebyshev
// Type-I anti-aliasing low-pass, and the Aggressive levels additionally
// recompute a decimated band only every factor-th frame.
//
// Any accepted attribute change rebuilds the whole bank; a rejected
// write leaves the previous configuration fully intact. Streaming is
// single-threaded and performs no allocation per sample.
//
// When a full signal is available up front, Process computes the
// scalogram through the FFT instead; ProcessOnline streams the same
// signal through Update and keeps the group delay of the minimal-delay
// path. The two paths are numerically different by design.
package filterbank
