// Package lowpass implements the Chebyshev Type-I IIR low-pass filter
// used as anti-aliasing stage ahead of each decimated stream of the
// filterbank.
//
// The filter is designed analytically on every rebuild: analog
// prototype poles on an ellipse in the left half S-plane, low-pass
// frequency warp of the cutoff, bilinear discretization, and expansion
// of the pole/zero sets into real transfer-function coefficients.
// Streaming runs the direct-form-II transposed recurrence on a memory
// vector of length equal to the filter order.
//
// The cutoff is normalized to Nyquist: cutoff 1.0 places the passband
// edge at half the sample rate.
package lowpass
