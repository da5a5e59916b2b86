// Package wavelet provides the sampled analytic wavelet kernels of the
// CWT engine: the family contract (scale/frequency mapping, e-folding
// time, time- and frequency-domain samples) and the Morlet and Paul
// families.
//
// A kernel owns its configuration as bounded attributes; any accepted
// attribute write triggers a full recomputation of the sampled values.
// In Recursive mode the values are the time-domain wavelet over the
// window, together with the pre/post-pad boundary scalars. In Spectral
// mode the values are the frequency-domain kernel laid out in DFT
// positive/negative-frequency order.
package wavelet
