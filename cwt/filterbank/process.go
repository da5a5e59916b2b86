package filterbank

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-cwt/cwt/attribute"
	"github.com/cwbudde/algo-cwt/cwt/wavelet"
)

// Process computes the full scalogram of values through the FFT and
// returns an N x B complex matrix, row t holding the coefficients for
// input sample t. Each kernel is flipped to Spectral mode at the
// signal length, multiplied against the signal spectrum, and
// inverse-transformed; the kernel state is restored afterwards.
//
// This is the frequency-domain reference path. It does not share the
// group delay of the streaming path, so its output is not expected to
// match Update sample for sample.
func (fb *Filterbank) Process(values []float64) (*mat.CDense, error) {
	n := len(values)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty input", attribute.ErrInvalid)
	}
	if len(fb.wavelets) == 0 {
		return nil, fmt.Errorf("%w: filterbank has no bands", attribute.ErrInvalid)
	}

	fft := fourier.NewCmplxFFT(n)
	signal := make([]complex128, n)
	for i, v := range values {
		signal[i] = complex(v, 0)
	}
	spectrum := fft.Coefficients(nil, signal)

	scalogram := mat.NewCDense(n, len(fb.wavelets), nil)
	product := make([]complex128, n)
	column := make([]complex128, n)
	for j, wv := range fb.wavelets {
		previousWindow := wv.WindowSize.Get()
		if err := wv.Mode.Set(wavelet.Spectral); err != nil {
			return nil, err
		}
		if err := wv.WindowSize.Set(n); err != nil {
			return nil, err
		}

		kernel := wv.Values()
		for i := range product {
			product[i] = spectrum[i] * kernel[i]
		}
		column = fft.Sequence(column, product)

		// gonum's inverse transform is unnormalized.
		gain := complex(1/float64(n), 0)
		if fb.Rescale.Get() {
			gain /= complex(math.Sqrt(wv.Scale.Get()), 0)
		}
		for i := 0; i < n; i++ {
			scalogram.Set(i, j, column[i]*gain)
		}

		if err := wv.WindowSize.Set(previousWindow); err != nil {
			return nil, err
		}
		if err := wv.Mode.Set(wavelet.Recursive); err != nil {
			return nil, err
		}
	}
	return scalogram, nil
}

// ProcessOnline streams values through Update and collects the
// per-sample coefficients into an N x B complex matrix. The bank is
// reset first; the group delay of the streaming path is intact in the
// result.
func (fb *Filterbank) ProcessOnline(values []float64) (*mat.CDense, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty input", attribute.ErrInvalid)
	}
	if len(fb.wavelets) == 0 {
		return nil, fmt.Errorf("%w: filterbank has no bands", attribute.ErrInvalid)
	}

	fb.Reset()
	scalogram := mat.NewCDense(len(values), len(fb.wavelets), nil)
	for t, v := range values {
		fb.Update(v)
		for j, c := range fb.resultComplex {
			scalogram.Set(t, j, c)
		}
	}
	return scalogram, nil
}
