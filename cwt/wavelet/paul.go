package wavelet

import (
	"math"
	"math/cmplx"
)

// factorial returns n! in float64. Orders stay small, but float64
// avoids the integer overflow that sets in at 21!.
func factorial(n int) float64 {
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result
}

// paulPhi samples the Paul wavelet of the configured order.
func (w *Wavelet) paulPhi(arg float64) complex128 {
	m := w.Order.Get()
	numer := cmplx.Pow(2i, complex(float64(m), 0)) * complex(factorial(m), 0)
	denom := complex(math.Sqrt(math.Pi*factorial(2*m)), 0)
	tail := cmplx.Pow(complex(1, -arg), complex(-float64(m+1), 0))
	norm := complex(math.Sqrt(1/(w.Scale.Get()*w.SampleRate.Get())), 0)
	return numer / denom * tail * norm
}

// paulPhiSpectral samples the analytic Paul spectrum, zero over
// non-positive frequencies.
func (w *Wavelet) paulPhiSpectral(sOmega float64) complex128 {
	if sOmega <= 0 {
		return 0
	}
	m := w.Order.Get()
	numer := math.Pow(2, float64(m))
	denom := math.Sqrt(float64(m) * factorial(2*m-1))
	return complex(numer/denom*math.Pow(sOmega, float64(m))*math.Exp(-sOmega), 0)
}

// paulScaleToFrequency maps between scale and equivalent Fourier
// frequency; the expression serves both directions.
func (w *Wavelet) paulScaleToFrequency(scale float64) float64 {
	return float64(2*w.Order.Get()+1) / (4 * math.Pi * scale)
}
