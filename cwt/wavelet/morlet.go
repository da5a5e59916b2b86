package wavelet

import (
	"math"
	"math/cmplx"
)

// morletPhi samples the complete Morlet wavelet, including the
// correction term that restores zero mean for low omega0.
func (w *Wavelet) morletPhi(arg float64) complex128 {
	omega0 := w.Omega0.Get()
	carrier := cmplx.Exp(complex(0, omega0*arg)) - complex(math.Exp(-0.5*omega0*omega0), 0)
	norm := math.Exp(-0.5*arg*arg) *
		math.Sqrt(1/(w.Scale.Get()*w.SampleRate.Get())) *
		math.Pow(math.Pi, -0.25)
	return complex(norm, 0) * carrier
}

// morletPhiSpectral samples the analytic Morlet spectrum, which is
// zero over non-positive frequencies.
func (w *Wavelet) morletPhiSpectral(sOmega float64) complex128 {
	if sOmega <= 0 {
		return 0
	}
	omega0 := w.Omega0.Get()
	d := sOmega - omega0
	return complex(math.Pow(math.Pi, -0.25)*math.Exp(-0.5*d*d)*
		math.Sqrt(2*math.Pi*w.Scale.Get()*w.SampleRate.Get()), 0)
}

// morletScaleToFrequency maps between scale and equivalent Fourier
// frequency. The mapping is an involution up to its constant, so the
// same expression serves both directions.
func (w *Wavelet) morletScaleToFrequency(scale float64) float64 {
	omega0 := w.Omega0.Get()
	return (omega0 + math.Sqrt(2+omega0*omega0)) / (4 * math.Pi * scale)
}
