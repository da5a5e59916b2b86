package filterbank

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
)

// Update feeds one input sample and refreshes the per-band results.
//
// The rate-1 buffer receives the raw sample; each decimated buffer
// receives the output of its anti-aliasing filter. An empty buffer is
// primed: it is flooded to capacity with the current sample so the
// first inner product sees a stable boundary, and a decimated buffer
// additionally warms its IIR with 2*capacity-1 discarded advances
// before priming with the last filtered value.
//
// A band under Aggressive optimisation is recomputed only every
// factor-th frame; in between, its previous coefficient persists.
func (fb *Filterbank) Update(value float64) {
	for _, rate := range fb.rates {
		buf := fb.buffers[rate]
		if rate == 1 {
			if buf.Len() > 0 {
				buf.Push(value)
			} else {
				for i := 0; i < 2*buf.Cap()-1; i++ {
					buf.Push(value)
				}
			}
			continue
		}

		lp := fb.filters[rate]
		filtered := lp.ProcessSample(value)
		if buf.Len() > 0 {
			buf.Push(filtered)
			continue
		}
		for i := 0; i < 2*buf.Cap()-1; i++ {
			filtered = lp.ProcessSample(value)
		}
		for i := 0; i < 2*buf.Cap()-1; i++ {
			buf.Push(filtered)
		}
	}

	opt := fb.Optimisation.Get()
	aggressive := opt == Aggressive1 || opt == Aggressive2
	for j, wv := range fb.wavelets {
		decim := 1
		if opt != None {
			decim = fb.factors[j]
		}
		if aggressive && fb.frameIndex%decim != 0 {
			continue
		}

		buf := fb.buffers[decim]
		values := wv.Values()
		window := len(values)
		end := buf.Len()

		c := complex(buf.At(0), 0) * wv.Prepad()
		for k := 0; k < window; k++ {
			c += complex(buf.At(end-1-(window-1-k)*decim), 0) * cmplx.Conj(values[k])
		}
		c += complex(buf.At(end-1), 0) * wv.Postpad()

		if fb.Rescale.Get() {
			c /= complex(math.Sqrt(wv.Scale.Get()), 0)
		}
		c *= complex(math.Sqrt(float64(decim)), 0)

		fb.resultComplex[j] = c
		fb.resultRe[j] = real(c)
		fb.resultIm[j] = imag(c)
	}

	if len(fb.resultPower) > 0 {
		vecmath.Power(fb.resultPower, fb.resultRe, fb.resultIm)
	}
	fb.frameIndex++
}

// Reset empties every ring buffer and restarts the frame counter. The
// next Update re-primes the buffers. Filter designs and kernels are
// untouched.
func (fb *Filterbank) Reset() {
	for _, buf := range fb.buffers {
		buf.Clear()
	}
	fb.frameIndex = 0
}
