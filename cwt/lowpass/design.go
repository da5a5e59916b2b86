package lowpass

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-cwt/cwt/attribute"
)

// chebyshev1 designs a digital Chebyshev Type-I low-pass and returns
// the transfer-function coefficient vectors b and a, each of length
// order+1. cutoff is normalized to Nyquist and must lie in (0, 1].
func chebyshev1(order int, rippleDB, cutoff float64) (b, a []float64, err error) {
	if cutoff <= 0 || cutoff > 1 {
		return nil, nil, fmt.Errorf("%w: cutoff %v not in (0, 1]", attribute.ErrInvalid, cutoff)
	}
	if order < 1 {
		return nil, nil, fmt.Errorf("%w: order %d < 1", attribute.ErrInvalid, order)
	}

	poles, k := cheby1ap(order, rippleDB)

	warped := 4 * math.Tan(math.Pi*cutoff/2)
	k = lp2lp(poles, k, warped)

	zeros, k := bilinear(poles, k)

	return zpk2tf(zeros, poles, k)
}

// cheby1ap returns the analog prototype poles and gain of a Chebyshev
// Type-I filter with the given passband ripple in dB. The poles lie on
// an ellipse in the left half of the S-plane.
func cheby1ap(order int, rippleDB float64) ([]complex128, float64) {
	eps := math.Sqrt(math.Pow(10, 0.1*rippleDB) - 1)
	mu := math.Asinh(1/eps) / float64(order)

	poles := make([]complex128, order)
	gain := complex(1, 0)
	for i := range poles {
		theta := math.Pi * float64(-order+1+2*i) / (2 * float64(order))
		poles[i] = -cmplx.Sinh(complex(mu, theta))
		gain *= -poles[i]
	}

	k := real(gain)
	if order%2 == 0 {
		k /= math.Sqrt(1 + eps*eps)
	}
	return poles, k
}

// lp2lp shifts the prototype poles to the warped cutoff wo and returns
// the compensated gain. Each shifted pole decreases the gain by wo;
// the net change is cancelled so the overall gain stays put.
func lp2lp(poles []complex128, k, wo float64) float64 {
	for i := range poles {
		poles[i] *= complex(wo, 0)
	}
	return k * math.Pow(wo, float64(len(poles)))
}

// bilinear maps the analog poles into the Z-plane at fs2 = 4. Zeros
// that were at infinity land at the Nyquist frequency (z = -1).
func bilinear(poles []complex128, k float64) ([]complex128, float64) {
	const fs2 = 4.0

	denom := complex(1, 0)
	for _, p := range poles {
		denom *= fs2 - p
	}

	zeros := make([]complex128, len(poles))
	for i := range zeros {
		zeros[i] = -1
	}
	for i, p := range poles {
		poles[i] = (fs2 + p) / (fs2 - p)
	}

	return zeros, k * real(1/denom)
}

// zpk2tf expands the zero and pole sets into real coefficient vectors.
// The numerator is scaled by the gain k.
func zpk2tf(zeros, poles []complex128, k float64) (b, a []float64, err error) {
	bc := poly(zeros)
	ac := poly(poles)

	b = make([]float64, len(bc))
	for i := range bc {
		b[i] = k * real(bc[i])
	}
	a = make([]float64, len(ac))
	for i := range ac {
		a[i] = real(ac[i])
	}
	return b, a, nil
}

// poly expands a sequence of roots into polynomial coefficients via
// pairwise convolution, highest order first, leading coefficient 1.
func poly(roots []complex128) []complex128 {
	result := []complex128{1}
	for _, r := range roots {
		result = convolve(result, []complex128{1, -r})
	}
	return result
}

// convolve returns the full linear convolution of x and y.
func convolve(x, y []complex128) []complex128 {
	if len(y) > len(x) {
		x, y = y, x
	}
	out := make([]complex128, len(x)+len(y)-1)
	for i := range out {
		kmin := 0
		if i >= len(y) {
			kmin = i - (len(y) - 1)
		}
		kmax := i
		if i >= len(x) {
			kmax = len(x) - 1
		}
		for k := kmin; k <= kmax; k++ {
			out[i] += x[k] * y[i-k]
		}
	}
	return out
}
