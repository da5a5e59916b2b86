package lowpass

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-cwt/cwt/attribute"
)

// Defaults for the anti-aliasing configuration of the filterbank.
const (
	DefaultOrder    = 4
	DefaultRippleDB = 0.05
)

// Filter is a streaming Chebyshev Type-I low-pass. Any accepted
// attribute change redesigns the coefficients and zeroes the memory.
type Filter struct {
	// Cutoff is the passband edge normalized to Nyquist, in (0, 1].
	Cutoff *attribute.Float
	// Order is the filter order, at least 1.
	Order *attribute.Int
	// RippleDB is the passband ripple in dB.
	RippleDB *attribute.Float

	b []float64
	a []float64
	z []float64
}

// Option configures a Filter at construction.
type Option func(*Filter)

// WithOrder sets the filter order. Values below 1 are ignored.
func WithOrder(n int) Option {
	return func(f *Filter) {
		if n >= 1 {
			f.Order = attribute.New(n, 1, math.MaxInt)
		}
	}
}

// WithRipple sets the passband ripple in dB.
func WithRipple(db float64) Option {
	return func(f *Filter) {
		f.RippleDB = attribute.New(db, -math.MaxFloat64, math.MaxFloat64)
	}
}

// New designs a Chebyshev Type-I low-pass with the given normalized
// cutoff. A cutoff outside (0, 1] fails with ErrInvalid.
func New(cutoff float64, opts ...Option) (*Filter, error) {
	f := &Filter{
		Cutoff:   attribute.New(cutoff, math.SmallestNonzeroFloat64, 1),
		Order:    attribute.New(DefaultOrder, 1, math.MaxInt),
		RippleDB: attribute.New(DefaultRippleDB, -math.MaxFloat64, math.MaxFloat64),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	if err := f.rebuild(); err != nil {
		return nil, err
	}
	f.Cutoff.Watch(f.redesign)
	f.Order.Watch(f.redesign)
	f.RippleDB.Watch(f.redesign)
	return f, nil
}

// SetCutoff moves the passband edge, redesigning the filter. The write
// is all-or-nothing: on failure the previous design stays active.
func (f *Filter) SetCutoff(cutoff float64) error {
	if cutoff <= 0 || cutoff > 1 {
		return fmt.Errorf("%w: cutoff %v not in (0, 1]", attribute.ErrInvalid, cutoff)
	}
	return f.Cutoff.Set(cutoff)
}

// SetOrder changes the filter order, redesigning the filter.
func (f *Filter) SetOrder(order int) error {
	return f.Order.Set(order)
}

// SetRipple changes the passband ripple, redesigning the filter.
func (f *Filter) SetRipple(db float64) error {
	return f.RippleDB.Set(db)
}

// redesign is the attribute watcher. The attribute limits keep every
// watched write inside the designable region, so the rebuild succeeds.
func (f *Filter) redesign() {
	_ = f.rebuild()
}

func (f *Filter) rebuild() error {
	b, a, err := chebyshev1(f.Order.Get(), f.RippleDB.Get(), f.Cutoff.Get())
	if err != nil {
		return err
	}
	f.b = b
	f.a = a
	f.z = make([]float64, f.Order.Get())
	return nil
}

// Coefficients returns copies of the numerator and denominator
// vectors, each of length Order+1.
func (f *Filter) Coefficients() (b, a []float64) {
	b = make([]float64, len(f.b))
	copy(b, f.b)
	a = make([]float64, len(f.a))
	copy(a, f.a)
	return b, a
}

// ProcessSample advances the direct-form-II transposed recurrence by
// one input sample and returns the filtered output.
func (f *Filter) ProcessSample(x float64) float64 {
	n := len(f.z)
	y := f.b[0]*x + f.z[0]
	for i := 0; i < n-1; i++ {
		f.z[i] = f.b[i+1]*x + f.z[i+1] - f.a[i+1]*y
	}
	f.z[n-1] = f.b[n]*x - f.a[n]*y
	return y
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, v := range buf {
		buf[i] = f.ProcessSample(v)
	}
}

// Reset zeroes the filter memory without touching the design.
func (f *Filter) Reset() {
	for i := range f.z {
		f.z[i] = 0
	}
}

// MagnitudeResponse probes |H(e^jw)| on nfft/2+1 points from DC to
// Nyquist by transforming an impulse response of length nfft. nfft
// must be a power of two of at least 2.
func (f *Filter) MagnitudeResponse(nfft int) ([]float64, error) {
	if nfft < 2 || nfft&(nfft-1) != 0 {
		return nil, fmt.Errorf("%w: nfft %d is not a power of two", attribute.ErrInvalid, nfft)
	}

	probe := &Filter{b: f.b, a: f.a, z: make([]float64, len(f.z))}
	impulse := make([]complex128, nfft)
	for i := 0; i < nfft; i++ {
		x := 0.0
		if i == 0 {
			x = 1
		}
		impulse[i] = complex(probe.ProcessSample(x), 0)
	}

	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return nil, fmt.Errorf("lowpass: failed to create FFT plan: %w", err)
	}
	spec := make([]complex128, nfft)
	if err := plan.Forward(spec, impulse); err != nil {
		return nil, fmt.Errorf("lowpass: forward FFT failed: %w", err)
	}

	mag := make([]float64, nfft/2+1)
	for i := range mag {
		mag[i] = math.Hypot(real(spec[i]), imag(spec[i]))
	}
	return mag, nil
}
