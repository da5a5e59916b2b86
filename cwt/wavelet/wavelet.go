package wavelet

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"github.com/cwbudde/algo-cwt/cwt/attribute"
)

// Family identifies a wavelet family.
type Family int

const (
	Morlet Family = iota
	Paul
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case Morlet:
		return "Morlet"
	case Paul:
		return "Paul"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Mode selects the domain of the sampled kernel values.
type Mode int

const (
	// Recursive holds time-domain values; the streaming path uses it.
	Recursive Mode = iota
	// Spectral holds frequency-domain values; the FFT batch path uses it.
	Spectral
)

// Defaults shared by all families.
const (
	DefaultDelay   = 1.5
	DefaultPadding = 1.0
	DefaultOmega0  = 5.0
	DefaultOrder   = 2
)

// Wavelet is a sampled analytic wavelet kernel. The family is fixed at
// construction; everything else is a bounded attribute whose accepted
// writes recompute the sampled values.
type Wavelet struct {
	// SampleRate is the rate of the stream this kernel analyzes, in Hz.
	SampleRate *attribute.Float
	// Scale is the time-domain dilation of the mother wavelet.
	Scale *attribute.Float
	// WindowSize is the number of sampled values, at least 1.
	WindowSize *attribute.Int
	// Mode selects Recursive (time domain) or Spectral values.
	Mode *attribute.Attr[Mode]
	// Delay is the analysis delay in units of e-folding times.
	Delay *attribute.Float
	// Padding is the boundary padding in units of e-folding times.
	Padding *attribute.Float
	// Omega0 is the Morlet carrier frequency. Nil for other families.
	Omega0 *attribute.Float
	// Order is the Paul wavelet order. Nil for other families.
	Order *attribute.Int

	family  Family
	values  []complex128
	prepad  complex128
	postpad complex128
}

// New returns a kernel of the given family at the given sample rate,
// with scale 2/sampleRate, window size 1, Recursive mode, and the
// family defaults.
func New(family Family, sampleRate float64) (*Wavelet, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %v must be positive", attribute.ErrOutOfRange, sampleRate)
	}
	if family != Morlet && family != Paul {
		return nil, fmt.Errorf("%w: wavelet family %d", attribute.ErrNotImplemented, int(family))
	}

	w := &Wavelet{
		SampleRate: attribute.New(sampleRate, math.SmallestNonzeroFloat64, math.MaxFloat64),
		Scale:      attribute.New(2/sampleRate, math.SmallestNonzeroFloat64, math.MaxFloat64),
		WindowSize: attribute.New(1, 1, math.MaxInt),
		Mode:       attribute.New(Recursive, Recursive, Spectral),
		Delay:      attribute.New(DefaultDelay, 0, math.MaxFloat64),
		Padding:    attribute.New(DefaultPadding, 0, math.MaxFloat64),
		family:     family,
	}
	switch family {
	case Morlet:
		w.Omega0 = attribute.New(DefaultOmega0, math.SmallestNonzeroFloat64, math.MaxFloat64)
	case Paul:
		w.Order = attribute.New(DefaultOrder, 1, math.MaxInt)
	}
	w.wire()
	w.init()
	return w, nil
}

// wire registers the recompute watcher on every attribute.
func (w *Wavelet) wire() {
	w.SampleRate.Watch(w.init)
	w.Scale.Watch(w.init)
	w.WindowSize.Watch(w.init)
	w.Mode.Watch(w.init)
	w.Delay.Watch(w.init)
	w.Padding.Watch(w.init)
	if w.Omega0 != nil {
		w.Omega0.Watch(w.init)
	}
	if w.Order != nil {
		w.Order.Watch(w.init)
	}
}

// Family returns the fixed family tag.
func (w *Wavelet) Family() Family { return w.family }

// Values returns the sampled kernel values. The slice is owned by the
// kernel and is invalidated by the next attribute change.
func (w *Wavelet) Values() []complex128 { return w.values }

// Prepad returns the boundary scalar summing the conjugated wavelet
// tail just before the window. Only meaningful in Recursive mode.
func (w *Wavelet) Prepad() complex128 { return w.prepad }

// Postpad returns the boundary scalar summing the conjugated wavelet
// tail just after the window. Only meaningful in Recursive mode.
func (w *Wavelet) Postpad() complex128 { return w.postpad }

// init recomputes the sampled values and boundary scalars from the
// current attributes.
func (w *Wavelet) init() {
	ws := w.WindowSize.Get()
	if cap(w.values) < ws {
		w.values = make([]complex128, ws)
	} else {
		w.values = w.values[:ws]
	}

	if w.Mode.Get() == Recursive {
		half := float64(ws / 2)
		ss := w.Scale.Get() * w.SampleRate.Get()
		padLength := int(w.Padding.Get() * w.EFoldingTime() * w.SampleRate.Get())

		w.prepad = 0
		for t := -padLength; t < 0; t++ {
			w.prepad += cmplx.Conj(w.Phi((float64(t) - half) / ss))
		}
		w.postpad = 0
		for t := ws; t < ws+padLength; t++ {
			w.postpad += cmplx.Conj(w.Phi((float64(t) - half) / ss))
		}
		for t := 0; t < ws; t++ {
			w.values[t] = w.Phi((float64(t) - half) / ss)
		}
		return
	}

	// Spectral: positive frequencies in the lower half, negative in the
	// upper half, matching the DFT bin convention.
	step := w.Scale.Get() * 2 * math.Pi * w.SampleRate.Get() / float64(ws)
	for t := 0; t < ws/2; t++ {
		w.values[t] = w.PhiSpectral(step * float64(t))
	}
	for t := ws / 2; t < ws; t++ {
		w.values[t] = w.PhiSpectral(-step * float64(t))
	}
}

// Phi samples the time-domain wavelet at the dimensionless argument.
func (w *Wavelet) Phi(arg float64) complex128 {
	switch w.family {
	case Paul:
		return w.paulPhi(arg)
	default:
		return w.morletPhi(arg)
	}
}

// PhiSpectral samples the frequency-domain kernel at scale*omega.
func (w *Wavelet) PhiSpectral(sOmega float64) complex128 {
	switch w.family {
	case Paul:
		return w.paulPhiSpectral(sOmega)
	default:
		return w.morletPhiSpectral(sOmega)
	}
}

// ScaleToFrequency returns the equivalent Fourier frequency of a scale.
func (w *Wavelet) ScaleToFrequency(scale float64) float64 {
	switch w.family {
	case Paul:
		return w.paulScaleToFrequency(scale)
	default:
		return w.morletScaleToFrequency(scale)
	}
}

// FrequencyToScale returns the scale equivalent to a Fourier frequency.
func (w *Wavelet) FrequencyToScale(frequency float64) float64 {
	switch w.family {
	case Paul:
		return w.paulScaleToFrequency(frequency)
	default:
		return w.morletScaleToFrequency(frequency)
	}
}

// EFoldingTime returns the envelope decay time at the current scale.
func (w *Wavelet) EFoldingTime() float64 {
	switch w.family {
	case Paul:
		return w.Scale.Get() / math.Sqrt2
	default:
		return math.Sqrt2 * w.Scale.Get()
	}
}

// SetDefaultWindowSize derives the window size from the delay and the
// e-folding time at the current scale: at least 3 samples, always odd.
func (w *Wavelet) SetDefaultWindowSize() {
	ws := int(2 * w.Delay.Get() * w.EFoldingTime() * w.SampleRate.Get())
	if ws < 3 {
		ws = 3
	}
	if ws%2 == 0 {
		ws++
	}
	// The derived size is always valid, so the write cannot fail.
	_ = w.WindowSize.Set(ws)
}

// SetAttribute writes the named attribute. Unknown names fail with
// ErrNotFound; a value of the wrong kind fails with ErrTypeMismatch.
func (w *Wavelet) SetAttribute(name string, value any) error {
	switch name {
	case "sample_rate":
		return w.setFloat(name, value, w.SampleRate)
	case "scale":
		return w.setFloat(name, value, w.Scale)
	case "window_size":
		return w.setInt(name, value, w.WindowSize)
	case "mode":
		m, ok := value.(Mode)
		if !ok {
			return fmt.Errorf("%w: %s wants a Mode, got %T", attribute.ErrTypeMismatch, name, value)
		}
		return w.Mode.Set(m)
	case "delay":
		return w.setFloat(name, value, w.Delay)
	case "padding":
		return w.setFloat(name, value, w.Padding)
	case "omega0":
		if w.Omega0 == nil {
			break
		}
		return w.setFloat(name, value, w.Omega0)
	case "order":
		if w.Order == nil {
			break
		}
		return w.setInt(name, value, w.Order)
	}
	return fmt.Errorf("%w: %q", attribute.ErrNotFound, name)
}

// Attribute reads the named attribute.
func (w *Wavelet) Attribute(name string) (any, error) {
	switch name {
	case "sample_rate":
		return w.SampleRate.Get(), nil
	case "scale":
		return w.Scale.Get(), nil
	case "window_size":
		return w.WindowSize.Get(), nil
	case "mode":
		return w.Mode.Get(), nil
	case "delay":
		return w.Delay.Get(), nil
	case "padding":
		return w.Padding.Get(), nil
	case "omega0":
		if w.Omega0 != nil {
			return w.Omega0.Get(), nil
		}
	case "order":
		if w.Order != nil {
			return w.Order.Get(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", attribute.ErrNotFound, name)
}

func (w *Wavelet) setFloat(name string, value any, attr *attribute.Float) error {
	f, ok := value.(float64)
	if !ok {
		return fmt.Errorf("%w: %s wants a float64, got %T", attribute.ErrTypeMismatch, name, value)
	}
	return attr.Set(f)
}

func (w *Wavelet) setInt(name string, value any, attr *attribute.Int) error {
	n, ok := value.(int)
	if !ok {
		return fmt.Errorf("%w: %s wants an int, got %T", attribute.ErrTypeMismatch, name, value)
	}
	return attr.Set(n)
}

// Clone returns an independent copy of the kernel with the same
// configuration and freshly computed values.
func (w *Wavelet) Clone() *Wavelet {
	c := &Wavelet{
		SampleRate: w.SampleRate.Clone(),
		Scale:      w.Scale.Clone(),
		WindowSize: w.WindowSize.Clone(),
		Mode:       w.Mode.Clone(),
		Delay:      w.Delay.Clone(),
		Padding:    w.Padding.Clone(),
		family:     w.family,
	}
	if w.Omega0 != nil {
		c.Omega0 = w.Omega0.Clone()
	}
	if w.Order != nil {
		c.Order = w.Order.Clone()
	}
	c.wire()
	c.init()
	return c
}

// Info returns a human-readable description of the kernel.
func (w *Wavelet) Info() string {
	var sb strings.Builder
	sb.WriteString("Wavelet:\n")
	fmt.Fprintf(&sb, "\tSampling rate: %g\n", w.SampleRate.Get())
	fmt.Fprintf(&sb, "\tScale: %g\n", w.Scale.Get())
	fmt.Fprintf(&sb, "\tEquivalent Frequency (Hz): %g\n", w.ScaleToFrequency(w.Scale.Get()))
	fmt.Fprintf(&sb, "\tWindow Size: %d\n", w.WindowSize.Get())
	fmt.Fprintf(&sb, "\tType: %s\n", w.family)
	switch w.family {
	case Morlet:
		fmt.Fprintf(&sb, "\tOmega0 (carrier frequency): %g\n", w.Omega0.Get())
	case Paul:
		fmt.Fprintf(&sb, "\tOrder: %d\n", w.Order.Get())
	}
	return sb.String()
}
