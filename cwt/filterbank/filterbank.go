package filterbank

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cwbudde/algo-cwt/cwt/attribute"
	"github.com/cwbudde/algo-cwt/cwt/lowpass"
	"github.com/cwbudde/algo-cwt/cwt/ring"
	"github.com/cwbudde/algo-cwt/cwt/wavelet"
)

// Optimisation selects the decimation strategy of the bank.
type Optimisation int

const (
	// None keeps every band at the full sample rate.
	None Optimisation = iota
	// Standard1 decimates each band to 8 samples per period.
	Standard1
	// Standard2 decimates each band to 4 samples per period.
	Standard2
	// Aggressive1 is Standard1 plus frame skipping on decimated bands.
	Aggressive1
	// Aggressive2 is Standard2 plus frame skipping on decimated bands.
	Aggressive2
)

// String returns the optimisation name.
func (o Optimisation) String() string {
	switch o {
	case None:
		return "None"
	case Standard1:
		return "Standard1"
	case Standard2:
		return "Standard2"
	case Aggressive1:
		return "Aggressive1"
	case Aggressive2:
		return "Aggressive2"
	}
	return fmt.Sprintf("Optimisation(%d)", int(o))
}

// antiAliasCutoff is the normalized cutoff installed ahead of a
// rate-f stream, expressed as a fraction of the decimated Nyquist.
const antiAliasCutoff = 0.8

// Filterbank is the top-level CWT orchestrator. It owns a reference
// kernel holding the shared parameters, one kernel clone per band, and
// the multi-rate ring buffers and anti-aliasing filters feeding them.
type Filterbank struct {
	// FrequencyMin is the lowest analyzed frequency, in (0, FrequencyMax].
	FrequencyMin *attribute.Float
	// FrequencyMax is the highest analyzed frequency, bounded by Nyquist.
	FrequencyMax *attribute.Float
	// BandsPerOctave is the number of bands per doubling of scale.
	BandsPerOctave *attribute.Float
	// Family selects the wavelet family of every band.
	Family *attribute.Attr[wavelet.Family]
	// Optimisation selects the decimation strategy.
	Optimisation *attribute.Attr[Optimisation]
	// Rescale divides each coefficient by the square root of its scale.
	Rescale *attribute.Bool

	reference   *wavelet.Wavelet
	wavelets    []*wavelet.Wavelet
	scales      []float64
	frequencies []float64
	factors     []int

	rates   []int
	buffers map[int]*ring.Buffer
	filters map[int]*lowpass.Filter

	resultComplex []complex128
	resultPower   []float64
	resultRe      []float64
	resultIm      []float64
	frameIndex    int
}

type config struct {
	family       wavelet.Family
	optimisation Optimisation
	rescale      bool
	delay        float64
	padding      float64
	omega0       float64
	order        int
}

func defaultConfig() config {
	return config{
		family:       wavelet.Morlet,
		optimisation: None,
		rescale:      true,
		delay:        wavelet.DefaultDelay,
		padding:      wavelet.DefaultPadding,
		omega0:       wavelet.DefaultOmega0,
		order:        wavelet.DefaultOrder,
	}
}

// Option configures a Filterbank at construction.
type Option func(*config)

// WithFamily selects the wavelet family. Defaults to Morlet.
func WithFamily(f wavelet.Family) Option {
	return func(cfg *config) { cfg.family = f }
}

// WithOptimisation selects the decimation strategy. Defaults to None.
func WithOptimisation(o Optimisation) Option {
	return func(cfg *config) { cfg.optimisation = o }
}

// WithRescale toggles the 1/sqrt(scale) rescaling. Defaults to true.
func WithRescale(enabled bool) Option {
	return func(cfg *config) { cfg.rescale = enabled }
}

// WithDelay sets the analysis delay in e-folding times.
func WithDelay(delay float64) Option {
	return func(cfg *config) { cfg.delay = delay }
}

// WithPadding sets the boundary padding in e-folding times.
func WithPadding(padding float64) Option {
	return func(cfg *config) { cfg.padding = padding }
}

// WithOmega0 sets the Morlet carrier frequency. Ignored by Paul.
func WithOmega0(omega0 float64) Option {
	return func(cfg *config) { cfg.omega0 = omega0 }
}

// WithOrder sets the Paul wavelet order. Ignored by Morlet.
func WithOrder(order int) Option {
	return func(cfg *config) { cfg.order = order }
}

// New builds a filterbank analyzing [frequencyMin, frequencyMax] Hz at
// the given number of bands per octave. Constraint violations fail
// with ErrOutOfRange and family-parameter violations with the error of
// the offending attribute.
func New(sampleRate, frequencyMin, frequencyMax, bandsPerOctave float64, opts ...Option) (*Filterbank, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %v must be positive", attribute.ErrOutOfRange, sampleRate)
	}
	if frequencyMin <= 0 || frequencyMin > frequencyMax {
		return nil, fmt.Errorf("%w: frequency_min %v not in (0, %v]", attribute.ErrOutOfRange, frequencyMin, frequencyMax)
	}
	if frequencyMax > sampleRate/2 {
		return nil, fmt.Errorf("%w: frequency_max %v above Nyquist %v", attribute.ErrOutOfRange, frequencyMax, sampleRate/2)
	}
	if bandsPerOctave <= 1 {
		return nil, fmt.Errorf("%w: bands_per_octave %v must exceed 1", attribute.ErrOutOfRange, bandsPerOctave)
	}

	ref, err := wavelet.New(cfg.family, sampleRate)
	if err != nil {
		return nil, err
	}
	if err := ref.Delay.Set(cfg.delay); err != nil {
		return nil, err
	}
	if err := ref.Padding.Set(cfg.padding); err != nil {
		return nil, err
	}
	switch cfg.family {
	case wavelet.Morlet:
		if err := ref.Omega0.Set(cfg.omega0); err != nil {
			return nil, err
		}
	case wavelet.Paul:
		if err := ref.Order.Set(cfg.order); err != nil {
			return nil, err
		}
	}

	fb := &Filterbank{
		FrequencyMin:   attribute.New(frequencyMin, math.SmallestNonzeroFloat64, frequencyMax),
		FrequencyMax:   attribute.New(frequencyMax, frequencyMin, sampleRate/2),
		BandsPerOctave: attribute.New(bandsPerOctave, math.Nextafter(1, 2), math.MaxFloat64),
		Family:         attribute.New(cfg.family, wavelet.Morlet, wavelet.Paul),
		Optimisation:   attribute.New(cfg.optimisation, None, Aggressive2),
		Rescale:        attribute.NewBool(cfg.rescale),
		reference:      ref,
	}
	fb.wire()
	fb.init()
	return fb, nil
}

func (fb *Filterbank) wire() {
	fb.FrequencyMin.Watch(fb.init)
	fb.FrequencyMax.Watch(fb.init)
	fb.BandsPerOctave.Watch(fb.init)
	fb.Optimisation.Watch(fb.init)
	fb.Rescale.Watch(fb.init)
	fb.Family.Watch(fb.onFamilyChange)
}

// onFamilyChange swaps the reference kernel for a fresh one of the new
// family at the same sample rate, then rebuilds the bank. Family
// parameters revert to their defaults.
func (fb *Filterbank) onFamilyChange() {
	ref, err := wavelet.New(fb.Family.Get(), fb.reference.SampleRate.Get())
	if err != nil {
		return
	}
	fb.reference = ref
	fb.init()
}

// init rebuilds every derived structure from the current attributes:
// band scales and frequencies, decimation factors, per-band kernels,
// per-rate ring buffers and anti-aliasing filters, and the result
// vectors.
func (fb *Filterbank) init() {
	ref := fb.reference
	sampleRate := ref.SampleRate.Get()
	bpo := fb.BandsPerOctave.Get()
	opt := fb.Optimisation.Get()

	scale0 := 2 / sampleRate
	minScale := ref.FrequencyToScale(fb.FrequencyMax.Get())
	maxScale := ref.FrequencyToScale(fb.FrequencyMin.Get())
	minIndex := 1 + int(math.Log2(minScale/scale0)*bpo)
	maxIndex := 1 + int(math.Log2(maxScale/scale0)*bpo)
	n := maxIndex - minIndex
	if n < 0 {
		n = 0
	}

	fb.scales = make([]float64, n)
	fb.frequencies = make([]float64, n)
	for i := 0; i < n; i++ {
		fb.scales[i] = scale0 * math.Pow(2, float64(minIndex+i)/bpo)
		fb.frequencies[i] = ref.ScaleToFrequency(fb.scales[i])
	}

	if opt != None {
		div := 8.0
		if opt == Standard2 || opt == Aggressive2 {
			div = 4
		}
		fb.factors = make([]int, n)
		for i := range fb.factors {
			f := int((sampleRate / div) / fb.frequencies[i])
			if f < 1 {
				f = 1
			}
			fb.factors[i] = f
		}
	} else {
		fb.factors = nil
	}

	// Per-band kernels share everything with the reference except the
	// scale and, when decimated, the sample rate. The derived writes
	// are always in range.
	fb.wavelets = make([]*wavelet.Wavelet, n)
	for i := range fb.wavelets {
		wv := ref.Clone()
		if opt != None {
			_ = wv.SampleRate.Set(sampleRate / float64(fb.factors[i]))
		}
		_ = wv.Scale.Set(fb.scales[i])
		wv.SetDefaultWindowSize()
		fb.wavelets[i] = wv
	}

	fb.buffers = make(map[int]*ring.Buffer)
	fb.filters = make(map[int]*lowpass.Filter)
	fb.rates = fb.rates[:0]
	if n > 0 {
		if opt == None {
			widest := 0
			for _, wv := range fb.wavelets {
				if ws := wv.WindowSize.Get(); ws > widest {
					widest = ws
				}
			}
			fb.buffers[1] = ring.New(widest)
			fb.rates = append(fb.rates, 1)
		} else {
			capacities := make(map[int]int)
			for i, f := range fb.factors {
				if need := fb.wavelets[i].WindowSize.Get() * f; need > capacities[f] {
					capacities[f] = need
				}
			}
			for f, capacity := range capacities {
				fb.buffers[f] = ring.New(capacity)
				fb.rates = append(fb.rates, f)
				if f > 1 {
					// 0.8/f is always a designable cutoff for f >= 2.
					if lp, err := lowpass.New(antiAliasCutoff / float64(f)); err == nil {
						fb.filters[f] = lp
					}
				}
			}
			sort.Ints(fb.rates)
		}
	}

	fb.resultComplex = make([]complex128, n)
	fb.resultPower = make([]float64, n)
	fb.resultRe = make([]float64, n)
	fb.resultIm = make([]float64, n)
	fb.frameIndex = 0
}

// SetAttribute writes the named attribute and rebuilds the bank.
// Unknown names fail with ErrNotFound, wrong kinds with
// ErrTypeMismatch, violated constraints with ErrOutOfRange; a failed
// write leaves the configuration untouched.
func (fb *Filterbank) SetAttribute(name string, value any) error {
	switch name {
	case "frequency_min":
		f, ok := value.(float64)
		if !ok {
			return fmt.Errorf("%w: %s wants a float64, got %T", attribute.ErrTypeMismatch, name, value)
		}
		if err := fb.FrequencyMin.Set(f); err != nil {
			return err
		}
		fb.FrequencyMax.SetMin(f)
		return nil
	case "frequency_max":
		f, ok := value.(float64)
		if !ok {
			return fmt.Errorf("%w: %s wants a float64, got %T", attribute.ErrTypeMismatch, name, value)
		}
		if err := fb.FrequencyMax.Set(f); err != nil {
			return err
		}
		fb.FrequencyMin.SetMax(f)
		return nil
	case "bands_per_octave":
		f, ok := value.(float64)
		if !ok {
			return fmt.Errorf("%w: %s wants a float64, got %T", attribute.ErrTypeMismatch, name, value)
		}
		return fb.BandsPerOctave.Set(f)
	case "family":
		fam, ok := value.(wavelet.Family)
		if !ok {
			return fmt.Errorf("%w: %s wants a wavelet.Family, got %T", attribute.ErrTypeMismatch, name, value)
		}
		return fb.Family.Set(fam)
	case "optimisation":
		o, ok := value.(Optimisation)
		if !ok {
			return fmt.Errorf("%w: %s wants an Optimisation, got %T", attribute.ErrTypeMismatch, name, value)
		}
		return fb.Optimisation.Set(o)
	case "rescale":
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: %s wants a bool, got %T", attribute.ErrTypeMismatch, name, value)
		}
		return fb.Rescale.Set(b)
	case "scale", "window_size":
		return fmt.Errorf("%w: %q is derived per band", attribute.ErrNotFound, name)
	default:
		if name == "sample_rate" {
			if sr, ok := value.(float64); ok && fb.FrequencyMax.Get() > sr/2 {
				return fmt.Errorf("%w: frequency_max %v above Nyquist %v", attribute.ErrOutOfRange, fb.FrequencyMax.Get(), sr/2)
			}
		}
		if err := fb.reference.SetAttribute(name, value); err != nil {
			return err
		}
		if name == "sample_rate" {
			fb.FrequencyMax.SetMax(value.(float64) / 2)
		}
		fb.init()
		return nil
	}
}

// Attribute reads the named attribute. Per-band derived values fail
// with ErrNotFound.
func (fb *Filterbank) Attribute(name string) (any, error) {
	switch name {
	case "frequency_min":
		return fb.FrequencyMin.Get(), nil
	case "frequency_max":
		return fb.FrequencyMax.Get(), nil
	case "bands_per_octave":
		return fb.BandsPerOctave.Get(), nil
	case "family":
		return fb.Family.Get(), nil
	case "optimisation":
		return fb.Optimisation.Get(), nil
	case "rescale":
		return fb.Rescale.Get(), nil
	case "scale", "window_size":
		return nil, fmt.Errorf("%w: %q is derived per band", attribute.ErrNotFound, name)
	default:
		return fb.reference.Attribute(name)
	}
}

// Size returns the number of bands.
func (fb *Filterbank) Size() int { return len(fb.wavelets) }

// SampleRate returns the input sample rate in Hz.
func (fb *Filterbank) SampleRate() float64 { return fb.reference.SampleRate.Get() }

// Scales returns the per-band scales in ascending order. The slice is
// owned by the bank.
func (fb *Filterbank) Scales() []float64 { return fb.scales }

// Frequencies returns the per-band equivalent frequencies, descending.
// The slice is owned by the bank.
func (fb *Filterbank) Frequencies() []float64 { return fb.frequencies }

// DownsamplingFactors returns the per-band decimation factors, or nil
// when optimisation is None. The slice is owned by the bank.
func (fb *Filterbank) DownsamplingFactors() []int { return fb.factors }

// ResultComplex returns the latest per-band coefficients. The slice is
// owned by the bank and overwritten by the next Update.
func (fb *Filterbank) ResultComplex() []complex128 { return fb.resultComplex }

// ResultPower returns the latest per-band squared magnitudes. The
// slice is owned by the bank and overwritten by the next Update.
func (fb *Filterbank) ResultPower() []float64 { return fb.resultPower }

// DelaysInSamples returns the per-band group delay in input samples.
// Decimated bands under an active optimisation carry one extra factor
// of latency from their anti-aliased stream.
func (fb *Filterbank) DelaysInSamples() []int {
	delays := make([]int, len(fb.wavelets))
	refRate := fb.reference.SampleRate.Get()
	opt := fb.Optimisation.Get()
	for i, wv := range fb.wavelets {
		d := wv.Delay.Get() * wv.EFoldingTime() * refRate
		if opt != None && fb.factors[i] > 1 {
			delays[i] = int(d) + fb.factors[i]
		} else {
			delays[i] = int(d)
		}
	}
	return delays
}

// Info returns a human-readable description of the bank and its
// reference kernel.
func (fb *Filterbank) Info() string {
	var sb strings.Builder
	sb.WriteString("Wavelet Filterbank:\n")
	fmt.Fprintf(&sb, "\tFrequency Range: %g %g\n", fb.FrequencyMin.Get(), fb.FrequencyMax.Get())
	fmt.Fprintf(&sb, "\tBands per Octave: %g\n", fb.BandsPerOctave.Get())
	fmt.Fprintf(&sb, "\tOptimisation: %s\n", fb.Optimisation.Get())
	if len(fb.wavelets) > 0 {
		sb.WriteString(fb.reference.Info())
	}
	return sb.String()
}

// Clone returns an independent filterbank with the same configuration
// and a freshly initialized state.
func (fb *Filterbank) Clone() *Filterbank {
	c := &Filterbank{
		FrequencyMin:   fb.FrequencyMin.Clone(),
		FrequencyMax:   fb.FrequencyMax.Clone(),
		BandsPerOctave: fb.BandsPerOctave.Clone(),
		Family:         fb.Family.Clone(),
		Optimisation:   fb.Optimisation.Clone(),
		Rescale:        fb.Rescale.Clone(),
		reference:      fb.reference.Clone(),
	}
	c.wire()
	c.init()
	return c
}
