package wavelet

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-cwt/internal/testutil"
)

func newMorlet(t *testing.T, sampleRate float64) *Wavelet {
	t.Helper()
	w, err := New(Morlet, sampleRate)
	if err != nil {
		t.Fatalf("New(Morlet, %v): %v", sampleRate, err)
	}
	return w
}

func TestMorletConstructionDefaults(t *testing.T) {
	w := newMorlet(t, 100)
	if got := w.Scale.Get(); got != 2.0/100 {
		t.Fatalf("default scale = %v, want 0.02", got)
	}
	if got := w.SampleRate.Get(); got != 100 {
		t.Fatalf("sample rate = %v, want 100", got)
	}
	if got := w.Mode.Get(); got != Recursive {
		t.Fatalf("default mode = %v, want Recursive", got)
	}
	if got := w.Omega0.Get(); got != DefaultOmega0 {
		t.Fatalf("default omega0 = %v, want 5", got)
	}
	if got := w.Delay.Get(); got != DefaultDelay {
		t.Fatalf("default delay = %v, want 1.5", got)
	}
}

// Reference values for sample rate 100, scale 0.02, omega0 5,
// window size 8.
func TestMorletRecursiveValuesWindow8(t *testing.T) {
	w := newMorlet(t, 100)
	if err := w.WindowSize.Set(8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []complex128{
		complex(-0.06031253, 0.03910428),
		complex(0.05977080, -0.16174061),
		complex(0.09138012, 0.30891188),
		complex(-0.37550965, -0.28051408),
		complex(0.53112597, 0),
		complex(-0.37550965, 0.28051408),
		complex(0.09138012, -0.30891188),
		complex(0.05977080, 0.16174061),
	}
	testutil.RequireComplexSliceNearlyEqual(t, w.Values(), want, 1e-4)
}

// Spot checks against the 100-sample reference table at scale 1.3.
func TestMorletRecursiveValuesScale13(t *testing.T) {
	w := newMorlet(t, 100)
	if err := w.Scale.Set(1.3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.WindowSize.Set(100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vals := w.Values()
	spots := map[int]complex128{
		0:  complex(-0.0211099388884, -0.0574240210325),
		1:  complex(-0.0189416540714, -0.0583639710611),
		10: complex(0.00203131314124, -0.0627993952591),
		25: complex(0.0370086210957, -0.0530350206772),
		50: complex(0.0658780682279, 0),
		75: complex(0.0370086210957, 0.0530350206772),
		99: complex(-0.0189416540714, 0.0583639710611),
	}
	for i, want := range spots {
		testutil.RequireComplexNear(t, vals[i], want, 1e-6)
	}
}

func TestMorletValuesAreConjugateSymmetric(t *testing.T) {
	w := newMorlet(t, 100)
	if err := w.WindowSize.Set(33); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vals := w.Values()
	// Odd window centered on the middle sample: v[c+k] = conj(v[c-k]).
	c := 16
	for k := 1; k <= c; k++ {
		testutil.RequireComplexNear(t, vals[c+k], complex(real(vals[c-k]), -imag(vals[c-k])), 1e-12)
	}
	if math.Abs(imag(vals[c])) > 1e-12 {
		t.Fatalf("center value has imaginary part %v", imag(vals[c]))
	}
}

func TestMorletScaleFrequencyInverse(t *testing.T) {
	w := newMorlet(t, 100)
	for _, f := range []float64{0.5, 1, 5, 20, 50} {
		got := w.ScaleToFrequency(w.FrequencyToScale(f))
		if math.Abs(got-f) > 1e-9*f {
			t.Fatalf("roundtrip(%v) = %v", f, got)
		}
	}
}

func TestMorletEFoldingTime(t *testing.T) {
	w := newMorlet(t, 100)
	if err := w.Scale.Set(0.25); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := w.EFoldingTime(), math.Sqrt2*0.25; math.Abs(got-want) > 1e-15 {
		t.Fatalf("e-folding time = %v, want %v", got, want)
	}
}

func TestMorletSpectralKernel(t *testing.T) {
	w := newMorlet(t, 100)
	if err := w.Mode.Set(Spectral); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.WindowSize.Set(64); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vals := w.Values()
	// Analytic kernel: the negative-frequency half vanishes.
	for t2 := 32; t2 < 64; t2++ {
		if vals[t2] != 0 {
			t.Fatalf("negative-frequency bin %d = %v, want 0", t2, vals[t2])
		}
	}
	// The positive half peaks where scale*omega crosses omega0.
	peak := 0
	for i := 1; i < 32; i++ {
		if real(vals[i]) > real(vals[peak]) {
			peak = i
		}
	}
	step := w.Scale.Get() * 2 * math.Pi * w.SampleRate.Get() / 64
	if d := math.Abs(step*float64(peak) - w.Omega0.Get()); d > step {
		t.Fatalf("spectral peak at bin %d (s*omega=%v), want near omega0=5", peak, step*float64(peak))
	}
}

func TestMorletPrepadPostpadSums(t *testing.T) {
	w := newMorlet(t, 100)
	if err := w.WindowSize.Set(9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// padding * eFolding * sampleRate = 1 * sqrt(2)*0.02 * 100 = 2.83,
	// so two samples on each side.
	ss := w.Scale.Get() * w.SampleRate.Get()
	var pre, post complex128
	for _, tt := range []int{-2, -1} {
		v := w.Phi((float64(tt) - 4) / ss)
		pre += complex(real(v), -imag(v))
	}
	for _, tt := range []int{9, 10} {
		v := w.Phi((float64(tt) - 4) / ss)
		post += complex(real(v), -imag(v))
	}
	testutil.RequireComplexNear(t, w.Prepad(), pre, 1e-12)
	testutil.RequireComplexNear(t, w.Postpad(), post, 1e-12)
}

func TestMorletZeroPaddingZeroesPads(t *testing.T) {
	w := newMorlet(t, 100)
	if err := w.Padding.Set(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Prepad() != 0 || w.Postpad() != 0 {
		t.Fatalf("pads with zero padding: %v, %v", w.Prepad(), w.Postpad())
	}
}
