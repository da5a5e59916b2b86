package wavelet

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-cwt/cwt/attribute"
	"github.com/cwbudde/algo-cwt/internal/testutil"
)

func TestNewRejectsBadSampleRate(t *testing.T) {
	for _, sr := range []float64{0, -44100} {
		if _, err := New(Morlet, sr); !errors.Is(err, attribute.ErrOutOfRange) {
			t.Fatalf("sample rate %v: expected ErrOutOfRange, got %v", sr, err)
		}
	}
}

func TestNewRejectsUnknownFamily(t *testing.T) {
	if _, err := New(Family(99), 100); !errors.Is(err, attribute.ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
}

func TestSetDefaultWindowSizeOddAndMinimum(t *testing.T) {
	w := newMorlet(t, 100)
	w.SetDefaultWindowSize()
	// 2 * 1.5 * sqrt(2)*0.02 * 100 = 8.49 -> 8 -> odd -> 9.
	if got := w.WindowSize.Get(); got != 9 {
		t.Fatalf("default window size = %d, want 9", got)
	}

	// A tiny scale bottoms out at the 3-sample minimum, still odd.
	if err := w.Scale.Set(1e-6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.SetDefaultWindowSize()
	if got := w.WindowSize.Get(); got != 3 {
		t.Fatalf("minimum window size = %d, want 3", got)
	}

	for _, scale := range []float64{0.01, 0.057, 0.3, 1.7} {
		if err := w.Scale.Set(scale); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		w.SetDefaultWindowSize()
		ws := w.WindowSize.Get()
		if ws < 3 || ws%2 == 0 {
			t.Fatalf("scale %v: window size %d not odd or below 3", scale, ws)
		}
	}
}

func TestAttributeDispatch(t *testing.T) {
	w := newMorlet(t, 100)
	if err := w.SetAttribute("scale", 0.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := w.Attribute("scale")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.(float64) != 0.5 {
		t.Fatalf("scale = %v, want 0.5", got)
	}
	if err := w.SetAttribute("window_size", 11); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.Values()) != 11 {
		t.Fatalf("values length = %d, want 11", len(w.Values()))
	}
}

func TestAttributeDispatchErrors(t *testing.T) {
	w := newMorlet(t, 100)
	if err := w.SetAttribute("bogus", 1.0); !errors.Is(err, attribute.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := w.SetAttribute("scale", 7); !errors.Is(err, attribute.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch for int scale, got %v", err)
	}
	if err := w.SetAttribute("window_size", 4.0); !errors.Is(err, attribute.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch for float window_size, got %v", err)
	}
	if err := w.SetAttribute("scale", -1.0); !errors.Is(err, attribute.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}

	p := newPaul(t, 100)
	if err := p.SetAttribute("omega0", 6.0); !errors.Is(err, attribute.ErrNotFound) {
		t.Fatalf("omega0 on Paul: expected ErrNotFound, got %v", err)
	}
	if _, err := w.Attribute("order"); !errors.Is(err, attribute.ErrNotFound) {
		t.Fatalf("order on Morlet: expected ErrNotFound, got %v", err)
	}
}

func TestRejectedWriteKeepsValues(t *testing.T) {
	w := newMorlet(t, 100)
	if err := w.WindowSize.Set(9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := make([]complex128, 9)
	copy(before, w.Values())
	if err := w.SetAttribute("scale", -3.0); !errors.Is(err, attribute.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	diff, err := testutil.MaxAbsDiffComplex(before, w.Values())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff != 0 {
		t.Fatal("rejected write recomputed values")
	}
}

func TestModeRoundtripRestoresValues(t *testing.T) {
	w := newMorlet(t, 100)
	if err := w.WindowSize.Set(15); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := make([]complex128, 15)
	copy(before, w.Values())
	if err := w.Mode.Set(Spectral); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Mode.Set(Recursive); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireComplexSliceNearlyEqual(t, w.Values(), before, 0)
}

func TestModeRejectsOutOfEnum(t *testing.T) {
	w := newMorlet(t, 100)
	if err := w.Mode.Set(Mode(5)); !errors.Is(err, attribute.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	w := newMorlet(t, 100)
	if err := w.WindowSize.Set(9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := w.Clone()
	testutil.RequireComplexSliceNearlyEqual(t, c.Values(), w.Values(), 0)

	if err := c.Scale.Set(0.7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Scale.Get() == 0.7 {
		t.Fatal("clone shares scale with original")
	}
	diff, err := testutil.MaxAbsDiffComplex(c.Values(), w.Values())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff == 0 {
		t.Fatal("clone values did not recompute independently")
	}
}

func TestInfoNamesFamily(t *testing.T) {
	w := newMorlet(t, 100)
	if info := w.Info(); !strings.Contains(info, "Morlet") || !strings.Contains(info, "Omega0") {
		t.Fatalf("info missing family details:\n%s", info)
	}
	p := newPaul(t, 100)
	if info := p.Info(); !strings.Contains(info, "Paul") || !strings.Contains(info, "Order") {
		t.Fatalf("info missing family details:\n%s", info)
	}
}

func TestWindowValuesLengthTracksAttribute(t *testing.T) {
	w := newMorlet(t, 100)
	for _, ws := range []int{1, 3, 8, 51} {
		if err := w.WindowSize.Set(ws); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(w.Values()) != ws {
			t.Fatalf("window %d: values length %d", ws, len(w.Values()))
		}
	}
}

func TestEFoldingScalesLinearly(t *testing.T) {
	w := newMorlet(t, 100)
	if err := w.Scale.Set(0.1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e1 := w.EFoldingTime()
	if err := w.Scale.Set(0.2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e2 := w.EFoldingTime(); math.Abs(e2-2*e1) > 1e-15 {
		t.Fatalf("e-folding not linear in scale: %v vs %v", e2, 2*e1)
	}
}
