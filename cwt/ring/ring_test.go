package ring

import "testing"

func TestPushUntilFull(t *testing.T) {
	b := New(3)
	if b.Len() != 0 || b.Cap() != 3 || b.Full() {
		t.Fatalf("fresh buffer: len=%d cap=%d full=%v", b.Len(), b.Cap(), b.Full())
	}
	b.Push(1)
	b.Push(2)
	if b.Full() {
		t.Fatal("buffer should not be full at 2/3")
	}
	b.Push(3)
	if !b.Full() {
		t.Fatal("buffer should be full at 3/3")
	}
	for i, want := range []float64{1, 2, 3} {
		if got := b.At(i); got != want {
			t.Fatalf("At(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestPushEvictsOldest(t *testing.T) {
	b := New(3)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		b.Push(v)
	}
	for i, want := range []float64{3, 4, 5} {
		if got := b.At(i); got != want {
			t.Fatalf("At(%d) = %v, want %v", i, got, want)
		}
	}
	if b.Oldest() != 3 || b.Newest() != 5 {
		t.Fatalf("oldest=%v newest=%v, want 3 and 5", b.Oldest(), b.Newest())
	}
}

func TestClearKeepsCapacity(t *testing.T) {
	b := New(4)
	b.Push(1)
	b.Push(2)
	b.Clear()
	if b.Len() != 0 || b.Cap() != 4 {
		t.Fatalf("after clear: len=%d cap=%d", b.Len(), b.Cap())
	}
	b.Push(9)
	if b.At(0) != 9 {
		t.Fatalf("push after clear: At(0) = %v, want 9", b.At(0))
	}
}

func TestMinimumCapacity(t *testing.T) {
	b := New(0)
	if b.Cap() != 1 {
		t.Fatalf("cap = %d, want 1", b.Cap())
	}
	b.Push(1)
	b.Push(2)
	if b.At(0) != 2 {
		t.Fatalf("At(0) = %v, want 2", b.At(0))
	}
}
