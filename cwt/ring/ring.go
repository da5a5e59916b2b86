// Package ring provides the fixed-capacity sample ring buffer backing
// each decimation rate of the filterbank. Indexing is logical: index 0
// is the oldest retained sample, Len()-1 the newest. Once full, every
// push evicts the oldest sample.
package ring

// Buffer is a fixed-capacity circular buffer of float64 samples.
type Buffer struct {
	data  []float64
	start int
	size  int
}

// New returns an empty buffer with the given capacity. Capacities
// below 1 are raised to 1.
func New(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{data: make([]float64, capacity)}
}

// Push appends v as the newest sample, evicting the oldest sample if
// the buffer is full.
func (b *Buffer) Push(v float64) {
	if b.size < len(b.data) {
		b.data[(b.start+b.size)%len(b.data)] = v
		b.size++
		return
	}
	b.data[b.start] = v
	b.start = (b.start + 1) % len(b.data)
}

// At returns the sample at logical index i, where 0 is the oldest
// retained sample. i must be in [0, Len()).
func (b *Buffer) At(i int) float64 {
	return b.data[(b.start+i)%len(b.data)]
}

// Oldest returns the sample at logical index 0.
func (b *Buffer) Oldest() float64 { return b.At(0) }

// Newest returns the most recently pushed sample.
func (b *Buffer) Newest() float64 { return b.At(b.size - 1) }

// Len returns the number of samples currently held.
func (b *Buffer) Len() int { return b.size }

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int { return len(b.data) }

// Full reports whether Len equals Cap.
func (b *Buffer) Full() bool { return b.size == len(b.data) }

// Clear empties the buffer without releasing its storage.
func (b *Buffer) Clear() {
	b.start = 0
	b.size = 0
}
