package buffer

// Buffer wraps a float64 slice for repeated use as transform scratch.
// The transform functions themselves take raw []float64; Samples bridges
// the two.
type Buffer struct {
	samples []float64
}

// New returns a zero-filled Buffer of the given length. Negative lengths
// are treated as zero.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length)}
}

// FromSlice wraps s without copying; the Buffer and the slice alias the
// same memory.
func FromSlice(s []float64) *Buffer {
	return &Buffer{samples: s}
}

// Samples returns the backing slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Cap returns the capacity of the backing slice.
func (b *Buffer) Cap() int {
	return cap(b.samples)
}

// Resize sets the length to n, keeping existing samples and zeroing any
// newly exposed ones. Capacity is reused when it suffices.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}

	old := len(b.samples)
	if n > cap(b.samples) {
		grown := make([]float64, n)
		copy(grown, b.samples)
		b.samples = grown
		return
	}

	b.samples = b.samples[:n]
	b.ZeroRange(old, n)
}

// Zero clears every sample.
func (b *Buffer) Zero() {
	b.ZeroRange(0, len(b.samples))
}

// ZeroRange clears the samples in [start, end), clamping both bounds to
// the buffer.
func (b *Buffer) ZeroRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(b.samples) {
		end = len(b.samples)
	}
	for i := start; i < end; i++ {
		b.samples[i] = 0
	}
}
