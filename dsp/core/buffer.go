package core

// EnsureLen returns buf resized to n, reallocating only when the capacity
// falls short. The contents are unspecified; callers are expected to
// overwrite the whole slice.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if n > cap(buf) {
		return make([]float64, n)
	}
	return buf[:n]
}

// Zero clears buf in place.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// CopyInto copies src into dst and reports how many values were copied,
// the smaller of the two lengths.
func CopyInto(dst, src []float64) int {
	return copy(dst, src)
}
