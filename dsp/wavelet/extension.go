package wavelet

import "errors"

// ErrWholeSampleAnti is returned when an antisymmetric whole-sample extension
// is requested; the reflection would have to negate the axis samples in place
// and no transform path needs it.
var ErrWholeSampleAnti = errors.New("wavelet: whole-sample antisymmetric extension is not defined")

// ExtensionKind selects how a signal reflects at its boundaries.
type ExtensionKind int

const (
	// WholeSampleExtension mirrors around the first and last sample without
	// duplicating them: ..., s1, s0, s1, ..., sN-2, sN-1, sN-2, ...
	// The sequence is periodic with period 2N-2.
	WholeSampleExtension ExtensionKind = iota

	// HalfSampleExtension mirrors between samples, duplicating the endpoints:
	// ..., s0, s0, s1, ..., sN-1, sN-1, sN-2, ...
	// The sequence is periodic with period 2N.
	HalfSampleExtension
)

// Extension is a restartable view of the infinite boundary extension of a
// signal. It references the underlying slice without copying it.
//
// The two kinds differ by exactly one sample in when the iteration direction
// flips at a boundary; that off-by-one decides whether endpoints repeat.
// An antisymmetric half-sample extension additionally negates the reflected
// copies, so the duplicated endpoints appear with opposite signs.
type Extension struct {
	data []float64
	kind ExtensionKind
	anti bool

	pos  int
	dir  int
	sign float64
}

// NewExtension returns an extension over data. Antisymmetric extension is
// only defined for the half-sample kind.
func NewExtension(data []float64, kind ExtensionKind, antisymmetric bool) (*Extension, error) {
	if len(data) == 0 {
		return nil, ErrEmptySignal
	}
	if antisymmetric && kind == WholeSampleExtension {
		return nil, ErrWholeSampleAnti
	}

	e := &Extension{data: data, kind: kind, anti: antisymmetric}
	e.Reset()
	return e, nil
}

// Reset restarts iteration at the first sample, moving forward.
func (e *Extension) Reset() {
	e.pos = 0
	e.dir = 1
	e.sign = 1
}

// Period returns the fundamental period of the extended sequence. For the
// degenerate single-sample signal the period is 1 (whole-sample and
// half-sample symmetric) or 2 (half-sample antisymmetric).
func (e *Extension) Period() int {
	n := len(e.data)
	if n == 1 {
		if e.anti {
			return 2
		}
		return 1
	}
	if e.kind == WholeSampleExtension {
		return 2*n - 2
	}
	return 2 * n
}

// Next returns the current sample and advances the iterator. The sequence is
// infinite; Next never fails.
func (e *Extension) Next() float64 {
	v := e.sign * e.data[e.pos]
	e.advance()
	return v
}

func (e *Extension) advance() {
	n := len(e.data)
	if n == 1 {
		if e.anti {
			e.sign = -e.sign
		}
		return
	}

	switch {
	case e.pos == n-1 && e.dir == 1:
		e.dir = -1
		if e.anti {
			e.sign = -e.sign
		}
		// Whole-sample reflection steps past the boundary sample at once;
		// half-sample stays to emit it a second time.
		if e.kind == WholeSampleExtension {
			e.pos--
		}
	case e.pos == 0 && e.dir == -1:
		e.dir = 1
		if e.anti {
			e.sign = -e.sign
		}
		if e.kind == WholeSampleExtension {
			e.pos++
		}
	default:
		e.pos += e.dir
	}
}

// At returns the extended sample at virtual index i, which may be negative.
// At(0) through At(len-1) return the signal itself; indices outside reflect
// periodically. At does not disturb the iterator state.
func (e *Extension) At(i int) float64 {
	n := len(e.data)
	if n == 1 {
		if e.anti && mod(i, 2) == 1 {
			return -e.data[0]
		}
		return e.data[0]
	}

	if e.kind == WholeSampleExtension {
		j := mod(i, 2*n-2)
		if j >= n {
			j = 2*n - 2 - j
		}
		return e.data[j]
	}

	j := mod(i, 2*n)
	if j < n {
		return e.data[j]
	}
	if e.anti {
		return -e.data[2*n-1-j]
	}
	return e.data[2*n-1-j]
}

// Take appends the first count samples of the extension (from index 0) to a
// fresh slice. Mostly useful in tests and examples.
func (e *Extension) Take(count int) []float64 {
	out := make([]float64, count)
	for i := range out {
		out[i] = e.At(i)
	}
	return out
}

// mod is the floored modulo, non-negative for positive m.
func mod(i, m int) int {
	r := i % m
	if r < 0 {
		r += m
	}
	return r
}
