package wavelet

import "errors"

// Errors returned by filter construction and transform operations.
var (
	ErrEmptyCoefficients = errors.New("wavelet: empty coefficient slice")
	ErrEmptySignal       = errors.New("wavelet: empty signal")
	ErrSubbandMismatch   = errors.New("wavelet: subband length mismatch")
	ErrBadLength         = errors.New("wavelet: output length out of range")
)

// Symmetry identifies the linear-phase class of a filter.
//
// Whole-sample classes place the central coefficient on the mirror axis, so
// the full kernel has odd length 2m-1 for m stored coefficients. Half-sample
// classes put the axis between two samples, giving even length 2m.
type Symmetry int

const (
	// WholeSampleSymmetric mirrors without repeating the central coefficient.
	WholeSampleSymmetric Symmetry = iota

	// WholeSampleAntisymmetric mirrors with negated leading half; the central
	// coefficient keeps its sign.
	WholeSampleAntisymmetric

	// HalfSampleSymmetric mirrors every stored coefficient.
	HalfSampleSymmetric

	// HalfSampleAntisymmetric mirrors every stored coefficient with negation.
	HalfSampleAntisymmetric
)

// String returns the common shorthand for the symmetry class.
func (s Symmetry) String() string {
	switch s {
	case WholeSampleSymmetric:
		return "WSS"
	case WholeSampleAntisymmetric:
		return "WSA"
	case HalfSampleSymmetric:
		return "HSS"
	case HalfSampleAntisymmetric:
		return "HSA"
	default:
		return "unknown"
	}
}

// WholeSample reports whether the mirror axis falls on a sample.
func (s Symmetry) WholeSample() bool {
	return s == WholeSampleSymmetric || s == WholeSampleAntisymmetric
}

// Antisymmetric reports whether the mirrored half is negated.
func (s Symmetry) Antisymmetric() bool {
	return s == WholeSampleAntisymmetric || s == HalfSampleAntisymmetric
}

// Filter is a linear-phase FIR filter stored as its trailing (non-redundant)
// coefficient half plus a symmetry class. Coeffs[0] is the coefficient
// closest to the mirror axis; for whole-sample classes it sits on the axis.
type Filter struct {
	symmetry Symmetry
	coeffs   []float64
}

// NewFilter builds a Filter from a symmetry class and the non-redundant
// coefficient half. The slice is copied.
func NewFilter(symmetry Symmetry, coeffs []float64) (Filter, error) {
	if len(coeffs) == 0 {
		return Filter{}, ErrEmptyCoefficients
	}

	c := make([]float64, len(coeffs))
	copy(c, coeffs)

	return Filter{symmetry: symmetry, coeffs: c}, nil
}

// Symmetry returns the filter's symmetry class.
func (f Filter) Symmetry() Symmetry {
	return f.symmetry
}

// Coeffs returns a copy of the stored coefficient half.
func (f Filter) Coeffs() []float64 {
	c := make([]float64, len(f.coeffs))
	copy(c, f.coeffs)
	return c
}

// Length returns the full kernel length: 2m-1 for whole-sample classes and
// 2m for half-sample classes, where m is the stored coefficient count.
func (f Filter) Length() int {
	if f.symmetry.WholeSample() {
		return 2*len(f.coeffs) - 1
	}
	return 2 * len(f.coeffs)
}

// Extended mirrors the stored half into the full kernel.
//
// With stored coefficients [c0, c1, c2]:
//
//	WSS: [c2, c1, c0, c1, c2]
//	WSA: [-c2, -c1, c0, c1, c2]
//	HSS: [c2, c1, c0, c0, c1, c2]
//	HSA: [-c2, -c1, -c0, c0, c1, c2]
func (f Filter) Extended() []float64 {
	m := len(f.coeffs)
	out := make([]float64, 0, f.Length())

	sign := 1.0
	if f.symmetry.Antisymmetric() {
		sign = -1
	}

	// Whole-sample classes keep the axis coefficient out of the mirror.
	last := 0
	if f.symmetry.WholeSample() {
		last = 1
	}
	for i := m - 1; i >= last; i-- {
		out = append(out, sign*f.coeffs[i])
	}

	out = append(out, f.coeffs...)
	return out
}

// Invert derives the synthesis companion of an analysis filter: the symmetry
// flips symmetric<->antisymmetric within the same sample parity, and every
// other stored coefficient is negated. Symmetric classes negate the
// even-indexed coefficients, antisymmetric classes the odd-indexed ones.
//
// Applying Invert twice returns the original filter with all coefficients
// negated, which has the identical magnitude response.
func (f Filter) Invert() Filter {
	c := make([]float64, len(f.coeffs))
	copy(c, f.coeffs)

	var flipped Symmetry
	var parity int

	switch f.symmetry {
	case WholeSampleSymmetric:
		flipped, parity = WholeSampleAntisymmetric, 0
	case WholeSampleAntisymmetric:
		flipped, parity = WholeSampleSymmetric, 1
	case HalfSampleSymmetric:
		flipped, parity = HalfSampleAntisymmetric, 0
	case HalfSampleAntisymmetric:
		flipped, parity = HalfSampleSymmetric, 1
	}

	for i := parity; i < len(c); i += 2 {
		c[i] = -c[i]
	}

	return Filter{symmetry: flipped, coeffs: c}
}
