package wavelet

import "math"

// Shipped analysis filter pairs. Each pair is complementary: the biorthogonal
// product filter is a halfband with odd group delay, so analysis followed by
// synthesis reconstructs the input to floating-point rounding.
//
// All shipped pairs are half-sample symmetric/antisymmetric. The whole-sample
// classes admit no complementary pair under the Invert companion rule, so a
// whole-sample analysis pair cannot reconstruct exactly no matter how the
// boundary handling is chosen.

// Haar returns the orthonormal 2-tap pair (group delay 1).
func Haar() (lowpass, highpass Filter) {
	s := 1 / math.Sqrt2
	lowpass = Filter{symmetry: HalfSampleSymmetric, coeffs: []float64{s}}
	highpass = Filter{symmetry: HalfSampleAntisymmetric, coeffs: []float64{s}}
	return lowpass, highpass
}

// Spline4 returns a 4-tap spline pair (group delay 3). The lowpass
// [1/4, 3/4, 3/4, 1/4] is the smoothest 4-tap halfband factor.
func Spline4() (lowpass, highpass Filter) {
	lowpass = Filter{symmetry: HalfSampleSymmetric, coeffs: []float64{3.0 / 4, 1.0 / 4}}
	highpass = Filter{symmetry: HalfSampleAntisymmetric, coeffs: []float64{3.0 / 4, 1.0 / 4}}
	return lowpass, highpass
}

// Biorth8 returns an 8-tap biorthogonal pair (group delay 7) with better
// stopband behavior than Spline4.
func Biorth8() (lowpass, highpass Filter) {
	lowpass = Filter{
		symmetry: HalfSampleSymmetric,
		coeffs:   []float64{45.0 / 64, 19.0 / 64, -5.0 / 64, -3.0 / 64},
	}
	highpass = Filter{
		symmetry: HalfSampleAntisymmetric,
		coeffs:   []float64{15.0 / 21, 1.0 / 21, -5.0 / 21, -3.0 / 21},
	}
	return lowpass, highpass
}
