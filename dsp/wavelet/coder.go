package wavelet

import (
	"fmt"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavelet/dsp/core"
)

// TwoChannelSubbandCoder splits a signal into a lowpass and a highpass
// subband at half rate and reconstructs it from the pair. The synthesis
// filters are derived from the analysis pair via Invert; callers never supply
// them directly.
//
// Analysis extends the signal symmetrically (whole- or half-sample, matching
// the filter class), filters both channels and keeps the even-phase samples.
// Synthesis extends each subband, zero-stuffs the extension back to full rate,
// filters with the dual kernels and sums the channels. The analysis read
// offset P/2 and the synthesis read offset P/2-1 together absorb the pair's
// group delay, so no separate trimming pass is needed.
type TwoChannelSubbandCoder struct {
	h0, h1 Filter // analysis lowpass, highpass
	f0, f1 Filter // synthesis lowpass, highpass

	// Extended kernels stored reversed, so each output sample is a dot
	// product against a contiguous scratch window.
	rk0, rk1   []float64
	rkf0, rkf1 []float64

	scratch []float64
	sum     []float64
}

type coderConfig struct {
	checkTol float64
}

// CoderOption configures a TwoChannelSubbandCoder.
type CoderOption func(*coderConfig)

// WithComplementaryCheck makes the constructor verify that the analysis pair
// and its derived duals form a halfband product (the algebraic condition for
// perfect reconstruction) within tol. Pairs that fail produce an error
// instead of a coder that silently reconstructs garbage.
func WithComplementaryCheck(tol float64) CoderOption {
	return func(cfg *coderConfig) {
		if tol > 0 {
			cfg.checkTol = tol
		}
	}
}

// NewTwoChannelSubbandCoder builds a coder from an analysis lowpass/highpass
// pair. Both filters must carry at least one coefficient.
func NewTwoChannelSubbandCoder(lowpass, highpass Filter, opts ...CoderOption) (*TwoChannelSubbandCoder, error) {
	if len(lowpass.coeffs) == 0 || len(highpass.coeffs) == 0 {
		return nil, ErrEmptyCoefficients
	}

	var cfg coderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	c := &TwoChannelSubbandCoder{
		h0: lowpass,
		h1: highpass,
		f0: highpass.Invert(),
		f1: lowpass.Invert(),
	}

	c.rk0 = reversed(c.h0.Extended())
	c.rk1 = reversed(c.h1.Extended())
	c.rkf0 = reversed(c.f0.Extended())
	c.rkf1 = reversed(c.f1.Extended())

	if cfg.checkTol > 0 {
		if err := checkComplementary(c.h0, c.h1, c.f0, c.f1, cfg.checkTol); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// AnalysisFilters returns the analysis lowpass and highpass filters.
func (c *TwoChannelSubbandCoder) AnalysisFilters() (lowpass, highpass Filter) {
	return c.h0, c.h1
}

// SynthesisFilters returns the derived synthesis lowpass and highpass filters.
func (c *TwoChannelSubbandCoder) SynthesisFilters() (lowpass, highpass Filter) {
	return c.f0, c.f1
}

// Analysis decomposes x into its lowpass and highpass subbands, each of
// length ceil(len(x)/2). Odd-length signals are treated as if the final
// sample were repeated once, so both subbands always have equal length.
func (c *TwoChannelSubbandCoder) Analysis(x []float64) (low, high []float64, err error) {
	if len(x) == 0 {
		return nil, nil, ErrEmptySignal
	}

	half := (len(x) + 1) / 2

	low = make([]float64, half)
	high = make([]float64, half)

	c.analyzeChannel(low, x, c.h0, c.rk0)
	c.analyzeChannel(high, x, c.h1, c.rk1)

	return low, high, nil
}

// analyzeChannel writes the decimated filter output for one channel.
// out[k] = sum_j K[j] * ext(P/2 + 2k - j), with ext the symmetric extension
// of x in the filter's sample-parity class.
func (c *TwoChannelSubbandCoder) analyzeChannel(out, x []float64, h Filter, rk []float64) {
	if len(x)%2 != 0 {
		// Nonexpansive handling of odd lengths: extend by one duplicated
		// sample so the decimated grid lines up with the mirror axis.
		padded := append(append(make([]float64, 0, len(x)+1), x...), x[len(x)-1])
		x = padded
	}

	kind := HalfSampleExtension
	if h.symmetry.WholeSample() {
		kind = WholeSampleExtension
	}
	ext, _ := NewExtension(x, kind, false)

	p := len(rk)
	boundary := p / 2

	// Materialize every extended sample the dot products will touch:
	// indices boundary-p+1 .. boundary+2(half-1).
	start := boundary - p + 1
	buf := c.grow(2*(len(out)-1) + p)
	for i := range buf {
		buf[i] = ext.At(start + i)
	}

	for k := range out {
		out[k] = vecmath.DotProduct(rk, buf[2*k:2*k+p])
	}
}

// Synthesis rebuilds a signal of the given length from a subband pair
// produced by Analysis. length must satisfy 0 < length <= 2*len(low);
// passing the original signal length restores it exactly for complementary
// filter pairs.
func (c *TwoChannelSubbandCoder) Synthesis(low, high []float64, length int) ([]float64, error) {
	if len(low) == 0 || len(high) == 0 {
		return nil, ErrEmptySignal
	}
	if len(low) != len(high) {
		return nil, fmt.Errorf("%w: low %d, high %d", ErrSubbandMismatch, len(low), len(high))
	}
	if length <= 0 || length > 2*len(low) {
		return nil, fmt.Errorf("%w: %d not in (0, %d]", ErrBadLength, length, 2*len(low))
	}

	out := make([]float64, length)
	c.synthesizeChannel(out, low, c.f0, c.rkf0)

	ch1 := c.growSum(length)
	c.synthesizeChannel(ch1, high, c.f1, c.rkf1)

	vecmath.AddBlockInPlace(out, ch1)
	return out, nil
}

// synthesizeChannel writes one channel's contribution:
// out[m] = sum_j K[j] * u(P/2 - 1 + m - j), where u is the zero-stuffed
// half-sample extension of the subband (sign-flipping when the synthesis
// filter is antisymmetric).
func (c *TwoChannelSubbandCoder) synthesizeChannel(out, band []float64, f Filter, rk []float64) {
	ext, _ := NewExtension(band, HalfSampleExtension, f.symmetry.Antisymmetric())

	p := len(rk)
	boundary := p/2 - 1
	start := boundary - p + 1

	buf := c.grow(len(out) - 1 + p)
	for i := range buf {
		j := start + i
		if mod(j, 2) == 0 {
			buf[i] = ext.At(j / 2)
		} else {
			buf[i] = 0
		}
	}

	for m := range out {
		out[m] = vecmath.DotProduct(rk, buf[m:m+p])
	}
}

// grow returns the shared scratch slice resized to n.
func (c *TwoChannelSubbandCoder) grow(n int) []float64 {
	c.scratch = core.EnsureLen(c.scratch, n)
	return c.scratch
}

func (c *TwoChannelSubbandCoder) growSum(n int) []float64 {
	c.sum = core.EnsureLen(c.sum, n)
	return c.sum
}

// checkComplementary verifies the two algebraic reconstruction conditions:
// the distortion transfer H0(z)F0(z) + H1(z)F1(z) must be 2 z^-d with d odd,
// and the alias transfer H0(-z)F0(z) + H1(-z)F1(z) must vanish.
func checkComplementary(h0, h1, f0, f1 Filter, tol float64) error {
	k0, k1 := h0.Extended(), h1.Extended()
	kf0, kf1 := f0.Extended(), f1.Extended()

	transfer := polyAdd(polyMul(k0, kf0), polyMul(k1, kf1))

	peak := -1
	for i, v := range transfer {
		switch {
		case math.Abs(v-2) <= tol:
			if peak >= 0 {
				return fmt.Errorf("wavelet: filter pair is not complementary: multiple transfer peaks")
			}
			peak = i
		case math.Abs(v) > tol:
			return fmt.Errorf("wavelet: filter pair is not complementary: transfer[%d] = %g", i, v)
		}
	}
	if peak < 0 {
		return fmt.Errorf("wavelet: filter pair is not complementary: no unit transfer peak")
	}
	if peak%2 != 1 {
		return fmt.Errorf("wavelet: filter pair is not complementary: even group delay %d", peak)
	}

	alias := polyAdd(polyMul(alternate(k0), kf0), polyMul(alternate(k1), kf1))
	for i, v := range alias {
		if math.Abs(v) > tol {
			return fmt.Errorf("wavelet: filter pair is not complementary: alias[%d] = %g", i, v)
		}
	}
	return nil
}

// alternate substitutes z -> -z: every odd-indexed coefficient is negated.
func alternate(k []float64) []float64 {
	out := make([]float64, len(k))
	for i, v := range k {
		if i%2 == 1 {
			v = -v
		}
		out[i] = v
	}
	return out
}

func polyMul(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i, av := range a {
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}
	return out
}

func polyAdd(a, b []float64) []float64 {
	if len(b) > len(a) {
		a, b = b, a
	}
	out := make([]float64, len(a))
	copy(out, a)
	for i, v := range b {
		out[i] += v
	}
	return out
}

func reversed(k []float64) []float64 {
	out := make([]float64, len(k))
	for i, v := range k {
		out[len(k)-1-i] = v
	}
	return out
}
