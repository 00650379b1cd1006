package image

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/dsp/buffer"
	"github.com/cwbudde/algo-wavelet/dsp/wavelet"
)

// Quad holds the four subbands of a single-level 2-D decomposition. Each
// subband is ceil(w/2) x ceil(h/2) for a w x h input. LL is the lowpassed
// approximation, HH the doubly-highpassed detail, LH and HL the mixed
// orientations. The four images are independent; Coder.Synthesize consumes
// them together.
type Quad struct {
	LL, LH, HL, HH *FloatImage
}

// SubbandWidth returns the common subband width.
func (q Quad) SubbandWidth() int { return q.LL.width }

// SubbandHeight returns the common subband height.
func (q Quad) SubbandHeight() int { return q.LL.height }

// validate checks that all four subbands share the same dimensions and that
// they match a target image size.
func (q Quad) validate(width, height int) error {
	for _, sb := range []*FloatImage{q.LL, q.LH, q.HL, q.HH} {
		if sb == nil {
			return fmt.Errorf("%w: missing subband", ErrDimsMismatch)
		}
		if sb.width != q.LL.width || sb.height != q.LL.height {
			return fmt.Errorf("%w: subbands %dx%d vs %dx%d",
				ErrDimsMismatch, sb.width, sb.height, q.LL.width, q.LL.height)
		}
	}

	w2 := (width + 1) / 2
	h2 := (height + 1) / 2
	if q.LL.width != w2 || q.LL.height != h2 {
		return fmt.Errorf("%w: subbands %dx%d cannot rebuild %dx%d image",
			ErrDimsMismatch, q.LL.width, q.LL.height, width, height)
	}
	return nil
}

// Coder applies a two-channel filter pair separably to images: rows first,
// then columns of each half-width intermediate. Synthesis mirrors the order
// exactly. A Coder reuses internal scratch and is not safe for concurrent
// use; create one per goroutine.
type Coder struct {
	sub  *wavelet.TwoChannelSubbandCoder
	pool *buffer.Pool
}

// NewCoder builds a 2-D coder from an analysis lowpass/highpass pair.
// Options are forwarded to the underlying one-dimensional coder.
func NewCoder(lowpass, highpass wavelet.Filter, opts ...wavelet.CoderOption) (*Coder, error) {
	sub, err := wavelet.NewTwoChannelSubbandCoder(lowpass, highpass, opts...)
	if err != nil {
		return nil, err
	}
	return &Coder{sub: sub, pool: buffer.NewPool()}, nil
}

// Analyze decomposes img into its four subbands.
func (c *Coder) Analyze(img *FloatImage) (Quad, error) {
	if img == nil || len(img.data) == 0 {
		return Quad{}, ErrEmptyImage
	}

	w, h := img.width, img.height
	w2 := (w + 1) / 2

	// Row pass: every row splits into half-width lowpass and highpass rows.
	lowBuf := c.pool.Get(w2 * h)
	highBuf := c.pool.Get(w2 * h)
	defer c.pool.Put(lowBuf)
	defer c.pool.Put(highBuf)

	low := &FloatImage{data: lowBuf.Samples(), width: w2, height: h}
	high := &FloatImage{data: highBuf.Samples(), width: w2, height: h}

	for y := 0; y < h; y++ {
		rl, rh, err := c.sub.Analysis(img.Row(y))
		if err != nil {
			return Quad{}, err
		}
		copy(low.Row(y), rl)
		copy(high.Row(y), rh)
	}

	// Column pass on each intermediate, via transpose.
	ll, lh, err := c.analyzeColumns(low)
	if err != nil {
		return Quad{}, err
	}
	hl, hh, err := c.analyzeColumns(high)
	if err != nil {
		return Quad{}, err
	}

	return Quad{LL: ll, LH: lh, HL: hl, HH: hh}, nil
}

// analyzeColumns runs the 1-D analysis down every column of img, returning
// the half-height lowpass and highpass results.
func (c *Coder) analyzeColumns(img *FloatImage) (low, high *FloatImage, err error) {
	w, h := img.width, img.height
	h2 := (h + 1) / 2

	tBuf := c.pool.Get(w * h)
	defer c.pool.Put(tBuf)
	transposeInto(tBuf.Samples(), img.data, w, h)

	// Transposed rows are the original columns.
	tLow := &FloatImage{data: make([]float64, h2*w), width: h2, height: w}
	tHigh := &FloatImage{data: make([]float64, h2*w), width: h2, height: w}

	for i := 0; i < w; i++ {
		col := tBuf.Samples()[i*h : (i+1)*h]
		cl, ch, err := c.sub.Analysis(col)
		if err != nil {
			return nil, nil, err
		}
		copy(tLow.Row(i), cl)
		copy(tHigh.Row(i), ch)
	}

	low = tLow.Transpose()
	high = tHigh.Transpose()
	low.UpdateRange()
	high.UpdateRange()
	return low, high, nil
}

// Synthesize rebuilds a width x height image from its subband quadruple.
// For complementary filter pairs the result matches the analyzed image to
// floating-point rounding.
func (c *Coder) Synthesize(q Quad, width, height int) (*FloatImage, error) {
	if err := q.validate(width, height); err != nil {
		return nil, err
	}

	// Column synthesis: (LL, LH) and (HL, HH) each rebuild a half-width
	// intermediate of full height.
	int0, err := c.synthesizeColumns(q.LL, q.LH, height)
	if err != nil {
		return nil, err
	}
	int1, err := c.synthesizeColumns(q.HL, q.HH, height)
	if err != nil {
		return nil, err
	}

	// Row synthesis back to full width.
	out, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		row, err := c.sub.Synthesis(int0.Row(y), int1.Row(y), width)
		if err != nil {
			return nil, err
		}
		copy(out.Row(y), row)
	}

	out.UpdateRange()
	return out, nil
}

// synthesizeColumns runs the 1-D synthesis down every column pair, restoring
// full-height columns from the low/high half-height subbands.
func (c *Coder) synthesizeColumns(low, high *FloatImage, height int) (*FloatImage, error) {
	w := low.width

	tLow := low.Transpose()
	tHigh := high.Transpose()

	tOutBuf := c.pool.Get(w * height)
	defer c.pool.Put(tOutBuf)
	tOut := &FloatImage{data: tOutBuf.Samples(), width: height, height: w}

	for i := 0; i < w; i++ {
		col, err := c.sub.Synthesis(tLow.Row(i), tHigh.Row(i), height)
		if err != nil {
			return nil, err
		}
		copy(tOut.Row(i), col)
	}

	out := tOut.Transpose()
	out.UpdateRange()
	return out, nil
}
