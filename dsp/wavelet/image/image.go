package image

import (
	"errors"
	"fmt"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavelet/dsp/core"
)

// Errors returned by image construction and transform operations.
var (
	ErrEmptyImage   = errors.New("image: zero-sized image")
	ErrDataMismatch = errors.New("image: data length does not match dimensions")
	ErrDimsMismatch = errors.New("image: dimension mismatch")
)

// FloatImage is a row-major float64 grayscale image with cached value range.
// The zero value is not usable; construct with New, FromData or FromGray.
type FloatImage struct {
	data   []float64
	width  int
	height int

	min float64
	max float64
}

// New returns a zero-filled image of the given dimensions.
func New(width, height int) (*FloatImage, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyImage
	}
	return &FloatImage{
		data:   make([]float64, width*height),
		width:  width,
		height: height,
	}, nil
}

// FromData wraps an existing row-major slice without copying. The value range
// is scanned once on construction.
func FromData(data []float64, width, height int) (*FloatImage, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyImage
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("%w: %d values for %dx%d", ErrDataMismatch, len(data), width, height)
	}

	img := &FloatImage{data: data, width: width, height: height}
	img.UpdateRange()
	return img, nil
}

// FromGray converts an 8-bit grayscale buffer (one byte per pixel, row-major)
// into a float image with values in [0, 255].
func FromGray(pix []byte, width, height int) (*FloatImage, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyImage
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrDataMismatch, len(pix), width, height)
	}

	data := make([]float64, len(pix))
	for i, p := range pix {
		data[i] = float64(p)
	}

	img := &FloatImage{data: data, width: width, height: height}
	img.UpdateRange()
	return img, nil
}

// Width returns the image width in pixels.
func (img *FloatImage) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *FloatImage) Height() int { return img.height }

// Min returns the cached minimum value. Call UpdateRange after mutating
// pixels directly.
func (img *FloatImage) Min() float64 { return img.min }

// Max returns the cached maximum value.
func (img *FloatImage) Max() float64 { return img.max }

// Data returns the underlying row-major slice.
func (img *FloatImage) Data() []float64 { return img.data }

// At returns the pixel at (x, y). No bounds checking beyond the slice's own.
func (img *FloatImage) At(x, y int) float64 {
	return img.data[y*img.width+x]
}

// Set writes the pixel at (x, y) without updating the cached range.
func (img *FloatImage) Set(x, y int, v float64) {
	img.data[y*img.width+x] = v
}

// Row returns row y as a slice view into the image data.
func (img *FloatImage) Row(y int) []float64 {
	return img.data[y*img.width : (y+1)*img.width]
}

// UpdateRange rescans the pixel data and stores the exact minimum and
// maximum. Calling it repeatedly without intervening mutation is a no-op.
func (img *FloatImage) UpdateRange() (min, max float64) {
	min, max = img.data[0], img.data[0]
	for _, v := range img.data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	img.min, img.max = min, max
	return min, max
}

// Transpose returns a new image with rows and columns exchanged.
func (img *FloatImage) Transpose() *FloatImage {
	out := &FloatImage{
		data:   make([]float64, len(img.data)),
		width:  img.height,
		height: img.width,
		min:    img.min,
		max:    img.max,
	}
	transposeInto(out.data, img.data, img.width, img.height)
	return out
}

// transposeInto writes the transpose of src (w x h) into dst (h x w).
func transposeInto(dst, src []float64, w, h int) {
	for y := 0; y < h; y++ {
		row := src[y*w : (y+1)*w]
		for x, v := range row {
			dst[x*h+y] = v
		}
	}
}

// Normalize centers the image on zero and scales it so the largest magnitude
// maps to 128, the preconditioning step applied before subband analysis.
// It returns the subtracted mean and the divisor so Denormalize can undo the
// mapping. Constant images are only centered (scale 1).
func (img *FloatImage) Normalize() (mean, scale float64) {
	mean = vecmath.Sum(img.data) / float64(len(img.data))
	for i := range img.data {
		img.data[i] -= mean
	}

	scale = vecmath.MaxAbs(img.data) / 128
	if scale == 0 {
		scale = 1
	}
	vecmath.ScaleBlockInPlace(img.data, 1/scale)

	img.UpdateRange()
	return mean, scale
}

// Denormalize reverses Normalize given the values it returned.
func (img *FloatImage) Denormalize(mean, scale float64) {
	vecmath.ScaleBlockInPlace(img.data, scale)
	for i := range img.data {
		img.data[i] += mean
	}
	img.UpdateRange()
}

// ToGray quantizes the image to an 8-bit grayscale buffer, clamping values
// to [0, 255] and rounding to nearest.
func (img *FloatImage) ToGray() []byte {
	out := make([]byte, len(img.data))
	for i, v := range img.data {
		out[i] = byte(core.Clamp(math.Round(v), 0, 255))
	}
	return out
}
