package image

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-wavelet/internal/testutil"
)

func TestFromDataValidation(t *testing.T) {
	_, err := FromData([]float64{1, 2, 3}, 2, 2)
	if !errors.Is(err, ErrDataMismatch) {
		t.Fatalf("expected ErrDataMismatch, got %v", err)
	}

	_, err = FromData(nil, 0, 4)
	if !errors.Is(err, ErrEmptyImage) {
		t.Fatalf("expected ErrEmptyImage, got %v", err)
	}
}

func TestUpdateRangeIdempotent(t *testing.T) {
	img, err := FromData([]float64{3, -1, 4, 1, -5, 9}, 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	min1, max1 := img.UpdateRange()
	min2, max2 := img.UpdateRange()

	if min1 != -5 || max1 != 9 {
		t.Fatalf("range = [%v, %v], expected [-5, 9]", min1, max1)
	}
	if min1 != min2 || max1 != max2 {
		t.Fatalf("UpdateRange not idempotent: [%v %v] then [%v %v]", min1, max1, min2, max2)
	}
	if img.Min() != min1 || img.Max() != max1 {
		t.Fatalf("cached range [%v, %v] does not match scan [%v, %v]",
			img.Min(), img.Max(), min1, max1)
	}
}

func TestRowAndAt(t *testing.T) {
	img, err := FromData([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, img.Row(1), []float64{4, 5, 6}, 0)
	if img.At(2, 0) != 3 {
		t.Fatalf("At(2,0) = %v, expected 3", img.At(2, 0))
	}

	img.Set(0, 1, 10)
	if img.Row(1)[0] != 10 {
		t.Fatal("Set did not write through to the row view")
	}
}

func TestTranspose(t *testing.T) {
	img, err := FromData([]float64{
		1, 2, 3,
		4, 5, 6,
	}, 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tr := img.Transpose()
	if tr.Width() != 2 || tr.Height() != 3 {
		t.Fatalf("transpose dims = %dx%d, expected 2x3", tr.Width(), tr.Height())
	}
	testutil.RequireSliceNearlyEqual(t, tr.Data(), []float64{1, 4, 2, 5, 3, 6}, 0)

	back := tr.Transpose()
	testutil.RequireSliceNearlyEqual(t, back.Data(), img.Data(), 0)
}

func TestNormalizeRoundTrip(t *testing.T) {
	data := []float64{10, 20, 30, 40, 200, 60, 70, 80}
	img, err := FromData(append([]float64(nil), data...), 4, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mean, scale := img.Normalize()

	// Centered on zero, largest magnitude mapped to 128.
	sum := 0.0
	for _, v := range img.Data() {
		sum += v
	}
	if math.Abs(sum) > 1e-9 {
		t.Fatalf("normalized mean = %v, expected 0", sum/float64(len(data)))
	}
	peak := math.Max(math.Abs(img.Min()), math.Abs(img.Max()))
	if math.Abs(peak-128) > 1e-9 {
		t.Fatalf("normalized peak = %v, expected 128", peak)
	}

	img.Denormalize(mean, scale)
	testutil.RequireSliceNearlyEqual(t, img.Data(), data, 1e-9)
}

func TestNormalizeConstant(t *testing.T) {
	img, err := FromData([]float64{5, 5, 5, 5}, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mean, scale := img.Normalize()
	if mean != 5 || scale != 1 {
		t.Fatalf("mean/scale = %v/%v, expected 5/1", mean, scale)
	}
	testutil.RequireSliceNearlyEqual(t, img.Data(), make([]float64, 4), 0)
}

func TestGrayRoundTrip(t *testing.T) {
	pix := []byte{0, 64, 128, 255, 17, 99}
	img, err := FromGray(pix, 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if img.Min() != 0 || img.Max() != 255 {
		t.Fatalf("range = [%v, %v], expected [0, 255]", img.Min(), img.Max())
	}

	out := img.ToGray()
	for i := range pix {
		if out[i] != pix[i] {
			t.Fatalf("pixel %d: got %d, expected %d", i, out[i], pix[i])
		}
	}
}

func TestToGrayClamps(t *testing.T) {
	img, err := FromData([]float64{-12, 99.6, 300, 255.4}, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := img.ToGray()
	want := []byte{0, 100, 255, 255}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("pixel %d: got %d, expected %d", i, out[i], want[i])
		}
	}
}
