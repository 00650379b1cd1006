package wavelet

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-wavelet/internal/testutil"
)

func TestExtensionWholeSample(t *testing.T) {
	// Whole-sample reflection visits each endpoint once per period: the
	// period is 2N-2 and no sample is duplicated.
	ext, err := NewExtension([]float64{1, 2, 3, 4}, WholeSampleExtension, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []float64{1, 2, 3, 4, 3, 2, 1, 2, 3, 4, 3, 2, 1}
	testutil.RequireSliceNearlyEqual(t, ext.Take(13), expected, 0)

	if ext.Period() != 6 {
		t.Fatalf("Period() = %d, expected 6", ext.Period())
	}
}

func TestExtensionHalfSample(t *testing.T) {
	// Half-sample reflection duplicates the endpoints; the period is 2N.
	ext, err := NewExtension([]float64{1, 2, 3, 4}, HalfSampleExtension, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []float64{1, 2, 3, 4, 4, 3, 2, 1, 1, 2, 3, 4, 4, 3, 2, 1}
	testutil.RequireSliceNearlyEqual(t, ext.Take(16), expected, 0)

	if ext.Period() != 8 {
		t.Fatalf("Period() = %d, expected 8", ext.Period())
	}
}

func TestExtensionHalfSampleAntisymmetric(t *testing.T) {
	ext, err := NewExtension([]float64{1, 2, 3}, HalfSampleExtension, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []float64{1, 2, 3, -3, -2, -1, 1, 2, 3, -3, -2, -1}
	testutil.RequireSliceNearlyEqual(t, ext.Take(12), expected, 0)
}

func TestExtensionWholeSampleAntiRejected(t *testing.T) {
	_, err := NewExtension([]float64{1, 2}, WholeSampleExtension, true)
	if !errors.Is(err, ErrWholeSampleAnti) {
		t.Fatalf("expected ErrWholeSampleAnti, got %v", err)
	}
}

func TestExtensionEmpty(t *testing.T) {
	_, err := NewExtension(nil, HalfSampleExtension, false)
	if !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("expected ErrEmptySignal, got %v", err)
	}
}

func TestExtensionShortSignals(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		kind     ExtensionKind
		anti     bool
		expected []float64
	}{
		{"whole N=1", []float64{7}, WholeSampleExtension, false,
			[]float64{7, 7, 7, 7}},
		{"half N=1", []float64{7}, HalfSampleExtension, false,
			[]float64{7, 7, 7, 7}},
		{"half N=1 anti", []float64{7}, HalfSampleExtension, true,
			[]float64{7, -7, 7, -7}},
		{"whole N=2", []float64{1, 2}, WholeSampleExtension, false,
			[]float64{1, 2, 1, 2, 1, 2}},
		{"half N=2", []float64{1, 2}, HalfSampleExtension, false,
			[]float64{1, 2, 2, 1, 1, 2, 2, 1}},
		{"half N=2 anti", []float64{1, 2}, HalfSampleExtension, true,
			[]float64{1, 2, -2, -1, 1, 2, -2, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := NewExtension(tt.data, tt.kind, tt.anti)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, ext.Take(len(tt.expected)), tt.expected, 0)
		})
	}
}

func TestExtensionNextMatchesAt(t *testing.T) {
	kinds := []struct {
		kind ExtensionKind
		anti bool
	}{
		{WholeSampleExtension, false},
		{HalfSampleExtension, false},
		{HalfSampleExtension, true},
	}

	data := []float64{0.5, -1.25, 2, 3.75, -0.125}
	for _, k := range kinds {
		ext, err := NewExtension(data, k.kind, k.anti)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for i := 0; i < 40; i++ {
			want := ext.At(i)
			got := ext.Next()
			if got != want {
				t.Fatalf("kind %v anti %v: Next()[%d] = %v, At(%d) = %v",
					k.kind, k.anti, i, got, i, want)
			}
		}
	}
}

func TestExtensionNegativeIndices(t *testing.T) {
	data := []float64{1, 2, 3, 4}

	whole, _ := NewExtension(data, WholeSampleExtension, false)
	// ..., 3, 2 | 1, 2, 3, 4
	if whole.At(-1) != 2 || whole.At(-2) != 3 || whole.At(-3) != 4 {
		t.Fatalf("whole-sample left extension = [%v %v %v], expected [2 3 4]",
			whole.At(-1), whole.At(-2), whole.At(-3))
	}

	half, _ := NewExtension(data, HalfSampleExtension, false)
	// ..., 2, 1 | 1, 2, 3, 4
	if half.At(-1) != 1 || half.At(-2) != 2 {
		t.Fatalf("half-sample left extension = [%v %v], expected [1 2]",
			half.At(-1), half.At(-2))
	}

	anti, _ := NewExtension(data, HalfSampleExtension, true)
	if anti.At(-1) != -1 || anti.At(-2) != -2 {
		t.Fatalf("antisymmetric left extension = [%v %v], expected [-1 -2]",
			anti.At(-1), anti.At(-2))
	}
}

func TestExtensionReset(t *testing.T) {
	ext, _ := NewExtension([]float64{1, 2, 3}, HalfSampleExtension, false)
	first := ext.Take(5)

	for i := 0; i < 7; i++ {
		ext.Next()
	}
	ext.Reset()

	again := make([]float64, 5)
	for i := range again {
		again[i] = ext.Next()
	}
	testutil.RequireSliceNearlyEqual(t, again, first, 0)
}
