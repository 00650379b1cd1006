package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t unless got and want have the same length
// and agree elementwise within the absolute tolerance eps. An eps of 0
// demands exact equality, which the pinned kernel and extension vectors use.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d samples, want %d", len(got), len(want))
	}
	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > eps {
			t.Fatalf("sample %d: got %v, want %v (off by %v, tolerance %v)",
				i, got[i], want[i], d, eps)
		}
	}
}

// RequireFinite fails t when data contains a NaN or an infinity.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sample %d is not finite: %v", i, v)
		}
	}
}

// MaxAbsDiff reports the largest elementwise distance between a and b, the
// reconstruction-error metric of the transform tests. Slices of different
// lengths yield an error.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("testutil: comparing %d samples against %d", len(a), len(b))
	}

	worst := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > worst {
			worst = d
		}
	}
	return worst, nil
}
