package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise fills a slice with seeded uniform noise in
// [-amplitude, amplitude]. The same seed always produces the same samples.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}
	return out
}

// SmoothWave returns a sinusoid completing the given number of cycles across
// the slice. With few cycles the energy belongs almost entirely to the
// lowpass subband.
func SmoothWave(cycles, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*cycles*float64(i)/float64(length))
	}
	return out
}

// Ramp returns length samples linearly spaced from from to to inclusive,
// the 1-D analog of a smooth image gradient.
func Ramp(from, to float64, length int) []float64 {
	out := make([]float64, length)
	if length <= 1 {
		if length == 1 {
			out[0] = from
		}
		return out
	}

	step := (to - from) / float64(length-1)
	for i := range out {
		out[i] = from + step*float64(i)
	}
	return out
}

// Step returns a signal holding low before index at and high from at onward.
// The jump is the sharpest edge a subband pair has to localize.
func Step(low, high float64, length, at int) []float64 {
	out := make([]float64, length)
	for i := range out {
		if i < at {
			out[i] = low
		} else {
			out[i] = high
		}
	}
	return out
}

// Impulse returns a unit impulse at pos. A position outside the slice
// leaves it all zero.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Constant returns a slice holding the same value everywhere.
func Constant(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones is shorthand for Constant(1, n).
func Ones(n int) []float64 {
	return Constant(1, n)
}
