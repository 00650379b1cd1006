package wavelet

// Downsample2 keeps the even-indexed samples of x.
// [x0, x1, x2, x3, x4] becomes [x0, x2, x4].
func Downsample2(x []float64) []float64 {
	out := make([]float64, (len(x)+1)/2)
	for i := range out {
		out[i] = x[2*i]
	}
	return out
}

// Upsample2 inserts a zero after every sample of x, doubling its length.
// [x0, x1, x2] becomes [x0, 0, x1, 0, x2, 0].
func Upsample2(x []float64) []float64 {
	out := make([]float64, 2*len(x))
	for i, v := range x {
		out[2*i] = v
	}
	return out
}
