// Package conv provides linear convolution for filtering signals and image
// rows.
//
// Two strategies are available:
//
//   - Direct convolution: O(N*M) time-domain evaluation, best for the short
//     symmetric kernels used by subband transforms
//   - Overlap-add (OLA): FFT-based block convolution for long kernels
//
// # Usage
//
// For one-shot convolution, use the simple functions:
//
//	result, err := conv.Convolve(signal, kernel)  // Auto-selects best algorithm
//	result, err := conv.Direct(signal, kernel)    // Force direct convolution
//
// For repeated convolution with the same long kernel, create a reusable
// convolver to avoid repeated FFT plan creation:
//
//	c, err := conv.NewOverlapAdd(kernel, blockSize)
//	result, err := c.Process(signal)
//
// # Algorithm Selection
//
// The [Convolve] function selects the algorithm from the kernel length:
// direct below 64 taps, FFT-based overlap-add above. The crossover was
// determined empirically for 4096-sample signals on typical hardware.
package conv
