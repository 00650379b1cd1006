// Package wavelet implements a two-channel subband transform built from
// symmetric FIR filter pairs.
//
// The package models linear-phase wavelet filters by their non-redundant
// coefficient half plus a symmetry class (whole- or half-sample, symmetric or
// antisymmetric), expands them to full kernels on demand, and derives the
// synthesis companions algebraically. Signals are extended at the boundaries
// by symmetric reflection instead of zero padding, which keeps the transform
// nonexpansive: a length-N signal decomposes into two length-⌈N/2⌉ subbands
// that reconstruct the input exactly.
//
// # Usage
//
// One-shot analysis and synthesis with a shipped filter pair:
//
//	h0, h1 := wavelet.Spline4()
//	coder, err := wavelet.NewTwoChannelSubbandCoder(h0, h1)
//	if err != nil { ... }
//	low, high, err := coder.Analysis(signal)
//	restored, err := coder.Synthesis(low, high, len(signal))
//
// The shipped pairs (Haar, Spline4, Biorth8) are complementary: analysis
// followed by synthesis reproduces the input to within floating-point
// rounding. Custom pairs are accepted but reconstruction quality is then the
// caller's responsibility.
package wavelet
