// Package image provides the 2-D side of the subband transform: a float64
// grayscale image type with range tracking and normalization, and a coder
// that separably applies a two-channel filter pair to rows and columns,
// producing the four conventional subbands LL, LH, HL and HH.
package image
