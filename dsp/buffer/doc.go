// Package buffer provides a reusable float64 buffer type and pool for
// allocation-friendly processing. All transform functions accept raw
// []float64 slices; Buffer is an optional convenience that helps callers
// manage row and subband scratch reuse in hot paths such as repeated
// image analysis.
package buffer
