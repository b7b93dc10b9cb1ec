package lowpass

import (
	"math"
	"math/cmplx"
)

// Filter is the contract shared by every filter in this package: consume one
// input sample, produce one output sample, and keep whatever history the next
// call needs. State changes only through processing calls and through an
// explicit Reset.
type Filter interface {
	// ProcessSample filters one input sample and returns the output.
	ProcessSample(x float64) float64
	// ProcessBlock filters a block of samples in-place.
	ProcessBlock(buf []float64)
	// Reset clears all retained history, as if freshly constructed.
	Reset()
}

var (
	_ Filter = (*SinglePole)(nil)
	_ Filter = (*TwoTap)(nil)
	_ Filter = (*SlidingWindow)(nil)
)

// firResponse evaluates the complex frequency response of an FIR coefficient
// set at the given frequency (Hz) and sample rate (Hz).
func firResponse(coeffs []float64, freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var h complex128
	for k, c := range coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}
