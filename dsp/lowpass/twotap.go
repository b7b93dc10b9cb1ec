package lowpass

import (
	"math/cmplx"

	"github.com/cwbudde/algo-lowpass/dsp/core"
)

// TwoTap is a fixed two-tap FIR moving average:
//
//	y[n] = 0.5*(x[n] + x[n-1])
//
// It has no parameters. The previous input starts at zero, so the first
// output is half of the first input rather than a discontinuity.
type TwoTap struct {
	prev float64
}

// NewTwoTap returns a two-tap moving average with zero history.
func NewTwoTap() *TwoTap {
	return &TwoTap{}
}

// ProcessSample filters one input sample and returns the output.
func (f *TwoTap) ProcessSample(x float64) float64 {
	y := 0.5 * (x + f.prev)
	f.prev = x
	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *TwoTap) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *TwoTap) ProcessBlockTo(dst, src []float64) {
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the retained previous input to zero.
func (f *TwoTap) Reset() {
	f.prev = 0
}

// Coefficients returns the fixed tap weights {0.5, 0.5}.
func (f *TwoTap) Coefficients() []float64 {
	return []float64{0.5, 0.5}
}

// Response computes the complex frequency response at the given frequency
// (Hz) and sample rate (Hz).
func (f *TwoTap) Response(freqHz, sampleRate float64) complex128 {
	return firResponse(f.Coefficients(), freqHz, sampleRate)
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *TwoTap) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
