package lowpass

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-lowpass/dsp/core"
)

// SinglePole is a one-pole IIR low-pass filter implementing the recurrence
//
//	y[n] = decay*x[n] + (1-decay)*y[n-1]
//
// A decay near 1 favors the new input (weak smoothing, high cutoff); a decay
// near 0 favors the retained output (strong smoothing, low cutoff).
type SinglePole struct {
	inputCoeff    float64
	feedbackCoeff float64
	state         float64
}

// NewSinglePole returns a one-pole low-pass filter with the given decay
// factor and zero retained output.
//
// The decay is not validated or clamped: values outside [0, 1] are accepted
// and yield a filter whose output can grow without bound. Callers that need
// guaranteed stability must range-check the decay themselves.
func NewSinglePole(decay float64) *SinglePole {
	return &SinglePole{
		inputCoeff:    decay,
		feedbackCoeff: 1 - decay,
	}
}

// ProcessSample filters one input sample and returns the output.
func (f *SinglePole) ProcessSample(x float64) float64 {
	y := f.inputCoeff*x + f.feedbackCoeff*f.state
	// Flushing the feedback state avoids denormal slowdowns when the input
	// falls silent and the tail decays toward zero.
	f.state = core.FlushDenormals(y)
	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *SinglePole) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *SinglePole) ProcessBlockTo(dst, src []float64) {
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the retained output to zero.
func (f *SinglePole) Reset() {
	f.state = 0
}

// Decay returns the decay factor the filter was constructed with.
func (f *SinglePole) Decay() float64 {
	return f.inputCoeff
}

// Response computes the complex frequency response
//
//	H(e^{jw}) = decay / (1 - (1-decay)*e^{-jw})
//
// at the given frequency (Hz) and sample rate (Hz).
func (f *SinglePole) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	den := 1 - complex(f.feedbackCoeff, 0)*cmplx.Exp(complex(0, -w))
	return complex(f.inputCoeff, 0) / den
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *SinglePole) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
