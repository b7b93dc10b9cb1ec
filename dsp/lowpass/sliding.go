package lowpass

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-lowpass/dsp/core"
)

// ErrInvalidWindow is returned when a sliding-window filter is constructed
// with a non-positive window size.
var ErrInvalidWindow = errors.New("lowpass: window size must be > 0")

// SlidingWindow is an N-tap uniform FIR moving average:
//
//	y[n] = (1/N) * sum_{k=0}^{N-1} x[n-k]
//
// The last N inputs are kept in a fixed-size ring buffer; each call evicts
// exactly the oldest sample and inserts the new one. Tap weights are all 1/N,
// so the coefficient set sums to one and the filter has unity DC gain.
//
// Per-sample cost is O(N). For the short windows this filter is meant for
// that is cheaper than maintaining a running sum and rescuing it from
// accumulated rounding error.
type SlidingWindow struct {
	coeffs []float64
	ring   []float64
	pos    int
}

// NewSlidingWindow returns a moving average over the given number of taps.
// It fails with [ErrInvalidWindow] if window is not positive.
func NewSlidingWindow(window int) (*SlidingWindow, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWindow, window)
	}
	coeffs := make([]float64, window)
	for i := range coeffs {
		coeffs[i] = 1.0 / float64(window)
	}
	return &SlidingWindow{
		coeffs: coeffs,
		ring:   make([]float64, window),
	}, nil
}

// ProcessSample filters one input sample and returns the output.
//
// Tap 0 always pairs with the sample just inserted, tap N-1 with the oldest
// retained sample, regardless of how many samples have been processed.
func (f *SlidingWindow) ProcessSample(x float64) float64 {
	f.ring[f.pos] = x
	var y float64
	n := len(f.coeffs)
	p := f.pos
	for k := range n {
		y += f.coeffs[k] * f.ring[p]
		p--
		if p < 0 {
			p = n - 1
		}
	}
	f.pos++
	if f.pos >= n {
		f.pos = 0
	}
	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *SlidingWindow) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *SlidingWindow) ProcessBlockTo(dst, src []float64) {
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the ring buffer to zero.
func (f *SlidingWindow) Reset() {
	for i := range f.ring {
		f.ring[i] = 0
	}
	f.pos = 0
}

// Window returns the number of taps.
func (f *SlidingWindow) Window() int {
	return len(f.coeffs)
}

// Coefficients returns a copy of the tap weights.
func (f *SlidingWindow) Coefficients() []float64 {
	c := make([]float64, len(f.coeffs))
	copy(c, f.coeffs)
	return c
}

// Response computes the complex frequency response at the given frequency
// (Hz) and sample rate (Hz).
func (f *SlidingWindow) Response(freqHz, sampleRate float64) complex128 {
	return firResponse(f.coeffs, freqHz, sampleRate)
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *SlidingWindow) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
