package response

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-lowpass/dsp/lowpass"
)

// Errors returned by measurement functions.
var (
	ErrInvalidLength  = errors.New("response: length must be > 0")
	ErrInvalidFFTSize = errors.New("response: fft size must be a power of two >= 2")
)

// Impulse resets f and returns the first n samples of its impulse response.
func Impulse(f lowpass.Filter, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}

	f.Reset()
	out := make([]float64, n)
	out[0] = f.ProcessSample(1)
	for i := 1; i < n; i++ {
		out[i] = f.ProcessSample(0)
	}
	return out, nil
}

// Magnitude resets f and returns the single-sided magnitude spectrum of its
// impulse response, truncated to fftSize samples. The result has
// fftSize/2+1 bins; bin k corresponds to k*sampleRate/fftSize Hz.
func Magnitude(f lowpass.Filter, fftSize int) ([]float64, error) {
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFFTSize, fftSize)
	}

	ir, err := Impulse(f, fftSize)
	if err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	buf := make([]complex128, fftSize)
	for i, v := range ir {
		buf[i] = complex(v, 0)
	}
	if err := plan.Forward(buf, buf); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	half := fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for i := 0; i < half; i++ {
		re[i] = real(buf[i])
		im[i] = imag(buf[i])
	}

	out := make([]float64, half)
	vecmath.Magnitude(out, re, im)
	return out, nil
}

// DCGain resets f, drives it with a unit-amplitude constant input for n
// samples, and returns the final output. For a stable unity-gain low-pass
// this settles toward 1 as n grows.
func DCGain(f lowpass.Filter, n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}

	f.Reset()
	var y float64
	for i := 0; i < n; i++ {
		y = f.ProcessSample(1)
	}
	return y, nil
}
