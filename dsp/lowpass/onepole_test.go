package lowpass

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-lowpass/internal/testutil"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNewSinglePole(t *testing.T) {
	f := NewSinglePole(0.3)
	if f.Decay() != 0.3 {
		t.Fatalf("Decay: got %v, want 0.3", f.Decay())
	}
}

func TestSinglePole_Recurrence(t *testing.T) {
	// decay = 0.5: y[n] = 0.5*x[n] + 0.5*y[n-1]
	f := NewSinglePole(0.5)
	want := []float64{0.5, 0.75, 0.875, 0.9375}
	for i, w := range want {
		y := f.ProcessSample(1)
		if !almostEqual(y, w, eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, w)
		}
	}
}

func TestSinglePole_DecayOne_Identity(t *testing.T) {
	// decay = 1 passes the input through unchanged.
	f := NewSinglePole(1)
	for i, x := range []float64{1, -0.5, 0.25, 100, 0} {
		y := f.ProcessSample(x)
		if y != x {
			t.Errorf("sample %d: got %v, want %v", i, y, x)
		}
	}
}

func TestSinglePole_DecayZero_Silence(t *testing.T) {
	// decay = 0 ignores the input entirely.
	f := NewSinglePole(0)
	for i, x := range []float64{1, -1, 42, 1e6} {
		y := f.ProcessSample(x)
		if y != 0 {
			t.Errorf("sample %d: got %v, want 0", i, y)
		}
	}
}

func TestSinglePole_DCConvergence(t *testing.T) {
	f := NewSinglePole(0.2)
	input := testutil.DC(0.8, 200)
	var y float64
	for _, x := range input {
		y = f.ProcessSample(x)
	}
	if !almostEqual(y, 0.8, 1e-9) {
		t.Fatalf("settled output: got %v, want 0.8", y)
	}
}

func TestSinglePole_OutOfRangeDecayDiverges(t *testing.T) {
	// Out-of-range decay is accepted; the resulting filter is unstable.
	f := NewSinglePole(2.5)
	var maxAbs float64
	for range 20 {
		y := f.ProcessSample(1)
		if a := math.Abs(y); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs < 100 {
		t.Fatalf("expected divergent output, max |y| = %v", maxAbs)
	}
}

func TestSinglePole_Reset(t *testing.T) {
	f := NewSinglePole(0.5)
	f.ProcessSample(1)
	f.ProcessSample(1)
	f.Reset()
	y := f.ProcessSample(1)
	if !almostEqual(y, 0.5, eps) {
		t.Fatalf("first sample after reset: got %v, want 0.5", y)
	}
}

func TestSinglePole_ProcessBlock_MatchesSample(t *testing.T) {
	input := testutil.DeterministicNoise(7, 1.0, 64)

	f1 := NewSinglePole(0.3)
	ref := make([]float64, len(input))
	for i, x := range input {
		ref[i] = f1.ProcessSample(x)
	}

	f2 := NewSinglePole(0.3)
	block := make([]float64, len(input))
	copy(block, input)
	f2.ProcessBlock(block)
	testutil.RequireSliceNearlyEqual(t, block, ref, eps)

	f3 := NewSinglePole(0.3)
	dst := make([]float64, len(input))
	f3.ProcessBlockTo(dst, input)
	testutil.RequireSliceNearlyEqual(t, dst, ref, eps)
}

func TestSinglePole_Response_DCGain(t *testing.T) {
	// H(0) = decay / (1 - (1-decay)) = 1 for any non-zero decay.
	for _, decay := range []float64{0.1, 0.5, 0.9, 1.0} {
		f := NewSinglePole(decay)
		mag := math.Abs(real(f.Response(0, 48000)))
		if !almostEqual(mag, 1, 1e-12) {
			t.Errorf("decay=%v: DC gain %v, want 1", decay, mag)
		}
		if db := f.MagnitudeDB(0, 48000); !almostEqual(db, 0, 1e-10) {
			t.Errorf("decay=%v: DC magnitude %v dB, want 0", decay, db)
		}
	}
}

func TestSinglePole_ResponseMatchesMeasured(t *testing.T) {
	// Smoothing attenuates a high frequency more than a low one.
	f := NewSinglePole(0.1)
	low := f.MagnitudeDB(100, 48000)
	high := f.MagnitudeDB(10000, 48000)
	if high >= low {
		t.Fatalf("expected high-frequency attenuation: low=%v dB, high=%v dB", low, high)
	}
}
