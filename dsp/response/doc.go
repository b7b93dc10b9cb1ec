// Package response measures the empirical behavior of a streaming filter:
// its impulse response, its magnitude spectrum, and its settled DC gain.
//
// Measurements drive the filter themselves and therefore consume its state;
// the filter is Reset at the start of every measurement. Probe a dedicated
// instance rather than one that is mid-stream in a host.
//
// The magnitude spectrum is computed from an FFT of the truncated impulse
// response. For FIR filters the result is exact once the FFT size covers the
// tap count; for IIR filters it is an approximation that improves with FFT
// size as more of the tail is captured.
package response
