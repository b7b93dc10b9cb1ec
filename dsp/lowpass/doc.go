// Package lowpass provides small streaming low-pass filters that process one
// sample at a time and retain their state between calls.
//
// Three filters are available:
//
//   - [SinglePole]: a one-pole IIR smoother parameterized by a decay factor.
//   - [TwoTap]: a fixed two-tap FIR moving average.
//   - [SlidingWindow]: an N-tap uniform FIR moving average over a ring of
//     the most recent inputs.
//
// All three satisfy [Filter] and can be chained by feeding one filter's
// output into the next. A filter instance is not safe for concurrent use:
// it must be owned by a single goroutine, or calls must be serialized
// externally. ProcessSample never blocks and never allocates.
package lowpass
