// Package rng provides reproducible multi-stream pseudo-random number
// generation for discrete-event simulation experiments.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - mrg32k3a.go: the combined generator core (two order-3 recurrences,
//     overflow-safe modular arithmetic, jump-ahead transition matrices)
//   - stream.go: Stream state (stream start, substream start, current)
//     and the control operations (reset, substream advance, antithetic)
//   - provider.go: StreamProvider, the ordered registry that hands out
//     numbered, widely spaced streams
//
// # Architecture
//
// A StreamProvider owns a factory state and manufactures Streams spaced
// 2^127 recurrence steps apart, so every stream handed to a different
// worker is statistically independent with zero coordination. Each
// Stream subdivides into substreams 2^76 steps apart. Jumping between
// streams or substreams multiplies the 3-word state vectors by
// precomputed transition matrices instead of stepping the recurrence.
//
// Streams are NOT safe for concurrent draws from multiple goroutines;
// hand each goroutine its own Stream. A StreamProvider is safe to share.
//
// legacy.go carries the older single-stream Lehmer generator with its
// fixed 100-entry seed table, for replicating historical experiments.
package rng
