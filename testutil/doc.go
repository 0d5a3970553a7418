// Package testutil provides testing utilities for rowalign.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source and helpers for generating
// index-value streams.
//
// # Random Streams
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Int64Between(100_001, 333_332) // inclusive bounds
//	s := rng.Stream(1_000, 0, 5)            // monotonic with jitter
//
// # Ground Truth
//
//	top := testutil.TopN(values, 5) // highest five, descending
package testutil
