package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG wraps a seeded random number generator.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int64Between returns a pseudo-random number in [minVal, maxVal].
func (r *RNG) Int64Between(minVal, maxVal int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Int63n(maxVal-minVal+1)
}

// Stream returns n index values starting at start, each step advancing by
// one plus a jitter in [-jitter, jitter]. The result is roughly monotonic,
// which is the arrival pattern a sliding window is built for.
func (r *RNG) Stream(n int, start, jitter int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int64, n)
	for i := range out {
		v := start + int64(i)
		if jitter > 0 {
			v += r.rand.Int63n(2*jitter+1) - jitter
		}
		out[i] = v
	}
	return out
}

// Shuffle returns a shuffled copy of values.
func (r *RNG) Shuffle(values []int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := slices.Clone(values)
	r.rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// TopN returns the n highest values in descending order.
func TopN(values []int64, n int) []int64 {
	sorted := slices.Clone(values)
	slices.SortFunc(sorted, func(a, b int64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
