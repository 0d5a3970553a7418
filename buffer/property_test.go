package buffer_test

import (
	"testing"

	"github.com/hupe1980/rowalign/buffer"
	"github.com/hupe1980/rowalign/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSorted_Invariants(t *testing.T) {
	rng := testutil.NewRNG(42)

	for _, maxSize := range []int{1, 3, 16, 64} {
		b := buffer.New[int](maxSize)
		var seen []int64

		for range 500 {
			v := rng.Int64Between(-200, 200)
			seen = append(seen, v)
			b.Insert(buffer.Entry[int]{IndexValue: v})

			require.LessOrEqual(t, b.Len(), maxSize)
			entries := b.Entries()
			for i := 1; i < len(entries); i++ {
				require.GreaterOrEqual(t, entries[i-1].IndexValue, entries[i].IndexValue)
			}
		}

		// The survivors are the highest values ever inserted.
		top := testutil.TopN(seen, maxSize)
		got := make([]int64, 0, b.Len())
		for _, e := range b.Entries() {
			got = append(got, e.IndexValue)
		}
		assert.Equal(t, top, got)
	}
}

func TestSorted_GetMatchesBruteForce(t *testing.T) {
	rng := testutil.NewRNG(7)

	for range 200 {
		b := buffer.New[int](32)
		for range rng.Intn(32) {
			b.Insert(buffer.Entry[int]{IndexValue: rng.Int64Between(0, 1000)})
		}

		query := rng.Int64Between(-50, 1050)
		tolerance := rng.Int64Between(0, 60)

		m, ok := b.Get(query, tolerance)

		qualifies := false
		minDelta := int64(-1)
		for _, e := range b.Entries() {
			d := e.IndexValue - query
			if d < 0 {
				d = -d
			}
			if d <= tolerance {
				qualifies = true
				if minDelta < 0 || d < minDelta {
					minDelta = d
				}
			}
		}

		require.Equal(t, qualifies, ok, "query=%d tolerance=%d", query, tolerance)
		if ok {
			assert.Equal(t, minDelta, m.Delta)
			assert.Equal(t, b.At(m.Index), m.Result)
		}
	}
}

func TestSorted_ShuffledArrival(t *testing.T) {
	rng := testutil.NewRNG(3)

	values := rng.Stream(256, 0, 3)
	for round := range 20 {
		b := buffer.New[int](0)
		for _, v := range rng.Shuffle(values) {
			b.Insert(buffer.Entry[int]{IndexValue: v})
		}

		got := make([]int64, 0, b.Len())
		for _, e := range b.Entries() {
			got = append(got, e.IndexValue)
		}
		require.Equal(t, testutil.TopN(values, len(values)), got, "round %d", round)
	}
}
