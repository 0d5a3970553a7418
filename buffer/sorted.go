package buffer

import "slices"

// Compile time check to ensure Sorted satisfies the View interface.
var _ View[struct{}] = (*Sorted[struct{}])(nil)

// Sorted is a capacity-bounded buffer ordered by descending IndexValue.
type Sorted[T any] struct {
	entries []Entry[T]
	maxSize int
}

// New creates an empty buffer holding at most maxSize entries.
// A maxSize <= 0 disables the capacity bound.
func New[T any](maxSize int) *Sorted[T] {
	return &Sorted[T]{maxSize: maxSize}
}

// MaxSize returns the configured capacity (<= 0 if unbounded).
func (b *Sorted[T]) MaxSize() int { return b.maxSize }

// Len returns the number of buffered entries.
func (b *Sorted[T]) Len() int { return len(b.entries) }

// At returns the entry at position i. It panics if i is out of range.
func (b *Sorted[T]) At(i int) Entry[T] { return b.entries[i] }

// Entries returns a copy of the buffered entries.
func (b *Sorted[T]) Entries() []Entry[T] { return slices.Clone(b.entries) }

// Insert places e so that the descending order is preserved and returns the
// position it was inserted at. If the buffer grows beyond its capacity the
// lowest entries are evicted, which may include e itself.
func (b *Sorted[T]) Insert(e Entry[T]) int {
	pos := b.locate(e.IndexValue)
	b.entries = slices.Insert(b.entries, pos, e)

	if b.maxSize > 0 && len(b.entries) > b.maxSize {
		clear(b.entries[b.maxSize:])
		b.entries = b.entries[:b.maxSize]
	}

	return pos
}

// Get returns the entry closest to indexValue whose distance does not exceed
// tolerance. Only the landing position of indexValue and its two neighbours
// are considered; on equal distance the landing position wins, then the
// preceding entry.
func (b *Sorted[T]) Get(indexValue, tolerance int64) (MatchResult[T], bool) {
	var (
		best  MatchResult[T]
		found bool
	)

	if tolerance < 0 {
		return best, false
	}

	loc := b.locate(indexValue)
	for _, i := range [3]int{loc, loc - 1, loc + 1} {
		if i < 0 || i >= len(b.entries) {
			continue
		}

		e := b.entries[i]
		d := distance(e.IndexValue, indexValue)
		if d > uint64(tolerance) {
			continue
		}
		if found && uint64(best.Delta) <= d {
			continue
		}

		// d <= tolerance, so it fits into an int64.
		best = MatchResult[T]{Result: e, Delta: int64(d), Index: i}
		found = true
	}

	return best, found
}

// Remove deletes the entry at position i. With truncateLower set, every entry
// after i (all entries with an equal or lower index value) is deleted too.
// It returns the number of removed entries. i must be a valid position.
func (b *Sorted[T]) Remove(i int, truncateLower bool) int {
	if truncateLower {
		n := len(b.entries) - i
		clear(b.entries[i:])
		b.entries = b.entries[:i]
		return n
	}

	b.entries = slices.Delete(b.entries, i, i+1)
	return 1
}

// locate bisects the descending sequence for v. An equal entry hit by a pivot
// is returned directly; otherwise the range is narrowed to a single element
// and v goes before it if that element is smaller, after it if not.
func (b *Sorted[T]) locate(v int64) int {
	start, end := 0, len(b.entries)
	for {
		pivot := start + (end-start)/2
		if pivot >= len(b.entries) || b.entries[pivot].IndexValue == v {
			return pivot
		}

		if end-start <= 1 {
			if b.entries[pivot].IndexValue < v {
				return pivot
			}
			return pivot + 1
		}

		if b.entries[pivot].IndexValue > v {
			start = pivot
		} else {
			end = pivot
		}
	}
}

// distance returns |a - b| without overflowing for far apart values.
func distance(a, b int64) uint64 {
	if a >= b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}
