package buffer

// Entry is a single element of a stream.
type Entry[T any] struct {
	// Value is the opaque payload. The buffer never inspects it.
	Value T
	// IndexValue orders entries and is used for proximity matching,
	// e.g. a timestamp or a sequence number.
	IndexValue int64
}

// MatchResult is the outcome of a successful Get.
type MatchResult[T any] struct {
	Result Entry[T]
	// Delta is the absolute distance between Result.IndexValue and the query.
	Delta int64
	// Index is the position of Result inside the buffer at lookup time.
	Index int
}

// View is a read-only view of a buffer.
type View[T any] interface {
	// Len returns the number of buffered entries.
	Len() int
	// At returns the entry at position i (0 holds the highest index value).
	At(i int) Entry[T]
	// Entries returns a copy of the buffered entries in descending order.
	Entries() []Entry[T]
}
