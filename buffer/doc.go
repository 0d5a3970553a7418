// Package buffer implements the bounded ordered buffer that backs a single
// stream of the alignment engine.
//
// A Sorted buffer keeps its entries ordered by IndexValue in descending order,
// so position 0 always holds the highest index value seen so far. When the
// configured capacity is exceeded the entries with the lowest index values are
// dropped, which turns the buffer into a sliding window over the most recent
// part of the stream.
//
// # Lookup
//
// Get performs a nearest-match lookup: it bisects to the landing position of
// the query and inspects that position and its two neighbours.
//
//	b := buffer.New[string](16)
//	b.Insert(buffer.Entry[string]{Value: "a", IndexValue: 100})
//	b.Insert(buffer.Entry[string]{Value: "b", IndexValue: 110})
//
//	m, ok := b.Get(104, 5) // m.Result.Value == "a", m.Delta == 4
//
// Positions returned by Insert and Get are only valid until the next mutation.
//
// Sorted is not safe for concurrent use.
package buffer
