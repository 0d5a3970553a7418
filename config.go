package rowalign

import "fmt"

// Config holds the construction parameters of an Engine.
type Config[T any] struct {
	// Size is the number of streams (buffers). Must be >= 1.
	Size int

	// MaxBufferSize is the per-stream capacity. Must be >= 1.
	// A full buffer drops its lowest index values first.
	MaxBufferSize int

	// MaxIndexValueDelta is the matching tolerance. Must be >= 0.
	// An entry matches a query if |entry.IndexValue - query| <= MaxIndexValueDelta.
	MaxIndexValueDelta int64

	// RemoveLowerIndexValuesOnCompleteRow purges, on a completed row, every
	// entry at or below the matched one instead of only the match itself.
	RemoveLowerIndexValuesOnCompleteRow bool

	// OnCompleteRow is invoked synchronously from Insert for every completed
	// row. A nil handler is treated as a no-op.
	OnCompleteRow RowHandler[T]
}

// Validate checks the numeric bounds of the configuration.
func (c Config[T]) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w: size must be >= 1, got %d", ErrInvalidArgument, c.Size)
	}
	if c.MaxBufferSize < 1 {
		return fmt.Errorf("%w: max buffer size must be >= 1, got %d", ErrInvalidArgument, c.MaxBufferSize)
	}
	if c.MaxIndexValueDelta < 0 {
		return fmt.Errorf("%w: max index value delta must be >= 0, got %d", ErrInvalidArgument, c.MaxIndexValueDelta)
	}
	return nil
}
