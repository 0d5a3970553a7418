package sink

import (
	"slices"

	"github.com/hupe1980/rowalign"
)

// Collector keeps every completed row in memory.
type Collector[T any] struct {
	rows []rowalign.Row[T]
}

// NewCollector returns an empty collector.
func NewCollector[T any]() *Collector[T] {
	return &Collector[T]{}
}

// Handle implements rowalign.RowHandler.
func (c *Collector[T]) Handle(row rowalign.Row[T]) {
	c.rows = append(c.rows, slices.Clone(row))
}

// Rows returns the collected rows in completion order.
func (c *Collector[T]) Rows() []rowalign.Row[T] { return c.rows }

// Len returns the number of collected rows.
func (c *Collector[T]) Len() int { return len(c.rows) }

// Reset drops all collected rows.
func (c *Collector[T]) Reset() { c.rows = nil }

// Fanout returns a handler that calls every non-nil handler in order.
func Fanout[T any](handlers ...rowalign.RowHandler[T]) rowalign.RowHandler[T] {
	hs := slices.DeleteFunc(slices.Clone(handlers), func(h rowalign.RowHandler[T]) bool {
		return h == nil
	})
	return func(row rowalign.Row[T]) {
		for _, h := range hs {
			h(row)
		}
	}
}
