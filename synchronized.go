package rowalign

import "sync"

// Synchronized serializes access to an Engine with a single mutex.
//
// The check-then-remove sequence of an alignment spans all buffers, so every
// Insert holds the lock for its full duration, including the OnCompleteRow
// callback. Handlers must not call back into the same Synchronized.
type Synchronized[T any] struct {
	mu     sync.Mutex
	engine *Engine[T]
}

// NewSynchronized wraps engine. The engine must not be used directly afterwards.
func NewSynchronized[T any](engine *Engine[T]) *Synchronized[T] {
	return &Synchronized[T]{engine: engine}
}

// Insert is the locked equivalent of Engine.Insert.
func (s *Synchronized[T]) Insert(bufferIndex int, entry Entry[T]) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Insert(bufferIndex, entry)
}

// State is the locked equivalent of Engine.State.
func (s *Synchronized[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.State()
}

// Lengths returns the current length of every buffer.
func (s *Synchronized[T]) Lengths() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int, len(s.engine.buffers))
	for i, b := range s.engine.buffers {
		out[i] = b.Len()
	}
	return out
}
