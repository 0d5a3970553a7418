package rowalign

import (
	"slices"
	"time"

	"github.com/hupe1980/rowalign/buffer"
)

// Entry is re-exported for convenience.
type Entry[T any] = buffer.Entry[T]

// MatchResult is re-exported for convenience.
type MatchResult[T any] = buffer.MatchResult[T]

// Row is a completed row: one match per buffer, buffer 0 first.
// Each MatchResult.Index is the position the entry held before removal.
type Row[T any] []MatchResult[T]

// RowHandler receives completed rows.
type RowHandler[T any] func(row Row[T])

// State is a snapshot of the engine counters.
type State struct {
	// Completed is the number of rows completed so far.
	Completed int
	Skipped   SkippedState
}

// SkippedState counts stale entries purged during row completion.
// It only grows when RemoveLowerIndexValuesOnCompleteRow is set.
type SkippedState struct {
	Total     int
	PerBuffer []int
}

// Engine aligns entries arriving on Size independent streams.
//
// Every Insert triggers one alignment check around the inserted index value.
// When every buffer holds an entry within MaxIndexValueDelta of that value,
// the matches are removed and reported through OnCompleteRow.
//
// Engine is not safe for concurrent use; see Synchronized.
type Engine[T any] struct {
	buffers []*buffer.Sorted[T]

	maxIndexValueDelta int64
	removeLower        bool
	onCompleteRow      RowHandler[T]

	completed int
	skipped   []int
	skippedN  int

	logger  *Logger
	metrics MetricsCollector
}

// New creates an engine with cfg.Size empty buffers.
func New[T any](cfg Config[T], optFns ...Option) (*Engine[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := applyOptions(optFns)

	buffers := make([]*buffer.Sorted[T], cfg.Size)
	for i := range buffers {
		buffers[i] = buffer.New[T](cfg.MaxBufferSize)
	}

	onCompleteRow := cfg.OnCompleteRow
	if onCompleteRow == nil {
		onCompleteRow = func(Row[T]) {}
	}

	return &Engine[T]{
		buffers:            buffers,
		maxIndexValueDelta: cfg.MaxIndexValueDelta,
		removeLower:        cfg.RemoveLowerIndexValuesOnCompleteRow,
		onCompleteRow:      onCompleteRow,
		skipped:            make([]int, cfg.Size),
		logger:             opts.logger,
		metrics:            opts.metricsCollector,
	}, nil
}

// Size returns the number of buffers.
func (e *Engine[T]) Size() int { return len(e.buffers) }

// Insert adds entry to buffer bufferIndex and runs the alignment check for
// entry.IndexValue. It returns the position the entry was inserted at,
// whether or not a row completed.
//
// An out-of-range bufferIndex returns *ErrBufferIndexOutOfRange and leaves
// the engine untouched.
func (e *Engine[T]) Insert(bufferIndex int, entry Entry[T]) (int, error) {
	start := time.Now()

	if bufferIndex < 0 || bufferIndex >= len(e.buffers) {
		err := &ErrBufferIndexOutOfRange{Index: bufferIndex, Size: len(e.buffers)}
		e.logger.LogInsert(bufferIndex, entry.IndexValue, -1, err)
		e.metrics.RecordInsert(bufferIndex, time.Since(start), err)
		return -1, err
	}

	b := e.buffers[bufferIndex]
	before := b.Len()
	pos := b.Insert(entry)
	if evicted := before + 1 - b.Len(); evicted > 0 {
		e.logger.LogEviction(bufferIndex, evicted)
		e.metrics.RecordEviction(bufferIndex, evicted)
	}

	e.logger.LogInsert(bufferIndex, entry.IndexValue, pos, nil)
	e.checkCompleteRow(entry.IndexValue)
	e.metrics.RecordInsert(bufferIndex, time.Since(start), nil)

	return pos, nil
}

// checkCompleteRow looks for a match near v in every buffer. The first
// buffer without a match ends the check with no side effects.
func (e *Engine[T]) checkCompleteRow(v int64) {
	row := make(Row[T], 0, len(e.buffers))
	for _, b := range e.buffers {
		m, ok := b.Get(v, e.maxIndexValueDelta)
		if !ok {
			return
		}
		row = append(row, m)
	}

	skipped := make([]int, len(e.buffers))
	total := 0
	for i, b := range e.buffers {
		removed := b.Remove(row[i].Index, e.removeLower)
		if e.removeLower {
			skipped[i] = removed - 1
			total += skipped[i]
			e.skipped[i] += skipped[i]
		}
	}
	e.skippedN += total
	e.completed++

	e.logger.LogCompleteRow(e.completed, v, skipped)
	e.metrics.RecordCompleteRow(total)

	e.onCompleteRow(row)
}

// Buffers returns read-only views of the buffers, indexed by stream.
// The views reflect later mutations of the engine.
func (e *Engine[T]) Buffers() []buffer.View[T] {
	views := make([]buffer.View[T], len(e.buffers))
	for i, b := range e.buffers {
		views[i] = readOnlyView[T]{b: b}
	}
	return views
}

// readOnlyView hides the mutating methods of a buffer.
type readOnlyView[T any] struct {
	b *buffer.Sorted[T]
}

func (v readOnlyView[T]) Len() int            { return v.b.Len() }
func (v readOnlyView[T]) At(i int) Entry[T]   { return v.b.At(i) }
func (v readOnlyView[T]) Entries() []Entry[T] { return v.b.Entries() }

// State returns a snapshot of the engine counters.
func (e *Engine[T]) State() State {
	return State{
		Completed: e.completed,
		Skipped: SkippedState{
			Total:     e.skippedN,
			PerBuffer: slices.Clone(e.skipped),
		},
	}
}
