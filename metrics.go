package rowalign

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Collectors are called inline from Insert and must return quickly.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// duration covers the insert and the triggered alignment check,
	// err is nil if successful.
	RecordInsert(bufferIndex int, duration time.Duration, err error)

	// RecordEviction is called when a full buffer drops its lowest entries.
	RecordEviction(bufferIndex, count int)

	// RecordCompleteRow is called once per completed row.
	// skipped is the number of stale entries purged across all buffers.
	RecordCompleteRow(skipped int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordEviction(int, int)                {}
func (NoopMetricsCollector) RecordCompleteRow(int)                  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertErrors     atomic.Int64
	InsertTotalNanos atomic.Int64
	EvictedCount     atomic.Int64
	RowCount         atomic.Int64
	SkippedCount     atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(_ int, duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordEviction implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEviction(_ int, count int) {
	b.EvictedCount.Add(int64(count))
}

// RecordCompleteRow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCompleteRow(skipped int) {
	b.RowCount.Add(1)
	b.SkippedCount.Add(int64(skipped))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:    b.InsertCount.Load(),
		InsertErrors:   b.InsertErrors.Load(),
		InsertAvgNanos: b.getAvgInsertNanos(),
		EvictedCount:   b.EvictedCount.Load(),
		RowCount:       b.RowCount.Load(),
		SkippedCount:   b.SkippedCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgInsertNanos() int64 {
	count := b.InsertCount.Load()
	if count == 0 {
		return 0
	}
	return b.InsertTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount    int64
	InsertErrors   int64
	InsertAvgNanos int64
	EvictedCount   int64
	RowCount       int64
	SkippedCount   int64
}
