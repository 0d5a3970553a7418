package rowalign

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with rowalign-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithBuffer adds a buffer index field to the logger.
func (l *Logger) WithBuffer(i int) *Logger {
	return &Logger{
		Logger: l.Logger.With("buffer", i),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(bufferIndex int, indexValue int64, position int, err error) {
	if err != nil {
		l.Error("insert failed",
			"buffer", bufferIndex,
			"index_value", indexValue,
			"error", err,
		)
		return
	}
	l.Debug("insert completed",
		"buffer", bufferIndex,
		"index_value", indexValue,
		"position", position,
	)
}

// LogEviction logs entries dropped because a buffer was full.
func (l *Logger) LogEviction(bufferIndex, count int) {
	l.Debug("buffer capacity exceeded",
		"buffer", bufferIndex,
		"evicted", count,
	)
}

// LogCompleteRow logs a completed row.
// skipped holds the stale entries dropped per buffer during removal.
func (l *Logger) LogCompleteRow(completed int, indexValue int64, skipped []int) {
	total := 0
	for _, s := range skipped {
		total += s
	}
	if total > 0 {
		l.Debug("row completed",
			"row", completed,
			"index_value", indexValue,
			"skipped", total,
			"skipped_per_buffer", skipped,
		)
		return
	}
	l.Debug("row completed",
		"row", completed,
		"index_value", indexValue,
	)
}
