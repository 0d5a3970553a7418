package sink

import (
	"io"

	"github.com/hupe1980/rowalign"
	"github.com/hupe1980/rowalign/codec"
)

// Record is the encoded form of a completed row.
type Record[T any] struct {
	Row     int              `json:"row"`
	Matches []RecordMatch[T] `json:"matches"`
}

// RecordMatch is the encoded form of a single match.
type RecordMatch[T any] struct {
	Buffer     int   `json:"buffer"`
	Index      int   `json:"index"`
	Delta      int64 `json:"delta"`
	IndexValue int64 `json:"indexValue"`
	Value      T     `json:"value"`
}

// NewRecord converts row into its encoded form. seq is the 1-based row number.
func NewRecord[T any](seq int, row rowalign.Row[T]) Record[T] {
	matches := make([]RecordMatch[T], len(row))
	for i, m := range row {
		matches[i] = RecordMatch[T]{
			Buffer:     i,
			Index:      m.Index,
			Delta:      m.Delta,
			IndexValue: m.Result.IndexValue,
			Value:      m.Result.Value,
		}
	}
	return Record[T]{Row: seq, Matches: matches}
}

// EncoderOption configures an Encoder.
type EncoderOption func(*encoderOptions)

type encoderOptions struct {
	codec codec.Codec
}

// WithCodec sets the codec used to encode records.
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) EncoderOption {
	return func(o *encoderOptions) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// Encoder writes one newline-terminated record per completed row.
//
// The first write or encode error is kept and returned by Err; rows
// completed afterwards are dropped.
type Encoder[T any] struct {
	w     io.Writer
	codec codec.Codec
	seq   int
	err   error
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder[T any](w io.Writer, optFns ...EncoderOption) *Encoder[T] {
	o := encoderOptions{codec: codec.Default}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return &Encoder[T]{w: w, codec: o.codec}
}

// Handle implements rowalign.RowHandler.
func (e *Encoder[T]) Handle(row rowalign.Row[T]) {
	if e.err != nil {
		return
	}

	e.seq++
	b, err := e.codec.Marshal(NewRecord(e.seq, row))
	if err != nil {
		e.err = err
		return
	}

	if _, err := e.w.Write(append(b, '\n')); err != nil {
		e.err = err
	}
}

// Written returns the number of rows handed to the encoder.
func (e *Encoder[T]) Written() int { return e.seq }

// Err returns the first error encountered, if any.
func (e *Encoder[T]) Err() error { return e.err }
