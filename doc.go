// Package rowalign aligns entries arriving independently on N parallel,
// index-ordered streams.
//
// Each stream is backed by a bounded buffer sorted by index value (a
// timestamp, a sequence number, ...). After every insert the engine checks
// whether all N buffers hold an entry within a configurable tolerance of the
// inserted index value. If they do, the matching entries form a completed
// row: they are removed from their buffers and handed to the OnCompleteRow
// callback.
//
// # Quick Start
//
//	eng, err := rowalign.New(rowalign.Config[string]{
//	    Size:               3,   // three streams
//	    MaxBufferSize:      128, // sliding window per stream
//	    MaxIndexValueDelta: 5,   // tolerance
//	    RemoveLowerIndexValuesOnCompleteRow: true,
//	    OnCompleteRow: func(row rowalign.Row[string]) {
//	        for i, m := range row {
//	            fmt.Println(i, m.Result.Value, m.Delta)
//	        }
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	eng.Insert(0, rowalign.Entry[string]{Value: "gps", IndexValue: 1000})
//	eng.Insert(1, rowalign.Entry[string]{Value: "imu", IndexValue: 1002})
//	eng.Insert(2, rowalign.Entry[string]{Value: "cam", IndexValue: 1001}) // row completes
//
// # Row Completion
//
// At most one row completes per Insert. Buffers are queried in order and the
// first buffer without a match aborts the check, so a partial alignment never
// mutates state. With RemoveLowerIndexValuesOnCompleteRow set, every entry at
// or below a match is purged as well; those entries are counted as skipped in
// State.
//
// # Sinks
//
// Package sink provides ready-made handlers, e.g. sink.NewEncoder to write
// rows as newline-delimited JSON.
//
// # Concurrency
//
// Engine is synchronous and not safe for concurrent use. The callback runs
// inline within Insert. Wrap an engine with NewSynchronized when several
// goroutines feed it.
package rowalign
