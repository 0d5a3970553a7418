// Package sink provides ready-made OnCompleteRow handlers.
//
//	col := sink.NewCollector[string]()
//	enc := sink.NewEncoder[string](os.Stdout)
//
//	eng, _ := rowalign.New(rowalign.Config[string]{
//	    Size:          2,
//	    MaxBufferSize: 64,
//	    OnCompleteRow: sink.Fanout(col.Handle, enc.Handle),
//	})
//
// Handlers run inline within Engine.Insert.
package sink
