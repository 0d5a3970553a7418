package sink

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hupe1980/rowalign"
	"github.com/hupe1980/rowalign/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, handler rowalign.RowHandler[string]) *rowalign.Engine[string] {
	t.Helper()

	eng, err := rowalign.New(rowalign.Config[string]{
		Size:               2,
		MaxBufferSize:      8,
		MaxIndexValueDelta: 1,
		OnCompleteRow:      handler,
	})
	require.NoError(t, err)
	return eng
}

func insert(t *testing.T, eng *rowalign.Engine[string], bufferIndex int, value string, indexValue int64) {
	t.Helper()

	_, err := eng.Insert(bufferIndex, rowalign.Entry[string]{Value: value, IndexValue: indexValue})
	require.NoError(t, err)
}

func TestCollector(t *testing.T) {
	col := NewCollector[string]()
	eng := newEngine(t, col.Handle)

	insert(t, eng, 0, "a", 10)
	insert(t, eng, 1, "b", 11)
	insert(t, eng, 0, "c", 20)
	insert(t, eng, 1, "d", 20)

	require.Equal(t, 2, col.Len())
	assert.Equal(t, "a", col.Rows()[0][0].Result.Value)
	assert.Equal(t, int64(1), col.Rows()[0][0].Delta)
	assert.Equal(t, "d", col.Rows()[1][1].Result.Value)

	col.Reset()
	assert.Equal(t, 0, col.Len())
}

func TestFanout(t *testing.T) {
	var calls []string
	h := Fanout[string](
		func(rowalign.Row[string]) { calls = append(calls, "first") },
		nil,
		func(rowalign.Row[string]) { calls = append(calls, "second") },
	)

	h(rowalign.Row[string]{})
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestEncoder(t *testing.T) {
	for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			var buf bytes.Buffer
			enc := NewEncoder[string](&buf, WithCodec(c))
			eng := newEngine(t, enc.Handle)

			insert(t, eng, 0, "a", 10)
			insert(t, eng, 1, "b", 9)
			insert(t, eng, 1, "c", 30)
			insert(t, eng, 0, "d", 30)
			require.NoError(t, enc.Err())
			assert.Equal(t, 2, enc.Written())

			var records []Record[string]
			sc := bufio.NewScanner(&buf)
			for sc.Scan() {
				var r Record[string]
				require.NoError(t, json.Unmarshal(sc.Bytes(), &r))
				records = append(records, r)
			}
			require.Len(t, records, 2)

			assert.Equal(t, Record[string]{
				Row: 1,
				Matches: []RecordMatch[string]{
					{Buffer: 0, Index: 0, Delta: 1, IndexValue: 10, Value: "a"},
					{Buffer: 1, Index: 0, Delta: 0, IndexValue: 9, Value: "b"},
				},
			}, records[0])
			assert.Equal(t, 2, records[1].Row)
			assert.Equal(t, "c", records[1].Matches[1].Value)
		})
	}
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, errors.New("disk full")
}

func TestEncoder_KeepsFirstError(t *testing.T) {
	w := &failingWriter{}
	enc := NewEncoder[string](w, WithCodec(nil))

	enc.Handle(rowalign.Row[string]{})
	enc.Handle(rowalign.Row[string]{})

	require.EqualError(t, enc.Err(), "disk full")
	assert.Equal(t, 1, w.n)
	assert.Equal(t, 1, enc.Written())
}
