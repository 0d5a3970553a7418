package codec

import gojson "github.com/goccy/go-json"

// GoJSON encodes rows with github.com/goccy/go-json.
// Its output matches JSON for the types rows carry.
type GoJSON struct{}

// Marshal encodes the value to JSON.
func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

// Name returns "go-json".
func (GoJSON) Name() string { return "go-json" }
