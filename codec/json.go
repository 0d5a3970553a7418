package codec

import "encoding/json"

// JSON encodes rows with encoding/json.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Name returns "json".
func (JSON) Name() string { return "json" }
