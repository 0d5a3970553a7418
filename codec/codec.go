// Package codec selects how completed rows are encoded.
//
// sink.Encoder takes a Codec, so row payloads can be encoded with the
// standard library or with goccy/go-json.
package codec

// Codec encodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Name() string
}

// Default is the codec used by sinks when none is configured.
var Default Codec = GoJSON{}
