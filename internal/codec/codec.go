package codec

import (
	"fmt"
	"strings"
)

// Codec converts values to and from their textual form.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// Built-in codecs.
var (
	JSON Codec = jsonCodec{}
	YAML Codec = yamlCodec{}
)

// ByName returns the built-in codec registered under name (case-insensitive).
// An empty name selects JSON.
func ByName(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "", "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}
