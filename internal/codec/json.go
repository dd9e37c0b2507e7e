package codec

import "encoding/json"

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// MarshalIndent is used for whole documents so persisted files stay readable.
func (jsonCodec) MarshalIndent(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }

func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
