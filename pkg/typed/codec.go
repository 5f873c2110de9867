package typed

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Codec defines how a typed value is turned into a stored blob and back.
type Codec interface {
	// Name identifies the codec ("json", "yaml").
	Name() string
	// Ext is the key suffix blobs written with this codec carry (".json").
	Ext() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// DefaultCodecs returns the standard set of codecs keyed by name.
func DefaultCodecs() map[string]Codec {
	return map[string]Codec{
		"json": JSONCodec{},
		"yaml": YAMLCodec{},
	}
}

// CodecByName looks up one of the default codecs.
func CodecByName(name string) (Codec, error) {
	if name == "" {
		return JSONCodec{}, nil
	}
	c, ok := DefaultCodecs()[name]
	if !ok {
		return nil, fmt.Errorf("unknown codec: %s", name)
	}
	return c, nil
}

// --- JSON Codec ---

// JSONCodec writes indented JSON so stored blobs stay readable and diffable.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }
func (JSONCodec) Ext() string  { return ".json" }

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// --- YAML Codec ---

type YAMLCodec struct{}

func (YAMLCodec) Name() string { return "yaml" }
func (YAMLCodec) Ext() string  { return ".yaml" }

func (YAMLCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (YAMLCodec) Unmarshal(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid yaml: %w", err)
	}
	return nil
}
