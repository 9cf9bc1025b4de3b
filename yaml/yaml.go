// Package yaml provides a YAML codec implementation.
package yaml

import (
	"bytes"
	"errors"
	"io"

	"github.com/zoobzio/moniker"
	"gopkg.in/yaml.v3"
)

const contentType = "application/yaml"

// yamlCodec implements moniker.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec. Output is indented by two spaces and decoding
// rejects keys the target struct does not declare.
func New() moniker.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return contentType
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, moniker.NewCodecError(moniker.ErrMarshal, contentType, err)
	}
	if err := enc.Close(); err != nil {
		return nil, moniker.NewCodecError(moniker.ErrMarshal, contentType, err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes YAML data into v. An empty document leaves v untouched.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return moniker.NewCodecError(moniker.ErrUnmarshal, contentType, err)
}
