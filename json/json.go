// Package json provides a JSON codec implementation.
package json

import (
	"bytes"
	"encoding/json"

	"github.com/zoobzio/moniker"
)

const contentType = "application/json"

// jsonCodec implements moniker.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec. Decoding rejects fields the target does not
// declare, so a misspelled config key fails instead of being dropped.
func New() moniker.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return contentType
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, moniker.NewCodecError(moniker.ErrMarshal, contentType, err)
	}
	return data, nil
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return moniker.NewCodecError(moniker.ErrUnmarshal, contentType, dec.Decode(v))
}
