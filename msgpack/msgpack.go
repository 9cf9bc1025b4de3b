// Package msgpack provides a MessagePack codec implementation.
package msgpack

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/moniker"
)

const contentType = "application/msgpack"

// msgpackCodec implements moniker.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec. Struct fields are keyed by their json
// tag so one document type serves both formats, and unknown keys are rejected.
func New() moniker.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return contentType
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, moniker.NewCodecError(moniker.ErrMarshal, contentType, err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	dec.DisallowUnknownFields(true)
	return moniker.NewCodecError(moniker.ErrUnmarshal, contentType, dec.Decode(v))
}
