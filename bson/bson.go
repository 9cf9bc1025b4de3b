// Package bson provides a BSON codec implementation.
package bson

import (
	"github.com/zoobzio/moniker"
	"go.mongodb.org/mongo-driver/bson"
)

const contentType = "application/bson"

// bsonCodec implements moniker.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec. Top-level values must be documents (structs or
// maps); Named fields are stored as BSON strings.
func New() moniker.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return contentType
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	data, err := bson.Marshal(v)
	if err != nil {
		return nil, moniker.NewCodecError(moniker.ErrMarshal, contentType, err)
	}
	return data, nil
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return moniker.NewCodecError(moniker.ErrUnmarshal, contentType, bson.Unmarshal(data, v))
}
