// Package xml provides an XML codec implementation.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/moniker"
)

const contentType = "application/xml"

// xmlCodec implements moniker.Codec for XML.
type xmlCodec struct{}

// New returns an XML codec. Named fields encode as element text or
// attribute values.
func New() moniker.Codec {
	return &xmlCodec{}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return contentType
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, moniker.NewCodecError(moniker.ErrMarshal, contentType, err)
	}
	return data, nil
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return moniker.NewCodecError(moniker.ErrUnmarshal, contentType, xml.Unmarshal(data, v))
}
