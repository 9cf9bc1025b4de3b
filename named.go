package moniker

import (
	"fmt"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"gopkg.in/yaml.v3"
)

// Named wraps an enum value so it serializes as its declared name in every
// supported format without per-type methods:
//
//	type Config struct {
//	    Level moniker.Named[Level] `json:"level" yaml:"level"`
//	}
//
// JSON and XML go through MarshalText/UnmarshalText. YAML, MessagePack and
// BSON have dedicated hooks so the value is always a string scalar.
type Named[E Enum] struct {
	Value E
}

// Of wraps e.
func Of[E Enum](e E) Named[E] {
	return Named[E]{Value: e}
}

// String implements fmt.Stringer.
func (n Named[E]) String() string {
	return Name(n.Value)
}

// Scan implements fmt.Scanner.
func (n *Named[E]) Scan(state fmt.ScanState, _ rune) error {
	return ScanState(state, &n.Value)
}

// MarshalText implements encoding.TextMarshaler.
func (n Named[E]) MarshalText() ([]byte, error) {
	return MarshalText(n.Value)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Named[E]) UnmarshalText(text []byte) error {
	return UnmarshalText(text, &n.Value)
}

// MarshalYAML implements yaml.Marshaler.
func (n Named[E]) MarshalYAML() (any, error) {
	s, err := ToString(n.Value)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Only scalar nodes are accepted.
func (n *Named[E]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: cannot decode YAML node into %s: not a scalar", node.Line, reflect.TypeFor[E]())
	}
	return UnmarshalText([]byte(node.Value), &n.Value)
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (n Named[E]) EncodeMsgpack(enc *msgpack.Encoder) error {
	s, err := ToString(n.Value)
	if err != nil {
		return err
	}
	return enc.EncodeString(s)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (n *Named[E]) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return UnmarshalText([]byte(s), &n.Value)
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (n Named[E]) MarshalBSONValue() (bsontype.Type, []byte, error) {
	s, err := ToString(n.Value)
	if err != nil {
		return 0, nil, err
	}
	return bson.MarshalValue(s)
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (n *Named[E]) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	s, ok := bson.RawValue{Type: t, Value: data}.StringValueOK()
	if !ok {
		return fmt.Errorf("cannot decode BSON %s into %s", t, reflect.TypeFor[E]())
	}
	return UnmarshalText([]byte(s), &n.Value)
}

// namedField lets Audit inspect a Named field without knowing E.
type namedField interface {
	enumType() reflect.Type
	enumLen() int
}

func (Named[E]) enumType() reflect.Type { return reflect.TypeFor[E]() }

func (Named[E]) enumLen() int { return TableOf[E]().Len() }
