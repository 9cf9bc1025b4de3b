package bson

import (
	"errors"
	"testing"

	"github.com/zoobzio/moniker"
	"go.mongodb.org/mongo-driver/bson"
)

type mode int

const (
	modeIdle mode = iota
	modeBusy
)

var _ = moniker.Declare[mode]("idle", "busy")

type record struct {
	Name string              `bson:"name"`
	Mode moniker.Named[mode] `bson:"mode"`
}

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/bson" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/bson")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()
	original := record{Name: "test", Mode: moniker.Of(modeIdle)}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if got := bson.Raw(data).Lookup("mode").StringValue(); got != "idle" {
		t.Errorf("mode stored as %q, want %q", got, "idle")
	}

	var restored record
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestUnmarshalUnknownName(t *testing.T) {
	c := New()
	data, _ := bson.Marshal(bson.M{"mode": "sleepy"})

	var v record
	if err := c.Unmarshal(data, &v); !errors.Is(err, moniker.ErrUnmarshal) {
		t.Errorf("Unmarshal() error = %v, want ErrUnmarshal", err)
	}
}

func TestMarshalOutOfRange(t *testing.T) {
	c := New()

	if _, err := c.Marshal(record{Mode: moniker.Of(mode(3))}); !errors.Is(err, moniker.ErrMarshal) {
		t.Errorf("Marshal() error = %v, want ErrMarshal", err)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v record
	err := c.Unmarshal([]byte("invalid bson"), &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
