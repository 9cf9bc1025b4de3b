package xml

import (
	"encoding/xml"
	"errors"
	"testing"

	"github.com/zoobzio/moniker"
)

type mode int

const (
	modeOff mode = iota
	modeOn
)

var _ = moniker.Declare[mode]("off", "on")

type config struct {
	XMLName xml.Name            `xml:"config"`
	Name    string              `xml:"name,attr"`
	Mode    moniker.Named[mode] `xml:"mode"`
}

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/xml" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/xml")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()
	original := config{Name: "test", Mode: moniker.Of(modeOff)}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `<config name="test"><mode>off</mode></config>` {
		t.Errorf("Marshal() = %s", data)
	}

	var restored config
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored.Name != original.Name || restored.Mode != original.Mode {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestUnmarshalUnknownName(t *testing.T) {
	c := New()

	var v config
	err := c.Unmarshal([]byte(`<config><mode>auto</mode></config>`), &v)
	if !errors.Is(err, moniker.ErrUnmarshal) || !errors.Is(err, moniker.ErrUnknownName) {
		t.Errorf("Unmarshal() error = %v, want ErrUnmarshal and ErrUnknownName", err)
	}
}

func TestMarshalOutOfRange(t *testing.T) {
	c := New()

	_, err := c.Marshal(config{Mode: moniker.Of(mode(9))})
	if !errors.Is(err, moniker.ErrMarshal) {
		t.Errorf("Marshal() error = %v, want ErrMarshal", err)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v struct{}
	err := c.Unmarshal([]byte("<unclosed"), &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

