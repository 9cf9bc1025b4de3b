// Package testing provides test utilities for moniker.
package testing

import (
	"errors"
	"testing"

	"github.com/zoobzio/moniker"
)

// Mode is a declared fixture enum with a trailing END constant.
type Mode int

const (
	ModeIdle Mode = iota
	ModeActive
	ModeDraining
	ModeEND
)

var _ = moniker.DeclareCount(ModeEND, "idle", "active", "draining")

// Config is a fixture document carrying Named fields.
type Config struct {
	Name     string                `json:"name" yaml:"name" xml:"name" bson:"name"`
	Mode     moniker.Named[Mode]   `json:"mode" yaml:"mode" xml:"mode" bson:"mode"`
	Fallback moniker.Named[Mode]   `json:"fallback" yaml:"fallback" xml:"fallback" bson:"fallback"`
	History  []moniker.Named[Mode] `json:"history" yaml:"history" xml:"history" bson:"history"`
}

// Equal reports whether two configs hold the same values.
func (c Config) Equal(other Config) bool {
	if c.Name != other.Name || c.Mode != other.Mode || c.Fallback != other.Fallback {
		return false
	}
	if len(c.History) != len(other.History) {
		return false
	}
	for i := range c.History {
		if c.History[i] != other.History[i] {
			return false
		}
	}
	return true
}

// SampleConfig returns a populated Config.
func SampleConfig() Config {
	return Config{
		Name:     "primary",
		Mode:     moniker.Of(ModeActive),
		Fallback: moniker.Of(ModeIdle),
		History:  []moniker.Named[Mode]{moniker.Of(ModeIdle), moniker.Of(ModeDraining)},
	}
}

// RoundTrip checks that every value converts to a name and back to itself.
// With no values it checks every declared enumerator of E.
func RoundTrip[E moniker.Enum](tb testing.TB, values ...E) {
	tb.Helper()
	if len(values) == 0 {
		values = moniker.Values[E]()
		if len(values) == 0 {
			tb.Errorf("%T has no declared names", *new(E))
			return
		}
	}
	for _, e := range values {
		name, err := moniker.ToString(e)
		if err != nil {
			tb.Errorf("ToString(%d) error: %v", e, err)
			continue
		}
		got, err := moniker.FromString[E](name)
		if err != nil {
			tb.Errorf("FromString(%q) error: %v", name, err)
			continue
		}
		if got != e {
			tb.Errorf("round trip of %d via %q = %d", e, name, got)
		}
	}
}

// Rejects checks that each input fails to parse with ErrUnknownName.
func Rejects[E moniker.Enum](tb testing.TB, inputs ...string) {
	tb.Helper()
	for _, in := range inputs {
		got, err := moniker.FromString[E](in)
		if !errors.Is(err, moniker.ErrUnknownName) {
			tb.Errorf("FromString(%q) = %d, %v; want ErrUnknownName", in, got, err)
		}
	}
}

// Complete checks that E names exactly the enumerators below end, and that
// every name is non-empty and unique. These are preconditions the registry
// assumes but does not enforce.
func Complete[E moniker.Enum](tb testing.TB, end E) {
	tb.Helper()
	names := moniker.TableOf[E]().Names()
	if len(names) != int(end) {
		tb.Errorf("%T declares %d names, want %d", end, len(names), int(end))
	}
	seen := make(map[string]int, len(names))
	for i, n := range names {
		if n == "" {
			tb.Errorf("%T ordinal %d has an empty name", end, i)
		}
		if j, dup := seen[n]; dup {
			tb.Errorf("%T ordinals %d and %d share the name %q", end, j, i, n)
		}
		seen[n] = i
	}
}
