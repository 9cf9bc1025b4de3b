// Package moniker associates human-readable names with the values of integer
// enum types and converts between the two.
//
// An enum is any defined integer type whose constants start at 0 and count up
// by one, which is what iota produces. One statement beside the type binds
// its names, in ordinal order:
//
//	type Color int
//
//	const (
//	    Red Color = iota
//	    Green
//	    Blue
//	)
//
//	var _ = moniker.Declare[Color]("red", "green", "blue")
//
// The type itself is the lookup key. No table value is passed around:
//
//	s, err := moniker.ToString(Green)          // "green"
//	c, err := moniker.FromString[Color]("blue") // Blue
//
// # Declaring names
//
// Declare runs during package initialization when used as a package-level
// var, so the table exists before any importer can convert a value. A type
// may instead implement Namer; its names are read once, on first use.
// DeclareCount additionally checks the name count against a trailing END
// constant. Declaring the same type twice with different names panics.
//
// # Failures
//
// Conversions never substitute a default:
//
//   - ToString returns *RangeError (ErrOutOfRange) for a value without a name,
//     including every value of a type that has no names at all.
//   - FromString returns *NameError (ErrUnknownName) for an unknown string.
//   - Read returns *SourceError (ErrSourceExhausted) when its reader has no token.
//
// ErrOutOfRange and ErrUnknownName both match ErrInvalidArgument.
//
// # Serialization
//
// Write and Read move single whitespace-delimited tokens through io streams.
// MarshalText, UnmarshalText and ScanState are one-line bodies for methods on
// your own types. Named[E] wraps a value so it encodes as its name in JSON,
// XML, YAML, MessagePack and BSON with no methods at all:
//
//	type Config struct {
//	    Color moniker.Named[Color] `json:"color" yaml:"color"`
//	}
//
// Codec implementations for each format live in subpackages. Audit checks a
// document type at startup for Named fields whose enum has no names.
//
// # Concurrency
//
// Tables are immutable. All functions are safe for concurrent use, and
// concurrent first access to a Namer type stores exactly one table.
//
// # Signals
//
// Declarations and conversion failures are emitted as capitan signals
// (SignalDeclared, SignalOutOfRange, SignalUnknownName,
// SignalSourceExhausted, SignalAuditFailed). Emission never alters a result.
package moniker
