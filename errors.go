package moniker

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidArgument is the parent of every conversion failure.
	// Both ErrOutOfRange and ErrUnknownName match it with errors.Is.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange indicates an enum value has no entry in its name table.
	ErrOutOfRange = fmt.Errorf("%w: ordinal out of range", ErrInvalidArgument)

	// ErrUnknownName indicates a string matches no entry in the name table.
	ErrUnknownName = fmt.Errorf("%w: unknown name", ErrInvalidArgument)

	// ErrSourceExhausted indicates an input source could not supply a token.
	ErrSourceExhausted = errors.New("source exhausted")

	// ErrConflictingDeclaration indicates a type was declared twice with different names.
	ErrConflictingDeclaration = errors.New("conflicting declaration")

	// ErrCountMismatch indicates the number of names differs from the enumerator count.
	ErrCountMismatch = errors.New("name count mismatch")

	// ErrUndeclared indicates an enum type used in a document has no names.
	ErrUndeclared = errors.New("no names declared")

	// ErrNotStruct indicates Audit was asked to scan a non-struct type.
	ErrNotStruct = errors.New("not a struct type")

	// ErrMarshal indicates a codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrUnmarshal indicates a codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")
)

// RangeError reports an ordinal with no corresponding name.
type RangeError struct {
	Type  reflect.Type // Enum type being converted
	Index int64        // Offending ordinal
	Len   int          // Length of the name table
}

func (e *RangeError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("%s: %s ordinal %d (no names declared)", ErrOutOfRange, typeName(e.Type), e.Index)
	}
	return fmt.Sprintf("%s: %s ordinal %d not in [0, %d]", ErrOutOfRange, typeName(e.Type), e.Index, e.Len-1)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// NameError reports a string that matches no declared name.
type NameError struct {
	Type reflect.Type // Enum type being parsed
	Name string       // Rejected input
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%s %q for %s", ErrUnknownName, e.Name, typeName(e.Type))
}

func (e *NameError) Unwrap() error {
	return ErrUnknownName
}

// SourceError reports a read that could not produce a token.
type SourceError struct {
	Type  reflect.Type // Enum type being read
	Cause error        // Error from the underlying reader, if any
}

func (e *SourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s reading %s: %v", ErrSourceExhausted, typeName(e.Type), e.Cause)
	}
	return fmt.Sprintf("%s reading %s", ErrSourceExhausted, typeName(e.Type))
}

func (e *SourceError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrSourceExhausted, e.Cause}
	}
	return []error{ErrSourceExhausted}
}

// DeclarationError reports an invalid association declaration.
type DeclarationError struct {
	Err      error        // Underlying sentinel error (ErrConflictingDeclaration, ErrCountMismatch)
	Type     reflect.Type // Enum type being declared
	Want     int          // Expected name count (ErrCountMismatch only)
	Got      int          // Supplied name count
	Existing Table        // Previously declared table (ErrConflictingDeclaration only)
}

func (e *DeclarationError) Error() string {
	if errors.Is(e.Err, ErrCountMismatch) {
		return fmt.Sprintf("%s for %s: want %d names, got %d", e.Err, typeName(e.Type), e.Want, e.Got)
	}
	return fmt.Sprintf("%s for %s (already declared as %s)", e.Err, typeName(e.Type), e.Existing)
}

func (e *DeclarationError) Unwrap() error {
	return e.Err
}

// AuditError reports a document field whose enum type cannot be converted.
type AuditError struct {
	Err   error        // Underlying sentinel error (ErrUndeclared, ErrNotStruct)
	Type  reflect.Type // Enum type of the field, or the scanned type for ErrNotStruct
	Field string       // Dotted field path
}

func (e *AuditError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s for %s (field %s)", e.Err, typeName(e.Type), e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Err, typeName(e.Type))
}

func (e *AuditError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
// Both the sentinel and the cause are reachable through errors.Is.
type CodecError struct {
	Err         error  // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	ContentType string // Codec content type
	Cause       error  // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Err, e.ContentType, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Err, e.ContentType)
}

func (e *CodecError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// NewCodecError wraps a codec failure. It returns nil when cause is nil so
// codec implementations can wrap their return value directly.
func NewCodecError(sentinel error, contentType string, cause error) error {
	if cause == nil {
		return nil
	}
	return &CodecError{
		Err:         sentinel,
		ContentType: contentType,
		Cause:       cause,
	}
}

// newRangeError creates a RangeError and emits the matching signal.
func newRangeError(typ reflect.Type, index int64, length int) error {
	err := &RangeError{Type: typ, Index: index, Len: length}
	emitOutOfRange(typ, index, length, err)
	return err
}

// newNameError creates a NameError and emits the matching signal.
func newNameError(typ reflect.Type, name string) error {
	err := &NameError{Type: typ, Name: name}
	emitUnknownName(typ, name, err)
	return err
}

// newSourceError creates a SourceError and emits the matching signal.
func newSourceError(typ reflect.Type, cause error) error {
	err := &SourceError{Type: typ, Cause: cause}
	emitSourceExhausted(typ, err)
	return err
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
