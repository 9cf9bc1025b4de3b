package moniker

import (
	"fmt"
	"reflect"
)

// ToString returns the name declared for e.
//
// It fails with a *RangeError (errors.Is ErrOutOfRange) when e is negative,
// at or past the end of E's table, or when E has no names at all.
func ToString[E Enum](e E) (string, error) {
	t := TableOf[E]()
	i, ok := position(e, t.Len())
	if !ok {
		return "", newRangeError(reflect.TypeFor[E](), int64(e), t.Len())
	}
	name, _ := t.Name(i)
	return name, nil
}

// FromString returns the enumerator whose declared name equals s exactly.
// When names repeat, the lowest ordinal wins.
//
// It fails with a *NameError (errors.Is ErrUnknownName) when s is not in
// E's table, and with a *RangeError when the matching position cannot be
// represented by E.
func FromString[E Enum](s string) (E, error) {
	t := TableOf[E]()
	i, ok := t.Index(s)
	if !ok {
		return 0, newNameError(reflect.TypeFor[E](), s)
	}
	e, ok := fromPosition[E](i)
	if !ok {
		return 0, newRangeError(reflect.TypeFor[E](), int64(i), t.Len())
	}
	return e, nil
}

// MustToString is like ToString but panics on error.
func MustToString[E Enum](e E) string {
	s, err := ToString(e)
	if err != nil {
		panic(err)
	}
	return s
}

// MustFromString is like FromString but panics on error.
func MustFromString[E Enum](s string) E {
	e, err := FromString[E](s)
	if err != nil {
		panic(err)
	}
	return e
}

// Name is a helper for String methods. It returns the declared name, or
// Type(n) when e has none, so a bad value stays visible in fmt output.
//
//	func (c Color) String() string { return moniker.Name(c) }
//
// Use ToString where a missing name must be treated as an error.
func Name[E Enum](e E) string {
	t := TableOf[E]()
	if i, ok := position(e, t.Len()); ok {
		name, _ := t.Name(i)
		return name
	}
	return fmt.Sprintf("%s(%d)", reflect.TypeFor[E]().Name(), uint64OrInt64(e))
}

// IsValid reports whether e has a declared name.
func IsValid[E Enum](e E) bool {
	_, ok := position(e, TableOf[E]().Len())
	return ok
}

// Values returns every enumerator of E that has a name, in ordinal order.
func Values[E Enum]() []E {
	t := TableOf[E]()
	out := make([]E, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		e, ok := fromPosition[E](i)
		if !ok {
			break
		}
		out = append(out, e)
	}
	return out
}

// uint64OrInt64 keeps large unsigned values readable in diagnostics.
func uint64OrInt64[E Enum](e E) any {
	if e < 0 {
		return int64(e)
	}
	return uint64(e)
}
