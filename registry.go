package moniker

import (
	"reflect"
	"sort"
	"sync"
)

var (
	registry   = make(map[reflect.Type]Table)
	registryMu sync.RWMutex
)

// Entry is a single association in a Declared snapshot.
type Entry struct {
	Type  reflect.Type
	Table Table
}

// Declare associates names with the enumerators of E, in ordinal order, and
// returns the stored table. It is meant to sit beside the type declaration:
//
//	type Color int
//
//	const (
//	    Red Color = iota
//	    Green
//	)
//
//	var _ = moniker.Declare[Color]("red", "green")
//
// Package initialization runs the declaration before any importer can convert
// a Color. Repeating an identical declaration is a no-op. Declaring E again
// with different names panics with a *DeclarationError.
func Declare[E Enum](names ...string) Table {
	t, err := Register[E](names...)
	if err != nil {
		panic(err)
	}
	return t
}

// Register is the error-returning form of Declare.
func Register[E Enum](names ...string) (Table, error) {
	return register(reflect.TypeFor[E](), NewTable(names...))
}

// DeclareCount is Declare with an enumerator count check. end is the value
// one past the last named enumerator, conventionally a trailing END constant:
//
//	const (
//	    A Weak = iota
//	    B
//	    END
//	)
//
//	var _ = moniker.DeclareCount(END, "a", "b")
//
// It panics with a *DeclarationError wrapping ErrCountMismatch when
// len(names) differs from int(end).
func DeclareCount[E Enum](end E, names ...string) Table {
	t, err := RegisterCount(end, names...)
	if err != nil {
		panic(err)
	}
	return t
}

// RegisterCount is the error-returning form of DeclareCount.
func RegisterCount[E Enum](end E, names ...string) (Table, error) {
	typ := reflect.TypeFor[E]()
	if n, ok := position(end, len(names)+1); !ok || n != len(names) {
		return Table{}, &DeclarationError{
			Err:  ErrCountMismatch,
			Type: typ,
			Want: int(end),
			Got:  len(names),
		}
	}
	return register(typ, NewTable(names...))
}

// TableOf returns the names associated with E. Declared tables win; otherwise
// a Namer implementation on E is consulted once and cached. Types with
// neither get the empty table, so every conversion on them fails.
func TableOf[E Enum]() Table {
	typ := reflect.TypeFor[E]()

	// Fast path: read-lock lookup
	registryMu.RLock()
	if t, ok := registry[typ]; ok {
		registryMu.RUnlock()
		return t
	}
	registryMu.RUnlock()

	var zero E
	namer, ok := any(zero).(Namer)
	if !ok {
		return Table{}
	}

	// Names are built outside the lock; register keeps whichever table was
	// stored first so every caller observes the same one.
	t, _ := register(typ, NewTable(namer.EnumNames()...))
	return t
}

// Declared returns a snapshot of every association, sorted by type name.
func Declared() []Entry {
	registryMu.RLock()
	entries := make([]Entry, 0, len(registry))
	for typ, t := range registry {
		entries = append(entries, Entry{Type: typ, Table: t})
	}
	registryMu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Type.String() < entries[j].Type.String()
	})
	return entries
}

// register stores t for typ unless a table is already present.
func register(typ reflect.Type, t Table) (Table, error) {
	registryMu.Lock()
	if existing, ok := registry[typ]; ok {
		registryMu.Unlock()
		if existing.Equal(t) {
			return existing, nil
		}
		return existing, &DeclarationError{
			Err:      ErrConflictingDeclaration,
			Type:     typ,
			Got:      t.Len(),
			Existing: existing,
		}
	}
	registry[typ] = t
	registryMu.Unlock()

	emitDeclared(typ, t.Len())
	return t, nil
}
