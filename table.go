package moniker

import "strings"

// Table is an immutable, ordered list of enumerator names.
// The name at position i belongs to the enumerator whose ordinal is i.
// The zero value is the empty table.
type Table struct {
	names []string
}

// NewTable builds a table holding a copy of names, in order.
// An empty argument list yields the empty table.
func NewTable(names ...string) Table {
	if len(names) == 0 {
		return Table{}
	}
	owned := make([]string, len(names))
	copy(owned, names)
	return Table{names: owned}
}

// Len returns the number of names in the table.
func (t Table) Len() int {
	return len(t.names)
}

// Name returns the name stored at ordinal i.
func (t Table) Name(i int) (string, bool) {
	if i < 0 || i >= len(t.names) {
		return "", false
	}
	return t.names[i], true
}

// Index returns the ordinal of the first entry equal to name.
func (t Table) Index(name string) (int, bool) {
	for i, n := range t.names {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

// Names returns a copy of the table contents.
func (t Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Equal reports whether both tables hold the same names in the same order.
func (t Table) Equal(other Table) bool {
	if len(t.names) != len(other.names) {
		return false
	}
	for i := range t.names {
		if t.names[i] != other.names[i] {
			return false
		}
	}
	return true
}

// String renders the table as [a b c] for diagnostics.
func (t Table) String() string {
	return "[" + strings.Join(t.names, " ") + "]"
}
