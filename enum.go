package moniker

// Enum is satisfied by any defined integer type. Enumerators are expected to
// take the default iota values 0..n-1; custom or sparse values are not supported.
type Enum interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Namer lets an enum type carry its own names instead of calling Declare.
// EnumNames is called once, on the zero value, the first time the type's
// table is needed. The returned slice is copied.
//
//	type Level int
//
//	func (Level) EnumNames() []string { return []string{"debug", "info", "warn"} }
type Namer interface {
	EnumNames() []string
}

// position maps e to its table index when e is inside [0, n).
func position[E Enum](e E, n int) (int, bool) {
	if e < 0 {
		return 0, false
	}
	u := uint64(e)
	if u >= uint64(n) {
		return 0, false
	}
	return int(u), true
}

// fromPosition is the checked inverse of position: it fails when i does not
// survive the round trip through E.
func fromPosition[E Enum](i int) (E, bool) {
	if i < 0 {
		return 0, false
	}
	e := E(i)
	if e < 0 || uint64(e) != uint64(i) {
		return 0, false
	}
	return e, true
}
