package moniker

// MarshalText returns the name of e as bytes. It is the body of an
// encoding.TextMarshaler implementation:
//
//	func (c Color) MarshalText() ([]byte, error) { return moniker.MarshalText(c) }
func MarshalText[E Enum](e E) ([]byte, error) {
	s, err := ToString(e)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText parses text into e. e is left unchanged on error.
//
//	func (c *Color) UnmarshalText(b []byte) error { return moniker.UnmarshalText(b, c) }
func UnmarshalText[E Enum](text []byte, e *E) error {
	v, err := FromString[E](string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
