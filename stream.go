package moniker

import (
	"fmt"
	"io"
	"reflect"
	"unicode"
)

// Write writes the name of e to w. No separator is added.
// A value without a name returns the *RangeError from ToString and writes nothing.
func Write[E Enum](w io.Writer, e E) error {
	s, err := ToString(e)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// Read consumes one whitespace-delimited token from r and converts it.
//
// If r cannot supply a token the result is a *SourceError (errors.Is
// ErrSourceExhausted). A token that is not a declared name is a *NameError.
// Readers that do not implement io.RuneScanner may lose the rune that
// follows the token.
func Read[E Enum](r io.Reader) (E, error) {
	var tok string
	if _, err := fmt.Fscan(r, &tok); err != nil {
		return 0, newSourceError(reflect.TypeFor[E](), err)
	}
	return FromString[E](tok)
}

// ScanState reads one token from state into e. It is the body of a
// fmt.Scanner implementation:
//
//	func (c *Color) Scan(state fmt.ScanState, _ rune) error {
//	    return moniker.ScanState(state, c)
//	}
func ScanState[E Enum](state fmt.ScanState, e *E) error {
	state.SkipSpace()
	tok, err := state.Token(false, notSpace)
	if err != nil {
		return newSourceError(reflect.TypeFor[E](), err)
	}
	if len(tok) == 0 {
		return newSourceError(reflect.TypeFor[E](), io.EOF)
	}
	v, err := FromString[E](string(tok))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

func notSpace(r rune) bool {
	return !unicode.IsSpace(r)
}
