package fspath

import "fmt"

// EmptyValueError is returned when a zero-length string is given to one of
// the constructors. Empty names and paths are never valid.
type EmptyValueError struct {
	Kind string
}

func (e *EmptyValueError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Kind)
}

// InvalidCharacterError is returned when an input contains a character the
// target type forbids. Char holds the first offending character; the input
// is never sanitized or truncated.
type InvalidCharacterError struct {
	Kind  string
	Value string
	Char  rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%s %q contains invalid character %q", e.Kind, e.Value, e.Char)
}
