package fspath

import (
	"fmt"
	"strings"
)

// Characters rejected per type. FileName additionally rejects the path
// separators and the Windows drive separator; Path and FilePath allow them.
const (
	fileNameIllegalCharacters = "\x00/\\:*?\"<>|"
	pathIllegalCharacters     = "\x00*?\"<>|"
	pathSeparators            = "/\\"
)

// FileName is a validated single path segment. It contains no separators,
// no reserved characters, and is never empty or a relative marker.
// Instances come from NewFileName or MustFileName.
type FileName string

// NewFileName validates raw and returns it as a FileName. It fails with
// *EmptyValueError on zero-length input and *InvalidCharacterError when a
// forbidden character is present or raw is "." or "..".
func NewFileName(raw string) (FileName, error) {
	const kind = "file name"
	if raw == "" {
		return "", &EmptyValueError{Kind: kind}
	}
	if raw == "." || raw == ".." {
		return "", &InvalidCharacterError{Kind: kind, Value: raw, Char: '.'}
	}
	if err := checkCharacters(kind, raw, fileNameIllegalCharacters); err != nil {
		return "", err
	}
	return FileName(raw), nil
}

// MustFileName is NewFileName for compile-time-known literals. It panics on
// invalid input.
func MustFileName(raw string) FileName {
	name, err := NewFileName(raw)
	if err != nil {
		panic(fmt.Sprintf("fspath: invalid file name literal: %v", err))
	}
	return name
}

// Append concatenates two validated names into a new one. Valid inputs
// always produce a valid result, so no error path exists.
func (n FileName) Append(suffix FileName) FileName {
	return n + suffix
}

func (n FileName) String() string {
	return string(n)
}

func (n FileName) MarshalText() ([]byte, error) {
	return []byte(n), nil
}

func (n *FileName) UnmarshalText(text []byte) error {
	name, err := NewFileName(string(text))
	if err != nil {
		return err
	}
	*n = name
	return nil
}

func checkCharacters(kind, raw, illegal string) error {
	for _, r := range raw {
		if strings.ContainsRune(illegal, r) {
			return &InvalidCharacterError{Kind: kind, Value: raw, Char: r}
		}
	}
	return nil
}
