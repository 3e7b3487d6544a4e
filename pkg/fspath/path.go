package fspath

import (
	"fmt"
	"strings"
)

// Path is a validated directory path. It may be relative or absolute,
// multi-segment, and may carry a trailing separator. Instances come from
// NewPath or MustPath.
type Path string

// NewPath validates raw and returns it as a Path. It fails with
// *EmptyValueError on zero-length input and *InvalidCharacterError when a
// forbidden character is present.
func NewPath(raw string) (Path, error) {
	const kind = "path"
	if raw == "" {
		return "", &EmptyValueError{Kind: kind}
	}
	if err := checkCharacters(kind, raw, pathIllegalCharacters); err != nil {
		return "", err
	}
	return Path(raw), nil
}

// MustPath is NewPath for compile-time-known literals. It panics on invalid
// input.
func MustPath(raw string) Path {
	path, err := NewPath(raw)
	if err != nil {
		panic(fmt.Sprintf("fspath: invalid path literal: %v", err))
	}
	return path
}

func (p Path) String() string {
	return string(p)
}

func (p Path) MarshalText() ([]byte, error) {
	return []byte(p), nil
}

func (p *Path) UnmarshalText(text []byte) error {
	path, err := NewPath(string(text))
	if err != nil {
		return err
	}
	*p = path
	return nil
}

// FilePath is a validated path naming a file: Path rules plus a final
// segment that is a valid FileName, so it never ends in a separator.
type FilePath string

// NewFilePath validates raw and returns it as a FilePath.
func NewFilePath(raw string) (FilePath, error) {
	const kind = "file path"
	if raw == "" {
		return "", &EmptyValueError{Kind: kind}
	}
	if err := checkCharacters(kind, raw, pathIllegalCharacters); err != nil {
		return "", err
	}
	name := raw[strings.LastIndexAny(raw, pathSeparators)+1:]
	switch {
	case name == "":
		return "", &InvalidCharacterError{Kind: kind, Value: raw, Char: rune(raw[len(raw)-1])}
	case name == "." || name == "..":
		return "", &InvalidCharacterError{Kind: kind, Value: raw, Char: '.'}
	case strings.ContainsRune(name, ':'):
		return "", &InvalidCharacterError{Kind: kind, Value: raw, Char: ':'}
	}
	return FilePath(raw), nil
}

// MustFilePath is NewFilePath for compile-time-known literals. It panics on
// invalid input.
func MustFilePath(raw string) FilePath {
	path, err := NewFilePath(raw)
	if err != nil {
		panic(fmt.Sprintf("fspath: invalid file path literal: %v", err))
	}
	return path
}

func (p FilePath) String() string {
	return string(p)
}

func (p FilePath) MarshalText() ([]byte, error) {
	return []byte(p), nil
}

func (p *FilePath) UnmarshalText(text []byte) error {
	path, err := NewFilePath(string(text))
	if err != nil {
		return err
	}
	*p = path
	return nil
}

// JoinFilePath places a validated file name under a validated directory.
// Valid inputs always produce a valid result, so no error path exists.
func JoinFilePath(dir Path, name FileName) FilePath {
	d := string(dir)
	if strings.HasSuffix(d, "/") || strings.HasSuffix(d, "\\") {
		return FilePath(d + string(name))
	}
	return FilePath(d + "/" + string(name))
}
