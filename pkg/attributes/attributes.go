// Package attributes models the key/value metadata attached to a service's
// static configuration. A creator defines attributes through a Specifier;
// an opener states its requirements through a Verifier and checks them
// against the attributes the service actually carries.
package attributes

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Attribute is a single key/value pair. Keys may repeat within a Set.
type Attribute struct {
	Key   string
	Value string
}

func compareAttributes(a, b Attribute) int {
	if c := cmp.Compare(a.Key, b.Key); c != 0 {
		return c
	}
	return cmp.Compare(a.Value, b.Value)
}

// Set is an ordered collection of attributes, sorted by key then value.
// Sets are built through a Specifier or Verifier; the zero value is empty.
type Set struct {
	attrs []Attribute
}

func (s *Set) add(attr Attribute) {
	i, _ := slices.BinarySearchFunc(s.attrs, attr, compareAttributes)
	s.attrs = slices.Insert(s.attrs, i, attr)
}

// Len returns the number of attributes in the set.
func (s Set) Len() int {
	return len(s.attrs)
}

// At returns the attribute at position i in sorted order.
func (s Set) At(i int) Attribute {
	return s.attrs[i]
}

// All returns a copy of every attribute in sorted order.
func (s Set) All() []Attribute {
	return slices.Clone(s.attrs)
}

// KeyValues returns every value stored under key, in sorted order.
func (s Set) KeyValues(key string) []string {
	var values []string
	for _, attr := range s.attrs {
		if attr.Key == key {
			values = append(values, attr.Value)
		}
	}
	return values
}

// HasKey reports whether at least one attribute uses key.
func (s Set) HasKey(key string) bool {
	return slices.ContainsFunc(s.attrs, func(attr Attribute) bool {
		return attr.Key == key
	})
}

// HasKeyValue reports whether the exact key/value pair is present.
func (s Set) HasKeyValue(key, value string) bool {
	_, found := slices.BinarySearchFunc(s.attrs, Attribute{Key: key, Value: value}, compareAttributes)
	return found
}

func (s Set) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, attr := range s.attrs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s = %s", attr.Key, attr.Value)
	}
	b.WriteString("]")
	return b.String()
}

// Specifier collects the attributes a service is created with.
type Specifier struct {
	attrs Set
}

func NewSpecifier() *Specifier {
	return &Specifier{}
}

// Define adds a key/value pair and returns the specifier for chaining.
func (s *Specifier) Define(key, value string) *Specifier {
	s.attrs.add(Attribute{Key: key, Value: value})
	return s
}

// Attributes returns a copy of the defined set.
func (s *Specifier) Attributes() Set {
	return Set{attrs: slices.Clone(s.attrs.attrs)}
}

// Verifier collects the attributes an opener requires from an existing
// service.
type Verifier struct {
	required     Set
	requiredKeys []string
}

func NewVerifier() *Verifier {
	return &Verifier{}
}

// Require demands that the exact key/value pair is present.
func (v *Verifier) Require(key, value string) *Verifier {
	v.required.add(Attribute{Key: key, Value: value})
	return v
}

// RequireKey demands that key is present, regardless of its values.
func (v *Verifier) RequireKey(key string) *Verifier {
	v.requiredKeys = append(v.requiredKeys, key)
	return v
}

// RequiredAttributes returns a copy of the required key/value pairs.
func (v *Verifier) RequiredAttributes() Set {
	return Set{attrs: slices.Clone(v.required.attrs)}
}

// RequiredKeys returns a copy of the keys required independent of value.
func (v *Verifier) RequiredKeys() []string {
	return slices.Clone(v.requiredKeys)
}

// Verify checks the requirements against attrs and returns an
// *IncompatibleAttributeError describing the first unmet one.
func (v *Verifier) Verify(attrs Set) error {
	for _, required := range v.required.attrs {
		if !attrs.HasKeyValue(required.Key, required.Value) {
			return &IncompatibleAttributeError{
				Key:          required.Key,
				Value:        required.Value,
				RequireValue: true,
			}
		}
	}
	for _, key := range v.requiredKeys {
		if !attrs.HasKey(key) {
			return &IncompatibleAttributeError{Key: key}
		}
	}
	return nil
}

// IncompatibleAttributeError reports the first requirement a service's
// attribute set failed to satisfy.
type IncompatibleAttributeError struct {
	Key          string
	Value        string
	RequireValue bool
}

func (e *IncompatibleAttributeError) Error() string {
	if e.RequireValue {
		return fmt.Sprintf("missing required attribute %q = %q", e.Key, e.Value)
	}
	return fmt.Sprintf("missing required key %q", e.Key)
}
