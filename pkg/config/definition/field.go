package definition

import (
	"reflect"
	"sort"
)

// FieldDef defines a configuration field with its metadata
type FieldDef struct {
	Path    string       // Config path like "global.prefix"
	Default any          // Default value, already carrying the field's type
	Type    reflect.Type // Field type for validation
	Help    string       // Operator-facing description
}

// Registry holds all configuration field definitions
type Registry struct {
	fields map[string]FieldDef
}

// NewRegistry creates a new field registry
func NewRegistry() *Registry {
	return &Registry{
		fields: make(map[string]FieldDef),
	}
}

// Register adds a field definition to the registry
func (r *Registry) Register(field *FieldDef) {
	r.fields[field.Path] = *field
}

// GetField returns a field definition by path
func (r *Registry) GetField(path string) (FieldDef, bool) {
	field, exists := r.fields[path]
	return field, exists
}

// GetDefault returns the default value for a field path
func (r *Registry) GetDefault(path string) any {
	if field, exists := r.fields[path]; exists {
		return field.Default
	}
	return nil
}

// GetAllFields returns all registered fields
func (r *Registry) GetAllFields() map[string]FieldDef {
	result := make(map[string]FieldDef)
	for k, v := range r.fields {
		result[k] = v
	}
	return result
}

// Paths returns every registered field path in sorted order. This is the
// stable key vocabulary external loaders address fields by.
func (r *Registry) Paths() []string {
	paths := make([]string, 0, len(r.fields))
	for path := range r.fields {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
