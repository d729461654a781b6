package record

import "fmt"

// SchemaError reports a malformed schema declaration, such as a duplicate
// field name or a field missing required metadata under strict validation.
type SchemaError struct {
	Schema string
	Field  string
	Reason string
}

// Error implements the error interface for SchemaError.
func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("schema %q: %s", e.Schema, e.Reason)
	}
	return fmt.Sprintf("schema %q: field %q: %s", e.Schema, e.Field, e.Reason)
}

// UnknownFieldError reports a get or set of a field name that is not part
// of the container's schema. Field access is strict; there is no ad-hoc
// storage fallback.
type UnknownFieldError struct {
	Schema string
	Field  string
}

// Error implements the error interface for UnknownFieldError.
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("schema %q has no field %q", e.Schema, e.Field)
}

// KeyNotFoundError reports a Map lookup of an absent key on a map with no
// configured default factory.
type KeyNotFoundError struct {
	Key any
}

// Error implements the error interface for KeyNotFoundError.
func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %v not present and no default factory configured", e.Key)
}

// CopyError reports a field default that cannot be materialized as an
// independent per-instance value. It surfaces at construction or reset time,
// never as a silent fallback to a shared reference.
type CopyError struct {
	Field  string
	Reason string
}

// Error implements the error interface for CopyError.
func (e *CopyError) Error() string {
	return fmt.Sprintf("field %q: cannot produce independent default: %s", e.Field, e.Reason)
}
