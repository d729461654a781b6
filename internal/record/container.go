package record

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Container is one materialized instance of a record type. It owns its
// values exclusively: nested containers and maps reachable from it belong
// to it alone, so mutation never crosses instance boundaries.
//
// A Container has no built-in synchronization; concurrent mutation of the
// same instance is the caller's responsibility.
type Container struct {
	schema *Schema
	values map[string]Value
}

// Schema returns the shared, read-only schema this instance was built from.
func (c *Container) Schema() *Schema { return c.schema }

// Get returns the current value of the named field. Unknown names fail
// with UnknownFieldError.
func (c *Container) Get(name string) (Value, error) {
	v, ok := c.values[name]
	if !ok {
		return Value{}, &UnknownFieldError{Schema: c.schema.name, Field: name}
	}
	return v, nil
}

// Set assigns a value to the named field. The value's kind must match the
// field's declared kind; unknown names fail with UnknownFieldError.
func (c *Container) Set(name string, v Value) error {
	f, ok := c.schema.Field(name)
	if !ok {
		return &UnknownFieldError{Schema: c.schema.name, Field: name}
	}
	if v.kind != f.kind {
		return fmt.Errorf("schema %q: field %q holds a %s, cannot assign a %s",
			c.schema.name, name, f.kind, v.kind)
	}
	c.values[name] = v
	return nil
}

// Scalar returns the named field's scalar value. It fails if the field is
// not scalar-kind.
func (c *Container) Scalar(name string) (cty.Value, error) {
	v, err := c.Get(name)
	if err != nil {
		return cty.NilVal, err
	}
	if v.kind != KindScalar {
		return cty.NilVal, fmt.Errorf("schema %q: field %q is a %s, not a scalar",
			c.schema.name, name, v.kind)
	}
	return v.scalar, nil
}

// SetScalar assigns a scalar value to the named field.
func (c *Container) SetScalar(name string, v cty.Value) error {
	return c.Set(name, ScalarValue(v))
}

// Record returns the nested container stored in the named field. It fails
// if the field is not record-kind.
func (c *Container) Record(name string) (*Container, error) {
	v, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	if v.kind != KindRecord {
		return nil, fmt.Errorf("schema %q: field %q is a %s, not a record",
			c.schema.name, name, v.kind)
	}
	return v.record, nil
}

// Map returns the indexed collection stored in the named field. It fails
// if the field is not map-kind.
func (c *Container) Map(name string) (*Map, error) {
	v, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	if v.kind != KindMap {
		return nil, fmt.Errorf("schema %q: field %q is a %s, not a map",
			c.schema.name, name, v.kind)
	}
	return v.coll, nil
}

// Reset restores every field, including nested containers and maps, to a
// fresh default. The instance identity and schema are unchanged. On error
// the previous values are kept intact; the swap happens only after every
// default materialized.
func (c *Container) Reset() error {
	values, err := c.schema.materialize()
	if err != nil {
		return err
	}
	c.values = values
	return nil
}

// String renders a human-readable field listing for interactive
// introspection. It is not a serialization format.
func (c *Container) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", c.schema.name)
	for _, f := range c.schema.fields {
		switch f.kind {
		case KindRecord:
			label := "record"
			if v, ok := c.values[f.name]; ok && v.record != nil {
				label = "record of " + v.record.schema.name
			}
			fmt.Fprintf(&b, "  %s: %s (%s)\n", f.name, label, f.description)
		case KindMap:
			fmt.Fprintf(&b, "  %s: map of key to %s (%s)\n", f.name, f.elemLabel(), f.description)
		default:
			if f.unit != "" {
				fmt.Fprintf(&b, "  %s: %s [%s]\n", f.name, f.description, f.unit)
			} else {
				fmt.Fprintf(&b, "  %s: %s\n", f.name, f.description)
			}
		}
	}
	return b.String()
}

// elemLabel names the element type of a map field for introspection,
// probing the element factory with one throwaway value.
func (f *Field) elemLabel() string {
	if f.elemFactory == nil {
		return "value"
	}
	probe := f.elemFactory()
	switch probe.kind {
	case KindRecord:
		if probe.record != nil {
			return probe.record.schema.name
		}
		return "record"
	case KindMap:
		return "map"
	default:
		return "scalar"
	}
}
