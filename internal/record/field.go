package record

import "github.com/zclconf/go-cty/cty"

// Field is the type-level declaration of one named slot: its default, its
// documentation, and an optional unit tag. Fields are shared, read-only
// state; all per-instance storage lives in the owning Container.
type Field struct {
	name        string
	description string
	unit        string
	kind        Kind

	// Exactly one of the following is set, matching kind.
	def           cty.Value
	scalarFactory func() cty.Value
	recordFactory func() *Container
	elemFactory   func() Value
}

// NewField declares a scalar field with a fixed default value. cty values
// are immutable, so the default can be handed to every instance directly;
// the one exception is a capsule-typed default, which wraps a live Go
// pointer and is rejected with a CopyError at materialization time. Declare
// capsule defaults with NewFieldFunc instead.
func NewField(name string, def cty.Value, description string) *Field {
	return &Field{name: name, kind: KindScalar, def: def, description: description}
}

// NewFieldFunc declares a scalar field whose default is produced by a
// zero-argument factory, invoked once per owning instance. Use this for
// defaults that must be distinct per instance, such as capsule values.
func NewFieldFunc(name string, factory func() cty.Value, description string) *Field {
	return &Field{name: name, kind: KindScalar, scalarFactory: factory, description: description}
}

// NewRecordField declares a nested-record field. The factory builds a fresh
// sub-container per owning instance, so instances never share nested state.
func NewRecordField(name string, factory func() *Container, description string) *Field {
	return &Field{name: name, kind: KindRecord, recordFactory: factory, description: description}
}

// NewMapField declares an indexed-collection field. Each owning instance
// gets a fresh empty Map configured with elem as its lazy default factory.
// A nil elem yields a plain map whose absent-key lookups fail with
// KeyNotFoundError.
func NewMapField(name string, elem func() Value, description string) *Field {
	return &Field{name: name, kind: KindMap, elemFactory: elem, description: description}
}

// WithUnit attaches a physical unit tag to the field and returns the field
// for declaration chaining. The unit is informational only; it is never
// enforced in computation.
func (f *Field) WithUnit(unit string) *Field {
	f.unit = unit
	return f
}

// Name returns the slot name the field is bound to.
func (f *Field) Name() string { return f.name }

// Description returns the field's documentation string.
func (f *Field) Description() string { return f.description }

// Unit returns the field's unit tag, or "" if none was declared.
func (f *Field) Unit() string { return f.unit }

// Kind returns the field's value kind, fixed at declaration time.
func (f *Field) Kind() Kind { return f.kind }

// Default materializes a fresh, independent value for one instance slot.
// Every call returns a value that no other instance aliases.
func (f *Field) Default() (Value, error) {
	switch f.kind {
	case KindRecord:
		sub := f.recordFactory()
		if sub == nil {
			return Value{}, &CopyError{Field: f.name, Reason: "record factory returned nil"}
		}
		return RecordValue(sub), nil
	case KindMap:
		return MapValue(NewMap(f.elemFactory)), nil
	default:
		if f.scalarFactory != nil {
			return ScalarValue(f.scalarFactory()), nil
		}
		if hasCapsule(f.def) {
			return Value{}, &CopyError{Field: f.name, Reason: "capsule default has no copy semantics, declare it with NewFieldFunc"}
		}
		return ScalarValue(f.def), nil
	}
}
