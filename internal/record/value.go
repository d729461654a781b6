package record

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Kind identifies which member of the closed value set a field holds. The
// kind is fixed per field at schema declaration time, so projection logic
// dispatches on a known finite set instead of inspecting runtime types.
type Kind int

const (
	// KindScalar is a plain cty.Value: a primitive, a collection of
	// primitives, or a capsule wrapping an opaque payload such as a
	// sample array.
	KindScalar Kind = iota
	// KindRecord is a nested Container owned exclusively by its parent.
	KindRecord
	// KindMap is an indexed collection of sub-values keyed by an
	// arbitrary comparable identifier.
	KindMap
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindRecord:
		return "record"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is the tagged union stored in container and map slots. Exactly one
// member is populated, matching Kind().
type Value struct {
	kind   Kind
	scalar cty.Value
	record *Container
	coll   *Map
}

// ScalarValue wraps a cty.Value as a field value.
func ScalarValue(v cty.Value) Value {
	return Value{kind: KindScalar, scalar: v}
}

// RecordValue wraps a nested container as a field value.
func RecordValue(c *Container) Value {
	return Value{kind: KindRecord, record: c}
}

// MapValue wraps an indexed collection as a field value.
func MapValue(m *Map) Value {
	return Value{kind: KindMap, coll: m}
}

// Kind reports which member of the union is populated.
func (v Value) Kind() Kind { return v.kind }

// AsScalar returns the scalar member. It is cty.NilVal for non-scalar kinds.
func (v Value) AsScalar() cty.Value { return v.scalar }

// AsRecord returns the nested container member, or nil for other kinds.
func (v Value) AsRecord() *Container { return v.record }

// AsMap returns the indexed collection member, or nil for other kinds.
func (v Value) AsMap() *Map { return v.coll }

// IsNull reports whether the value is a null scalar. Null scalars are still
// projected under their key; absence of a value is represented, not omitted.
func (v Value) IsNull() bool {
	return v.kind == KindScalar && v.scalar.IsNull()
}

// raw unwraps the union into the bare representation used by non-recursive
// projections: the cty.Value itself, the live *Container, or the live *Map.
func (v Value) raw() any {
	switch v.kind {
	case KindRecord:
		return v.record
	case KindMap:
		return v.coll
	default:
		return v.scalar
	}
}

// hasCapsule reports whether v contains a capsule-typed value anywhere in
// its structure. Capsules wrap live Go pointers, so they are the one scalar
// shape with no defined copy semantics.
func hasCapsule(v cty.Value) bool {
	if v.Type() == cty.NilType {
		return false
	}
	found := false
	_ = cty.Walk(v, func(_ cty.Path, inner cty.Value) (bool, error) {
		if inner.Type().IsCapsuleType() {
			found = true
			return false, nil
		}
		return true, nil
	})
	return found
}
