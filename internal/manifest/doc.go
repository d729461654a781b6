// Package manifest loads record type declarations from HCL manifest files
// and builds them into registered schemas.
//
// A manifest declares one or more `record` blocks. Scalar fields carry a
// type expression, a description, an optional unit, and an optional default;
// `record_field` and `map` blocks reference other record types by name via
// `of`, and `extends` composes a base type. References resolve across files
// in any order; unresolved names and record_field cycles fail the load.
//
// Within one record block the effective declaration order is: inherited
// fields first, then `field` blocks, then `record_field` blocks, then `map`
// blocks, each group in written order.
package manifest
