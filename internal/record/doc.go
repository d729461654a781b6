// Package record implements the schema-driven, hierarchical record model
// that carries structured measurements through the pipeline.
//
// A Schema is an ordered, immutable table of Field descriptors declared once
// per record type. Each Container instance materializes its own values from
// the field defaults at construction time, so mutating one instance never
// leaks into another instance or into the schema itself. Fields hold one of
// a closed set of value kinds: a scalar cty.Value, a nested Container, or a
// Map (an insertion-ordered, lazily-populated indexed collection).
//
// A Container tree projects into a Dict, an order-preserving dictionary that
// can be produced recursively and optionally flattened into a single level
// with underscore-joined keys. The Dict shape and its key-naming rule are
// the compatibility contract consumed by table writers downstream.
package record
