package record

// Options controls schema validation strictness.
type Options struct {
	// AllowMissingDescription degrades an omitted field description to an
	// empty string instead of failing declaration with a SchemaError.
	AllowMissingDescription bool
}

// Schema is the named, ordered field table shared by every instance of a
// record type. It is written once at declaration time and read-only
// afterwards, which makes unsynchronized concurrent reads safe.
type Schema struct {
	name   string
	fields []*Field
	index  map[string]int
	opts   Options
}

// NewSchema declares a record type under strict validation: field names
// must be unique and non-empty, descriptions must be present, and
// record-kind fields must carry a factory.
func NewSchema(name string, fields ...*Field) (*Schema, error) {
	return NewSchemaWith(Options{}, name, fields...)
}

// NewSchemaWith declares a record type with explicit validation options.
func NewSchemaWith(opts Options, name string, fields ...*Field) (*Schema, error) {
	if name == "" {
		return nil, &SchemaError{Schema: name, Reason: "schema name must not be empty"}
	}
	s := &Schema{
		name:   name,
		fields: make([]*Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
		opts:   opts,
	}
	for _, f := range fields {
		if err := s.add(f); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MustSchema is NewSchema but panics on a declaration error. Intended for
// package-level schema variables where a malformed declaration is a
// programming error.
func MustSchema(name string, fields ...*Field) *Schema {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// add validates one field and registers it, shadowing an existing entry of
// the same name in place.
func (s *Schema) add(f *Field) error {
	if err := s.validate(f); err != nil {
		return err
	}
	if i, ok := s.index[f.name]; ok {
		// Stable override: a shadowed name keeps its original position.
		s.fields[i] = f
		return nil
	}
	s.index[f.name] = len(s.fields)
	s.fields = append(s.fields, f)
	return nil
}

func (s *Schema) validate(f *Field) error {
	if f == nil {
		return &SchemaError{Schema: s.name, Reason: "nil field declaration"}
	}
	if f.name == "" {
		return &SchemaError{Schema: s.name, Reason: "field name must not be empty"}
	}
	if f.description == "" && !s.opts.AllowMissingDescription {
		return &SchemaError{Schema: s.name, Field: f.name, Reason: "description is required"}
	}
	if f.kind == KindRecord && f.recordFactory == nil {
		return &SchemaError{Schema: s.name, Field: f.name, Reason: "record field requires a factory"}
	}
	return nil
}

// Extend composes a subtype schema: the receiver's fields come first in
// their original order, declarations for an existing name replace the
// inherited descriptor in place, and new names are appended. The receiver
// is not modified. Validation options are inherited.
func (s *Schema) Extend(name string, fields ...*Field) (*Schema, error) {
	if name == "" {
		return nil, &SchemaError{Schema: name, Reason: "schema name must not be empty"}
	}
	sub := &Schema{
		name:   name,
		fields: make([]*Field, len(s.fields)),
		index:  make(map[string]int, len(s.fields)+len(fields)),
		opts:   s.opts,
	}
	copy(sub.fields, s.fields)
	for n, i := range s.index {
		sub.index[n] = i
	}
	for _, f := range fields {
		if err := sub.add(f); err != nil {
			return nil, err
		}
	}
	return sub, nil
}

// Name returns the record type name.
func (s *Schema) Name() string { return s.name }

// Len returns the number of declared fields.
func (s *Schema) Len() int { return len(s.fields) }

// Fields returns the declared fields in declaration order. The returned
// slice is a copy; the descriptors themselves are shared and read-only.
func (s *Schema) Fields() []*Field {
	out := make([]*Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field looks up a descriptor by name.
func (s *Schema) Field(name string) (*Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.fields[i], true
}

// New materializes a fresh instance: every field's default is evaluated
// independently into instance storage. A default that cannot be copied
// fails the whole construction with a CopyError; no partially-populated
// container is ever returned.
func (s *Schema) New() (*Container, error) {
	values, err := s.materialize()
	if err != nil {
		return nil, err
	}
	return &Container{schema: s, values: values}, nil
}

// MustNew is New but panics on a materialization error. Intended for use
// inside record-field factories over schemas already known to materialize.
func (s *Schema) MustNew() *Container {
	c, err := s.New()
	if err != nil {
		panic(err)
	}
	return c
}

func (s *Schema) materialize() (map[string]Value, error) {
	values := make(map[string]Value, len(s.fields))
	for _, f := range s.fields {
		v, err := f.Default()
		if err != nil {
			return nil, err
		}
		values[f.name] = v
	}
	return values, nil
}
