package manifest

import (
	"context"

	"github.com/vk/gridrec/internal/ctxlog"
	"github.com/vk/gridrec/internal/record"
	"github.com/vk/gridrec/internal/registry"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Loader builds record schemas from manifest files.
type Loader struct{}

// NewLoader creates a manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadFiles decodes every given manifest file and builds all declared
// record types into a validated registry. Cross-file references resolve
// regardless of file order.
func (l *Loader) LoadFiles(ctx context.Context, paths []string) (*registry.Registry, error) {
	logger := ctxlog.FromContext(ctx)

	b := &builder{
		blocks: make(map[string]*RecordBlock),
		built:  make(map[string]*record.Schema),
	}
	for _, path := range paths {
		config, err := DecodeManifestFile(ctx, path)
		if err != nil {
			return nil, err
		}
		for _, block := range config.Records {
			if _, ok := b.blocks[block.Name]; ok {
				return nil, &record.SchemaError{Schema: block.Name, Reason: "type declared more than once"}
			}
			b.blocks[block.Name] = block
			b.order = append(b.order, block.Name)
		}
	}
	logger.Debug("Manifest decoding complete.", "types_found", len(b.order))

	reg := registry.New()
	for _, name := range b.order {
		schema, err := b.build(name)
		if err != nil {
			return nil, err
		}
		if err := reg.Register(schema); err != nil {
			return nil, err
		}
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	logger.Info("Record types loaded.", "count", reg.Len())
	return reg, nil
}

// builder resolves record blocks into schemas, memoizing results and
// detecting reference cycles.
type builder struct {
	blocks   map[string]*RecordBlock
	order    []string
	built    map[string]*record.Schema
	building map[string]bool
}

func (b *builder) build(name string) (*record.Schema, error) {
	if s, ok := b.built[name]; ok {
		return s, nil
	}
	block, ok := b.blocks[name]
	if !ok {
		return nil, &record.SchemaError{Schema: name, Reason: "reference to undeclared type"}
	}
	if b.building == nil {
		b.building = make(map[string]bool)
	}
	if b.building[name] {
		return nil, &record.SchemaError{Schema: name, Reason: "reference cycle through extends or record_field"}
	}
	b.building[name] = true
	defer delete(b.building, name)

	fields, err := b.buildFields(block)
	if err != nil {
		return nil, err
	}

	var schema *record.Schema
	if block.Extends != "" {
		base, err := b.build(block.Extends)
		if err != nil {
			return nil, err
		}
		schema, err = base.Extend(block.Name, fields...)
		if err != nil {
			return nil, err
		}
	} else {
		schema, err = record.NewSchema(block.Name, fields...)
		if err != nil {
			return nil, err
		}
	}

	b.built[name] = schema
	return schema, nil
}

func (b *builder) buildFields(block *RecordBlock) ([]*record.Field, error) {
	var fields []*record.Field

	for _, fb := range block.Fields {
		f, err := buildScalarField(block.Name, fb)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	for _, rb := range block.RecordFields {
		elem, err := b.build(rb.Of)
		if err != nil {
			return nil, err
		}
		fields = append(fields, record.NewRecordField(rb.Name, elem.MustNew, rb.Description))
	}

	for _, mb := range block.Maps {
		// Map elements resolve lazily, so a record may hold a map of
		// its own type. The referenced name must still be declared.
		if _, ok := b.blocks[mb.Of]; !ok {
			return nil, &record.SchemaError{Schema: block.Name, Field: mb.Name, Reason: "map references undeclared type " + mb.Of}
		}
		of := mb.Of
		elem := func() record.Value {
			return record.RecordValue(b.built[of].MustNew())
		}
		fields = append(fields, record.NewMapField(mb.Name, elem, mb.Description))
	}

	return fields, nil
}

func buildScalarField(schemaName string, fb *FieldBlock) (*record.Field, error) {
	ty, err := typeExprToCtyType(fb.Type)
	if err != nil {
		return nil, &record.SchemaError{Schema: schemaName, Field: fb.Name, Reason: "invalid type expression: " + err.Error()}
	}

	def := cty.NullVal(ty)
	if fb.Default != nil {
		def, err = convert.Convert(*fb.Default, ty)
		if err != nil {
			return nil, &record.SchemaError{Schema: schemaName, Field: fb.Name, Reason: "default does not fit declared type: " + err.Error()}
		}
	}

	f := record.NewField(fb.Name, def, fb.Description)
	if fb.Unit != "" {
		f = f.WithUnit(fb.Unit)
	}
	return f, nil
}
