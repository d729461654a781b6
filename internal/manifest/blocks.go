package manifest

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// FieldBlock declares one scalar field of a record type.
type FieldBlock struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Description string         `hcl:"description,optional"`
	Unit        string         `hcl:"unit,optional"`
	Default     *cty.Value     `hcl:"default,optional"`
}

// RecordFieldBlock declares a nested-record field referencing another
// record type by name.
type RecordFieldBlock struct {
	Name        string `hcl:"name,label"`
	Of          string `hcl:"of"`
	Description string `hcl:"description,optional"`
}

// MapBlock declares an indexed-collection field whose entries default to
// fresh instances of the referenced record type.
type MapBlock struct {
	Name        string `hcl:"name,label"`
	Of          string `hcl:"of"`
	Description string `hcl:"description,optional"`
}

// RecordBlock is one `record` block: a named record type declaration.
type RecordBlock struct {
	Name         string              `hcl:"name,label"`
	Extends      string              `hcl:"extends,optional"`
	Fields       []*FieldBlock       `hcl:"field,block"`
	RecordFields []*RecordFieldBlock `hcl:"record_field,block"`
	Maps         []*MapBlock         `hcl:"map,block"`
}

// ManifestConfig is the top-level structure of one manifest file.
type ManifestConfig struct {
	Records []*RecordBlock `hcl:"record,block"`
}
