package record

import "fmt"

// ProjectOptions controls how a container tree is projected into a Dict.
// The zero value is the minimal-surprise default: bare top-level fields,
// nothing expanded.
type ProjectOptions struct {
	// Recursive expands nested containers and maps into sub-dictionaries
	// instead of exposing the live values.
	Recursive bool
	// Flatten merges expanded subtrees into a single level with
	// underscore-joined keys. It only takes effect combined with
	// Recursive. Map entries embed their key: field_key_leaf.
	Flatten bool
	// Prefix, when non-empty, is prepended to every root-level key as
	// prefix_name. Nested keys derive their prefixes from field names
	// regardless of this setting.
	Prefix string
}

// AsDict projects the container into an ordered dictionary. Key order is
// schema declaration order, never insertion or alphabetical order, so two
// projections of the same unmutated instance are identical. Fields holding
// null scalars are projected under their key, not omitted.
func (c *Container) AsDict(opts ProjectOptions) *Dict {
	d := NewDict()
	for _, f := range c.schema.fields {
		v := c.values[f.name]
		key := f.name
		if opts.Prefix != "" {
			key = opts.Prefix + "_" + f.name
		}
		if !opts.Recursive {
			d.Set(key, v.raw())
			continue
		}
		switch v.kind {
		case KindRecord:
			sub := v.record.AsDict(ProjectOptions{Recursive: true, Flatten: opts.Flatten})
			emit(d, key, sub, opts.Flatten)
		case KindMap:
			sub := v.coll.AsDict(ProjectOptions{Recursive: true, Flatten: opts.Flatten})
			emit(d, key, sub, opts.Flatten)
		default:
			d.Set(key, v.scalar)
		}
	}
	return d
}

// AsDict projects the collection into an ordered dictionary keyed by the
// rendered entry keys, in insertion order. With Recursive set, record and
// map entries are expanded with the same options threaded through.
func (m *Map) AsDict(opts ProjectOptions) *Dict {
	d := NewDict()
	for _, k := range m.keys {
		v := m.entries[k]
		key := keyString(k)
		if opts.Prefix != "" {
			key = opts.Prefix + "_" + key
		}
		if !opts.Recursive {
			d.Set(key, v.raw())
			continue
		}
		switch v.kind {
		case KindRecord:
			sub := v.record.AsDict(ProjectOptions{Recursive: true, Flatten: opts.Flatten})
			emit(d, key, sub, opts.Flatten)
		case KindMap:
			sub := v.coll.AsDict(ProjectOptions{Recursive: true, Flatten: opts.Flatten})
			emit(d, key, sub, opts.Flatten)
		default:
			d.Set(key, v.scalar)
		}
	}
	return d
}

// emit attaches an expanded subtree under key: nested as a sub-dictionary,
// or flattened by merging its leaves with underscore-joined keys.
func emit(d *Dict, key string, sub *Dict, flatten bool) {
	if !flatten {
		d.Set(key, sub)
		return
	}
	for _, k := range sub.keys {
		d.Set(key+"_"+k, sub.vals[k])
	}
}

// keyString renders a map key into the flattened-key compatibility form.
// Integer keys, the common case, render as their decimal digits.
func keyString(key any) string {
	return fmt.Sprintf("%v", key)
}
