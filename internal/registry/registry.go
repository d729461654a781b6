package registry

import (
	"github.com/vk/gridrec/internal/record"
)

// Registry is the named schema table for a single application instance.
// It is populated during startup and read-only afterwards.
type Registry struct {
	schemas map[string]*record.Schema
	order   []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{schemas: make(map[string]*record.Schema)}
}

// Register adds a schema under its own name. Registering a name twice is a
// SchemaError; schemas are immutable, so replacement is never meaningful.
func (r *Registry) Register(s *record.Schema) error {
	if _, ok := r.schemas[s.Name()]; ok {
		return &record.SchemaError{Schema: s.Name(), Reason: "type already registered"}
	}
	r.schemas[s.Name()] = s
	r.order = append(r.order, s.Name())
	return nil
}

// Lookup returns the schema registered under name.
func (r *Registry) Lookup(name string) (*record.Schema, bool) {
	s, ok := r.schemas[name]
	return s, ok
}

// Names returns the registered type names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int { return len(r.order) }

// Validate materializes one throwaway instance of every registered schema,
// surfacing defaults that cannot be copied and factories that reference
// types which failed to load. Ran once at the end of startup.
func (r *Registry) Validate() error {
	for _, name := range r.order {
		if _, err := r.schemas[name].New(); err != nil {
			return &record.SchemaError{Schema: name, Reason: "cannot materialize: " + err.Error()}
		}
	}
	return nil
}
