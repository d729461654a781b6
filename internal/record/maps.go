package record

// Map is an insertion-ordered mapping from an arbitrary comparable key,
// typically an integer hardware identifier, to a Value. A Map configured
// with a default factory populates absent keys lazily on first access.
type Map struct {
	keys    []any
	entries map[any]Value
	factory func() Value
}

// MapItem is one key/value pair produced by Items.
type MapItem struct {
	Key   any
	Value Value
}

// NewMap creates an empty indexed collection. A non-nil factory is invoked
// once per distinct absent key on Get; a nil factory makes absent-key Get
// fail with KeyNotFoundError.
func NewMap(factory func() Value) *Map {
	return &Map{entries: make(map[any]Value), factory: factory}
}

// Get returns the value stored under key. An absent key is auto-created
// through the default factory, inserted in iteration order, and returned;
// subsequent gets of the same key reuse the created value.
func (m *Map) Get(key any) (Value, error) {
	if v, ok := m.entries[key]; ok {
		return v, nil
	}
	if m.factory == nil {
		return Value{}, &KeyNotFoundError{Key: key}
	}
	v := m.factory()
	m.set(key, v)
	return v, nil
}

// Set inserts or overwrites the value under key. No element type checking
// happens at this layer.
func (m *Map) Set(key any, v Value) {
	m.set(key, v)
}

func (m *Map) set(key any, v Value) {
	if _, ok := m.entries[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = v
}

// Has reports whether key is present without triggering lazy creation.
func (m *Map) Has(key any) bool {
	_, ok := m.entries[key]
	return ok
}

// Delete removes the entry under key, preserving the order of the rest.
func (m *Map) Delete(key any) {
	if _, ok := m.entries[key]; !ok {
		return
	}
	delete(m.entries, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.entries) }

// Keys returns the keys in insertion order.
func (m *Map) Keys() []any {
	out := make([]any, len(m.keys))
	copy(out, m.keys)
	return out
}

// Items returns the entries as key/value pairs in insertion order.
func (m *Map) Items() []MapItem {
	out := make([]MapItem, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, MapItem{Key: k, Value: m.entries[k]})
	}
	return out
}

// Clear removes all entries. The owning container's Reset relies on this
// semantic when it rebuilds map fields.
func (m *Map) Clear() {
	m.keys = m.keys[:0]
	m.entries = make(map[any]Value)
}
