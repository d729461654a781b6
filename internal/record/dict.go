package record

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Dict is the order-preserving dictionary produced by projections. Keys
// iterate in the order they were set, which for projections is always
// schema declaration order. Values are one of: cty.Value (a scalar leaf),
// *Dict (an expanded subtree), or a live *Container / *Map from a
// non-recursive projection.
type Dict struct {
	keys []string
	vals map[string]any
}

// NewDict creates an empty ordered dictionary.
func NewDict() *Dict {
	return &Dict{vals: make(map[string]any)}
}

// Set inserts or overwrites the value under key. A first-time key is
// appended to the iteration order; overwrites keep the original position.
func (d *Dict) Set(key string, v any) {
	if _, ok := d.vals[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = v
}

// Get returns the value under key and whether it is present.
func (d *Dict) Get(key string) (any, bool) {
	v, ok := d.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (d *Dict) Has(key string) bool {
	_, ok := d.vals[key]
	return ok
}

// Keys returns the keys in iteration order.
func (d *Dict) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of entries.
func (d *Dict) Len() int { return len(d.keys) }

// Equal reports whether two dictionaries hold the same keys in the same
// order with equal values. Scalars compare with cty raw equality, nested
// dictionaries recursively, and live containers or maps by identity.
func (d *Dict) Equal(other *Dict) bool {
	if d.Len() != other.Len() {
		return false
	}
	for i, k := range d.keys {
		if other.keys[i] != k {
			return false
		}
		if !valueEqual(d.vals[k], other.vals[k]) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	switch av := a.(type) {
	case cty.Value:
		bv, ok := b.(cty.Value)
		return ok && av.RawEquals(bv)
	case *Dict:
		bv, ok := b.(*Dict)
		return ok && av.Equal(bv)
	default:
		return a == b
	}
}

// MarshalJSON encodes the dictionary as a JSON object in iteration order.
// Scalar leaves are encoded through cty's JSON mapping; unexpanded
// containers and maps are encoded as their introspection string.
func (d *Dict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		enc, err := marshalValue(d.vals[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		buf.Write(enc)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalValue(v any) ([]byte, error) {
	switch val := v.(type) {
	case cty.Value:
		if val.Type() == cty.NilType {
			return []byte("null"), nil
		}
		return ctyjson.Marshal(val, val.Type())
	case *Dict:
		return val.MarshalJSON()
	case *Container:
		return json.Marshal(val.String())
	case *Map:
		return json.Marshal(fmt.Sprintf("map with %d entries", val.Len()))
	default:
		return json.Marshal(v)
	}
}
