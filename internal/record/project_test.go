package record

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestAsDictNonRecursiveExposesLiveValues(t *testing.T) {
	event, _ := eventSchemas(t)
	c := event.MustNew()

	d := c.AsDict(ProjectOptions{})
	assert.Equal(t, []string{"event_id", "pointing", "tel"}, d.Keys())

	v, ok := d.Get("pointing")
	require.True(t, ok)
	sub, err := c.Record("pointing")
	require.NoError(t, err)
	assert.Same(t, sub, v.(*Container))

	v, ok = d.Get("tel")
	require.True(t, ok)
	m, err := c.Map("tel")
	require.NoError(t, err)
	assert.Same(t, m, v.(*Map))
}

func TestAsDictRecursiveNested(t *testing.T) {
	event, _ := eventSchemas(t)
	c := event.MustNew()

	d := c.AsDict(ProjectOptions{Recursive: true})
	v, ok := d.Get("pointing")
	require.True(t, ok)
	sub, isDict := v.(*Dict)
	require.True(t, isDict)
	assert.Equal(t, []string{"azimuth", "altitude"}, sub.Keys())
}

func TestAsDictFlattenNaming(t *testing.T) {
	event, _ := eventSchemas(t)
	c := event.MustNew()

	d := c.AsDict(ProjectOptions{Recursive: true, Flatten: true})

	// The nested record contributes prefix-joined leaves and no nested key.
	assert.True(t, d.Has("pointing_azimuth"))
	assert.True(t, d.Has("pointing_altitude"))
	assert.False(t, d.Has("pointing"))
	// Root scalars keep their bare name.
	assert.True(t, d.Has("event_id"))
}

func TestAsDictDeterminism(t *testing.T) {
	event, _ := eventSchemas(t)
	c := event.MustNew()

	first := c.AsDict(ProjectOptions{Recursive: true, Flatten: true})
	second := c.AsDict(ProjectOptions{Recursive: true, Flatten: true})
	assert.True(t, first.Equal(second))
	assert.Equal(t, first.Keys(), second.Keys())
}

func TestAsDictPrefix(t *testing.T) {
	event, _ := eventSchemas(t)
	c := event.MustNew()

	d := c.AsDict(ProjectOptions{Recursive: true, Flatten: true, Prefix: "dl1"})
	assert.True(t, d.Has("dl1_event_id"))
	assert.True(t, d.Has("dl1_pointing_azimuth"))
	assert.False(t, d.Has("event_id"))
}

func TestNullScalarIsProjectedNotOmitted(t *testing.T) {
	s, err := NewSchema("Sparse",
		NewField("maybe", cty.NullVal(cty.Number), "optional measurement"),
	)
	require.NoError(t, err)
	c := s.MustNew()

	d := c.AsDict(ProjectOptions{Recursive: true})
	v, ok := d.Get("maybe")
	require.True(t, ok)
	assert.True(t, v.(cty.Value).IsNull())
}

// TestEndToEndTelescopeProjection is the full pipeline shape: an event with
// a defaulted identifier and a lazily-populated telescope map, where only
// the touched telescope appears in the flattened output.
func TestEndToEndTelescopeProjection(t *testing.T) {
	event, _ := eventSchemas(t)
	c := event.MustNew()

	m, err := c.Map("tel")
	require.NoError(t, err)

	entry, err := m.Get(5) // auto-created
	require.NoError(t, err)
	require.NoError(t, entry.AsRecord().SetScalar("adc_sum", cty.NumberIntVal(777)))

	d := c.AsDict(ProjectOptions{Recursive: true, Flatten: true})

	v, ok := d.Get("event_id")
	require.True(t, ok)
	assert.True(t, cty.NumberIntVal(-1).RawEquals(v.(cty.Value)))

	v, ok = d.Get("tel_5_adc_sum")
	require.True(t, ok)
	assert.True(t, cty.NumberIntVal(777).RawEquals(v.(cty.Value)))

	// Only key 5 was touched, so no other tel_* leaves exist.
	for _, k := range d.Keys() {
		if k == "tel_5_adc_sum" || k == "tel_5_trigger" {
			continue
		}
		assert.NotContains(t, k, "tel_")
	}
}

func TestMapAsDictNonRecursive(t *testing.T) {
	m := NewMap(telFactory(t))
	_, err := m.Get(2)
	require.NoError(t, err)
	m.Set(8, ScalarValue(cty.StringVal("raw")))

	d := m.AsDict(ProjectOptions{})
	assert.Equal(t, []string{"2", "8"}, d.Keys())
	_, isContainer := mustGet(t, d, "2").(*Container)
	assert.True(t, isContainer)
}

func TestDictJSONKeyOrder(t *testing.T) {
	event, _ := eventSchemas(t)
	c := event.MustNew()

	raw, err := json.Marshal(c.AsDict(ProjectOptions{Recursive: true, Flatten: true}))
	require.NoError(t, err)

	out := string(raw)
	assert.Less(t, strings.Index(out, `"event_id"`), strings.Index(out, `"pointing_azimuth"`))
	assert.Less(t, strings.Index(out, `"pointing_azimuth"`), strings.Index(out, `"pointing_altitude"`))
}

func mustGet(t *testing.T, d *Dict, key string) any {
	t.Helper()
	v, ok := d.Get(key)
	require.True(t, ok)
	return v
}

