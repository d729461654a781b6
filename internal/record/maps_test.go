package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func telFactory(t *testing.T) func() Value {
	t.Helper()
	tel, err := NewSchema("TelescopeData",
		NewField("adc_sum", cty.NumberIntVal(0), "summed ADC counts"),
	)
	require.NoError(t, err)
	return func() Value { return RecordValue(tel.MustNew()) }
}

func TestMapLazyFill(t *testing.T) {
	m := NewMap(telFactory(t))

	v, err := m.Get(5)
	require.NoError(t, err)
	require.Equal(t, KindRecord, v.Kind())

	// The auto-created entry is inserted, and the same value comes back
	// on the next access.
	assert.True(t, m.Has(5))
	again, err := m.Get(5)
	require.NoError(t, err)
	assert.Same(t, v.AsRecord(), again.AsRecord())
}

func TestMapLazyFillProducesDistinctInstances(t *testing.T) {
	m := NewMap(telFactory(t))

	a, err := m.Get(1)
	require.NoError(t, err)
	b, err := m.Get(2)
	require.NoError(t, err)
	require.NotSame(t, a.AsRecord(), b.AsRecord())

	require.NoError(t, a.AsRecord().SetScalar("adc_sum", cty.NumberIntVal(99)))
	v, err := b.AsRecord().Scalar("adc_sum")
	require.NoError(t, err)
	assert.True(t, cty.NumberIntVal(0).RawEquals(v))
}

func TestMapWithoutFactoryFailsOnAbsentKey(t *testing.T) {
	m := NewMap(nil)

	var notFound *KeyNotFoundError
	_, err := m.Get(5)
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 5, notFound.Key)

	// The failed lookup did not insert anything.
	assert.Equal(t, 0, m.Len())
}

func TestMapInsertionOrderPreserved(t *testing.T) {
	m := NewMap(telFactory(t))
	m.Set(9, ScalarValue(cty.StringVal("set")))
	_, err := m.Get(3) // lazily created
	require.NoError(t, err)
	m.Set(1, ScalarValue(cty.StringVal("last")))

	assert.Equal(t, []any{9, 3, 1}, m.Keys())

	items := m.Items()
	require.Len(t, items, 3)
	assert.Equal(t, 9, items[0].Key)
	assert.Equal(t, 3, items[1].Key)
	assert.Equal(t, 1, items[2].Key)
}

func TestMapSetOverwriteKeepsPosition(t *testing.T) {
	m := NewMap(nil)
	m.Set(1, ScalarValue(cty.StringVal("a")))
	m.Set(2, ScalarValue(cty.StringVal("b")))
	m.Set(1, ScalarValue(cty.StringVal("a2")))

	assert.Equal(t, []any{1, 2}, m.Keys())
	v, err := m.Get(1)
	require.NoError(t, err)
	assert.True(t, cty.StringVal("a2").RawEquals(v.AsScalar()))
}

func TestMapDeleteAndClear(t *testing.T) {
	m := NewMap(nil)
	m.Set(1, ScalarValue(cty.Zero))
	m.Set(2, ScalarValue(cty.Zero))
	m.Set(3, ScalarValue(cty.Zero))

	m.Delete(2)
	assert.Equal(t, []any{1, 3}, m.Keys())
	m.Delete(42) // absent key is a no-op
	assert.Equal(t, 2, m.Len())

	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Keys())
}
