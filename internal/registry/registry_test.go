package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/gridrec/internal/record"
	"github.com/zclconf/go-cty/cty"
)

func newSchema(t *testing.T, name string) *record.Schema {
	t.Helper()
	s, err := record.NewSchema(name,
		record.NewField("id", cty.NumberIntVal(-1), "identifier"),
	)
	require.NoError(t, err)
	return s
}

func TestRegisterAndLookup(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(newSchema(t, "Event")))
	require.NoError(t, r.Register(newSchema(t, "Telescope")))

	s, ok := r.Lookup("Event")
	require.True(t, ok)
	assert.Equal(t, "Event", s.Name())

	_, ok = r.Lookup("Missing")
	assert.False(t, ok)
}

func TestRegisterDuplicateFails(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(newSchema(t, "Event")))

	var schemaErr *record.SchemaError
	err := r.Register(newSchema(t, "Event"))
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "Event", schemaErr.Schema)
}

func TestNamesPreserveRegistrationOrder(t *testing.T) {
	r := New()
	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		require.NoError(t, r.Register(newSchema(t, name)))
	}
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, r.Names())
	assert.Equal(t, 3, r.Len())
}

func TestValidateSurfacesMaterializationFailure(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(newSchema(t, "Good")))
	require.NoError(t, r.Validate())

	bad, err := record.NewSchema("Bad",
		record.NewRecordField("sub", func() *record.Container { return nil }, "broken factory"),
	)
	require.NoError(t, err)
	require.NoError(t, r.Register(bad))

	var schemaErr *record.SchemaError
	err = r.Validate()
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "Bad", schemaErr.Schema)
}
