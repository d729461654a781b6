package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/gridrec/internal/manifest"
	"github.com/vk/gridrec/internal/testutil"
)

func TestNewConfigValidation(t *testing.T) {
	_, err := NewConfig(Config{})
	require.Error(t, err)

	_, err = NewConfig(Config{SchemasPath: "x", Flatten: true})
	require.Error(t, err)

	cfg, err := NewConfig(Config{SchemasPath: "x", Recursive: true, Flatten: true})
	require.NoError(t, err)
	assert.True(t, cfg.Flatten)
}

func TestAppDescribe(t *testing.T) {
	cfg, err := NewConfig(Config{SchemasPath: testutil.WriteManifestDir(t, testutil.EventManifest)})
	require.NoError(t, err)

	var out bytes.Buffer
	a := NewApp(&out, cfg, manifest.NewLoader())
	require.NoError(t, a.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "TelescopeInfo:")
	assert.Contains(t, s, "Event:")
	assert.Contains(t, s, "tel: map of key to TelescopeInfo")
}

func TestAppProjectJSON(t *testing.T) {
	cfg, err := NewConfig(Config{
		SchemasPath: testutil.WriteManifestDir(t, testutil.EventManifest),
		TypeName:    "Event",
		Recursive:   true,
		Flatten:     true,
	})
	require.NoError(t, err)

	var out bytes.Buffer
	a := NewApp(&out, cfg, manifest.NewLoader())
	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, out.String(), `"event_id": -1`)
}

func TestAppProjectUnknownType(t *testing.T) {
	cfg, err := NewConfig(Config{
		SchemasPath: testutil.WriteManifestDir(t, testutil.EventManifest),
		TypeName:    "Missing",
	})
	require.NoError(t, err)

	var out bytes.Buffer
	a := NewApp(&out, cfg, manifest.NewLoader())
	err = a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing")
}

func TestNewAppPanicsOnEmptyManifestDir(t *testing.T) {
	cfg, err := NewConfig(Config{SchemasPath: t.TempDir()})
	require.NoError(t, err)

	assert.Panics(t, func() {
		NewApp(&bytes.Buffer{}, cfg, manifest.NewLoader())
	})
}
