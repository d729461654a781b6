// Package testutil provides canned schema fixtures shared by tests across
// packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// EventManifest is a small two-type manifest: an event record with a scalar
// identifier and a per-telescope map.
const EventManifest = `
record "TelescopeInfo" {
  field "adc_sum" {
    type        = number
    description = "summed ADC counts"
    default     = 0
  }

  field "trigger" {
    type        = bool
    description = "telescope triggered"
    default     = false
  }
}

record "Event" {
  field "event_id" {
    type        = number
    description = "event identifier"
    default     = -1
  }

  map "tel" {
    of          = "TelescopeInfo"
    description = "map of tel_id to telescope data"
  }
}
`

// WriteManifestDir writes src into a fresh temp directory as a single .hcl
// manifest and returns the directory path.
func WriteManifestDir(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.hcl"), []byte(src), 0o644))
	return dir
}
