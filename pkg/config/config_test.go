package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemosh/mnemo/pkg/audit"
)

func TestDefault(t *testing.T) {
	settings := Default()

	assert.Equal(t, ".mnemo/memory", settings.MemoryDir)
	assert.Equal(t, []string{"**.md"}, settings.Patterns)
	assert.Equal(t, audit.DefaultThresholds(), settings.Audit.Thresholds())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), settings)
}

func TestLoadPartialFileOverridesOnlyNamedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `memory_dir: notes/memory
audit:
  stale_days: 90
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "notes/memory", settings.MemoryDir)
	assert.Equal(t, 90, settings.Audit.StaleDays)

	// Everything the file does not name keeps its default.
	assert.Equal(t, []string{"**.md"}, settings.Patterns)
	assert.Equal(t, int64(50000), settings.Audit.LargeBytes)
	assert.Equal(t, 5, settings.Audit.TODOLimit)
}

func TestLoadFullOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `memory_dir: /srv/memory
patterns:
  - "**.md"
  - "**.txt"
audit:
  large_bytes: 100000
  stale_days: 30
  todo_limit: 10
  organize_total: 20
  organize_root: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/memory", settings.MemoryDir)
	assert.Equal(t, []string{"**.md", "**.txt"}, settings.Patterns)
	assert.Equal(t, audit.Thresholds{
		LargeBytes:    100000,
		StaleDays:     30,
		TODOLimit:     10,
		OrganizeTotal: 20,
		OrganizeRoot:  5,
	}, settings.Audit.Thresholds())
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("memory_dir: [not: closed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
