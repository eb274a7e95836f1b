package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSaveActiveNameSet_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveActiveNameSet(path, "Loco"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed map[string]string
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	require.Equal(t, "Loco", parsed["active_name_set"])
}

func TestSaveActiveNameSet_PreservesComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	original := "# my settings\nauto_reload: true\nactive_name_set: Old\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0o600))

	require.NoError(t, SaveActiveNameSet(path, "New"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# my settings")
	require.Contains(t, string(data), "auto_reload: true")

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	require.Equal(t, "New", parsed["active_name_set"])
}

func TestSaveActiveNameSet_AppendsMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auto_reload: false\n"), 0o600))

	require.NoError(t, SaveActiveNameSet(path, "Loco"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	require.Equal(t, false, parsed["auto_reload"])
	require.Equal(t, "Loco", parsed["active_name_set"])
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	require.Equal(t, true, parsed["auto_reload"])
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.True(t, cfg.AutoReload)
	require.EqualValues(t, 100000, cfg.Export.MaxRows)
	require.True(t, cfg.Export.IncludeHeader)
	require.True(t, cfg.History.Enabled)
}
