package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromPathDefaultsWhenNoFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFromPath(dir)
	require.NoError(t, err)
	assert.Equal(t, defaultTheme, cfg.Theme)
	assert.Equal(t, defaultFormat, cfg.DefaultFormat)
	assert.Equal(t, defaultWatchDebounceMs, cfg.WatchDebounceMillis)
}

func TestLoadFromPathParsesFile(t *testing.T) {
	dir := t.TempDir()
	content := "theme: dark\ndefault_format: json\nattributes:\n  product: adoc\nlocked_attributes:\n  - product\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	cfg, err := LoadFromPath(dir)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "json", cfg.DefaultFormat)
	assert.Equal(t, "adoc", cfg.InitialAttributes["product"])
	assert.Equal(t, []string{"product"}, cfg.LockedAttributes)
}

func TestLoadFromPathRejectsInvalidFormat(t *testing.T) {
	dir := t.TempDir()
	content := "default_format: xml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	_, err := LoadFromPath(dir)
	assert.Error(t, err)
}

func TestLoadFromPathWalksUpTree(t *testing.T) {
	root := t.TempDir()
	content := "theme: solarized\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte(content), 0o644))

	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := LoadFromPath(nested)
	require.NoError(t, err)
	assert.Equal(t, "solarized", cfg.Theme)
	assert.Equal(t, root, cfg.ProjectRoot)
}
