package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 256, cfg.Defaults.EntropyBits)
	assert.Equal(t, 2048, cfg.Defaults.Iterations)
	assert.False(t, cfg.Defaults.StrictWordlist)
	assert.True(t, cfg.UI.UseColor)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Defaults.EntropyBits = 128
	cfg.Defaults.StrictWordlist = true
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"defaults":{"entropy_bits":160,"iterations":2048}}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 160, cfg.Defaults.EntropyBits)
	assert.Equal(t, 2048, cfg.Defaults.Iterations)
	assert.True(t, cfg.UI.UseColor, "absent sections keep their defaults")
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Defaults.EntropyBits = 100
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Defaults.Iterations = 0
	assert.Error(t, cfg.Validate())
}

func TestSaveRejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Defaults.EntropyBits = 7
	assert.Error(t, cfg.Save(filepath.Join(t.TempDir(), "config.json")))
}
