package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HW_HOME", t.TempDir())
	t.Setenv("OEM_SECRETS_API_KEY", "")
	t.Setenv("MOUSER_API_KEY", "")
	t.Setenv("HW_DEBUG", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Search.MinStock)
	assert.Equal(t, 3, cfg.Search.MaxCandidates)
	assert.Equal(t, 5, cfg.Search.Concurrency)
	assert.Equal(t, 24, cfg.Search.CacheTTLHours)
	assert.Equal(t, "US", cfg.Cart.CountryCode)
	assert.Equal(t, "USD", cfg.Cart.CurrencyCode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Search.OEMSecretsAPIKey)
}

func TestLoad_FromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HW_HOME", home)
	t.Setenv("OEM_SECRETS_API_KEY", "")

	contents := `search:
  oem_secrets_api_key: file-key
  min_stock: 50
  vendors: [mouser, digikey]
log:
  level: warn
`
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(contents), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.Search.OEMSecretsAPIKey)
	assert.Equal(t, 50, cfg.Search.MinStock)
	assert.Equal(t, []string{"mouser", "digikey"}, cfg.Search.Vendors)
	assert.Equal(t, "warn", cfg.Log.Level)
	// Unset fields keep their defaults.
	assert.Equal(t, 5, cfg.Search.Concurrency)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HW_HOME", home)
	t.Setenv("OEM_SECRETS_API_KEY", "env-key")
	t.Setenv("HW_DEBUG", "1")

	contents := "search:\n  oem_secrets_api_key: file-key\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(contents), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Search.OEMSecretsAPIKey)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ClampsBadValues(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HW_HOME", home)

	contents := "search:\n  min_stock: -5\n  concurrency: 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(contents), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Search.MinStock)
	assert.Equal(t, 5, cfg.Search.Concurrency)
}

func TestLoad_BadYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HW_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("{not yaml"), 0o600))

	_, err := Load()
	assert.Error(t, err)
}

func TestRequireSearchKey(t *testing.T) {
	t.Parallel()

	cfg := Default()
	_, err := cfg.RequireSearchKey()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OEM_SECRETS_API_KEY")

	cfg.Search.OEMSecretsAPIKey = "k"
	key, err := cfg.RequireSearchKey()
	require.NoError(t, err)
	assert.Equal(t, "k", key)
}

func TestInit(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HW_HOME", home)

	path, err := Init()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config.yaml"), path)

	// The generated file must parse back to the defaults.
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default().Search.MinStock, cfg.Search.MinStock)

	// Refuses to overwrite.
	_, err = Init()
	assert.Error(t, err)
}

func TestPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HW_HOME", home)

	assert.Equal(t, home, Dir())
	assert.Equal(t, filepath.Join(home, "config.yaml"), File())

	logDir, err := LogDir()
	require.NoError(t, err)
	assert.DirExists(t, logDir)

	cacheFile, err := CacheFile()
	require.NoError(t, err)
	assert.DirExists(t, filepath.Dir(cacheFile))
}
