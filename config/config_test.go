package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAPIURL, EnvCoversURL, EnvCatalogURL, EnvStoreURL, EnvUserAgent, EnvTimeout, EnvRPS, EnvLogFile} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "https://openlibrary.org", cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAPIURL, "http://localhost:9999")
	t.Setenv(EnvTimeout, "0s")
	t.Setenv(EnvRPS, "2.5")
	t.Setenv(EnvStoreURL, "https://books.example/search")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", cfg.APIURL)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.Equal(t, 2.5, cfg.RPS)
	assert.Equal(t, "https://books.example/search", cfg.Links.StoreSearchURL)
	assert.Len(t, cfg.ClientOptions(), 4)
}

func TestLoadDotEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(EnvCoversURL)
	t.Cleanup(func() { os.Unsetenv(EnvCoversURL) })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BOOKFINDER_COVERS_URL=http://covers.local\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://covers.local", cfg.Links.CoverBaseURL)
}

func TestLoadInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvTimeout, "soon")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv(EnvTimeout, "")
	t.Setenv(EnvRPS, "fast")
	_, err = Load()
	assert.Error(t, err)
}
