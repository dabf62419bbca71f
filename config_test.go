package sdk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cn "github.com/trainboard/lib-secrets-go/constant"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, cn.SSID, cfg.SSID)
	assert.Equal(t, cn.Password, cfg.Password)
	assert.Equal(t, cn.Server, cfg.Server)
	assert.Equal(t, cn.RootCA, cfg.RootCA)
	assert.Equal(t, cn.APIKey, cfg.APIKey)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(cn.EnvSSID, "MyNetwork")
	t.Setenv(cn.EnvPassword, "secret123")
	t.Setenv(cn.EnvRootCAFile, "")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "MyNetwork", cfg.SSID)
	assert.Equal(t, "secret123", cfg.Password)
}

func TestLoad_UsesSecretsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.env")
	require.NoError(t, os.WriteFile(path, []byte("WIFI_SSID=FromFile\nAPI_KEY=key-123\n"), 0o600))

	t.Setenv(cn.EnvSecretsFile, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "FromFile", cfg.SSID)
	assert.Equal(t, "key-123", cfg.APIKey)

	fromFile, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, fromFile)
}
