package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cn "github.com/trainboard/lib-secrets-go/constant"
	libErr "github.com/trainboard/lib-secrets-go/error"
)

const testCert = "-----BEGIN CERTIFICATE-----\nMIIBszCCAVmgAwIBAgIU\n-----END CERTIFICATE-----\n"

// clearEnv isolates a test from secrets set in the developer's shell.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		cn.EnvSSID, cn.EnvPassword, cn.EnvServer, cn.EnvRootCA,
		cn.EnvRootCAFile, cn.EnvAPIKey, cn.EnvSecretsFile,
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	s, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestFromEnv_Values(t *testing.T) {
	clearEnv(t)
	t.Setenv(cn.EnvSSID, "MyNetwork")
	t.Setenv(cn.EnvPassword, "secret123")
	t.Setenv(cn.EnvServer, "speech.example.com")
	t.Setenv(cn.EnvRootCA, `-----BEGIN CERTIFICATE-----\nMIIBszCCAVmgAwIBAgIU\n-----END CERTIFICATE-----`)
	t.Setenv(cn.EnvAPIKey, "key-123")

	s, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "MyNetwork", s.SSID)
	assert.Equal(t, "secret123", s.Password)
	assert.Equal(t, "speech.example.com", s.Server)
	assert.Equal(t, testCert, s.RootCA)
	assert.Equal(t, "key-123", s.APIKey)
}

func TestFromEnv_EmptyPasswordAndRootCA(t *testing.T) {
	clearEnv(t)
	t.Setenv(cn.EnvPassword, "")
	t.Setenv(cn.EnvRootCA, "")

	s, err := FromEnv()
	require.NoError(t, err)

	assert.Empty(t, s.Password)
	assert.Empty(t, s.RootCA)
}

func TestFromEnv_EmptyRequiredValuesStayEmpty(t *testing.T) {
	clearEnv(t)
	t.Setenv(cn.EnvSSID, "")
	t.Setenv(cn.EnvServer, "")
	t.Setenv(cn.EnvAPIKey, "")

	s, err := FromEnv()
	require.NoError(t, err)

	assert.Empty(t, s.SSID)
	assert.Empty(t, s.Server)
	assert.Empty(t, s.APIKey)
	assert.Equal(t, cn.Password, s.Password)
}

func TestFromEnv_WhitespaceRootCAIsEmpty(t *testing.T) {
	clearEnv(t)
	t.Setenv(cn.EnvRootCA, "   ")

	s, err := FromEnv()
	require.NoError(t, err)
	assert.Empty(t, s.RootCA)
}

func TestFromEnv_RootCAFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(cn.EnvRootCA, "ignored")
	t.Setenv(cn.EnvRootCAFile, writeFile(t, "ca.pem", testCert))

	s, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, testCert, s.RootCA)
}

func TestFromEnv_MissingRootCAFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(cn.EnvRootCAFile, filepath.Join(t.TempDir(), "missing.pem"))

	_, err := FromEnv()
	require.Error(t, err)
	assert.True(t, libErr.IsMissingSource(err))
}

func TestFromEnv_Idempotent(t *testing.T) {
	clearEnv(t)
	t.Setenv(cn.EnvSSID, "MyNetwork")

	first, err := FromEnv()
	require.NoError(t, err)

	second, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFromFile_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ca.pem"), []byte(testCert), 0o600))

	path := filepath.Join(dir, "firmware.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"WIFI_SSID=MyNetwork\n"+
			"WIFI_PASSWORD=\"secret123\"\n"+
			"ROOT_CA_FILE=ca.pem\n"+
			"# API_KEY left out on purpose\n"), 0o600))

	s, err := FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "MyNetwork", s.SSID)
	assert.Equal(t, "secret123", s.Password)
	assert.Equal(t, cn.Server, s.Server)
	assert.Equal(t, testCert, s.RootCA)
	assert.Equal(t, cn.APIKey, s.APIKey)
}

func TestFromFile_BareDotEnvName(t *testing.T) {
	path := writeFile(t, ".env", "WIFI_SSID=FromDotEnv\n")

	s, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "FromDotEnv", s.SSID)
}

func TestFromFile_YAML(t *testing.T) {
	path := writeFile(t, "secrets.yaml", `
ssid: MyNetwork
password: ""
server: speech.example.com
root_ca: |
  -----BEGIN CERTIFICATE-----
  MIIBszCCAVmgAwIBAgIU
  -----END CERTIFICATE-----
api_key: key-123
`)

	s, err := FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "MyNetwork", s.SSID)
	assert.Empty(t, s.Password)
	assert.Equal(t, "speech.example.com", s.Server)
	assert.Equal(t, testCert, s.RootCA)
	assert.Equal(t, "key-123", s.APIKey)
}

func TestFromFile_YAMLMissingKeysKeepPlaceholders(t *testing.T) {
	path := writeFile(t, "secrets.yml", "ssid: MyNetwork\n")

	s, err := FromFile(path)
	require.NoError(t, err)

	want := Defaults()
	want.SSID = "MyNetwork"
	assert.Equal(t, want, s)
}

func TestFromFile_Errors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := FromFile(writeFile(t, "secrets.json", "{}"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, cn.ErrUnsupportedSource))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := FromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.True(t, libErr.IsMissingSource(err))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := FromFile(writeFile(t, "bad.yaml", "ssid: [unterminated\n"))
		require.Error(t, err)

		var loadErr *libErr.LoadError
		require.True(t, errors.As(err, &loadErr))
		assert.True(t, libErr.IsDecodeError(err))
	})
}

func TestLoad_PrefersSecretsFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(cn.EnvSSID, "FromEnv")
	t.Setenv(cn.EnvSecretsFile, writeFile(t, "secrets.yaml", "ssid: FromFile\n"))

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "FromFile", s.SSID)
}
