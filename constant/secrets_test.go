package constant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholdersAreTextual(t *testing.T) {
	values := map[string]string{
		FieldSSID:     SSID,
		FieldPassword: Password,
		FieldServer:   Server,
		FieldRootCA:   RootCA,
		FieldAPIKey:   APIKey,
	}

	for name, v := range values {
		assert.NotEmpty(t, v, name)
	}
}

func TestRootCAPlaceholderHasMarkers(t *testing.T) {
	assert.True(t, strings.HasPrefix(RootCA, PEMBeginCertificate))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(RootCA), PEMEndCertificate))
	assert.Equal(t, "-----BEGIN CERTIFICATE-----\nYOUR_CERTIFICATE_CONTENT\n-----END CERTIFICATE-----\n", RootCA)
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []error{
		ErrMissingSSID, ErrInvalidSSID, ErrInvalidPassword, ErrMissingServer,
		ErrInvalidServer, ErrInvalidRootCA, ErrMissingAPIKey, ErrInvalidAPIKey,
		ErrPlaceholderValue, ErrMissingAccessKey, ErrInvalidAccessKey,
		ErrInvalidSecrets, ErrUnsupportedSource, ErrInternalServer,
		ErrSourceNotFound,
	}

	seen := map[string]bool{}
	for _, err := range codes {
		assert.False(t, seen[err.Error()], "duplicate code %s", err)
		assert.True(t, strings.HasPrefix(err.Error(), "SEC-"))
		seen[err.Error()] = true
	}
}
