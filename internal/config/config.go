package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/LerianStudio/lib-commons/commons"
	cn "github.com/trainboard/lib-secrets-go/constant"
	"github.com/trainboard/lib-secrets-go/model"
	"github.com/trainboard/lib-secrets-go/pkg"
)

// ClientConfig holds the configuration for the secrets client
type ClientConfig struct {
	SecretsFile string // Empty means the process environment
	Strict      bool   // Reject placeholder values
	AccessKey   string // Guards the provisioning endpoints

	// Background reload configuration
	ReloadInterval time.Duration
}

// NewDefaultConfig creates a new config with sensible defaults
func NewDefaultConfig() ClientConfig {
	return ClientConfig{
		ReloadInterval: cn.DefaultReloadIntervalSeconds * time.Second,
	}
}

// FromEnv builds a ClientConfig from SECRETS_FILE, SECRETS_STRICT and
// PROVISION_ACCESS_KEY.
func FromEnv() ClientConfig {
	cfg := NewDefaultConfig()
	cfg.SecretsFile = os.Getenv(cn.EnvSecretsFile)
	cfg.Strict = pkg.IsTrue(os.Getenv(cn.EnvStrict))
	cfg.AccessKey = os.Getenv(cn.EnvProvisionAccessKey)

	return cfg
}

// Validate checks if the configuration is valid
func (c *ClientConfig) Validate() error {
	if c.ReloadInterval < 0 {
		return errors.New("reload interval must not be negative")
	}

	if strings.TrimSpace(c.AccessKey) != c.AccessKey {
		return errors.New("access key must not have surrounding whitespace")
	}

	return nil
}

// RequireAccessKey checks the configuration can serve provisioning requests
func (c *ClientConfig) RequireAccessKey() error {
	if commons.IsNilOrEmpty(&c.AccessKey) {
		return errors.New("provisioning access key is required")
	}

	return nil
}

// GenerateFingerprint creates a stable identifier for a set of secrets without
// revealing any of them. Field order is fixed and each value is length
// prefixed so different splits of the same bytes never collide.
func GenerateFingerprint(s model.Secrets) string {
	var b strings.Builder

	for _, v := range []string{s.SSID, s.Password, s.Server, s.RootCA, s.APIKey} {
		b.WriteString(strconv.Itoa(len(v)))
		b.WriteByte(':')
		b.WriteString(v)
	}

	return commons.HashSHA256(b.String())
}
