package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"sync"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-commons/commons/zap"
	cn "github.com/trainboard/lib-secrets-go/constant"
	"github.com/trainboard/lib-secrets-go/internal/config"
	"github.com/trainboard/lib-secrets-go/model"
	"github.com/trainboard/lib-secrets-go/validation"
)

var errNotConfigured = errors.New("secrets client is not configured")

// SecretsClient is the public client API that exposes the provisioning surface.
// It's a wrapper around the internal validation client
type SecretsClient struct {
	validator *validation.Client
	accessKey string
	// initOnce ensures startup validation and background reload happen only once
	// even when both HTTP middleware and gRPC interceptors are used
	initOnce sync.Once
}

// NewSecretsClient creates a new secrets client with middleware capabilities.
// secretsFile may be empty to read the process environment.
func NewSecretsClient(secretsFile, accessKey string, strict bool, logger *log.Logger) *SecretsClient {
	cfg := config.NewDefaultConfig()
	cfg.SecretsFile = secretsFile
	cfg.AccessKey = accessKey
	cfg.Strict = strict

	return newSecretsClient(cfg, logger)
}

// NewSecretsClientFromEnv creates a secrets client configured from
// SECRETS_FILE, SECRETS_STRICT and PROVISION_ACCESS_KEY
func NewSecretsClientFromEnv(logger *log.Logger) *SecretsClient {
	return newSecretsClient(config.FromEnv(), logger)
}

func newSecretsClient(cfg config.ClientConfig, logger *log.Logger) *SecretsClient {
	var l log.Logger
	if logger != nil {
		l = *logger
	} else {
		l = zap.InitializeLogger()
	}

	if err := cfg.RequireAccessKey(); err != nil {
		l.Errorf("Invalid provisioning configuration: %s (set %s)", err.Error(), cn.EnvProvisionAccessKey)
		return nil
	}

	validator, err := validation.New(cfg, &l)
	if err != nil {
		return nil
	}

	return &SecretsClient{
		validator: validator,
		accessKey: cfg.AccessKey,
	}
}

// StartupValidation loads and validates the secrets and starts the background
// reload. Safe to call more than once.
func (c *SecretsClient) StartupValidation() {
	if c == nil || c.validator == nil {
		return
	}

	c.initOnce.Do(func() {
		bgCtx := context.Background()
		c.validator.ValidateOnStartup(bgCtx)
		c.validator.StartBackgroundReload(bgCtx)
	})
}

// Validate returns the validation report of the current secrets
func (c *SecretsClient) Validate(ctx context.Context) (model.Report, error) {
	if !c.configured() {
		return model.Report{}, errNotConfigured
	}

	return c.validator.Validate(ctx)
}

// SetLoader overrides where secrets are read from (useful for testing)
func (c *SecretsClient) SetLoader(loader validation.Loader) {
	if c != nil && c.validator != nil {
		c.validator.SetLoader(loader)
	}
}

// SetTerminationHandler allows customizing how the application terminates when startup validation fails
func (c *SecretsClient) SetTerminationHandler(handler func(reason string)) {
	if c != nil && c.validator != nil {
		c.validator.SetTerminationHandler(handler)
	}
}

// ShutdownBackgroundReload stops the background reload process
func (c *SecretsClient) ShutdownBackgroundReload() {
	if c != nil && c.validator != nil {
		c.validator.ShutdownBackgroundReload()
	}
}

// Close stops background work and releases resources
func (c *SecretsClient) Close() {
	if c != nil && c.validator != nil {
		c.validator.Close()
	}
}

// GetLogger returns the logger used by the client
func (c *SecretsClient) GetLogger() log.Logger {
	return c.validator.GetLogger()
}

// configured reports whether c can authorize requests. Callers fail closed
// when it cannot.
func (c *SecretsClient) configured() bool {
	return c != nil && c.validator != nil
}

// checkAccessKey compares the presented key in constant time
func (c *SecretsClient) checkAccessKey(presented string) error {
	if presented == "" {
		return cn.ErrMissingAccessKey
	}

	if subtle.ConstantTimeCompare([]byte(presented), []byte(c.accessKey)) != 1 {
		return cn.ErrInvalidAccessKey
	}

	return nil
}
