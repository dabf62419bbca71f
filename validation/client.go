package validation

import (
	"context"
	"fmt"
	"sync"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-commons/commons/zap"
	cn "github.com/trainboard/lib-secrets-go/constant"
	"github.com/trainboard/lib-secrets-go/internal/cache"
	"github.com/trainboard/lib-secrets-go/internal/config"
	"github.com/trainboard/lib-secrets-go/internal/refresh"
	"github.com/trainboard/lib-secrets-go/internal/shutdown"
	"github.com/trainboard/lib-secrets-go/internal/source"
	"github.com/trainboard/lib-secrets-go/model"
	"github.com/trainboard/lib-secrets-go/pkg"
	"github.com/trainboard/lib-secrets-go/util"
)

// Loader reads a fresh copy of the secrets from their source
type Loader func() (model.Secrets, error)

// Client loads secrets, validates them with caching and keeps them current
// with a background reload
type Client struct {
	config          *config.ClientConfig
	loader          Loader
	cacheManager    *cache.Manager
	refreshManager  *refresh.Manager
	shutdownManager *shutdown.Manager
	logger          log.Logger

	mu      sync.RWMutex
	secrets model.Secrets
	loaded  bool
}

// New creates a new secrets validation client
func New(cfg config.ClientConfig, logger *log.Logger) (*Client, error) {
	// Initialize logger
	var l log.Logger
	if logger != nil {
		l = *logger
	} else {
		l = zap.InitializeLogger()
	}

	if err := cfg.Validate(); err != nil {
		l.Errorf("Invalid configuration: %s", err.Error())
		return nil, err
	}

	cacheManager, err := cache.New(l)
	if err != nil {
		l.Errorf("Failed to initialize cache: %s", err.Error())
		return nil, err
	}

	client := &Client{
		config:          &cfg,
		loader:          defaultLoader(cfg),
		cacheManager:    cacheManager,
		shutdownManager: shutdown.New(),
		logger:          l,
	}

	client.refreshManager = refresh.New(client, cfg.ReloadInterval, l)

	return client, nil
}

func defaultLoader(cfg config.ClientConfig) Loader {
	if cfg.SecretsFile != "" {
		return func() (model.Secrets, error) {
			return source.FromFile(cfg.SecretsFile)
		}
	}

	return source.FromEnv
}

// SetLoader overrides where secrets are read from (useful for testing)
func (c *Client) SetLoader(loader Loader) {
	if loader != nil {
		c.loader = loader
	}
}

// SetTerminationHandler allows customizing how the application terminates when startup validation fails
func (c *Client) SetTerminationHandler(handler shutdown.Handler) {
	c.shutdownManager.SetHandler(handler)
}

// GetLogger returns the logger used by the client
func (c *Client) GetLogger() log.Logger {
	return c.logger
}

// Config returns a copy of the client configuration
func (c *Client) Config() config.ClientConfig {
	return *c.config
}

// Secrets returns a copy of the current secrets, loading them on first use
func (c *Client) Secrets(ctx context.Context) (model.Secrets, error) {
	c.mu.RLock()
	if c.loaded {
		s := c.secrets
		c.mu.RUnlock()

		return s, nil
	}
	c.mu.RUnlock()

	if err := c.Reload(ctx); err != nil {
		return model.Secrets{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.secrets, nil
}

// Reload reads the source again and swaps in the result when it changed and
// passes validation. The previous secrets stay in place otherwise.
func (c *Client) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	next, err := c.loader()
	if err != nil {
		c.logger.Errorf("Failed to load secrets: %v", err)
		return err
	}

	if err := util.ValidateEnvVariables(&next, c.logger); err != nil {
		return err
	}

	report := c.check(next)

	c.mu.Lock()
	defer c.mu.Unlock()

	previous := ""
	if c.loaded {
		previous = config.GenerateFingerprint(c.secrets)
	}

	if previous == report.Fingerprint {
		return nil
	}

	if !report.Valid && c.loaded {
		c.logger.Warnf("Reloaded secrets are invalid (%s), keeping %s", shutdown.Reason(report.Issues), shortFingerprint(previous))
		return pkg.ValidateBusinessError(cn.ErrInvalidSecrets, entityType)
	}

	c.secrets = next
	c.loaded = true

	if previous == "" {
		c.logger.Infof("Secrets loaded [fingerprint: %s | placeholders: %d]", shortFingerprint(report.Fingerprint), len(report.Placeholders))
	} else {
		c.logger.Infof("Secrets changed [%s -> %s]", shortFingerprint(previous), shortFingerprint(report.Fingerprint))
	}

	return nil
}

// Validate checks the current secrets, using the cached report when the
// secrets have not changed since the last check
func (c *Client) Validate(ctx context.Context) (model.Report, error) {
	s, err := c.Secrets(ctx)
	if err != nil {
		return model.Report{}, err
	}

	return c.check(s), nil
}

func (c *Client) check(s model.Secrets) model.Report {
	fp := config.GenerateFingerprint(s)
	if report, found := c.cacheManager.Get(cacheKey(fp, c.config.Strict)); found {
		return report
	}

	report := Check(s, c.config.Strict)
	c.cacheManager.Store(cacheKey(fp, c.config.Strict), report)

	if !c.config.Strict {
		for _, field := range report.Placeholders {
			if MustReplace(field) {
				c.logger.Warnf("Field %s still holds its committed placeholder", field)
			}
		}
	}

	return report
}

// ValidateOnStartup loads and validates the secrets once and terminates the
// application when they are unusable
func (c *Client) ValidateOnStartup(ctx context.Context) model.Report {
	report, err := c.Validate(ctx)
	if err != nil {
		c.logger.Errorf("Secrets could not be loaded: %v", err)
		c.shutdownManager.Terminate(err.Error())

		return report
	}

	if !report.Valid {
		for _, issue := range report.Issues {
			c.logger.Errorf("Invalid %s (code %s): %s", issue.Field, issue.Code, issue.Message)
		}

		c.shutdownManager.Terminate(shutdown.Reason(report.Issues))
	}

	return report
}

// StartBackgroundReload starts the periodic reload of the secrets source
func (c *Client) StartBackgroundReload(ctx context.Context) {
	c.refreshManager.Start(ctx)
}

// ShutdownBackgroundReload stops the background reload process
func (c *Client) ShutdownBackgroundReload() {
	c.refreshManager.Shutdown()
}

// Close stops background work and releases the cache
func (c *Client) Close() {
	c.ShutdownBackgroundReload()
	c.cacheManager.Close()
}

func cacheKey(fingerprint string, strict bool) string {
	return fmt.Sprintf("%s:%t", fingerprint, strict)
}

func shortFingerprint(fp string) string {
	if len(fp) > 12 {
		return fp[:12]
	}

	return fp
}
