package cache

import (
	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/dgraph-io/ristretto/v2"
	"github.com/trainboard/lib-secrets-go/constant"
	"github.com/trainboard/lib-secrets-go/model"
)

// Manager handles caching of validation reports keyed by secrets fingerprint
type Manager struct {
	cache  *ristretto.Cache[string, model.Report]
	logger log.Logger
}

// New creates a new cache manager
func New(logger log.Logger) (*Manager, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, model.Report]{
		NumCounters: constant.CacheNumCounters,
		MaxCost:     constant.CacheMaxCost,
		BufferItems: constant.CacheBufferItems,
		// Cost counts reports, not bytes.
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}

	return &Manager{
		cache:  cache,
		logger: logger,
	}, nil
}

// Get retrieves a cached report by fingerprint
func (m *Manager) Get(fingerprint string) (model.Report, bool) {
	if result, found := m.cache.Get(fingerprint); found {
		m.logger.Debugf("Validation report cached for %s [valid: %t | issues: %d]",
			short(fingerprint), result.Valid, len(result.Issues))
		return result, true
	}

	return model.Report{}, false
}

// Store caches a report with a fixed TTL and waits until it is visible to Get
func (m *Manager) Store(fingerprint string, result model.Report) {
	m.cache.SetWithTTL(fingerprint, result, 1, constant.CacheTTL)
	m.cache.Wait()

	m.logger.Debugf("Stored validation report for %s", short(fingerprint))
}

// Close releases the cache goroutines
func (m *Manager) Close() {
	m.cache.Close()
}

func short(fingerprint string) string {
	if len(fingerprint) > 12 {
		return fingerprint[:12]
	}

	return fingerprint
}
