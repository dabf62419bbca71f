package constant

import "time"

// Cache configuration constants
const (
	// CacheTTL defines the time-to-live for cached validation reports
	CacheTTL = 1 * time.Hour
	// CacheNumCounters is the number of keys to track frequency (10K)
	CacheNumCounters = 1e4
	// CacheMaxCost is the maximum cost of cache (number of reports)
	CacheMaxCost = 1 << 10
	// CacheBufferItems is the number of keys per Get buffer
	CacheBufferItems = 64
)
