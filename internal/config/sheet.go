package config

// SheetConfig controls how the published matchup sheet is fetched.
type SheetConfig struct {
	URL       string
	UserAgent string
	Timeout   Duration
}

// CacheConfig controls the refresh cache.
type CacheConfig struct {
	TTL Duration
	// Coalesce lets concurrent stale requests share one upstream fetch.
	Coalesce bool
	// ServeStale returns the last good dataset when a refresh fails.
	ServeStale bool
}

func loadSheet() SheetConfig {
	return SheetConfig{
		URL:       envOrDefault(envSheetURL, ""),
		UserAgent: envOrDefault(envSheetUserAgent, ""),
		Timeout:   durationEnvOrDefault(envSheetTimeout, defaultSheetTimeout),
	}
}

func loadCache() CacheConfig {
	return CacheConfig{
		TTL:        durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		Coalesce:   boolEnvOrDefault(envCacheCoalesce, false),
		ServeStale: boolEnvOrDefault(envCacheServeStale, false),
	}
}
