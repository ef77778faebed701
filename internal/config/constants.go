package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envSheetURL        = "SHEET_CSV_URL"
	envSheetUserAgent  = "SHEET_USER_AGENT"
	envSheetTimeout    = "SHEET_TIMEOUT"
	envCacheTTL        = "CACHE_TTL"
	envCacheCoalesce   = "CACHE_COALESCE"
	envCacheServeStale = "CACHE_SERVE_STALE"
	envWarmInterval    = "WARM_INTERVAL"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envDotEnvFile      = "DOTENV_FILE"

	defaultDotEnvFile   = ".env"
	defaultPort         = "5000"
	defaultProvider     = "sheets"
	defaultMetricsPort  = "9090"
	defaultServiceName  = "cfb-matchups-service"
	defaultSheetTimeout = 30 * time.Second
	// The sheet is republished every few minutes; five minutes keeps load on the publish endpoint low.
	defaultCacheTTL = 300 * time.Second
)
