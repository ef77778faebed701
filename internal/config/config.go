package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	Provider string
	Sheet    SheetConfig
	Cache    CacheConfig
	// WarmInterval enables the background cache warmer when positive.
	WarmInterval Duration
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A dotenv file (DOTENV_FILE, default .env) is applied first when present;
// variables already set in the environment win.
func Load() Config {
	loadDotEnv(envOrDefault(envDotEnvFile, defaultDotEnvFile))

	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		Provider:     envOrDefault(envProvider, defaultProvider),
		Sheet:        loadSheet(),
		Cache:        loadCache(),
		WarmInterval: durationEnvOrDefault(envWarmInterval, 0),
		Metrics:      loadMetrics(),
	}
}

func loadDotEnv(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return false
	}
	return godotenv.Load(path) == nil
}
