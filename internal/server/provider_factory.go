package server

import (
	"log/slog"

	"cfb-matchups-service/internal/config"
	"cfb-matchups-service/internal/metrics"
	"cfb-matchups-service/internal/providers"
)

// providerFactory assembles the provider with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.MatchupProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(cfg config.Config, base providers.MatchupProvider) providers.MatchupProvider {
	return providers.NewInstrumentedProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base))
}

// NewProvider builds the configured provider with the same instrumentation the server uses.
func NewProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.MatchupProvider {
	return newProviderFactory(logger, recorder).build(cfg)
}
