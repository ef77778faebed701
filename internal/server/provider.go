package server

import (
	"log/slog"

	"cfb-matchups-service/internal/config"
	"cfb-matchups-service/internal/providers"
	"cfb-matchups-service/internal/providers/fixture"
	"cfb-matchups-service/internal/providers/sheets"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.MatchupProvider {
	switch cfg.Provider {
	case "sheets", "":
		return sheets.NewClient(sheets.Config{
			URL:       cfg.Sheet.URL,
			UserAgent: cfg.Sheet.UserAgent,
			Timeout:   cfg.Sheet.Timeout,
		})
	case "fixture":
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
