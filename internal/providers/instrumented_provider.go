package providers

import (
	"context"
	"log/slog"
	"time"

	"cfb-matchups-service/internal/domain/matchups"
	"cfb-matchups-service/internal/logging"
	"cfb-matchups-service/internal/metrics"
)

// instrumentedProvider wraps a MatchupProvider with attempt metrics and logging.
// It makes exactly one upstream call per fetch.
type instrumentedProvider struct {
	inner   MatchupProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
	name    string
}

// NewInstrumentedProvider wraps inner so every fetch is timed, counted and logged under name.
func NewInstrumentedProvider(inner MatchupProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) MatchupProvider {
	if name == "" {
		name = "provider"
	}
	return &instrumentedProvider{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		name:    name,
	}
}

func (p *instrumentedProvider) FetchMatchups(ctx context.Context) (matchups.Dataset, error) {
	logger := logging.FromContext(ctx, p.logger)
	if p.inner == nil {
		logWithProvider(ctx, logger, slog.LevelWarn, p.name, "provider unavailable")
		return nil, ErrProviderUnavailable
	}

	start := time.Now()
	ds, err := p.inner.FetchMatchups(ctx)
	elapsed := time.Since(start)
	p.metrics.RecordProviderAttempt(p.name, elapsed, err)

	if err != nil {
		logWithProvider(ctx, logger, slog.LevelWarn, p.name, "provider fetch failed",
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any("error", err),
		)
		return nil, err
	}

	logWithProvider(ctx, logger, slog.LevelDebug, p.name, "provider fetch complete",
		slog.Int(logging.FieldCount, len(ds)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return ds, nil
}

// Unwrap exposes the wrapped provider.
func (p *instrumentedProvider) Unwrap() MatchupProvider {
	return p.inner
}
