package matchups

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	domainmatchups "cfb-matchups-service/internal/domain/matchups"
	"cfb-matchups-service/internal/logging"
	"cfb-matchups-service/internal/metrics"
	"cfb-matchups-service/internal/providers"
	"cfb-matchups-service/internal/store"
)

// DefaultTTL is how long a fetched dataset is served before the next refresh.
const DefaultTTL = 300 * time.Second

const refreshKey = "matchups"

// Store defines the contract for holding the cached dataset and its fetch time.
type Store interface {
	Snapshot() (store.Entry, bool)
	Set(ds domainmatchups.Dataset, fetchedAt time.Time)
}

// Options tunes the refresh cache. The zero value gives the plain
// fetch-if-stale behaviour with DefaultTTL and the wall clock.
type Options struct {
	TTL time.Duration
	// Coalesce makes concurrent stale callers share one upstream fetch.
	Coalesce bool
	// ServeStale returns the stored dataset when a refresh fails instead of an empty one.
	ServeStale bool
	Now        func() time.Time
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Status describes the recent health of the refresh cache.
type Status struct {
	LastAttempt time.Time
	LastSuccess time.Time
	LastError   string
	Rows        int
}

// IsReady reports whether a dataset has been fetched at least once.
func (s Status) IsReady() bool {
	return !s.LastSuccess.IsZero()
}

// Service serves the matchup dataset, refetching it from the provider once it is older than the TTL.
type Service struct {
	provider   providers.MatchupProvider
	store      Store
	ttl        time.Duration
	coalesce   bool
	serveStale bool
	now        func() time.Time
	logger     *slog.Logger
	metrics    *metrics.Recorder
	group      singleflight.Group

	statusMu sync.RWMutex
	status   Status
}

// NewService constructs a Service backed by provider and store.
func NewService(provider providers.MatchupProvider, st Store, opts Options) *Service {
	if st == nil {
		st = store.NewMemoryStore()
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		provider:   provider,
		store:      st,
		ttl:        ttl,
		coalesce:   opts.Coalesce,
		serveStale: opts.ServeStale,
		now:        now,
		logger:     opts.Logger,
		metrics:    opts.Metrics,
	}
}

// Dataset returns the cached dataset while it is fresh, otherwise fetches a
// new one. A failed fetch leaves the cache untouched and yields an empty
// dataset for this call (or the stale one when ServeStale is set).
func (s *Service) Dataset(ctx context.Context) domainmatchups.Dataset {
	now := s.now()
	if entry, ok := s.store.Snapshot(); ok && now.Sub(entry.FetchedAt) < s.ttl {
		s.metrics.RecordCacheLookup(true)
		logging.Debug(logging.FromContext(ctx, s.logger), "served cached matchups",
			slog.Bool(logging.FieldCacheHit, true),
			slog.Int64(logging.FieldCacheAge, now.Sub(entry.FetchedAt).Milliseconds()),
		)
		return entry.Dataset
	}
	s.metrics.RecordCacheLookup(false)

	ds, err := s.refresh(ctx, now)
	if err == nil {
		return ds
	}

	logger := logging.FromContext(ctx, s.logger)
	logging.Error(logger, "matchup refresh failed", err)
	if s.serveStale {
		if entry, ok := s.store.Snapshot(); ok {
			logging.Warn(logger, "serving stale matchups",
				slog.Int(logging.FieldCount, len(entry.Dataset)),
				slog.Int64(logging.FieldCacheAge, now.Sub(entry.FetchedAt).Milliseconds()),
			)
			return entry.Dataset
		}
	}
	return domainmatchups.Dataset{}
}

// Refresh fetches a new dataset regardless of freshness and stores it on
// success. Failures are returned and leave the cache untouched.
func (s *Service) Refresh(ctx context.Context) (domainmatchups.Dataset, error) {
	return s.refresh(ctx, s.now())
}

// Status returns a snapshot of the cache's recent refresh health.
func (s *Service) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}

// TTL reports the configured freshness window.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

func (s *Service) refresh(ctx context.Context, now time.Time) (domainmatchups.Dataset, error) {
	if !s.coalesce {
		return s.fetchAndStore(ctx, now)
	}

	// The shared fetch outlives any single caller's cancellation.
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do(refreshKey, func() (any, error) {
		return s.fetchAndStore(shared, now)
	})
	if err != nil {
		return nil, err
	}
	return v.(domainmatchups.Dataset).Clone(), nil
}

func (s *Service) fetchAndStore(ctx context.Context, now time.Time) (domainmatchups.Dataset, error) {
	s.recordAttempt(now)
	if s.provider == nil {
		s.recordFailure(providers.ErrProviderUnavailable)
		s.metrics.RecordCacheRefresh(0, providers.ErrProviderUnavailable)
		return nil, providers.ErrProviderUnavailable
	}

	ds, err := s.provider.FetchMatchups(ctx)
	s.metrics.RecordCacheRefresh(len(ds), err)
	if err != nil {
		s.recordFailure(err)
		return nil, err
	}
	if ds == nil {
		ds = domainmatchups.Dataset{}
	}

	s.store.Set(ds, now)
	s.recordSuccess(now, len(ds))
	logging.Info(logging.FromContext(ctx, s.logger), "matchups refreshed",
		slog.Int(logging.FieldCount, len(ds)),
		slog.Int64(logging.FieldDurationMS, s.now().Sub(now).Milliseconds()),
	)
	return ds, nil
}

func (s *Service) recordAttempt(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.LastAttempt = at
}

func (s *Service) recordSuccess(at time.Time, rows int) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.LastSuccess = at
	s.status.LastError = ""
	s.status.Rows = rows
}

func (s *Service) recordFailure(err error) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	if err != nil {
		s.status.LastError = err.Error()
	}
}
