package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"cfb-matchups-service/internal/domain/matchups"
)

// StubProvider is a test double for providers.MatchupProvider.
type StubProvider struct {
	mu      sync.Mutex
	Dataset matchups.Dataset
	Err     error
	Calls   atomic.Int32
	// Notify is closed on the first fetch.
	Notify chan struct{}
	// Gate, when set, blocks each fetch until it is closed or ctx is done.
	Gate chan struct{}
}

// SetResult swaps the dataset and error returned by subsequent fetches.
func (s *StubProvider) SetResult(ds matchups.Dataset, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Dataset = ds
	s.Err = err
}

// FetchMatchups returns the configured dataset and error while tracking calls.
func (s *StubProvider) FetchMatchups(ctx context.Context) (matchups.Dataset, error) {
	s.Calls.Add(1)
	s.mu.Lock()
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	gate := s.Gate
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Dataset.Clone(), s.Err
}

// StubRefresher is a test double for the poller's refresh target.
type StubRefresher struct {
	mu     sync.Mutex
	Result matchups.Dataset
	Err    error
	Calls  atomic.Int32
	// Notify is closed on the first refresh.
	Notify chan struct{}
	once   sync.Once
}

// SetErr swaps the error returned by subsequent refreshes.
func (s *StubRefresher) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Err = err
}

// Refresh returns Result and Err and closes Notify on the first call.
func (s *StubRefresher) Refresh(ctx context.Context) (matchups.Dataset, error) {
	_ = ctx
	s.Calls.Add(1)
	if s.Notify != nil {
		s.once.Do(func() { close(s.Notify) })
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Result.Clone(), nil
}
