package store

import (
	"sync"
	"time"

	"cfb-matchups-service/internal/domain/matchups"
)

// Entry is a stored dataset together with the time it was fetched.
type Entry struct {
	Dataset   matchups.Dataset
	FetchedAt time.Time
}

// MemoryStore keeps a thread-safe snapshot of the last fetched dataset in memory.
// The dataset and its fetch time are always written together.
type MemoryStore struct {
	mu      sync.RWMutex
	entry   Entry
	present bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Snapshot returns a copy of the stored entry and whether one has been set.
func (s *MemoryStore) Snapshot() (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.present {
		return Entry{}, false
	}
	return Entry{Dataset: s.entry.Dataset.Clone(), FetchedAt: s.entry.FetchedAt}, true
}

// Set replaces the stored dataset and fetch time with a new snapshot.
func (s *MemoryStore) Set(ds matchups.Dataset, fetchedAt time.Time) {
	stored := ds.Clone()
	if stored == nil {
		stored = matchups.Dataset{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entry = Entry{Dataset: stored, FetchedAt: fetchedAt}
	s.present = true
}
