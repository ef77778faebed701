package store

import (
	"sync"
	"testing"
	"time"

	"cfb-matchups-service/internal/domain/matchups"
)

func TestMemoryStoreStartsEmpty(t *testing.T) {
	s := NewMemoryStore()
	if _, ok := s.Snapshot(); ok {
		t.Fatalf("expected empty store")
	}
}

func TestMemoryStoreSetReplacesSnapshot(t *testing.T) {
	s := NewMemoryStore()
	first := time.Date(2024, 11, 30, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Minute)

	s.Set(matchups.Dataset{{AwayTeam: "A"}, {AwayTeam: "B"}}, first)
	s.Set(matchups.Dataset{{AwayTeam: "C"}}, second)

	entry, ok := s.Snapshot()
	if !ok {
		t.Fatalf("expected stored entry")
	}
	if len(entry.Dataset) != 1 || entry.Dataset[0].AwayTeam != "C" {
		t.Fatalf("expected wholesale replacement, got %+v", entry.Dataset)
	}
	if !entry.FetchedAt.Equal(second) {
		t.Fatalf("expected fetch time %s, got %s", second, entry.FetchedAt)
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	input := matchups.Dataset{{AwayTeam: "A"}}
	s.Set(input, time.Now())

	input[0].AwayTeam = "mutated"
	entry, _ := s.Snapshot()
	if entry.Dataset[0].AwayTeam != "A" {
		t.Fatalf("expected store to copy on set")
	}

	entry.Dataset[0].AwayTeam = "mutated"
	again, _ := s.Snapshot()
	if again.Dataset[0].AwayTeam != "A" {
		t.Fatalf("expected store to copy on read")
	}
}

func TestMemoryStoreNilDatasetIsPresentAndEmpty(t *testing.T) {
	s := NewMemoryStore()
	s.Set(nil, time.Now())

	entry, ok := s.Snapshot()
	if !ok {
		t.Fatalf("expected entry to be present")
	}
	if entry.Dataset == nil || !entry.Dataset.Empty() {
		t.Fatalf("expected non-nil empty dataset, got %#v", entry.Dataset)
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.Set(matchups.Dataset{{AwayTeam: "team"}}, time.Unix(int64(i), 0))
		}(i)
		go func() {
			defer wg.Done()
			if entry, ok := s.Snapshot(); ok && len(entry.Dataset) != 1 {
				t.Errorf("expected consistent snapshot, got %d rows", len(entry.Dataset))
			}
		}()
	}
	wg.Wait()
}
