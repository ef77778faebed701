package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("sheets", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("sheets", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("sheets"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("sheets"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("sheets"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("sheets")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if empty := rec.Snapshot("unknown"); empty != (Snapshot{}) {
		t.Fatalf("expected zero snapshot for unknown provider, got %+v", empty)
	}
}

func TestRecorderTracksCache(t *testing.T) {
	rec := NewRecorder()
	rec.RecordCacheLookup(true)
	rec.RecordCacheLookup(false)
	rec.RecordCacheLookup(true)
	rec.RecordCacheRefresh(3, nil)
	rec.RecordCacheRefresh(0, errors.New("boom"))

	got := rec.Cache()
	if got.Hits != 2 || got.Misses != 1 || got.RefreshErrors != 1 {
		t.Fatalf("unexpected cache snapshot %+v", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("sheets", time.Millisecond, nil)
	rec.RecordCacheLookup(true)
	rec.RecordCacheRefresh(1, nil)
	rec.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
	rec.RecordPollerCycle(time.Millisecond, nil)

	if rec.ProviderCalls("sheets") != 0 || rec.Cache() != (CacheSnapshot{}) {
		t.Fatalf("expected zero values from nil recorder")
	}
}
