package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cfb-matchups-service/internal/config"
	"cfb-matchups-service/internal/domain/matchups"
	"cfb-matchups-service/internal/poller"
	"cfb-matchups-service/internal/providers/fixture"
	"cfb-matchups-service/internal/providers/sheets"
	"cfb-matchups-service/internal/render"
	"cfb-matchups-service/internal/teststubs"
	"cfb-matchups-service/internal/testutil"
)

func sheetServer(t *testing.T, status *atomic.Int32, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if code := int(status.Load()); code != http.StatusOK {
			w.WriteHeader(code)
			return
		}
		_, _ = w.Write([]byte(testutil.SampleCSV))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func sheetConfig(url string) config.Config {
	return config.Config{
		Port:     "0",
		Provider: "sheets",
		Sheet:    config.SheetConfig{URL: url, Timeout: time.Second},
		Cache:    config.CacheConfig{TTL: time.Minute},
	}
}

func TestServerServesMatchupsFromSheet(t *testing.T) {
	var status, hits atomic.Int32
	status.Store(http.StatusOK)
	ts := sheetServer(t, &status, &hits)

	srv := newServerWithProvider(sheetConfig(ts.URL), nil, nil)
	router := srv.Handler()

	rr := testutil.Serve(router, http.MethodGet, "/", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertBodyContains(t, rr, "Ohio State wins")
	testutil.AssertBodyContains(t, rr, `<div class="spread">(-3.5)</div>`)
	testutil.AssertBodyContains(t, rr, "via.placeholder.com/60x60.png")
	if n := strings.Count(rr.Body.String(), `class="spread"`); n != 1 {
		t.Fatalf("expected only the away spread rendered, got %d", n)
	}

	rr = testutil.Serve(router, http.MethodGet, "/", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if hits.Load() != 1 {
		t.Fatalf("expected second request served from cache, sheet hit %d times", hits.Load())
	}

	rr = testutil.Serve(router, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestServerServesFragmentWhenSheetFails(t *testing.T) {
	var status, hits atomic.Int32
	status.Store(http.StatusInternalServerError)
	ts := sheetServer(t, &status, &hits)

	srv := newServerWithProvider(sheetConfig(ts.URL), nil, nil)
	router := srv.Handler()

	rr := testutil.Serve(router, http.MethodGet, "/", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if rr.Body.String() != render.UnavailableFragment {
		t.Fatalf("expected unavailable fragment, got %q", rr.Body.String())
	}

	rr = testutil.Serve(router, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	testutil.AssertBodyContains(t, rr, "unexpected status 500")

	status.Store(http.StatusOK)
	rr = testutil.Serve(router, http.MethodGet, "/", nil)
	testutil.AssertBodyContains(t, rr, "Ohio State wins")
	if hits.Load() != 2 {
		t.Fatalf("expected failed fetch not cached, sheet hit %d times", hits.Load())
	}
}

func TestServerWarmerFillsCache(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider := &teststubs.StubProvider{
		Dataset: matchups.Dataset{testutil.SampleRow("Navy wins")},
		Notify:  make(chan struct{}),
	}

	cfg := config.Config{Provider: "stub", WarmInterval: time.Hour, Cache: config.CacheConfig{TTL: time.Hour}}
	srv := newServerWithProvider(cfg, nil, provider)
	if srv.poller == nil {
		t.Fatalf("expected warmer when interval is set")
	}
	srv.poller.Start(ctx)
	defer func() { _ = srv.poller.Stop(context.Background()) }()

	select {
	case <-provider.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for warmer to fetch")
	}

	deadline := time.Now().Add(time.Second)
	for !srv.Cache().Status().IsReady() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/", nil)
	testutil.AssertBodyContains(t, rr, "Navy wins")
	if provider.Calls.Load() != 1 {
		t.Fatalf("expected request served from warmed cache, provider called %d times", provider.Calls.Load())
	}
}

func TestServerWithoutWarmIntervalHasNoPoller(t *testing.T) {
	srv := newServerWithProvider(config.Config{Provider: "fixture"}, nil, fixture.New())
	if srv.poller != nil {
		t.Fatalf("expected no warmer by default")
	}
}

func TestSelectProviderFallsBackToFixture(t *testing.T) {
	provider := selectProvider(config.Config{Provider: "unknown"}, nil)
	if _, ok := provider.(*fixture.Provider); !ok {
		t.Fatalf("expected fixture fallback, got %T", provider)
	}
}

func TestSelectProviderChoosesSheets(t *testing.T) {
	for _, name := range []string{"sheets", ""} {
		provider := selectProvider(config.Config{Provider: name}, nil)
		if _, ok := provider.(*sheets.Client); !ok {
			t.Fatalf("provider %q: expected sheets client, got %T", name, provider)
		}
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("Sheets", nil); got != "sheets" {
		t.Fatalf("expected lower-cased name, got %s", got)
	}
	if got := normalizeProviderName("", fixture.New()); got != "*fixture.provider" {
		t.Fatalf("expected type-derived name, got %s", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected generic name, got %s", got)
	}
}

func TestNewConstructsServer(t *testing.T) {
	cfg := config.Config{
		Port:     "0",
		Provider: "fixture",
		Metrics: config.MetricsConfig{
			Enabled: false,
		},
	}
	srv := New(cfg, nil)
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/", nil)
	testutil.AssertBodyContains(t, rr, "Ohio State")
}

func TestGracefulShutdownCallsStopAndShutdown(t *testing.T) {
	p := &testutil.StubPoller{}
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, nil, httpSrv, p)
	srv.gracefulShutdown()

	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
}

func TestGracefulShutdownWithoutPoller(t *testing.T) {
	httpSrv := &testutil.StubHTTPServer{}
	srv := newServerWithDeps(config.Config{}, nil, nil, httpSrv, nil)
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	p := &testutil.StubPoller{}
	blocking := &testutil.BlockingHTTPServer{
		AddrVal:    ":0",
		HandlerVal: http.NewServeMux(),
		Unblock:    make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, nil, blocking, p)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestGracefulShutdownContinuesWhenPollerStopErrors(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	p := &testutil.StubPoller{Err: errors.New("stop failure"), StatusVal: poller.Status{}}
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, logger, nil, httpSrv, p)
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
	if !strings.Contains(buf.String(), "stop failure") {
		t.Fatalf("expected stop error logged, got %s", buf.String())
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	srv := newServerWithDeps(config.Config{}, nil, nil, &testutil.ErrHTTPServer{}, &testutil.StubPoller{})

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	plr := &testutil.StubPoller{}
	httpSrv := &testutil.CloseableHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, nil, httpSrv, plr)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if plr.StartCalls != 1 {
		t.Fatalf("expected poller Start called once, got %d", plr.StartCalls)
	}
	if plr.StopCalls != 1 {
		t.Fatalf("expected poller Stop called once, got %d", plr.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls)
	}
}

func TestBuildCacheOwnsStore(t *testing.T) {
	cfg := config.Config{Cache: config.CacheConfig{TTL: 90 * time.Second}}
	provider := &teststubs.StubProvider{Dataset: testutil.SampleDataset("A wins")}

	cache := buildCache(cfg, provider, nil, nil)
	if cache.TTL() != 90*time.Second {
		t.Fatalf("expected configured ttl, got %s", cache.TTL())
	}
	if ds := cache.Dataset(context.Background()); len(ds) != 1 {
		t.Fatalf("expected fetched dataset, got %d rows", len(ds))
	}
	if ds := cache.Dataset(context.Background()); len(ds) != 1 {
		t.Fatalf("expected cached dataset, got %d rows", len(ds))
	}
	if provider.Calls.Load() != 1 {
		t.Fatalf("expected second lookup served from the cache's store, got %d fetches", provider.Calls.Load())
	}
}
