package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cfb-matchups-service/internal/domain/matchups"
	"cfb-matchups-service/internal/http/handlers"
	"cfb-matchups-service/internal/metrics"
	"cfb-matchups-service/internal/testutil"
)

type fixedSource matchups.Dataset

func (f fixedSource) Dataset(ctx context.Context) matchups.Dataset {
	_ = ctx
	return matchups.Dataset(f)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	h := handlers.NewHandler(fixedSource(testutil.SampleDataset("A wins")), nil, nil)
	router := NewRouter(h, nil, metrics.NewRecorder())

	cases := map[string]int{
		"/":       http.StatusOK,
		"/health": http.StatusOK,
		"/ready":  http.StatusOK,
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
		if rr.Header().Get("X-Request-ID") == "" {
			t.Fatalf("route %s expected request id header", path)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	h := handlers.NewHandler(fixedSource(nil), nil, nil)
	router := NewRouter(h, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", rr.Code)
	}
}

func TestRouterRejectsNonGet(t *testing.T) {
	h := handlers.NewHandler(fixedSource(nil), nil, nil)
	router := NewRouter(h, nil, nil)

	rr := testutil.Serve(router, http.MethodPost, "/", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}
