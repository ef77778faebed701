package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"cfb-matchups-service/internal/domain/matchups"
	"cfb-matchups-service/internal/logging"
	"cfb-matchups-service/internal/render"
)

// DatasetSource supplies the matchup dataset for a request. It never fails;
// an empty dataset means there is nothing to show.
type DatasetSource interface {
	Dataset(ctx context.Context) matchups.Dataset
}

// ReadyFunc reports whether the service can serve matchups and, if not, why.
type ReadyFunc func() (ready bool, reason string)

type renderFunc func(matchups.Dataset) (string, error)

// Handler wires HTTP routes to the matchup cache.
type Handler struct {
	source  DatasetSource
	logger  *slog.Logger
	readyFn ReadyFunc
	render  renderFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(source DatasetSource, logger *slog.Logger, readyFn ReadyFunc) *Handler {
	return &Handler{
		source:  source,
		logger:  logger,
		readyFn: readyFn,
		render:  render.RenderPage,
	}
}

// Index renders the matchup cards, or the unavailable fragment when there are none.
func (h *Handler) Index(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if r.URL.Path != "/" {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	var ds matchups.Dataset
	if h.source != nil {
		ds = h.source.Dataset(r.Context())
	}
	if ds.Empty() {
		logging.Info(logger, "no matchups to serve")
		writeHTML(w, nethttp.StatusOK, render.UnavailableFragment, h.logger)
		return
	}

	page, err := h.render(ds)
	if err != nil {
		logging.Error(logger, "render matchups failed", err, slog.Int(logging.FieldCount, len(ds)))
		writeHTML(w, nethttp.StatusOK, render.UnavailableFragment, h.logger)
		return
	}
	logging.Info(logger, "served matchups", slog.Int(logging.FieldCount, len(ds)))
	writeHTML(w, nethttp.StatusOK, page, h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.readyFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	ready, reason := h.readyFn()
	if ready {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if reason == "" {
		reason = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, reason, h.logger)
}
