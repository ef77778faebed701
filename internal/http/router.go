package http

import (
	"log/slog"
	nethttp "net/http"

	"cfb-matchups-service/internal/http/handlers"
	"cfb-matchups-service/internal/http/middleware"
	"cfb-matchups-service/internal/metrics"
)

// NewRouter registers HTTP routes on a ServeMux and wraps them with request logging.
func NewRouter(handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	// "/" is the ServeMux catch-all; Index rejects anything but the root itself.
	mux.HandleFunc("/", handler.Index)
	return middleware.LoggingMiddleware(logger, recorder, mux)
}
