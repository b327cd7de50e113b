package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"accounts/internal/accounts/handler"
	"accounts/internal/platform/health"
	"accounts/internal/platform/metrics"
	request "accounts/pkg/platform/middleware/request"
)

// newRouter mounts health, metrics and the accounts API behind the request middleware.
func newRouter(svc handler.Service, h *health.Handler, reg *prometheus.Registry, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(request.Recovery(log))
	r.Use(request.RequestID)
	r.Use(request.Logger(log))
	r.Use(request.LatencyMiddleware(request.NewMetrics(reg)))

	h.Register(r)
	r.Method(http.MethodGet, "/metrics", metrics.Handler(reg))

	r.Group(func(r chi.Router) {
		r.Use(request.BodyLimit(request.DefaultMaxBodyBytes))
		r.Use(request.ContentTypeJSON)
		handler.New(svc, log).Register(r)
	})
	return r
}
