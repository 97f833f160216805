package api

import (
	"dispatch-board-service/internal/api/handlers"
	"dispatch-board-service/internal/platform/metrics"
	"dispatch-board-service/internal/services"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// collector and gatherer are optional; without them no HTTP metrics are
// recorded and /metrics is not mounted.
func NewRouter(svc *services.DispatchService, collector *metrics.PrometheusCollector, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	// Metrics sit outside Recoverer so recovered panics are counted as 500s.
	if collector != nil {
		r.Use(collector.Middleware)
	}
	r.Use(middleware.Recoverer)

	h := &handlers.AssignmentHandler{Service: svc}

	r.Get("/health", handlers.Health)
	r.Get("/licenses", handlers.Licenses)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/assignments", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Add)
		r.Post("/reorder", h.Reorder)

		r.Route("/{id}", func(r chi.Router) {
			r.Post("/optimize", h.Optimize)
			r.Post("/notify", h.Notify)
			r.Get("/map", h.MapLink)
		})
	})

	return r
}
