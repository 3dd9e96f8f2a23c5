package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Renmsd/tarsiah/internal/config"
	"github.com/Renmsd/tarsiah/internal/evaluator"
	"github.com/Renmsd/tarsiah/internal/hermes"
	"github.com/Renmsd/tarsiah/internal/store"
)

func NewRouter(s store.Store, h hermes.Client, e evaluator.Client, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(cfg.Server.RequestsPerMinute))

	comparisons := NewComparisonsHandler(e, h, cfg.MaxUploadBytes(), logger)
	tbls := NewTablesHandler(s, h, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/comparisons", comparisons.Create)
		r.Post("/comparisons/normalize", comparisons.Normalize)

		r.Post("/tables/parse", tbls.Parse)
		r.Get("/tables", tbls.List)
		r.Get("/tables/{name}", tbls.Get)

		r.Group(func(r chi.Router) {
			r.Use(TokenAuthMiddleware(cfg.Server.APIToken))
			r.Put("/tables/{name}", tbls.Save)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
