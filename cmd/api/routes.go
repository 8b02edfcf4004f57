package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/openlluna/website/internal/infra/http/handlers"
	"github.com/openlluna/website/internal/infra/http/middleware"
	"github.com/openlluna/website/internal/infra/web"
)

type application struct {
	contactHandler *handlers.ContactHandler
	healthHandler  *handlers.HealthHandler
	pageHandler    *handlers.PageHandler
	rateLimiter    *middleware.RateLimiter
	allowedOrigins []string
	logger         *zap.Logger
}

func (app *application) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLogger(app.logger))
	r.Use(middleware.Metrics)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", app.healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/contact", app.pageHandler.Contact)
	r.Handle("/static/*", web.StaticHandler())

	r.With(app.rateLimiter.Handler).Post("/api/contact", app.contactHandler.Handle)

	return r
}
