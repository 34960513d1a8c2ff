// Package httptransport assembles the HTTP surface: middleware chain, domain
// routes, health and metrics endpoints. It holds no business logic.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	consenthandler "consentry/internal/consent/handler"
	locationhandler "consentry/internal/location/handler"
	"consentry/internal/platform/metrics"
	"consentry/internal/platform/middleware"
	"consentry/pkg/platform/httputil"
)

const requestTimeout = 30 * time.Second

// Config carries the router's collaborators.
type Config struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	AllowedOrigins []string
	Consent        *consenthandler.Handler
	Location       *locationhandler.Handler
}

// NewRouter wires the middleware chain and mounts the domain handlers.
func NewRouter(cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Latency(cfg.Metrics))

	// CORS sits outside the JSON content-type check so OPTIONS pre-flight
	// requests pass through.
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}).Handler)

	r.Get("/healthz", handleHealthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		cfg.Consent.Register(r)
		cfg.Location.Register(r)
	})

	return r
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
