package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	slackCtrl "github.com/secmon-lab/oncall-override/pkg/controller/slack"
)

const serviceName = "oncall-override"

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

type serverOptions struct {
	rateLimit float64
	rateBurst int
}

// Option configures the HTTP server
type Option func(*serverOptions)

// WithRateLimit sets the token bucket applied to the Slack webhook routes
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(o *serverOptions) {
		o.rateLimit = requestsPerSecond
		o.rateBurst = burst
	}
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr, signingSecret string, slackHandler *slackCtrl.Handler, opts ...Option) *Server {
	options := &serverOptions{
		rateLimit: 20,
		rateBurst: 40,
	}
	for _, opt := range opts {
		opt(options)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(MetricsMiddleware)
	router.Use(middleware.Recoverer)

	router.Get("/health", handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/slack", func(r chi.Router) {
		r.Use(RateLimitMiddleware(options.rateLimit, options.rateBurst))
		r.Use(SlackSignatureMiddleware(signingSecret))
		r.Post("/commands", slackHandler.HandleCommand)
		r.Post("/interactions", slackHandler.HandleInteraction)
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": serviceName,
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}
