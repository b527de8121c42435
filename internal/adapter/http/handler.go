package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cac-insights/internal/core/domain"
	"cac-insights/internal/core/port"
)

// Options configures the presentation side of the handler.
type Options struct {
	// Tabs lists the dashboard tabs in display order. Empty means all.
	Tabs []domain.Tab
	// Gatherer backs the /metrics endpoint. Nil disables it.
	Gatherer prometheus.Gatherer
	// RequestTimeout bounds each request, dataset reads included. Zero
	// means no limit.
	RequestTimeout time.Duration
	// CORSOrigins enables cross-origin GETs on /api/v1 for these origins.
	CORSOrigins []string
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// Every page load and API call asks the use case for a fresh snapshot.
type Handler struct {
	svc    port.DashboardUseCase
	logger *slog.Logger
	tabs   []domain.Tab
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.DashboardUseCase, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{svc: svc, logger: logger, tabs: opts.Tabs}
	if len(h.tabs) == 0 {
		h.tabs = []domain.Tab{domain.TabDashboard, domain.TabModel, domain.TabRecommendations, domain.TabData}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	r.Get("/", h.handlePage)
	r.Get("/healthz", h.handleHealth)
	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}
	r.Route("/api/v1", func(r chi.Router) {
		if len(opts.CORSOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: opts.CORSOrigins,
				AllowedMethods: []string{"GET", "OPTIONS"},
				AllowedHeaders: []string{"Accept", "Content-Type"},
				MaxAge:         300,
			}))
		}
		r.Get("/dashboard", h.handleDashboard)
		r.Get("/summary", h.handleSummary)
		r.Get("/channels/cac", h.handleChannelCAC)
		r.Get("/channels/conversions", h.handleChannelConversions)
		r.Get("/histogram", h.handleHistogram)
		r.Get("/model", h.handleModel)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
