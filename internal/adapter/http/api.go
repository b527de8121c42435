package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"cac-insights/internal/core/domain"
	"cac-insights/internal/core/port"
)

// snapshot computes a fresh dashboard for the request. On failure it logs,
// writes the error response and returns nil.
func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) *domain.Dashboard {
	d, err := h.svc.Snapshot(r.Context())
	if err != nil {
		h.logger.Error("snapshot error",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
		if errors.Is(err, port.ErrLoad) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return nil
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil
	}
	return d
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleDashboard returns the complete snapshot as JSON.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if d := h.snapshot(w, r); d != nil {
		h.writeJSON(w, d)
	}
}

// handleSummary returns the overall CAC projection. An undefined overall
// CAC is written as null.
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	if d := h.snapshot(w, r); d != nil {
		h.writeJSON(w, d.Summary)
	}
}

// handleChannelCAC returns mean CAC per channel, cheapest first.
func (h *Handler) handleChannelCAC(w http.ResponseWriter, r *http.Request) {
	if d := h.snapshot(w, r); d != nil {
		h.writeJSON(w, d.CACPerChannel)
	}
}

func (h *Handler) handleChannelConversions(w http.ResponseWriter, r *http.Request) {
	if d := h.snapshot(w, r); d != nil {
		h.writeJSON(w, d.ConversionsPerChannel)
	}
}

func (h *Handler) handleHistogram(w http.ResponseWriter, r *http.Request) {
	if d := h.snapshot(w, r); d != nil {
		h.writeJSON(w, d.Histogram)
	}
}

// handleModel returns the model metrics. Their source field says whether
// they are configured placeholders, computed, or unavailable.
func (h *Handler) handleModel(w http.ResponseWriter, r *http.Request) {
	if d := h.snapshot(w, r); d != nil {
		h.writeJSON(w, d.Model)
	}
}
