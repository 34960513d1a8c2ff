// Package handler exposes the location capture endpoints over HTTP.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"consentry/internal/location"
	"consentry/internal/platform/metrics"
	"consentry/internal/platform/middleware"
	"consentry/pkg/platform/httputil"
)

// Handler handles location HTTP requests.
type Handler struct {
	logger  *slog.Logger
	store   location.Store
	metrics *metrics.Metrics
}

func New(store location.Store, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		store:   store,
		metrics: m,
	}
}

// Register mounts the location routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/save-location", h.handleSaveLocation)
	r.Delete("/delete-location/{consentId}", h.handleDeleteLocation)
}

func (h *Handler) handleSaveLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	record, ok := httputil.DecodeJSON[location.Record](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	// The device label and the fallback IP come from the request itself,
	// never from the payload.
	record.Device = location.DeviceLabel(middleware.GetUserAgent(ctx))
	if record.IPAddress == "" {
		record.IPAddress = middleware.GetClientIP(ctx)
	}

	saved, err := h.store.Save(ctx, *record)
	if err != nil {
		h.logger.Error("failed to save location data", "error", err, "consent_id", record.ConsentID)
		httputil.WriteMessage(w, http.StatusInternalServerError, "Failed to save location data: "+err.Error())
		return
	}

	h.metrics.IncrementLocationSaves()
	httputil.WriteJSON(w, http.StatusOK, saved)
}

func (h *Handler) handleDeleteLocation(w http.ResponseWriter, r *http.Request) {
	consentID := chi.URLParam(r, "consentId")

	result, err := h.store.Delete(r.Context(), consentID)
	if err != nil {
		h.logger.Error("failed to delete location data", "error", err, "consent_id", consentID)
		httputil.WriteMessage(w, http.StatusInternalServerError, "Failed to delete location data: "+err.Error())
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}
