package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"consentry/internal/consent"
	"consentry/internal/platform/metrics"
	"consentry/internal/platform/middleware"
	dErrors "consentry/pkg/domain-errors"
	"consentry/pkg/platform/httputil"
)

// Service defines the interface for consent operations.
type Service interface {
	SavePreferences(ctx context.Context, req consent.SaveRequest) error
	GetPreferences(ctx context.Context, userID string) (consent.Preferences, error)
	CheckSession(ctx context.Context, sessionID string) (consent.SessionInfo, error)
	DeleteData(ctx context.Context, consentID string) error
}

// Handler handles consent-related endpoints.
type Handler struct {
	logger   *slog.Logger
	consent  Service
	metrics  *metrics.Metrics
	verifier middleware.TokenVerifier
}

// New creates a new consent Handler.
func New(
	consentService Service,
	logger *slog.Logger,
	m *metrics.Metrics,
	verifier middleware.TokenVerifier) *Handler {
	return &Handler{
		logger:   logger,
		consent:  consentService,
		metrics:  m,
		verifier: verifier,
	}
}

// Register registers the consent routes with the chi router. Only delete-data
// sits behind the auth gate; the rest of the surface is open.
func (h *Handler) Register(r chi.Router) {
	r.Post("/save", h.handleSavePreferences)
	r.Get("/get-preferences", h.handleGetPreferences)
	r.Get("/check-session", h.handleCheckSession)
	r.With(middleware.RequireAuth(h.verifier, h.logger)).
		Delete("/delete-data", h.handleDeleteData)
}

func (h *Handler) handleSavePreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeJSON[consent.SaveRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.consent.SavePreferences(ctx, *req); err != nil {
		h.writeError(w, r, "failed to save preferences", err)
		return
	}

	h.metrics.IncrementPreferencesSaved()
	httputil.WriteMessage(w, http.StatusOK, "Preferences saved successfully.")
}

func (h *Handler) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.URL.Query().Get("userId")

	prefs, err := h.consent.GetPreferences(ctx, userID)
	if err != nil {
		h.writeError(w, r, "failed to fetch preferences", err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]consent.Preferences{
		"preferences": prefs,
	})
}

func (h *Handler) handleCheckSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := r.URL.Query().Get("sessionId")

	info, err := h.consent.CheckSession(ctx, sessionID)
	if err != nil {
		h.writeError(w, r, "failed to check session", err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, info)
}

func (h *Handler) handleDeleteData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeJSON[consent.DeleteDataRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	// The gate proved a valid caller; the consentId to delete still comes from
	// the body, not from the principal.
	if err := h.consent.DeleteData(ctx, req.ConsentID); err != nil {
		h.writeError(w, r, "failed to delete data", err)
		return
	}

	h.metrics.IncrementDataDeletions()
	httputil.WriteMessage(w, http.StatusOK, "Your data has been deleted as per GDPR.")
}

// writeError logs the failure at a severity matching its class and writes the
// message envelope. Internal causes reach the log, never the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	switch {
	case dErrors.HasCode(err, dErrors.CodeValidation), dErrors.HasCode(err, dErrors.CodeNotFound):
		h.logger.WarnContext(ctx, msg,
			"error", err,
			"request_id", requestID,
		)
	default:
		h.logger.ErrorContext(ctx, msg,
			"error", err,
			"request_id", requestID,
		)
	}
	httputil.WriteError(w, err)
}
