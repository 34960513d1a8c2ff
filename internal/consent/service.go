package consent

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"consentry/internal/user"
	dErrors "consentry/pkg/domain-errors"
	"consentry/pkg/platform/sentinel"
)

// UserStore is the slice of the user-account collaborator this service needs:
// session resolution and the cascading delete.
type UserStore interface {
	FindBySessionID(ctx context.Context, sessionID string) (user.User, error)
	Delete(ctx context.Context, id string) error
}

// Service owns the consent-record lifecycle: the find-or-create upsert with
// userId precedence, the session join, and the GDPR cascading delete. It keeps
// orchestration out of handlers and persistence concerns in the stores.
type Service struct {
	store  Store
	users  UserStore
	tracer trace.Tracer
}

func NewService(store Store, users UserStore) *Service {
	return &Service{
		store:  store,
		users:  users,
		tracer: otel.Tracer("consentry/internal/consent"),
	}
}

// SavePreferences upserts a consent record for the key the caller supplied.
// When both keys are present only the userId branch runs; the consentId value
// plays no routing role.
func (s *Service) SavePreferences(ctx context.Context, req SaveRequest) error {
	ctx, span := s.tracer.Start(ctx, "consent.SavePreferences")
	defer span.End()

	prefs, ok := req.DecodePreferences()
	if !ok {
		return dErrors.New(dErrors.CodeValidation, "Preferences are required.")
	}

	switch {
	case req.UserID != "":
		return s.upsert(ctx, prefs,
			func(ctx context.Context) (ConsentRecord, error) { return s.store.FindByUserID(ctx, req.UserID) },
			ConsentRecord{UserID: req.UserID},
		)
	case req.ConsentID != "":
		return s.upsert(ctx, prefs,
			func(ctx context.Context) (ConsentRecord, error) { return s.store.FindByConsentID(ctx, req.ConsentID) },
			ConsentRecord{ConsentID: req.ConsentID},
		)
	default:
		return dErrors.New(dErrors.CodeValidation, "Either userId or consentId is required.")
	}
}

// upsert replaces preferences on the record found by the key lookup, or
// creates a fresh record from the template when none exists.
func (s *Service) upsert(ctx context.Context, prefs Preferences, find func(context.Context) (ConsentRecord, error), fresh ConsentRecord) error {
	now := time.Now().UTC()

	record, err := find(ctx)
	switch {
	case err == nil:
		record.Preferences = prefs
		record.UpdatedAt = now
	case errors.Is(err, sentinel.ErrNotFound):
		record = fresh
		record.Preferences = prefs
		record.CreatedAt = now
		record.UpdatedAt = now
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "Internal server error.")
	}

	if err := s.store.Save(ctx, record); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "Internal server error.")
	}
	return nil
}

// GetPreferences looks up the preference mapping by userId. Lookup by
// consentId is deliberately unsupported on this path.
func (s *Service) GetPreferences(ctx context.Context, userID string) (Preferences, error) {
	ctx, span := s.tracer.Start(ctx, "consent.GetPreferences")
	defer span.End()

	if userID == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "userId is required.")
	}

	record, err := s.store.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "Preferences not found for this user.")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "Internal server error.")
	}
	return record.Preferences, nil
}

// CheckSession joins a session to its user and consent record.
//
// The consent lookup is keyed on sessionId, a field the save path never
// populates; records must arrive with a sessionId through the store directly
// for this join to succeed. Kept as-is intentionally.
func (s *Service) CheckSession(ctx context.Context, sessionID string) (SessionInfo, error) {
	ctx, span := s.tracer.Start(ctx, "consent.CheckSession")
	defer span.End()

	if sessionID == "" {
		return SessionInfo{}, dErrors.New(dErrors.CodeValidation, "Session ID is required.")
	}

	u, err := s.users.FindBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return SessionInfo{}, dErrors.New(dErrors.CodeNotFound, "Session not found.")
		}
		return SessionInfo{}, dErrors.Wrap(err, dErrors.CodeInternal, "Internal server error.")
	}

	record, err := s.store.FindBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return SessionInfo{}, dErrors.New(dErrors.CodeNotFound, "Consent not found.")
		}
		return SessionInfo{}, dErrors.Wrap(err, dErrors.CodeInternal, "Internal server error.")
	}

	return SessionInfo{UserID: u.ID, Preferences: record.Preferences}, nil
}

// DeleteData removes the consent record for consentId and cascades to the
// owning user account. Consent and identity leave together; a record that
// never carried a userId simply has no account to remove.
func (s *Service) DeleteData(ctx context.Context, consentID string) error {
	ctx, span := s.tracer.Start(ctx, "consent.DeleteData")
	defer span.End()

	if consentID == "" {
		return dErrors.New(dErrors.CodeValidation, "Consent ID is required.")
	}

	record, err := s.store.DeleteByConsentID(ctx, consentID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "Consent not found.")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "Internal server error.")
	}

	if record.UserID != "" {
		if err := s.users.Delete(ctx, record.UserID); err != nil && !errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Wrap(err, dErrors.CodeInternal, "Internal server error.")
		}
	}
	return nil
}
