package consent

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"consentry/pkg/platform/sentinel"
)

// PostgresStore persists consent records in PostgreSQL. Partial unique indexes
// on user_id and consent_id back the find-or-create semantics under
// concurrency.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore constructs a PostgreSQL-backed consent store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, record ConsentRecord) error {
	prefsBytes, err := json.Marshal(record.Preferences)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	// Upsert on whichever alternate key the write is addressed by, with the
	// same userId precedence the service applies.
	var query string
	switch {
	case record.UserID != "":
		query = `
			INSERT INTO consents (user_id, consent_id, session_id, preferences, created_at, updated_at)
			VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6)
			ON CONFLICT (user_id) WHERE user_id IS NOT NULL DO UPDATE SET
				preferences = EXCLUDED.preferences,
				updated_at = EXCLUDED.updated_at
		`
	case record.ConsentID != "":
		query = `
			INSERT INTO consents (user_id, consent_id, session_id, preferences, created_at, updated_at)
			VALUES (NULLIF($1, ''), $2, NULLIF($3, ''), $4, $5, $6)
			ON CONFLICT (consent_id) WHERE consent_id IS NOT NULL DO UPDATE SET
				preferences = EXCLUDED.preferences,
				updated_at = EXCLUDED.updated_at
		`
	default:
		return fmt.Errorf("consent record has no addressable key")
	}

	_, err = s.db.ExecContext(ctx, query,
		record.UserID,
		record.ConsentID,
		record.SessionID,
		prefsBytes,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save consent: %w", err)
	}
	return nil
}

const selectColumns = `
	SELECT COALESCE(user_id, ''), COALESCE(consent_id, ''), COALESCE(session_id, ''),
		preferences, created_at, updated_at
	FROM consents
`

func (s *PostgresStore) FindByUserID(ctx context.Context, userID string) (ConsentRecord, error) {
	return s.findOne(ctx, selectColumns+` WHERE user_id = $1`, userID)
}

func (s *PostgresStore) FindByConsentID(ctx context.Context, consentID string) (ConsentRecord, error) {
	return s.findOne(ctx, selectColumns+` WHERE consent_id = $1`, consentID)
}

func (s *PostgresStore) FindBySessionID(ctx context.Context, sessionID string) (ConsentRecord, error) {
	return s.findOne(ctx, selectColumns+` WHERE session_id = $1`, sessionID)
}

func (s *PostgresStore) findOne(ctx context.Context, query string, key string) (ConsentRecord, error) {
	if key == "" {
		return ConsentRecord{}, sentinel.ErrNotFound
	}
	record, err := scanConsent(s.db.QueryRowContext(ctx, query, key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ConsentRecord{}, sentinel.ErrNotFound
		}
		return ConsentRecord{}, fmt.Errorf("find consent: %w", err)
	}
	return record, nil
}

func (s *PostgresStore) DeleteByConsentID(ctx context.Context, consentID string) (ConsentRecord, error) {
	if consentID == "" {
		return ConsentRecord{}, sentinel.ErrNotFound
	}
	query := `
		DELETE FROM consents
		WHERE consent_id = $1
		RETURNING COALESCE(user_id, ''), COALESCE(consent_id, ''), COALESCE(session_id, ''),
			preferences, created_at, updated_at
	`
	record, err := scanConsent(s.db.QueryRowContext(ctx, query, consentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ConsentRecord{}, sentinel.ErrNotFound
		}
		return ConsentRecord{}, fmt.Errorf("delete consent: %w", err)
	}
	return record, nil
}

type consentRow interface {
	Scan(dest ...any) error
}

func scanConsent(row consentRow) (ConsentRecord, error) {
	var record ConsentRecord
	var prefsBytes []byte
	if err := row.Scan(&record.UserID, &record.ConsentID, &record.SessionID,
		&prefsBytes, &record.CreatedAt, &record.UpdatedAt); err != nil {
		return ConsentRecord{}, err
	}
	if err := json.Unmarshal(prefsBytes, &record.Preferences); err != nil {
		return ConsentRecord{}, fmt.Errorf("unmarshal preferences: %w", err)
	}
	return record, nil
}
