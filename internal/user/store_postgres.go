package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"consentry/pkg/platform/sentinel"
)

// PostgresStore persists users in PostgreSQL via the pgx stdlib driver.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore constructs a PostgreSQL-backed user store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, u User) error {
	query := `
		INSERT INTO users (id, session_id, email)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
		ON CONFLICT (id) DO UPDATE SET
			session_id = EXCLUDED.session_id,
			email = EXCLUDED.email
	`
	if _, err := s.db.ExecContext(ctx, query, u.ID, u.SessionID, u.Email); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindBySessionID(ctx context.Context, sessionID string) (User, error) {
	if sessionID == "" {
		return User{}, sentinel.ErrNotFound
	}
	query := `
		SELECT id, COALESCE(session_id, ''), COALESCE(email, '')
		FROM users
		WHERE session_id = $1
	`
	var u User
	err := s.db.QueryRowContext(ctx, query, sessionID).Scan(&u.ID, &u.SessionID, &u.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, sentinel.ErrNotFound
		}
		return User{}, fmt.Errorf("find user by session: %w", err)
	}
	return u, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user rows affected: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
