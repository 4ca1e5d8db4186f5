package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/coffeeshop/internal/client/storage"
)

// SaveAuth stores authentication data
func (s *Storage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO auth (id, email, username, role, token, expires_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			email = excluded.email,
			username = excluded.username,
			role = excluded.role,
			token = excluded.token,
			expires_at = excluded.expires_at
	`

	_, err = db.ExecContext(ctx, query,
		auth.Email,
		auth.Username,
		auth.Role,
		auth.Token,
		toUnixNano(auth.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save auth data: %w", err)
	}

	return nil
}

// GetAuth retrieves stored authentication data
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var (
		auth      storage.AuthData
		expiresAt int64
	)

	err = db.QueryRowContext(ctx,
		`SELECT email, username, role, token, expires_at FROM auth WHERE id = 1`,
	).Scan(&auth.Email, &auth.Username, &auth.Role, &auth.Token, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrAuthNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}

	auth.ExpiresAt = fromUnixNano(expiresAt)
	return &auth, nil
}

// DeleteAuth removes stored authentication data (logout)
func (s *Storage) DeleteAuth(ctx context.Context) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `DELETE FROM auth WHERE id = 1`)
	if err != nil {
		return fmt.Errorf("failed to delete auth data: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrAuthNotFound
	}

	return nil
}

// toUnixNano хранит нулевое время как 0
func toUnixNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromUnixNano(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}
