package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/coffeeshop/internal/client/storage"
)

// SaveIDMapping records that tempID was assigned permanentID by the server
func (s *Storage) SaveIDMapping(ctx context.Context, tempID, permanentID string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO id_mappings (temp_id, permanent_id, created_at) VALUES (?, ?, ?)
		ON CONFLICT(temp_id) DO UPDATE SET permanent_id = excluded.permanent_id
	`, tempID, permanentID, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to save id mapping: %w", err)
	}
	return nil
}

// GetIDMapping returns ErrMappingNotFound for an unknown temp id
func (s *Storage) GetIDMapping(ctx context.Context, tempID string) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	var permanentID string
	err = db.QueryRowContext(ctx,
		`SELECT permanent_id FROM id_mappings WHERE temp_id = ?`, tempID,
	).Scan(&permanentID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", storage.ErrMappingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get id mapping: %w", err)
	}

	return permanentID, nil
}

// GetAllIDMappings returns every recorded mapping
func (s *Storage) GetAllIDMappings(ctx context.Context) (map[string]string, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT temp_id, permanent_id FROM id_mappings`)
	if err != nil {
		return nil, fmt.Errorf("failed to query id mappings: %w", err)
	}
	defer rows.Close()

	mappings := make(map[string]string)
	for rows.Next() {
		var tempID, permanentID string
		if err := rows.Scan(&tempID, &permanentID); err != nil {
			return nil, fmt.Errorf("failed to scan id mapping: %w", err)
		}
		mappings[tempID] = permanentID
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating id mappings: %w", err)
	}

	return mappings, nil
}
