package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/iudanet/coffeeshop/internal/models"
)

// GetCachedProducts returns the cached entity list in stored order
func (s *Storage) GetCachedProducts(ctx context.Context) ([]*models.CachedProduct, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT data FROM cached_products ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cached products: %w", err)
	}
	defer rows.Close()

	var products []*models.CachedProduct
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan cached product: %w", err)
		}

		var p models.CachedProduct
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cached product: %w", err)
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cached products: %w", err)
	}

	return products, nil
}

// SaveCachedProducts atomically replaces the cached entity list
func (s *Storage) SaveCachedProducts(ctx context.Context, products []*models.CachedProduct) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM cached_products`); err != nil {
			return fmt.Errorf("failed to clear cached products: %w", err)
		}

		for i, p := range products {
			data, err := json.Marshal(p)
			if err != nil {
				return fmt.Errorf("failed to marshal cached product: %w", err)
			}

			_, err = tx.ExecContext(ctx,
				`INSERT INTO cached_products (position, id, data) VALUES (?, ?, ?)`,
				i, p.Key(), string(data),
			)
			if err != nil {
				return fmt.Errorf("failed to save cached product %s: %w", p.Key(), err)
			}
		}
		return nil
	})
}
