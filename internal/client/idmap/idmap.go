// Package idmap persists the mapping from temporary to server-assigned identifiers.
package idmap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/coffeeshop/internal/client/storage"
	"github.com/iudanet/coffeeshop/internal/models"
)

// Map is the identifier reconciliation map
type Map struct {
	store  storage.IDMappingStorage
	logger *slog.Logger
}

// New creates a new Map
func New(store storage.IDMappingStorage, logger *slog.Logger) *Map {
	return &Map{store: store, logger: logger}
}

// Record persists tempID -> permanentID as a separate entry
func (m *Map) Record(ctx context.Context, tempID, permanentID string) error {
	if !models.IsTempID(tempID) {
		return fmt.Errorf("%q is not a temporary id", tempID)
	}
	if permanentID == "" || models.IsTempID(permanentID) {
		return fmt.Errorf("invalid permanent id %q for %s", permanentID, tempID)
	}

	if err := m.store.SaveIDMapping(ctx, tempID, permanentID); err != nil {
		return fmt.Errorf("failed to record mapping: %w", err)
	}

	m.logger.Debug("Identifier reconciled", "temp_id", tempID, "id", permanentID)
	return nil
}

// Resolve returns the permanent id for tempID; ok is false if none is recorded
func (m *Map) Resolve(ctx context.Context, tempID string) (string, bool, error) {
	id, err := m.store.GetIDMapping(ctx, tempID)
	if errors.Is(err, storage.ErrMappingNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve %s: %w", tempID, err)
	}
	return id, true, nil
}

// ResolveOrSelf returns the permanent id for a mapped temporary id, otherwise id itself
func (m *Map) ResolveOrSelf(ctx context.Context, id string) (string, error) {
	if !models.IsTempID(id) {
		return id, nil
	}

	resolved, ok, err := m.Resolve(ctx, id)
	if err != nil {
		return "", err
	}
	if !ok {
		return id, nil
	}
	return resolved, nil
}

// All returns every recorded mapping
func (m *Map) All(ctx context.Context) (map[string]string, error) {
	mappings, err := m.store.GetAllIDMappings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load mappings: %w", err)
	}
	return mappings, nil
}
