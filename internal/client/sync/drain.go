package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/iudanet/coffeeshop/internal/client/idmap"
	"github.com/iudanet/coffeeshop/internal/models"
	"github.com/iudanet/coffeeshop/pkg/api"
)

// ErrUnresolvedTempID операция адресует временный id без маппинга
var ErrUnresolvedTempID = errors.New("unresolved temporary id")

// offlineMarkers служебные поля кэша, которые не отправляются на сервер
var offlineMarkers = []string{"_isOffline", "_synced"}

// drainOutcome результат отправки батча
type drainOutcome struct {
	succeeded   map[string]bool   // id операций
	newMappings map[string]string // temp id -> id
	confirmed   []api.Product     // ответы сервера на Create/Update
	deleted     []string          // id, удаленные на сервере
}

// drain replays ops: every Create first, then Update/Delete, each phase in
// arrival order. Ошибка одной операции не прерывает батч.
// Перед каждой операцией lock продлевается; если его перехватили, drain останавливается.
func (s *service) drain(ctx context.Context, owner string, ops []*models.PendingOperation) (*drainOutcome, error) {
	out := &drainOutcome{
		succeeded:   make(map[string]bool),
		newMappings: make(map[string]string),
	}

	mappings, err := s.deps.IDMap.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load id mappings: %w", err)
	}

	var creates, others []*models.PendingOperation
	for _, op := range ops {
		if op.Kind == models.OperationCreate {
			creates = append(creates, op)
		} else {
			others = append(others, op)
		}
	}

	for _, op := range creates {
		if !s.holdLock(ctx, owner) {
			return out, nil
		}

		p, err := s.replayCreate(ctx, op)
		if err != nil {
			s.logger.Warn("Create failed, keeping in queue", "op_id", op.ID, "temp_id", op.TempID, "error", err)
			continue
		}

		id := p.ID.String()
		mappings[op.TempID] = id
		out.newMappings[op.TempID] = id
		out.confirmed = append(out.confirmed, *p)
		out.succeeded[op.ID] = true

		// Сервер уже создал сущность: повтор Create дал бы дубликат,
		// поэтому сбой записи маппинга не делает операцию неуспешной
		if err := s.deps.IDMap.Record(ctx, op.TempID, id); err != nil {
			s.logger.Error("Failed to record id mapping", "temp_id", op.TempID, "id", id, "error", err)
		}
	}

	for _, op := range others {
		if !s.holdLock(ctx, owner) {
			return out, nil
		}

		p, target, err := s.replay(ctx, op, mappings)
		if err != nil {
			s.logger.Warn("Operation failed, keeping in queue", "op_id", op.ID, "kind", op.Kind, "path", op.Path, "error", err)
			continue
		}

		out.succeeded[op.ID] = true
		switch {
		case op.Kind == models.OperationDelete:
			out.deleted = append(out.deleted, target)
		case p != nil:
			out.confirmed = append(out.confirmed, *p)
		}
	}

	return out, nil
}

// holdLock продлевает lock владельца, чтобы долгий drain не выглядел брошенным
func (s *service) holdLock(ctx context.Context, owner string) bool {
	held, err := s.deps.Lock.RefreshSyncLock(ctx, owner, s.now())
	if err != nil {
		s.logger.Error("Failed to refresh sync lock, stopping drain", "error", err)
		return false
	}
	if !held {
		s.logger.Warn("Sync lock taken over, stopping drain", "owner", owner)
		return false
	}
	return true
}

// replayCreate отправляет Create и возвращает сущность с назначенным сервером id
func (s *service) replayCreate(ctx context.Context, op *models.PendingOperation) (*api.Product, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer cancel()

	payload, err := stripMarkers(op.Payload)
	if err != nil {
		return nil, err
	}

	_, body, err := s.deps.API.Do(opCtx, http.MethodPost, op.Path, payload)
	if err != nil {
		return nil, err
	}

	var p api.Product
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("failed to decode created product: %w", err)
	}
	if p.ID == "" {
		return nil, fmt.Errorf("server returned product without id")
	}
	return &p, nil
}

// replay отправляет Update/Delete с подставленными постоянными id.
// Возвращает ответ сервера (для Update) и id цели после подстановки.
func (s *service) replay(ctx context.Context, op *models.PendingOperation, mappings map[string]string) (*api.Product, string, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer cancel()

	path := idmap.RewritePath(op.Path, mappings)
	target, _ := models.ParseProductPath(path)

	// Create для temp id еще не подтвержден: запрос не отправляем, операция остается в очереди.
	// Иначе 404 на Delete сочтется успехом, а Create позже воскресит удаленную сущность.
	if models.IsTempID(target) {
		return nil, target, fmt.Errorf("%w: %s", ErrUnresolvedTempID, target)
	}

	payload, err := stripMarkers(op.Payload)
	if err != nil {
		return nil, target, err
	}
	if payload, err = idmap.RewritePayload(payload, mappings); err != nil {
		return nil, target, err
	}

	_, body, err := s.deps.API.Do(opCtx, op.Kind.Method(), path, payload)
	if err != nil {
		// Удаление уже удаленной сущности - цель достигнута
		if op.Kind == models.OperationDelete && api.IsNotFound(err) {
			s.logger.Debug("Delete target already gone", "op_id", op.ID, "path", path)
			return nil, target, nil
		}
		return nil, target, err
	}

	if op.Kind != models.OperationUpdate || len(body) == 0 {
		return nil, target, nil
	}

	var p api.Product
	if err := json.Unmarshal(body, &p); err != nil || p.ID == "" {
		// Ответ не разобран, но сервер подтвердил изменение
		return nil, target, nil
	}
	return &p, target, nil
}

// stripMarkers убирает служебные поля кэша из JSON объекта
func stripMarkers(payload json.RawMessage) (json.RawMessage, error) {
	if len(payload) == 0 {
		return payload, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(payload, &obj); err != nil {
		// Не объект - отправляем как есть
		return payload, nil
	}

	changed := false
	for _, key := range offlineMarkers {
		if _, ok := obj[key]; ok {
			delete(obj, key)
			changed = true
		}
	}
	if !changed {
		return payload, nil
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return data, nil
}
