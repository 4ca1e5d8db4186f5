package models

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// OperationKind тип отложенной мутирующей операции
type OperationKind string

const (
	OperationCreate OperationKind = "create"
	OperationUpdate OperationKind = "update"
	OperationDelete OperationKind = "delete"
)

// Method returns the HTTP method used to replay the operation
func (k OperationKind) Method() string {
	switch k {
	case OperationCreate:
		return http.MethodPost
	case OperationUpdate:
		return http.MethodPut
	case OperationDelete:
		return http.MethodDelete
	default:
		return ""
	}
}

// KindFromMethod maps a mutating HTTP method onto an operation kind
func KindFromMethod(method string) (OperationKind, error) {
	switch method {
	case http.MethodPost:
		return OperationCreate, nil
	case http.MethodPut, http.MethodPatch:
		return OperationUpdate, nil
	case http.MethodDelete:
		return OperationDelete, nil
	default:
		return "", fmt.Errorf("method %s is not a mutating operation", method)
	}
}

// PendingOperation представляет мутирующий запрос, еще не подтвержденный сервером
type PendingOperation struct {
	EnqueuedAt time.Time       `json:"enqueued_at"`
	ID         string          `json:"id"`
	Kind       OperationKind   `json:"kind"`
	Path       string          `json:"path"`
	TempID     string          `json:"temp_id,omitempty"` // только для Create
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// NewOperation создает операцию с новым ID и текущим временем
func NewOperation(kind OperationKind, path string, payload json.RawMessage) *PendingOperation {
	return &PendingOperation{
		ID:         uuid.NewString(),
		Kind:       kind,
		Path:       path,
		Payload:    payload,
		EnqueuedAt: time.Now(),
	}
}

// TargetID returns the item id addressed by an Update/Delete path
func (op *PendingOperation) TargetID() (string, bool) {
	return ParseProductPath(op.Path)
}

// Validate проверяет структурную корректность операции перед постановкой в очередь
func (op *PendingOperation) Validate() error {
	if op.ID == "" {
		return fmt.Errorf("operation id is empty")
	}
	if op.Path == "" {
		return fmt.Errorf("operation path is empty")
	}

	switch op.Kind {
	case OperationCreate:
		if op.TempID == "" || !IsTempID(op.TempID) {
			return fmt.Errorf("create operation requires a temporary id, got %q", op.TempID)
		}
		if len(op.Payload) == 0 {
			return fmt.Errorf("create operation requires a payload")
		}
	case OperationUpdate:
		if len(op.Payload) == 0 {
			return fmt.Errorf("update operation requires a payload")
		}
		fallthrough
	case OperationDelete:
		if op.TempID != "" {
			return fmt.Errorf("%s operation must not carry a temporary id", op.Kind)
		}
	default:
		return fmt.Errorf("unknown operation kind %q", op.Kind)
	}

	return nil
}
