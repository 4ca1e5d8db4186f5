// Package sync implements the sync coordinator that drains the operation queue
// against the server and reconciles local state.
package sync

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	httpClient "github.com/iudanet/coffeeshop/internal/client/api"
	"github.com/iudanet/coffeeshop/internal/client/cache"
	"github.com/iudanet/coffeeshop/internal/client/idmap"
	"github.com/iudanet/coffeeshop/internal/client/queue"
	"github.com/iudanet/coffeeshop/internal/client/storage"
	"github.com/iudanet/coffeeshop/internal/models"
)

// DefaultOperationTimeout ограничение на одну операцию drain
const DefaultOperationTimeout = 15 * time.Second

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс координатора синхронизации
type Service interface {
	// Sync drains the whole queue
	Sync(ctx context.Context) (*SyncResult, error)

	// SyncChain drains only the Create for tempID and the operations addressing it
	SyncChain(ctx context.Context, tempID string) (*SyncResult, error)

	// State returns the current state of the coordinator
	State() State
}

// State состояние координатора
type State int32

const (
	StateIdle State = iota
	StateLocking
	StateDraining
	StateReconciling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLocking:
		return "locking"
	case StateDraining:
		return "draining"
	case StateReconciling:
		return "reconciling"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// SyncResult contains sync attempt results
type SyncResult struct {
	Mappings  map[string]string // temp id -> id, назначенные в этой попытке
	HeldBy    *models.SyncLock  // живой lock, из-за которого попытка пропущена
	Synced    int               // количество подтвержденных сервером операций
	Failed    int               // количество операций, оставленных в очереди
	Remaining int               // длина очереди после попытки
	Skipped   bool              // lock удерживается другой попыткой
}

// Config настройки координатора
type Config struct {
	LockPolicy       models.LockPolicy
	OperationTimeout time.Duration
}

// Deps компоненты, которыми управляет координатор
type Deps struct {
	API      httpClient.ClientAPI
	Queue    *queue.Queue
	Cache    *cache.Cache
	IDMap    *idmap.Map
	Lock     storage.SyncLockStorage
	Metadata storage.MetadataStorage
}

type service struct {
	deps   Deps
	logger *slog.Logger
	now    func() time.Time
	cfg    Config
	state  atomic.Int32
}

// NewService creates a new sync coordinator
func NewService(deps Deps, cfg Config, logger *slog.Logger) Service {
	if cfg.OperationTimeout <= 0 {
		cfg.OperationTimeout = DefaultOperationTimeout
	}
	if cfg.LockPolicy.GraceWindow <= 0 {
		cfg.LockPolicy = models.DefaultLockPolicy()
	}

	return &service{
		deps:   deps,
		logger: logger,
		now:    time.Now,
		cfg:    cfg,
	}
}

func (s *service) State() State {
	return State(s.state.Load())
}

// Sync drains the whole queue: Locking -> Draining -> Reconciling -> Idle
func (s *service) Sync(ctx context.Context) (*SyncResult, error) {
	return s.run(ctx, "", nil)
}

// SyncChain drains the dependency chain of a single temporary id
func (s *service) SyncChain(ctx context.Context, tempID string) (*SyncResult, error) {
	if !models.IsTempID(tempID) {
		return nil, fmt.Errorf("%q is not a temporary id", tempID)
	}

	return s.run(ctx, tempID, func(op *models.PendingOperation) bool {
		if op.TempID == tempID {
			return true
		}
		target, ok := op.TargetID()
		return ok && target == tempID
	})
}

func (s *service) run(ctx context.Context, chain string, match func(*models.PendingOperation) bool) (*SyncResult, error) {
	result := &SyncResult{Mappings: make(map[string]string)}

	pending, err := s.deps.Queue.Len(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read queue: %w", err)
	}
	if pending == 0 {
		return result, nil
	}

	// Состояние ведет только попытка, начавшая из Idle: пропущенная параллельная
	// попытка не должна затирать состояние идущего drain
	owned := s.state.CompareAndSwap(int32(StateIdle), int32(StateLocking))
	setState := func(st State) {
		if owned {
			s.state.Store(int32(st))
		}
	}
	defer setState(StateIdle)

	owner := uuid.NewString()
	acquired, holder, err := s.deps.Lock.AcquireSyncLock(ctx, owner, s.now(), s.cfg.LockPolicy)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire sync lock: %w", err)
	}
	if !acquired {
		s.logger.Debug("Sync already in progress, skipping", "holder", holder.Owner, "age", holder.Age(s.now()))
		result.Skipped = true
		result.HeldBy = holder
		result.Remaining = pending
		return result, nil
	}
	if holder != nil {
		s.logger.Warn("Stale sync lock overridden", "holder", holder.Owner, "age", holder.Age(s.now()))
	}

	// Lock снимается на любом пути выхода, даже при отмене ctx
	defer func() {
		if err := s.deps.Lock.ReleaseSyncLock(context.WithoutCancel(ctx), owner); err != nil {
			s.logger.Error("Failed to release sync lock", "error", err)
		}
	}()

	batch, err := s.deps.Queue.Claim(ctx, match)
	if err != nil {
		return nil, fmt.Errorf("failed to claim operations: %w", err)
	}
	if batch.Empty() {
		s.deps.Queue.Release(batch)
		result.Remaining = pending
		return result, nil
	}

	s.logger.Info("Starting synchronization", "operations", len(batch.Ops), "chain", chain)

	// Draining
	setState(StateDraining)
	outcome, err := s.drain(ctx, owner, batch.Ops)
	if err != nil {
		s.deps.Queue.Release(batch)
		return nil, err
	}

	// Reconciling
	setState(StateReconciling)
	if err := s.reconcile(ctx, batch, outcome); err != nil {
		return nil, err
	}

	result.Synced = len(outcome.succeeded)
	result.Failed = len(batch.Ops) - result.Synced
	for k, v := range outcome.newMappings {
		result.Mappings[k] = v
	}
	if result.Remaining, err = s.deps.Queue.Len(ctx); err != nil {
		s.logger.Warn("Failed to count remaining operations", "error", err)
	}

	s.logger.Info("Synchronization completed",
		"synced", result.Synced,
		"failed", result.Failed,
		"remaining", result.Remaining)

	return result, nil
}
