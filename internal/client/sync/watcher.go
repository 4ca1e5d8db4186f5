package sync

import (
	"context"
	"log/slog"
	"time"

	"github.com/iudanet/coffeeshop/internal/client/connectivity"
)

// DefaultRetryAfter пауза перед повтором попытки, пропущенной из-за занятого lock
const DefaultRetryAfter = 5 * time.Second

// Availability источник сигнала доступности
type Availability interface {
	Available() bool
	Subscribe(fn func(connectivity.Event)) func()
}

// Watcher starts a sync attempt on every unavailable -> available transition
type Watcher struct {
	service    Service
	avail      Availability
	logger     *slog.Logger
	trigger    chan struct{}
	onResult   func(*SyncResult)
	retryAfter time.Duration
}

// NewWatcher creates a new auto-sync watcher
func NewWatcher(service Service, avail Availability, retryAfter time.Duration, logger *slog.Logger) *Watcher {
	if retryAfter <= 0 {
		retryAfter = DefaultRetryAfter
	}
	return &Watcher{
		service:    service,
		avail:      avail,
		logger:     logger,
		trigger:    make(chan struct{}, 1),
		retryAfter: retryAfter,
	}
}

// OnResult registers a callback for completed attempts; must be set before Run
func (w *Watcher) OnResult(fn func(*SyncResult)) {
	w.onResult = fn
}

// Trigger requests a sync attempt. Повторные запросы до начала попытки схлопываются.
func (w *Watcher) Trigger() {
	select {
	case w.trigger <- struct{}{}:
	default:
	}
}

// Run handles triggers until ctx is cancelled
func (w *Watcher) Run(ctx context.Context) error {
	unsubscribe := w.avail.Subscribe(func(e connectivity.Event) {
		if e.Recovered() {
			w.Trigger()
		}
	})
	defer unsubscribe()

	// Сеть могла восстановиться до подписки
	if w.avail.Available() {
		w.Trigger()
	}

	retry := time.NewTimer(w.retryAfter)
	if !retry.Stop() {
		<-retry.C
	}
	defer retry.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.trigger:
		case <-retry.C:
		}

		if !w.avail.Available() {
			continue
		}

		result, err := w.service.Sync(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			w.logger.Error("Auto sync failed", "error", err)
			continue
		}

		// Триггеры, пришедшие во время попытки, подавлены lock'ом и не копятся
		select {
		case <-w.trigger:
		default:
		}

		if result.Skipped {
			w.logger.Debug("Sync lock busy, retrying later", "retry_after", w.retryAfter)
			retry.Reset(w.retryAfter)
			continue
		}

		if w.onResult != nil && result.Synced+result.Failed > 0 {
			w.onResult(result)
		}
	}
}
