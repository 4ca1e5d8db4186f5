// Package app wires the client components together and owns their lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	httpClient "github.com/iudanet/coffeeshop/internal/client/api"
	"github.com/iudanet/coffeeshop/internal/client/auth"
	"github.com/iudanet/coffeeshop/internal/client/cache"
	"github.com/iudanet/coffeeshop/internal/client/connectivity"
	"github.com/iudanet/coffeeshop/internal/client/gateway"
	"github.com/iudanet/coffeeshop/internal/client/idmap"
	"github.com/iudanet/coffeeshop/internal/client/products"
	"github.com/iudanet/coffeeshop/internal/client/queue"
	"github.com/iudanet/coffeeshop/internal/client/storage"
	"github.com/iudanet/coffeeshop/internal/client/storage/boltdb"
	"github.com/iudanet/coffeeshop/internal/client/storage/sqlite"
	syncer "github.com/iudanet/coffeeshop/internal/client/sync"
	"github.com/iudanet/coffeeshop/internal/config"
	"github.com/iudanet/coffeeshop/internal/models"
)

// App содержит все компоненты клиента
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Store    storage.Store
	API      *httpClient.Client
	Auth     auth.Service
	Queue    *queue.Queue
	Cache    *cache.Cache
	IDMap    *idmap.Map
	Monitor  *connectivity.Monitor
	Link     *connectivity.LinkWatcher
	Sync     syncer.Service
	Watcher  *syncer.Watcher
	Gateway  *gateway.Gateway
	Products *products.Service
}

// OpenStore открывает хранилище выбранного движка
func OpenStore(ctx context.Context, cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Engine {
	case config.EngineBolt, "":
		return boltdb.New(ctx, cfg.Path)
	case config.EngineSQLite:
		return sqlite.New(ctx, cfg.Path)
	default:
		return nil, fmt.Errorf("unknown storage engine %q", cfg.Engine)
	}
}

// New opens the store and builds every component. Close must be called.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := OpenStore(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	a, err := build(cfg, store, logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return a, nil
}

func build(cfg *config.Config, store storage.Store, logger *slog.Logger) (*App, error) {
	client := httpClient.NewClient(cfg.ServerURL,
		httpClient.WithTokenProvider(auth.TokenSource(store, logger)))

	monitor := connectivity.NewMonitor(client, store, connectivity.Config{
		ProbeInterval: cfg.Connectivity.ProbeInterval,
		ProbeTimeout:  cfg.Connectivity.ProbeTimeout,
	}, logger.With("component", "connectivity"))

	link, err := connectivity.NewLinkWatcher(monitor, cfg.ServerURL, cfg.Connectivity.LinkInterval, logger.With("component", "link"))
	if err != nil {
		return nil, fmt.Errorf("failed to create link watcher: %w", err)
	}

	a := &App{
		Config:  cfg,
		Logger:  logger,
		Store:   store,
		API:     client,
		Auth:    auth.NewService(client, store, logger.With("component", "auth")),
		Queue:   queue.New(store, logger.With("component", "queue")),
		Cache:   cache.New(store, logger.With("component", "cache")),
		IDMap:   idmap.New(store, logger.With("component", "idmap")),
		Monitor: monitor,
		Link:    link,
	}

	a.Sync = syncer.NewService(syncer.Deps{
		API:      client,
		Queue:    a.Queue,
		Cache:    a.Cache,
		IDMap:    a.IDMap,
		Lock:     store,
		Metadata: store,
	}, syncer.Config{
		LockPolicy:       models.LockPolicy{GraceWindow: cfg.Sync.GraceWindow},
		OperationTimeout: cfg.Sync.OperationTimeout,
	}, logger.With("component", "sync"))

	a.Watcher = syncer.NewWatcher(a.Sync, monitor, cfg.Sync.RetryAfter, logger.With("component", "watcher"))

	a.Gateway = gateway.New(gateway.Deps{
		API:      client,
		Avail:    monitor,
		Queue:    a.Queue,
		Cache:    a.Cache,
		IDMap:    a.IDMap,
		Sync:     a.Sync,
		Metadata: store,
	}, logger.With("component", "gateway"))

	a.Products = products.NewService(a.Gateway, a.Cache, store, logger.With("component", "products"))

	return a, nil
}

// Refresh определяет текущую доступность одной проверкой вместо фонового цикла.
// Используется короткоживущими командами CLI: запуск без сервера считается
// периодом недоступности.
func (a *App) Refresh(ctx context.Context) connectivity.Status {
	if a.Link.Check(ctx) {
		a.Monitor.Probe(ctx)
	}

	st := a.Monitor.Status()
	if !st.Available() {
		if err := a.Store.SetFlag(ctx, models.FlagServerWasDown, true); err != nil {
			a.Logger.Warn("Failed to persist server_was_down flag", "error", err)
		}
	}
	return st
}

// Connect обновляет доступность и, если сервер доступен, сразу синхронизирует
// очередь, как при восстановлении связи. Ошибка синхронизации не мешает команде.
func (a *App) Connect(ctx context.Context) (connectivity.Status, *syncer.SyncResult) {
	st := a.Refresh(ctx)
	if !st.Available() {
		return st, nil
	}

	result, err := a.Sync.Sync(ctx)
	if err != nil {
		a.Logger.Warn("Sync on connect failed", "error", err)
		return st, nil
	}
	return st, result
}

// Run запускает монитор, link watcher и авто-синхронизацию до отмены ctx
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return a.Monitor.Run(ctx) })
	g.Go(func() error { return a.Link.Run(ctx) })
	g.Go(func() error { return a.Watcher.Run(ctx) })

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Status сводка состояния клиента
type Status struct {
	LastSync     time.Time
	Lock         *models.SyncLock
	Connectivity connectivity.Status
	Pending      int
	Mappings     int
	Cached       int
	NeedsRefresh bool
}

// Status собирает сводку из локального хранилища
func (a *App) Status(ctx context.Context) (*Status, error) {
	st := &Status{Connectivity: a.Monitor.Status()}

	var err error
	if st.Pending, err = a.Queue.Len(ctx); err != nil {
		return nil, err
	}

	mappings, err := a.IDMap.All(ctx)
	if err != nil {
		return nil, err
	}
	st.Mappings = len(mappings)

	cached, err := a.Cache.All(ctx)
	if err != nil {
		return nil, err
	}
	st.Cached = len(cached)

	if st.Lock, err = a.Store.GetSyncLock(ctx); err != nil {
		return nil, fmt.Errorf("failed to read sync lock: %w", err)
	}
	if st.LastSync, err = a.Store.GetLastSyncTime(ctx); err != nil {
		return nil, fmt.Errorf("failed to read last sync time: %w", err)
	}
	if st.NeedsRefresh, err = a.Store.GetFlag(ctx, models.FlagNeedsRefresh); err != nil {
		return nil, err
	}
	return st, nil
}

// Close освобождает хранилище
func (a *App) Close() error {
	if err := a.Store.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}
	return nil
}
