package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/coffeeshop/internal/config"
	"github.com/iudanet/coffeeshop/internal/models"
	"github.com/iudanet/coffeeshop/internal/server"
	"github.com/iudanet/coffeeshop/internal/server/handlers"
	"github.com/iudanet/coffeeshop/pkg/api"
)

// flakyServer dev сервер, который по флагу отвечает 503 на все запросы
type flakyServer struct {
	*httptest.Server
	down atomic.Bool
}

func newFlakyServer(t *testing.T) *flakyServer {
	t.Helper()
	srv, err := server.New(context.Background(), server.Config{
		Version: "test",
		JWT:     handlers.JWTConfig{Secret: []byte("test-secret")},
	}, discardLogger())
	require.NoError(t, err)

	fs := &flakyServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fs.down.Load() {
			http.Error(w, "maintenance", http.StatusServiceUnavailable)
			return
		}
		srv.Handler().ServeHTTP(w, r)
	}))
	t.Cleanup(fs.Close)
	return fs
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApp(t *testing.T, serverURL, engine string) *App {
	t.Helper()
	cfg := config.Default()
	cfg.ServerURL = serverURL
	cfg.Storage = config.StorageConfig{Engine: engine, Path: filepath.Join(t.TempDir(), "client.db")}
	cfg.Connectivity.ProbeInterval = 20 * time.Millisecond
	cfg.Connectivity.LinkInterval = 20 * time.Millisecond
	cfg.Connectivity.ProbeTimeout = time.Second
	cfg.Sync.RetryAfter = 20 * time.Millisecond

	a, err := New(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, a.Close()) })
	return a
}

func TestApp_OfflineCreateResolvesAfterReconnect(t *testing.T) {
	for _, engine := range []string{config.EngineBolt, config.EngineSQLite} {
		t.Run(engine, func(t *testing.T) {
			ctx := context.Background()
			srv := newFlakyServer(t)
			srv.down.Store(true)
			a := newTestApp(t, srv.URL, engine)

			st := a.Refresh(ctx)
			require.False(t, st.Available())

			p, offline, err := a.Products.Add(ctx, api.ProductInput{
				Name:        "Mocha",
				Price:       6.5,
				Category:    "Classic Coffee",
				Description: "A chocolatey delight",
			})
			require.NoError(t, err)
			require.True(t, offline)
			tempID := p.ID.String()
			assert.True(t, models.IsTempID(tempID))
			assert.True(t, p.IsOffline)

			cached, err := a.Cache.Get(ctx, tempID)
			require.NoError(t, err)
			assert.Equal(t, "Mocha", cached.Name)

			pending, err := a.Queue.Len(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, pending)

			// Сервер вернулся
			srv.down.Store(false)
			st, result := a.Connect(ctx)
			require.True(t, st.Available())
			require.NotNil(t, result)
			assert.Equal(t, 1, result.Synced)
			require.Equal(t, "37", result.Mappings[tempID])

			got, offline, err := a.Products.Get(ctx, tempID)
			require.NoError(t, err)
			assert.False(t, offline)
			assert.Equal(t, "37", got.ID.String())
			assert.Equal(t, "Mocha", got.Name)

			status, err := a.Status(ctx)
			require.NoError(t, err)
			assert.Equal(t, 0, status.Pending)
			assert.Equal(t, 1, status.Mappings)
			assert.Nil(t, status.Lock)
			assert.False(t, status.LastSync.IsZero())
		})
	}
}

func TestApp_RunSyncsAutomaticallyOnRecovery(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := newFlakyServer(t)
	srv.down.Store(true)
	a := newTestApp(t, srv.URL, config.EngineBolt)

	a.Refresh(ctx)
	p, offline, err := a.Products.Add(ctx, api.ProductInput{
		Name: "Cortado", Price: 4.5, Category: "Classic Coffee", Description: "Equal parts",
	})
	require.NoError(t, err)
	require.True(t, offline)

	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	srv.down.Store(false)

	require.Eventually(t, func() bool {
		id, ok, err := a.IDMap.Resolve(ctx, p.ID.String())
		return err == nil && ok && id == "37"
	}, 5*time.Second, 20*time.Millisecond)

	pending, err := a.Queue.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, pending)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestApp_RefreshMarksServerWasDown(t *testing.T) {
	ctx := context.Background()
	srv := newFlakyServer(t)
	srv.down.Store(true)
	a := newTestApp(t, srv.URL, config.EngineBolt)

	a.Refresh(ctx)
	wasDown, err := a.Store.GetFlag(ctx, models.FlagServerWasDown)
	require.NoError(t, err)
	assert.True(t, wasDown)

	srv.down.Store(false)
	require.True(t, a.Refresh(ctx).Available())

	status, err := a.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.NeedsRefresh)
}

func TestOpenStore_UnknownEngine(t *testing.T) {
	_, err := OpenStore(context.Background(), config.StorageConfig{Engine: "postgres", Path: "x"})
	assert.Error(t, err)
}
