package connectivity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/iudanet/coffeeshop/internal/client/storage"
	"github.com/iudanet/coffeeshop/internal/models"
)

var errDown = errors.New("connection refused")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memFlags MetadataStorageMock поверх map
func memFlags() (*storage.MetadataStorageMock, func() map[models.Flag]bool) {
	var mu sync.Mutex
	flags := make(map[models.Flag]bool)

	mock := &storage.MetadataStorageMock{
		SetFlagFunc: func(ctx context.Context, flag models.Flag, value bool) error {
			mu.Lock()
			defer mu.Unlock()
			flags[flag] = value
			return nil
		},
		GetFlagFunc: func(ctx context.Context, flag models.Flag) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			return flags[flag], nil
		},
	}
	snapshot := func() map[models.Flag]bool {
		mu.Lock()
		defer mu.Unlock()
		out := make(map[models.Flag]bool, len(flags))
		for k, v := range flags {
			out[k] = v
		}
		return out
	}
	return mock, snapshot
}

// switchProber Prober с переключаемым результатом
type switchProber struct {
	err error
	mu  sync.Mutex
}

func (p *switchProber) set(err error) {
	p.mu.Lock()
	p.err = err
	p.mu.Unlock()
}

func (p *switchProber) Ping(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func TestMonitor_InitialState(t *testing.T) {
	flags, _ := memFlags()
	m := NewMonitor(&switchProber{}, flags, Config{}, discardLogger())

	assert.True(t, m.IsOnline())
	assert.False(t, m.IsServerUp())
	assert.False(t, m.Available())
	assert.Equal(t, DefaultProbeInterval, m.cfg.ProbeInterval)
	assert.Equal(t, DefaultProbeTimeout, m.cfg.ProbeTimeout)
}

func TestMonitor_ProbeTransitions(t *testing.T) {
	ctx := context.Background()
	flags, snapshot := memFlags()
	prober := &switchProber{}
	m := NewMonitor(prober, flags, Config{}, discardLogger())

	var events []Event
	m.Subscribe(func(e Event) { events = append(events, e) })

	// Первая успешная проверка - восстановление
	assert.True(t, m.Probe(ctx))
	require.Len(t, events, 1)
	assert.True(t, events[0].Recovered())
	// Сервер не падал - refresh не требуется
	assert.False(t, snapshot()[models.FlagNeedsRefresh])

	// Повторный успех не меняет статус
	m.Probe(ctx)
	assert.Len(t, events, 1)

	// Сервер упал: ошибка проглатывается, маркер сохраняется
	prober.set(errDown)
	assert.False(t, m.Probe(ctx))
	require.Len(t, events, 2)
	assert.True(t, events[1].Lost())
	assert.True(t, snapshot()[models.FlagServerWasDown])

	// Восстановление переносит маркер в needs_refresh
	prober.set(nil)
	m.Probe(ctx)
	require.Len(t, events, 3)
	assert.True(t, events[2].Recovered())
	assert.Equal(t, map[models.Flag]bool{
		models.FlagServerWasDown: false,
		models.FlagNeedsRefresh:  true,
	}, snapshot())
}

func TestMonitor_SetOnline(t *testing.T) {
	ctx := context.Background()
	flags, snapshot := memFlags()
	m := NewMonitor(&switchProber{}, flags, Config{}, discardLogger())
	m.Probe(ctx)
	require.True(t, m.Available())

	var events []Event
	unsubscribe := m.Subscribe(func(e Event) { events = append(events, e) })

	m.SetOnline(ctx, false)
	assert.False(t, m.Available())
	assert.True(t, m.IsServerUp())
	require.Len(t, events, 1)
	assert.True(t, events[0].Lost())
	assert.True(t, snapshot()[models.FlagServerWasDown])

	// Повтор того же события игнорируется
	m.SetOnline(ctx, false)
	assert.Len(t, events, 1)

	unsubscribe()
	unsubscribe()
	m.SetOnline(ctx, true)
	assert.True(t, m.Available())
	assert.Len(t, events, 1)
}

func TestMonitor_ProbeTimeout(t *testing.T) {
	flags, _ := memFlags()
	prober := &ProberMock{
		PingFunc: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	}
	m := NewMonitor(prober, flags, Config{ProbeTimeout: 50 * time.Millisecond}, discardLogger())

	start := time.Now()
	assert.False(t, m.Probe(context.Background()))
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Len(t, prober.PingCalls(), 1)
}

func TestMonitor_FlagErrorsSwallowed(t *testing.T) {
	flags := &storage.MetadataStorageMock{
		SetFlagFunc: func(ctx context.Context, flag models.Flag, value bool) error { return errors.New("disk full") },
		GetFlagFunc: func(ctx context.Context, flag models.Flag) (bool, error) { return false, errors.New("disk full") },
	}
	prober := &switchProber{}
	m := NewMonitor(prober, flags, Config{}, discardLogger())

	m.Probe(context.Background())
	prober.set(errDown)
	m.Probe(context.Background())

	assert.False(t, m.Available())
	assert.Len(t, flags.SetFlagCalls(), 1)
}

func TestMonitor_Run(t *testing.T) {
	defer goleak.VerifyNone(t)

	flags, _ := memFlags()
	prober := &switchProber{}
	m := NewMonitor(prober, flags, Config{ProbeInterval: 20 * time.Millisecond}, discardLogger())

	recovered := make(chan struct{}, 4)
	m.Subscribe(func(e Event) {
		if e.Recovered() {
			recovered <- struct{}{}
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	// Немедленная проверка при старте
	select {
	case <-recovered:
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not report recovery")
	}

	// Периодическая проверка замечает падение сервера
	prober.set(errDown)
	require.Eventually(t, func() bool { return !m.IsServerUp() }, 2*time.Second, 10*time.Millisecond)

	// Переподключение транспорта запускает немедленную проверку
	m.SetOnline(ctx, false)
	prober.set(nil)
	m.SetOnline(ctx, true)
	require.Eventually(t, m.Available, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not stop")
	}
}

func TestLinkWatcher_Check(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	flags, _ := memFlags()
	m := NewMonitor(&switchProber{}, flags, Config{}, discardLogger())

	w, err := NewLinkWatcher(m, server.URL, time.Second, discardLogger())
	require.NoError(t, err)
	assert.True(t, w.Check(context.Background()))
	assert.True(t, m.IsOnline())

	// Порт больше никто не слушает
	server.Close()
	assert.False(t, w.Check(context.Background()))
	assert.False(t, m.IsOnline())
}

func TestLinkWatcher_Run(t *testing.T) {
	defer goleak.VerifyNone(t)

	flags, _ := memFlags()
	m := NewMonitor(&switchProber{}, flags, Config{}, discardLogger())

	w, err := NewLinkWatcher(m, "http://coffee.local:5000", 10*time.Millisecond, discardLogger())
	require.NoError(t, err)
	w.dial = func(ctx context.Context, network, address string) (net.Conn, error) {
		assert.Equal(t, "coffee.local:5000", address)
		return nil, errDown
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()

	require.Eventually(t, func() bool { return !m.IsOnline() }, 2*time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestHostPort(t *testing.T) {
	tests := map[string]string{
		"http://127.0.0.1:5000":    "127.0.0.1:5000",
		"http://coffee.shop":       "coffee.shop:80",
		"https://coffee.shop/api":  "coffee.shop:443",
		"http://[::1]:8080/health": "[::1]:8080",
	}
	for in, want := range tests {
		got, err := hostPort(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := hostPort("not a url")
	assert.Error(t, err)
}
