// Package connectivity tracks transport reachability and server liveness.
package connectivity

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/coffeeshop/internal/models"
)

const (
	// DefaultProbeInterval период повторной проверки сервера при наличии сети
	DefaultProbeInterval = 10 * time.Second
	// DefaultProbeTimeout таймаут одной проверки
	DefaultProbeTimeout = 5 * time.Second
)

//go:generate moq -out prober_mock_test.go . Prober

// Prober performs a lightweight read-only request against the server
type Prober interface {
	Ping(ctx context.Context) error
}

// FlagStore persists the recovery markers
type FlagStore interface {
	SetFlag(ctx context.Context, flag models.Flag, value bool) error
	GetFlag(ctx context.Context, flag models.Flag) (bool, error)
}

// Status is a snapshot of both availability dimensions
type Status struct {
	Online   bool // транспорт доступен
	ServerUp bool // сервер ответил на последнюю проверку
}

// Available reports combined availability
func (s Status) Available() bool {
	return s.Online && s.ServerUp
}

// Event describes a status change
type Event struct {
	Prev Status
	Curr Status
}

// Recovered reports an unavailable -> available transition
func (e Event) Recovered() bool {
	return !e.Prev.Available() && e.Curr.Available()
}

// Lost reports an available -> unavailable transition
func (e Event) Lost() bool {
	return e.Prev.Available() && !e.Curr.Available()
}

// Config настройки монитора
type Config struct {
	ProbeInterval time.Duration
	ProbeTimeout  time.Duration
}

// Monitor is the connectivity monitor. The zero status is online transport with
// an unknown (down) server, so the first successful probe counts as recovery.
type Monitor struct {
	prober Prober
	flags  FlagStore
	logger *slog.Logger
	subs   map[int]func(Event)
	kick   chan struct{}
	cfg    Config
	status Status
	nextID int
	mu     sync.Mutex
	// transitionMu сериализует смену статуса вместе с уведомлениями
	transitionMu sync.Mutex
}

// NewMonitor creates a new Monitor
func NewMonitor(prober Prober, flags FlagStore, cfg Config, logger *slog.Logger) *Monitor {
	if cfg.ProbeInterval <= 0 {
		cfg.ProbeInterval = DefaultProbeInterval
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = DefaultProbeTimeout
	}

	return &Monitor{
		prober: prober,
		flags:  flags,
		logger: logger,
		cfg:    cfg,
		subs:   make(map[int]func(Event)),
		kick:   make(chan struct{}, 1),
		status: Status{Online: true},
	}
}

// Status returns the current status
func (m *Monitor) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// IsOnline reports transport-level reachability
func (m *Monitor) IsOnline() bool {
	return m.Status().Online
}

// IsServerUp reports application-level liveness
func (m *Monitor) IsServerUp() bool {
	return m.Status().ServerUp
}

// Available reports IsOnline && IsServerUp
func (m *Monitor) Available() bool {
	return m.Status().Available()
}

// Subscribe registers fn for every status change and returns the unsubscribe func.
// fn вызывается синхронно в горутине, изменившей статус, и не должен блокироваться.
func (m *Monitor) Subscribe(fn func(Event)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
		})
	}
}

// SetOnline records a transport connect/disconnect event.
// При переподключении сервер проверяется немедленно.
func (m *Monitor) SetOnline(ctx context.Context, online bool) {
	changed := m.update(ctx, func(s *Status) { s.Online = online })
	if changed && online {
		select {
		case m.kick <- struct{}{}:
		default:
		}
	}
}

// Probe checks server liveness once. Ошибки не возвращаются: они лишь
// переводят ServerUp в false.
func (m *Monitor) Probe(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, m.cfg.ProbeTimeout)
	defer cancel()

	up := true
	if err := m.prober.Ping(probeCtx); err != nil {
		m.logger.Debug("Server probe failed", "error", err)
		up = false
	}

	// Отмена родительского контекста не говорит ничего о сервере
	if ctx.Err() != nil {
		return m.IsServerUp()
	}

	m.update(ctx, func(s *Status) { s.ServerUp = up })
	return up
}

// Run probes immediately, then every ProbeInterval while the transport is online,
// and right after every reconnect. Blocks until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.cfg.ProbeInterval)
	defer ticker.Stop()

	if m.IsOnline() {
		m.Probe(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-m.kick:
			m.Probe(ctx)
			ticker.Reset(m.cfg.ProbeInterval)
		case <-ticker.C:
			if m.IsOnline() {
				m.Probe(ctx)
			}
		}
	}
}

// update применяет изменение статуса, ведет маркеры восстановления и уведомляет подписчиков
func (m *Monitor) update(ctx context.Context, fn func(*Status)) bool {
	m.transitionMu.Lock()
	defer m.transitionMu.Unlock()

	m.mu.Lock()
	prev := m.status
	fn(&m.status)
	curr := m.status
	subs := make([]func(Event), 0, len(m.subs))
	for _, sub := range m.subs {
		subs = append(subs, sub)
	}
	m.mu.Unlock()

	if prev == curr {
		return false
	}

	ev := Event{Prev: prev, Curr: curr}
	switch {
	case ev.Lost():
		m.logger.Info("Server unavailable", "online", curr.Online, "server_up", curr.ServerUp)
		m.setFlag(ctx, models.FlagServerWasDown, true)
	case ev.Recovered():
		m.logger.Info("Server available")
		m.markRecovered(ctx)
	}

	for _, sub := range subs {
		sub(ev)
	}
	return true
}

// markRecovered переносит "server was down" в "needs refresh"
func (m *Monitor) markRecovered(ctx context.Context) {
	wasDown, err := m.flags.GetFlag(ctx, models.FlagServerWasDown)
	if err != nil {
		m.logger.Warn("Failed to read server_was_down flag", "error", err)
		return
	}
	if !wasDown {
		return
	}

	m.setFlag(ctx, models.FlagNeedsRefresh, true)
	m.setFlag(ctx, models.FlagServerWasDown, false)
}

func (m *Monitor) setFlag(ctx context.Context, flag models.Flag, value bool) {
	if err := m.flags.SetFlag(ctx, flag, value); err != nil {
		m.logger.Warn("Failed to persist connectivity flag", "flag", flag, "error", err)
	}
}
