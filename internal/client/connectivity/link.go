package connectivity

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"
)

// DefaultLinkInterval период проверки транспорта
const DefaultLinkInterval = 3 * time.Second

// DialFunc открывает соединение; подменяется в тестах
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// LinkWatcher reports transport reachability of the server host to a Monitor.
// Процесс CLI не получает системных событий сети, поэтому они выводятся из TCP dial.
type LinkWatcher struct {
	monitor  *Monitor
	dial     DialFunc
	logger   *slog.Logger
	address  string
	interval time.Duration
}

// NewLinkWatcher creates a watcher for the host of serverURL
func NewLinkWatcher(monitor *Monitor, serverURL string, interval time.Duration, logger *slog.Logger) (*LinkWatcher, error) {
	address, err := hostPort(serverURL)
	if err != nil {
		return nil, err
	}
	if interval <= 0 {
		interval = DefaultLinkInterval
	}

	dialer := &net.Dialer{}
	return &LinkWatcher{
		monitor:  monitor,
		dial:     dialer.DialContext,
		logger:   logger,
		address:  address,
		interval: interval,
	}, nil
}

// Check dials the server once and forwards the result to the monitor
func (w *LinkWatcher) Check(ctx context.Context) bool {
	dialCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	conn, err := w.dial(dialCtx, "tcp", w.address)
	if ctx.Err() != nil {
		return w.monitor.IsOnline()
	}

	online := err == nil
	if online {
		_ = conn.Close()
	} else {
		w.logger.Debug("Link check failed", "address", w.address, "error", err)
	}

	w.monitor.SetOnline(ctx, online)
	return online
}

// Run checks the link every interval until ctx is cancelled
func (w *LinkWatcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.Check(ctx)
		}
	}
}

// hostPort извлекает host:port из URL сервера
func hostPort(serverURL string) (string, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return "", fmt.Errorf("invalid server url: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("server url %q has no host", serverURL)
	}

	if u.Port() != "" {
		return u.Host, nil
	}

	port := "80"
	if u.Scheme == "https" {
		port = "443"
	}
	return net.JoinHostPort(u.Hostname(), port), nil
}
