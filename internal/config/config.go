// Package config loads the client configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage engines
const (
	EngineBolt   = "bolt"
	EngineSQLite = "sqlite"
)

// Config конфигурация клиента
type Config struct {
	ServerURL    string             `yaml:"server_url"`
	Storage      StorageConfig      `yaml:"storage"`
	Connectivity ConnectivityConfig `yaml:"connectivity"`
	Sync         SyncConfig         `yaml:"sync"`
	Log          LogConfig          `yaml:"log"`
}

// StorageConfig локальное хранилище
type StorageConfig struct {
	Engine string `yaml:"engine"`
	Path   string `yaml:"path"`
}

// ConnectivityConfig параметры монитора доступности
type ConnectivityConfig struct {
	ProbeInterval time.Duration `yaml:"probe_interval"`
	ProbeTimeout  time.Duration `yaml:"probe_timeout"`
	LinkInterval  time.Duration `yaml:"link_interval"`
}

// SyncConfig параметры синхронизации
type SyncConfig struct {
	GraceWindow      time.Duration `yaml:"grace_window"`
	RetryAfter       time.Duration `yaml:"retry_after"`
	OperationTimeout time.Duration `yaml:"operation_timeout"`
}

// LogConfig параметры логирования
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		ServerURL: "http://localhost:5000",
		Storage: StorageConfig{
			Engine: EngineBolt,
			Path:   "coffeeshop-client.db",
		},
		Connectivity: ConnectivityConfig{
			ProbeInterval: 10 * time.Second,
			ProbeTimeout:  5 * time.Second,
			LinkInterval:  3 * time.Second,
		},
		Sync: SyncConfig{
			GraceWindow:      30 * time.Second,
			RetryAfter:       5 * time.Second,
			OperationTimeout: 15 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load читает YAML поверх значений по умолчанию.
// Пустой path или отсутствующий файл дают конфигурацию по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.decode(data); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate проверяет значения после применения файла и флагов
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server_url cannot be empty")
	}
	switch c.Storage.Engine {
	case EngineBolt, EngineSQLite:
	default:
		return fmt.Errorf("unknown storage engine %q (want %s or %s)", c.Storage.Engine, EngineBolt, EngineSQLite)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path cannot be empty")
	}

	durations := map[string]time.Duration{
		"connectivity.probe_interval": c.Connectivity.ProbeInterval,
		"connectivity.probe_timeout":  c.Connectivity.ProbeTimeout,
		"connectivity.link_interval":  c.Connectivity.LinkInterval,
		"sync.grace_window":           c.Sync.GraceWindow,
		"sync.retry_after":            c.Sync.RetryAfter,
		"sync.operation_timeout":      c.Sync.OperationTimeout,
	}
	for key, d := range durations {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", key, d)
		}
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// SlogLevel converts the configured level name
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", l.Level)
	}
	return level, nil
}

// NewLogger строит slog.Logger по настройкам
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := l.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
