// Package cli implements the coffeeshop command tree.
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/iudanet/coffeeshop/internal/client/app"
	"github.com/iudanet/coffeeshop/internal/client/iocli"
	"github.com/iudanet/coffeeshop/internal/config"
)

// Options глобальные флаги, перекрывающие значения из конфигурации
type Options struct {
	ConfigPath string
	ServerURL  string
	DBPath     string
	Engine     string
	LogLevel   string
}

// Cli хранит состояние одного запуска команды
type Cli struct {
	io      iocli.IO
	logOut  io.Writer
	version string
	opts    Options
}

// New creates the command tree bound to the given IO.
// Логи пишутся в logOut, вывод команд в io.
func New(version string, stdio iocli.IO, logOut io.Writer) *cobra.Command {
	c := &Cli{io: stdio, logOut: logOut, version: version}
	return c.rootCommand()
}

func (c *Cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "coffeeshop",
		Short:         "Offline-capable coffee shop catalog client",
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(c.io)

	flags := root.PersistentFlags()
	flags.StringVar(&c.opts.ConfigPath, "config", "", "path to YAML config file")
	flags.StringVar(&c.opts.ServerURL, "server", "", "server URL (overrides config)")
	flags.StringVar(&c.opts.DBPath, "db", "", "path to local database (overrides config)")
	flags.StringVar(&c.opts.Engine, "engine", "", "local storage engine: bolt or sqlite (overrides config)")
	flags.StringVar(&c.opts.LogLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		c.loginCommand(),
		c.logoutCommand(),
		c.statusCommand(),
		c.listCommand(),
		c.getCommand(),
		c.addCommand(),
		c.updateCommand(),
		c.deleteCommand(),
		c.categoriesCommand(),
		c.syncCommand(),
		c.watchCommand(),
	)
	return root
}

// loadConfig читает файл конфигурации и применяет флаги
func (c *Cli) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if c.opts.ServerURL != "" {
		cfg.ServerURL = c.opts.ServerURL
	}
	if c.opts.DBPath != "" {
		cfg.Storage.Path = c.opts.DBPath
	}
	if c.opts.Engine != "" {
		cfg.Storage.Engine = c.opts.Engine
	}
	if c.opts.LogLevel != "" {
		cfg.Log.Level = c.opts.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// withApp собирает клиент на время выполнения fn и закрывает его после
func (c *Cli) withApp(ctx context.Context, fn func(a *app.App) error) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	logger := cfg.Log.NewLogger(c.logOut)

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("Failed to close client", slog.Any("error", err))
		}
	}()

	return fn(a)
}

// connect проверяет доступность сервера и досинхронизирует очередь
func (c *Cli) connect(ctx context.Context, a *app.App) bool {
	st, result := a.Connect(ctx)
	if result != nil && result.Synced > 0 {
		c.io.Printf("✓ Synchronized %d pending operation(s)\n", result.Synced)
	}
	if !st.Available() {
		c.io.Println("⚠️  Server unavailable, working offline")
	}
	return st.Available()
}

// offlineNote печатает пометку о постановке изменения в очередь
func (c *Cli) offlineNote(offline bool) {
	if offline {
		c.io.Println("Change queued and will be sent when the server is reachable.")
	}
}
