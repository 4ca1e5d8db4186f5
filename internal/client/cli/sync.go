package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iudanet/coffeeshop/internal/client/app"
	"github.com/iudanet/coffeeshop/internal/client/connectivity"
)

// ErrServerUnavailable возвращается командами, которым нужен сервер
var ErrServerUnavailable = errors.New("server unavailable")

func (c *Cli) syncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Replay pending operations against the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(a *app.App) error {
				return c.runSync(cmd.Context(), a)
			})
		},
	}
}

func (c *Cli) runSync(ctx context.Context, a *app.App) error {
	if st := a.Refresh(ctx); !st.Available() {
		pending, err := a.Queue.Len(ctx)
		if err != nil {
			return err
		}
		return fmt.Errorf("%w: %d operation(s) remain queued", ErrServerUnavailable, pending)
	}

	result, err := a.Sync.Sync(ctx)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	if result.Skipped {
		c.io.Println("⚠️  Another sync is in progress, try again later.")
		return nil
	}

	c.io.Printf("✓ Synced: %d, failed: %d, remaining: %d\n", result.Synced, result.Failed, result.Remaining)
	for tempID, id := range result.Mappings {
		c.io.Printf("  %s -> %s\n", tempID, id)
	}
	return nil
}

func (c *Cli) watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Monitor connectivity and sync automatically until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return c.withApp(ctx, func(a *app.App) error {
				unsubscribe := a.Monitor.Subscribe(func(ev connectivity.Event) {
					switch {
					case ev.Recovered():
						c.io.Println("● server available")
					case ev.Lost():
						c.io.Println("○ server unavailable")
					}
				})
				defer unsubscribe()

				c.io.Printf("Watching %s, press Ctrl+C to stop\n", a.Config.ServerURL)
				return a.Run(ctx)
			})
		},
	}
}
