package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/coffeeshop/internal/client/app"
)

func (c *Cli) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show connectivity, session and pending sync state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(a *app.App) error {
				return c.runStatus(cmd.Context(), a)
			})
		},
	}
}

func (c *Cli) runStatus(ctx context.Context, a *app.App) error {
	a.Refresh(ctx)

	st, err := a.Status(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Status ===")
	c.io.Printf("Server:        %s\n", a.Config.ServerURL)
	c.io.Printf("Network:       %s\n", onOff(st.Connectivity.Online))
	c.io.Printf("Server up:     %s\n", onOff(st.Connectivity.ServerUp))

	session, err := a.Auth.Session(ctx)
	if err != nil {
		return err
	}
	switch {
	case session == nil:
		c.io.Println("Session:       not authenticated")
	case session.Expired:
		c.io.Printf("Session:       %s, token expired at %s\n", session.Email, session.ExpiresAt.Format(time.RFC3339))
	case session.ExpiresAt.IsZero():
		c.io.Printf("Session:       %s\n", session.Email)
	default:
		c.io.Printf("Session:       %s, expires in %s\n", session.Email, time.Until(session.ExpiresAt).Round(time.Second))
	}

	c.io.Println()
	c.io.Printf("Pending:       %d operation(s)\n", st.Pending)
	c.io.Printf("Mappings:      %d\n", st.Mappings)
	c.io.Printf("Cached:        %d product(s)\n", st.Cached)
	if st.LastSync.IsZero() {
		c.io.Println("Last sync:     never")
	} else {
		c.io.Printf("Last sync:     %s\n", st.LastSync.Format(time.RFC3339))
	}
	if st.Lock != nil {
		c.io.Printf("Sync lock:     held by %s for %s\n", st.Lock.Owner, st.Lock.Age(time.Now()).Round(time.Second))
	}
	if st.NeedsRefresh {
		c.io.Println("Catalog will be refreshed from the server on next list.")
	}
	return nil
}

func onOff(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
