package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/coffeeshop/internal/client/app"
)

// PasswordEnv переменная окружения с паролем для неинтерактивного входа
const PasswordEnv = "COFFEESHOP_PASSWORD"

func (c *Cli) loginCommand() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(a *app.App) error {
				return c.runLogin(cmd.Context(), a, email, password)
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (not recommended, use "+PasswordEnv+")")
	return cmd
}

func (c *Cli) runLogin(ctx context.Context, a *app.App, email, password string) error {
	var err error
	if email == "" {
		if email, err = c.io.ReadInput("Email: "); err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
	}
	if password, err = c.readPassword(password); err != nil {
		return err
	}

	session, err := a.Auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	c.io.Println("✓ Login successful!")
	c.io.Printf("User: %s (%s)\n", session.Username, session.Role)
	if !session.ExpiresAt.IsZero() {
		c.io.Printf("Token expires: %s\n", session.ExpiresAt.Format(time.RFC3339))
	}
	return nil
}

// readPassword выбирает источник пароля по приоритету:
// 1. переменная окружения COFFEESHOP_PASSWORD
// 2. флаг --password
// 3. интерактивный ввод
func (c *Cli) readPassword(fromFlag string) (string, error) {
	if env := os.Getenv(PasswordEnv); env != "" {
		return env, nil
	}
	if fromFlag != "" {
		return fromFlag, nil
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}

func (c *Cli) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd.Context(), func(a *app.App) error {
				if err := a.Auth.Logout(cmd.Context()); err != nil {
					return err
				}
				c.io.Println("✓ Logged out")
				return nil
			})
		},
	}
}
