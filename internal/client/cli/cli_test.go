package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/coffeeshop/internal/client/iocli"
	"github.com/iudanet/coffeeshop/internal/server"
	"github.com/iudanet/coffeeshop/internal/server/handlers"
	"github.com/iudanet/coffeeshop/internal/validation"
)

type env struct {
	db        string
	serverURL string
}

func newEnv(t *testing.T) *env {
	t.Setenv(PasswordEnv, "")
	return &env{db: filepath.Join(t.TempDir(), "client.db")}
}

// startServer поднимает dev сервер и направляет на него клиента
func (e *env) startServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv, err := server.New(context.Background(), server.Config{
		Version:       "test",
		JWT:           handlers.JWTConfig{Secret: []byte("test-secret"), AccessTokenTTL: time.Hour},
		AdminEmail:    "admin@coffee.shop",
		AdminPassword: "secret",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	e.serverURL = ts.URL
	return ts
}

// stopServer закрывает сервер: порт перестает принимать соединения
func (e *env) stopServer(ts *httptest.Server) {
	ts.Close()
}

func (e *env) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := New("test", iocli.New(strings.NewReader(stdin), &out), io.Discard)
	cmd.SetArgs(append([]string{"--server", e.serverURL, "--db", e.db}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (e *env) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, "", args...)
	require.NoError(t, err, out)
	return out
}

func TestCLI_OnlineCatalog(t *testing.T) {
	e := newEnv(t)
	e.startServer(t)

	out := e.mustRun(t, "list", "--category", "Teas", "--sort", "desc")
	assert.Contains(t, out, "== Teas ==")
	assert.Contains(t, out, "Mermaid's Chai")
	assert.NotContains(t, out, "Espresso")
	assert.NotContains(t, out, "[offline]")

	out = e.mustRun(t, "categories")
	assert.Contains(t, out, "Classic Coffee\nSpecialty Drinks\nCold Brews\nTeas")

	out = e.mustRun(t, "add", "--name", "Cortado", "--price", "4.5", "--category", "Classic Coffee", "--description", "Equal parts")
	assert.Contains(t, out, "✓ Product added")
	assert.Contains(t, out, "ID:          37\n")
	assert.NotContains(t, out, "queued")

	out = e.mustRun(t, "update", "37", "--price", "4.8")
	assert.Contains(t, out, "Price:       4.80")
	assert.Contains(t, out, "Name:        Cortado")

	out = e.mustRun(t, "get", "37")
	assert.Contains(t, out, "Cortado")

	e.mustRun(t, "delete", "37")
	_, err := e.run(t, "", "get", "37")
	assert.Error(t, err)
}

func TestCLI_OfflineAddThenSync(t *testing.T) {
	e := newEnv(t)
	ts := e.startServer(t)

	// Категории кэшируются, пока сервер доступен
	e.mustRun(t, "categories")
	e.stopServer(ts)

	out := e.mustRun(t, "add", "--name", "Cortado", "--price", "4.5", "--category", "Classic Coffee", "--description", "Equal parts")
	assert.Contains(t, out, "Server unavailable")
	assert.Contains(t, out, "ID:          temp_")
	assert.Contains(t, out, "[offline]")
	assert.Contains(t, out, "queued")

	out = e.mustRun(t, "list")
	assert.Contains(t, out, "Cortado")
	assert.Contains(t, out, "(from local cache)")

	out = e.mustRun(t, "categories")
	assert.Contains(t, out, "Teas")

	out = e.mustRun(t, "status")
	assert.Contains(t, out, "Network:       no")
	assert.Contains(t, out, "Pending:       1 operation(s)")

	_, err := e.run(t, "", "sync")
	require.ErrorIs(t, err, ErrServerUnavailable)

	// Сервер вернулся
	e.startServer(t)
	out = e.mustRun(t, "sync")
	assert.Contains(t, out, "✓ Synced: 1, failed: 0, remaining: 0")
	assert.Contains(t, out, "-> 37")

	out = e.mustRun(t, "get", "37")
	assert.Contains(t, out, "Cortado")
	assert.NotContains(t, out, "[offline]")

	out = e.mustRun(t, "status")
	assert.Contains(t, out, "Pending:       0 operation(s)")
	assert.Contains(t, out, "Mappings:      1")
}

func TestCLI_CommandSyncsOnConnect(t *testing.T) {
	e := newEnv(t)
	ts := e.startServer(t)
	e.stopServer(ts)

	e.mustRun(t, "add", "--name", "Cortado", "--price", "4.5", "--category", "Classic Coffee", "--description", "Equal parts")

	e.startServer(t)
	out := e.mustRun(t, "list", "--search", "cortado")
	assert.Contains(t, out, "✓ Synchronized 1 pending operation(s)")
	assert.Contains(t, out, "Cortado")
	assert.NotContains(t, out, "[offline]")
}

func TestCLI_LoginStatusLogout(t *testing.T) {
	e := newEnv(t)
	e.startServer(t)

	out, err := e.run(t, "secret\n", "login", "--email", "admin@coffee.shop")
	require.NoError(t, err, out)
	assert.Contains(t, out, "✓ Login successful!")
	assert.Contains(t, out, "User: admin (admin)")

	out = e.mustRun(t, "status")
	assert.Contains(t, out, "Server up:     yes")
	assert.Contains(t, out, "Session:       admin@coffee.shop, expires in")

	e.mustRun(t, "logout")
	out = e.mustRun(t, "status")
	assert.Contains(t, out, "Session:       not authenticated")
}

func TestCLI_LoginPasswordFromEnv(t *testing.T) {
	e := newEnv(t)
	e.startServer(t)
	t.Setenv(PasswordEnv, "secret")

	out, err := e.run(t, "", "login", "--email", "admin@coffee.shop", "--password", "wrong")
	require.NoError(t, err, out)
	assert.Contains(t, out, "✓ Login successful!")
}

func TestCLI_LoginRejected(t *testing.T) {
	e := newEnv(t)
	e.startServer(t)

	_, err := e.run(t, "", "login", "--email", "admin@coffee.shop", "--password", "wrong")
	assert.Error(t, err)
}

func TestCLI_Errors(t *testing.T) {
	e := newEnv(t)
	e.startServer(t)

	_, err := e.run(t, "", "add", "--name", "", "--price", "1", "--category", "Teas", "--description", "x")
	assert.ErrorIs(t, err, validation.ErrInvalidProduct)

	_, err = e.run(t, "", "list", "--sort", "sideways")
	assert.Error(t, err)

	_, err = e.run(t, "", "get")
	assert.Error(t, err)

	_, err = e.run(t, "", "--engine", "postgres", "list")
	assert.Error(t, err)
}

func TestCLI_SQLiteEngine(t *testing.T) {
	e := newEnv(t)
	ts := e.startServer(t)
	e.stopServer(ts)

	_, err := e.run(t, "", "--engine", "sqlite", "add", "--name", "Cortado", "--price", "4.5", "--category", "Classic Coffee", "--description", "Equal parts")
	require.NoError(t, err)

	out, err := e.run(t, "", "--engine", "sqlite", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Pending:       1 operation(s)")
}
