package auth

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/coffeeshop/internal/client/api"
	"github.com/iudanet/coffeeshop/internal/client/storage"
	"github.com/iudanet/coffeeshop/internal/client/storage/boltdb"
	"github.com/iudanet/coffeeshop/pkg/api"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func newTestStore(t *testing.T) *boltdb.Storage {
	t.Helper()
	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLogin_SavesTokenAndExpiry(t *testing.T) {
	store := newTestStore(t)
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, exp)

	mock := &httpClient.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
			assert.Equal(t, "admin@coffee.shop", req.Email)
			return &api.LoginResponse{Token: token, Username: "admin", Role: "admin"}, nil
		},
	}
	svc := NewService(mock, store, testLogger())
	ctx := context.Background()

	session, err := svc.Login(ctx, "admin@coffee.shop", "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", session.Username)
	assert.False(t, session.Expired)
	assert.True(t, exp.Equal(session.ExpiresAt))

	data, err := store.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, data.Token)

	assert.Equal(t, token, TokenSource(store, testLogger())(ctx))
}

func TestLogin_Validation(t *testing.T) {
	mock := &httpClient.ClientAPIMock{}
	svc := NewService(mock, newTestStore(t), testLogger())

	_, err := svc.Login(context.Background(), "not-an-email", "secret")
	require.Error(t, err)
	_, err = svc.Login(context.Background(), "a@b.c", "")
	require.Error(t, err)
	assert.Empty(t, mock.LoginCalls())
}

func TestLogin_ServerError(t *testing.T) {
	store := newTestStore(t)
	mock := &httpClient.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
			return nil, &api.StatusError{StatusCode: 401, Message: "Invalid credentials"}
		},
	}
	svc := NewService(mock, store, testLogger())

	_, err := svc.Login(context.Background(), "a@b.c", "wrong")
	require.Error(t, err)
	assert.Equal(t, 401, api.StatusCode(err))

	_, err = store.GetAuth(context.Background())
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestSessionAndLogout(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(&httpClient.ClientAPIMock{}, store, testLogger())
	ctx := context.Background()

	session, err := svc.Session(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)

	require.NoError(t, store.SaveAuth(ctx, &storage.AuthData{
		Token:     "expired",
		Email:     "a@b.c",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	session, err = svc.Session(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.True(t, session.Expired)
	assert.Empty(t, TokenSource(store, testLogger())(ctx), "expired token is not sent")

	require.NoError(t, svc.Logout(ctx))
	session, err = svc.Session(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestTokenExpiry(t *testing.T) {
	_, err := tokenExpiry("opaque")
	require.Error(t, err)

	exp := time.Unix(1893456000, 0)
	got, err := tokenExpiry(signedToken(t, exp))
	require.NoError(t, err)
	assert.True(t, exp.Equal(got))

	assert.False(t, isExpired(time.Time{}, time.Now()))
}
